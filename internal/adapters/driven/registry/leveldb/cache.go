// Package leveldb provides a read-through cache over the doctor registry.
// Registry lookups are slow (an external chain-backed collaborator), so
// resolved registrations are kept in a local LevelDB keyed by wallet address.
package leveldb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
	"github.com/medlink-care/medlink-cli/internal/logger"
)

// Ensure Cache implements the interface.
var _ driven.DoctorRegistry = (*Cache)(nil)

// keyPrefix namespaces registry entries within the database.
const keyPrefix = "doctor_"

// Cache is a read-through DoctorRegistry. Hits are served from LevelDB;
// misses fall through to the wrapped registry and are cached on success.
// Only positive registrations are cached: an unregistered address today may
// register tomorrow.
type Cache struct {
	db       *leveldb.DB
	upstream driven.DoctorRegistry
}

// Open creates a cache at path over the upstream registry.
func Open(path string, upstream driven.DoctorRegistry) (*Cache, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("opening registry cache: %w", err)
	}
	return &Cache{db: db, upstream: upstream}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Doctor returns the cached registration when present, otherwise resolves
// through the upstream registry.
func (c *Cache) Doctor(ctx context.Context, address string) (*domain.DoctorRecord, error) {
	if address == "" {
		return nil, domain.ErrInvalidInput
	}

	key := []byte(keyPrefix + address)
	if data, err := c.db.Get(key, nil); err == nil {
		var record domain.DoctorRecord
		if err := json.Unmarshal(data, &record); err == nil {
			logger.Debug("registry cache hit: %s", address)
			return &record, nil
		}
		// Unreadable entry: drop it and resolve upstream.
		logger.Warn("registry cache entry for %s unreadable, evicting", address)
		_ = c.db.Delete(key, nil)
	} else if !errors.Is(err, leveldb.ErrNotFound) {
		return nil, fmt.Errorf("reading registry cache: %w", err)
	}

	record, err := c.upstream.Doctor(ctx, address)
	if err != nil {
		return nil, err
	}

	if record != nil && record.IsRegistered {
		data, err := json.Marshal(record)
		if err == nil {
			if err := c.db.Put(key, data, nil); err != nil {
				logger.Warn("caching registration for %s: %v", address, err)
			}
		}
	}
	return record, nil
}

// RegisterDoctor submits the registration upstream and invalidates any
// cached entry for the address.
func (c *Cache) RegisterDoctor(ctx context.Context, record domain.DoctorRecord) error {
	if err := c.upstream.RegisterDoctor(ctx, record); err != nil {
		return err
	}
	if err := c.db.Delete([]byte(keyPrefix+record.Address), nil); err != nil {
		logger.Warn("invalidating cache for %s: %v", record.Address, err)
	}
	return nil
}
