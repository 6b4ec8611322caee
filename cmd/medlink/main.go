// Command medlink is the MedLink patient-management client.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/medlink-care/medlink-cli/internal/adapters/driven/api"
	"github.com/medlink-care/medlink-cli/internal/adapters/driven/auth"
	configfile "github.com/medlink-care/medlink-cli/internal/adapters/driven/config/file"
	registryfile "github.com/medlink-care/medlink-cli/internal/adapters/driven/registry/file"
	"github.com/medlink-care/medlink-cli/internal/adapters/driven/registry/leveldb"
	"github.com/medlink-care/medlink-cli/internal/adapters/driven/storage/sqlite"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/cli"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
	"github.com/medlink-care/medlink-cli/internal/core/services"
	"github.com/medlink-care/medlink-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

//nolint:gocognit // composition root
func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	sessionStore := configfile.NewSessionStore(configStore)
	sessionService := services.NewSessionService(sessionStore)

	// Another process sharing the config file may sign in or out; reload
	// so this process converges on the last write.
	watcher, err := configfile.NewWatcher(configStore, sessionService.Reload)
	if err != nil {
		logger.Warn("config watcher unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening transcript storage: %w", err)
	}
	defer store.Close()

	gateway := api.NewGateway(sessionService, api.Config{
		BaseURL:           configStore.GetString("api.base_url"),
		Timeout:           time.Duration(configStore.GetInt("api.timeout_seconds")) * time.Second,
		RequestsPerSecond: float64(configStore.GetInt("api.requests_per_second")),
	})

	registry, closeRegistry, err := openRegistry()
	if err != nil {
		return err
	}
	defer closeRegistry()

	ctx := context.Background()
	directoryService := services.NewDirectoryService(ctx, gateway, 0)
	defer directoryService.Close()

	cli.SetServices(&cli.Services{
		Session:   sessionService,
		Guard:     services.NewAccessGuard(sessionService),
		Auth:      services.NewAuthService(sessionService, gateway),
		Directory: directoryService,
		Records:   services.NewRecordService(ctx, gateway),
		Chat:      services.NewChatService(gateway, store.TranscriptStore()),
		Community: services.NewCommunityService(gateway),
		Config:    configStore,
		Registry:  registry,
		PasswordProvider: func(username, password string) driven.CredentialProvider {
			return auth.NewPasswordProvider(gateway, username, password)
		},
		WalletProvider: func(address string) driven.CredentialProvider {
			return auth.NewWalletProvider(registry, address)
		},
	})

	return cli.Execute()
}

// openRegistry builds the doctor registry: the provisioned file mirror,
// fronted by a LevelDB read-through cache when the cache opens cleanly.
func openRegistry() (driven.DoctorRegistry, func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("getting home directory: %w", err)
	}

	upstream, err := registryfile.Open(filepath.Join(home, ".medlink", "registry.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening doctor registry: %w", err)
	}

	cachePath := filepath.Join(home, ".medlink", "data", "registry-cache")
	cache, err := leveldb.Open(cachePath, upstream)
	if err != nil {
		// The cache is an optimisation; fall back to direct lookups.
		logger.Warn("registry cache unavailable: %v", err)
		return upstream, func() {}, nil
	}
	return cache, func() { _ = cache.Close() }, nil
}
