package auth

import (
	"context"
	"fmt"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
)

// Ensure WalletProvider implements the CredentialProvider interface.
var _ driven.CredentialProvider = (*WalletProvider)(nil)

// WalletProvider derives a credential from a wallet address registered in
// the external doctor registry. An unregistered address never yields a
// credential.
type WalletProvider struct {
	registry driven.DoctorRegistry
	address  string
}

// NewWalletProvider creates a wallet-based credential provider.
func NewWalletProvider(registry driven.DoctorRegistry, address string) *WalletProvider {
	return &WalletProvider{
		registry: registry,
		address:  address,
	}
}

// Method returns AuthMethodWallet.
func (p *WalletProvider) Method() driven.AuthMethod {
	return driven.AuthMethodWallet
}

// Acquire verifies registration and derives the session credential from the
// attested address.
func (p *WalletProvider) Acquire(ctx context.Context) (string, error) {
	if p.address == "" {
		return "", domain.ErrInvalidInput
	}

	record, err := p.registry.Doctor(ctx, p.address)
	if err != nil {
		return "", fmt.Errorf("registry lookup for %s: %w", p.address, err)
	}
	if record == nil || !record.IsRegistered {
		return "", domain.ErrWalletNotRegistered
	}

	return "wallet:" + p.address, nil
}
