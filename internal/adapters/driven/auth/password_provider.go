// Package auth provides credential-acquisition strategies for sign-in.
package auth

import (
	"context"
	"fmt"

	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
)

// Ensure PasswordProvider implements the CredentialProvider interface.
var _ driven.CredentialProvider = (*PasswordProvider)(nil)

// PasswordProvider exchanges a username/password pair for a credential via
// the gateway's login call.
type PasswordProvider struct {
	api      driven.APIGateway
	username string
	password string
}

// NewPasswordProvider creates a password-based credential provider.
func NewPasswordProvider(api driven.APIGateway, username, password string) *PasswordProvider {
	return &PasswordProvider{
		api:      api,
		username: username,
		password: password,
	}
}

// Method returns AuthMethodPassword.
func (p *PasswordProvider) Method() driven.AuthMethod {
	return driven.AuthMethodPassword
}

// Acquire performs the credential exchange.
func (p *PasswordProvider) Acquire(ctx context.Context) (string, error) {
	credential, err := p.api.Login(ctx, p.username, p.password)
	if err != nil {
		return "", fmt.Errorf("password login: %w", err)
	}
	return credential, nil
}
