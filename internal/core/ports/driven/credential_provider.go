package driven

import "context"

// AuthMethod identifies a credential-acquisition strategy.
type AuthMethod string

// Supported strategies.
const (
	// AuthMethodPassword exchanges a username/password pair with the REST
	// collaborator for a token.
	AuthMethodPassword AuthMethod = "password"
	// AuthMethodWallet derives a credential from a registered wallet
	// address in the external doctor registry.
	AuthMethodWallet AuthMethod = "wallet"
)

// CredentialProvider acquires an opaque session credential. The session
// service itself never performs network calls; login flows pick a provider
// and hand the acquired credential to the session service.
type CredentialProvider interface {
	// Method identifies the strategy.
	Method() AuthMethod

	// Acquire obtains a credential, or fails with a domain error
	// (domain.ErrLoginFailed, domain.ErrWalletNotRegistered, ...).
	Acquire(ctx context.Context) (string, error)
}
