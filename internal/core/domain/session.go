package domain

// Role classifies the signed-in user, derived from the profile endpoint
// after login. It is only meaningful while a credential is present.
type Role string

// Known roles.
const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
	RoleUnknown Role = ""
)

// IsValid returns true if the role is a recognised classification.
func (r Role) IsValid() bool {
	return r == RoleDoctor || r == RolePatient
}

// String returns the string representation.
func (r Role) String() string {
	if r == RoleUnknown {
		return "unknown"
	}
	return string(r)
}

// Session is the client-side authentication state. It is owned exclusively
// by the session service; components read it via a subscription and never
// mutate it directly.
type Session struct {
	// Credential is the opaque token issued by the collaborator on login.
	// Empty means unauthenticated.
	Credential string

	// Role is the derived user classification. Only meaningful when
	// Credential is non-empty.
	Role Role

	// UserID is the collaborator-assigned id of the signed-in user.
	UserID string

	// Initialized becomes true exactly once, after the first attempt to
	// hydrate from persisted storage.
	Initialized bool
}

// Authenticated returns true if a credential is present.
func (s Session) Authenticated() bool {
	return s.Credential != ""
}
