package domain

// GuardDecision is the access guard's answer for a protected view.
type GuardDecision string

// Guard decisions. The full state machine: while the session is not yet
// hydrated the guard holds (never redirects), preventing a flash-redirect
// on reload; once hydrated, credential presence decides.
const (
	// GuardAllow renders the protected view.
	GuardAllow GuardDecision = "allow"
	// GuardRedirect sends the user to the login view.
	GuardRedirect GuardDecision = "redirect"
	// GuardLoading renders a neutral loading state until hydration finishes.
	GuardLoading GuardDecision = "loading"
)

// String returns the string representation.
func (d GuardDecision) String() string {
	return string(d)
}
