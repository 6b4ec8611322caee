package domain

// UserProfile is the signed-in user's profile as returned by the
// collaborator. The profile fetch is what establishes the session role.
type UserProfile struct {
	ID              int    `json:"id"`
	Username        string `json:"username"`
	UserType        Role   `json:"user_type"`
	InstitutionName string `json:"institution_name"`
	Specialisation  string `json:"specialisation"`
	Experience      int    `json:"experience"`
	DateJoined      string `json:"date_joined"`
}
