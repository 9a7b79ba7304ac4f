package domain

// User is the identity record for the current session. ID 0 is the
// anonymous sentinel; all other fields default to the empty string until
// a login or signup replaces the record.
type User struct {
	ID       int
	Name     string
	UserName string
	Phone    string
	Email    string
	TaxID    string
	Password string // opaque, echoed by the server, never inspected here
}

// Anonymous returns the unauthenticated sentinel user.
func Anonymous() User {
	return User{}
}

// Authenticated reports whether u represents a logged-in user.
func (u User) Authenticated() bool {
	return u.ID != 0
}
