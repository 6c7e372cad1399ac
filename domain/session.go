package domain

import "time"

// Session is the explicit handle of a logged-in user.
// It replaces a hidden "current user" pointer and is passed to every
// call that acts on behalf of that user.
type Session struct {
	Token     string
	UserID    string
	StartedAt time.Time
}

func (s Session) IsZero() bool {
	return s.Token == ""
}
