package services

import (
	"conference-sim/domain"
	"time"

	"github.com/google/uuid"
)

type Set map[string]struct{}

// SessionRegistry maps session tokens to the user they belong to.
// A user can hold several tokens at the registry level; the one-session
// rule is enforced by UserManager through the user's LoggedIn flag.
type SessionRegistry struct {
	sessions map[string]domain.Session // map token -> session
	byUser   map[string]Set            // map user -> tokens
	now      func() time.Time
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]domain.Session),
		byUser:   make(map[string]Set),
		now:      time.Now,
	}
}

// Open issues a new session for the user.
func (r *SessionRegistry) Open(userID string) domain.Session {
	session := domain.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		StartedAt: r.now().UTC(),
	}
	r.sessions[session.Token] = session

	if _, ok := r.byUser[userID]; !ok {
		r.byUser[userID] = make(Set)
	}
	r.byUser[userID][session.Token] = struct{}{}
	return session
}

// Lookup resolves a token. A session handle whose user ID does not match
// the registered one is treated as unknown.
func (r *SessionRegistry) Lookup(session domain.Session) (string, bool) {
	stored, ok := r.sessions[session.Token]
	if !ok || stored.UserID != session.UserID {
		return "", false
	}
	return stored.UserID, true
}

// Close removes a single session and cleans up the user entry when empty.
func (r *SessionRegistry) Close(session domain.Session) bool {
	stored, ok := r.sessions[session.Token]
	if !ok {
		return false
	}
	delete(r.sessions, session.Token)

	if tokens, ok := r.byUser[stored.UserID]; ok {
		delete(tokens, session.Token)
		if len(tokens) == 0 {
			delete(r.byUser, stored.UserID)
		}
	}
	return true
}

// CloseAll drops every session of the user, returning how many were closed.
func (r *SessionRegistry) CloseAll(userID string) int {
	tokens := r.byUser[userID]
	for token := range tokens {
		delete(r.sessions, token)
	}
	delete(r.byUser, userID)
	return len(tokens)
}

func (r *SessionRegistry) Len() int {
	return len(r.sessions)
}
