package domain

// EventSnapshot is the whole persisted state of an event manager.
type EventSnapshot struct {
	Rooms  []string `json:"rooms"`
	Events []Event  `json:"events"`
}

// UserSnapshot is the whole persisted state of a user manager.
// Sessions are not part of it.
type UserSnapshot struct {
	Users []User `json:"users"`
}

// MessageSnapshot is the whole persisted message log.
type MessageSnapshot struct {
	Messages []Message `json:"messages"`
}
