package errors

import "fmt"

// Duplicate keys
var (
	ErrRoomAlreadyExists  = fmt.Errorf("room already exists")
	ErrEventAlreadyExists = fmt.Errorf("event already exists")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrFriendAlreadyAdded = fmt.Errorf("friend already in list")
)

// Not found
var (
	ErrRoomNotFound    = fmt.Errorf("room not found")
	ErrEventNotFound   = fmt.Errorf("event not found")
	ErrUserNotFound    = fmt.Errorf("user not found")
	ErrFriendNotFound  = fmt.Errorf("friend not found")
	ErrMessageNotFound = fmt.Errorf("message not found")
	ErrNotAttending    = fmt.Errorf("user is not attending this event")
)

// Capacity and state conflicts
var (
	ErrEventFull          = fmt.Errorf("event is full")
	ErrAlreadyAttending   = fmt.Errorf("user already attends this event")
	ErrVenueTaken         = fmt.Errorf("an event is already taking place at this time and venue")
	ErrSpeakerUnavailable = fmt.Errorf("speaker unavailable for this time slot")
	ErrAlreadyLoggedIn    = fmt.Errorf("user already logged in")
	ErrNotLoggedIn        = fmt.Errorf("user not logged in")
	ErrPermissionDenied   = fmt.Errorf("permission denied")
)

// Validation failures
var (
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password can only contain alphanumeric characters and no spaces")
	ErrInvalidRole        = fmt.Errorf("role must be one of Attendee, Organizer, Speaker")
	ErrInvalidCapacity    = fmt.Errorf("capacity must be a positive integer")
	ErrEmptyMessage       = fmt.Errorf("message is empty")
	ErrInvalidRequest     = fmt.Errorf("invalid request")
)

// Runtime
var (
	ErrWorkerPanic = fmt.Errorf("worker panicked")
)
