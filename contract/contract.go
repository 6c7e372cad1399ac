//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"conference-sim/domain"
	"time"

	"github.com/google/uuid"
)

// IEventManager owns rooms and events and enforces scheduling rules.
type IEventManager interface {
	AddRoom(name string) error
	RemoveRoom(name string) error
	Rooms() []string
	RoomExists(name string) bool

	EventExists(id string) bool
	GetEventByID(id string) (*domain.Event, bool)
	EventCoincides(t time.Time) bool
	AddEvent(t time.Time, location, id, organizerID, speakerID string) error
	DeleteEvent(id string) error
	SetEventCapacity(id string, capacity int) error

	Events() []domain.Event
	EventsBySpeaker(speakerID string) []domain.Event
	EventsByOrganizer(organizerID string) []domain.Event
	EventsByLocation(location string) []domain.Event
	EventsByTime(t time.Time) []domain.Event
	EventsByAttendee(userID string) []domain.Event
	EventAttendees(id string) ([]string, bool)

	Snapshot() domain.EventSnapshot
}

// IUserManager owns registered users and their sessions.
type IUserManager interface {
	IDExists(id string) bool
	UserIDs() []string
	SpeakerIDs() []string
	GetUser(id string) (domain.User, bool)

	RegisterUser(id, password string, role domain.Role) error
	DeleteUser(id string) error
	SetUserRole(id string, role domain.Role) error
	SetUserPassword(id, password string) error

	LoginUser(id, password string) (domain.Session, error)
	LogoutUser(session domain.Session) error
	CurrUser(session domain.Session) (domain.User, bool)
	CurrUserID(session domain.Session) (string, bool)
	CurrUserRole(session domain.Session) (domain.Role, bool)

	AddUserFriend(id, friendID string) error
	DeleteUserFriend(id, friendID string) error
	Friends(id string) ([]string, bool)

	UserEventSignUp(userID string, event *domain.Event) error
	UserEventCancel(userID string, event *domain.Event) error

	Snapshot() domain.UserSnapshot
}

// IMessenger owns the append-only message log.
type IMessenger interface {
	MakeMessage(senderID, receiverID, content string) domain.Message
	DeleteMessage(id uuid.UUID) error
	MessagesByRecipient(recipientID string) []domain.Message
	MessagesBySender(senderID string) []domain.Message
	Messages() []domain.Message

	Snapshot() domain.MessageSnapshot
}
