package services

import (
	"conference-sim/auth"
	"conference-sim/contract"
	"conference-sim/domain"
	"conference-sim/errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
)

type IConferenceService interface {
	Register(id, password string) error
	Login(id, password string, role domain.Role) (domain.Session, error)
	Logout(session domain.Session) error
	ChangePassword(session domain.Session, oldPassword, newPassword string) error

	AddRoom(session domain.Session, name string) error
	RemoveRoom(session domain.Session, name string) error
	CreateEvent(session domain.Session, args CreateEventArgs) (bool, error)
	DeleteEvent(session domain.Session, eventID string) error
	SetEventCapacity(session domain.Session, eventID string, capacity int) error
	CreateSpeakerAccount(session domain.Session, speakerID string) error
	MessageAllSpeakers(session domain.Session, content string) (int, error)
	UserIDs(session domain.Session) ([]string, error)

	SpeakerEvents(session domain.Session) ([]domain.Event, error)
	MessageEventAttendees(session domain.Session, eventID, content string) (int, error)
	MessageAllSpeakerEventAttendees(session domain.Session, content string) (int, error)

	MessageUser(session domain.Session, receiverID, content string) (domain.Message, error)
	AttendEvent(session domain.Session, eventID string) error
	CancelAttendance(session domain.Session, eventID string) error
	AttendingEvents(session domain.Session) ([]domain.Event, error)
	FellowAttendees(session domain.Session) ([]string, error)
	Friends(session domain.Session) ([]string, error)
	Inbox(session domain.Session) ([]domain.Message, error)
	Conversation(session domain.Session, peerID string) ([]domain.Message, error)

	Rooms() []string
	Events() []domain.Event
	EventsByLocation(location string) ([]domain.Event, error)
	EventsBySpeaker(speakerID string) []domain.Event

	Save(store ISnapshotStore) error
}

var _ IConferenceService = (*ConferenceService)(nil)

// ISnapshotStore persists the state of the three managers together.
type ISnapshotStore interface {
	SaveAll(events domain.EventSnapshot, users domain.UserSnapshot, messages domain.MessageSnapshot) error
}

// CreateEventArgs carries what an organizer types when scheduling a talk.
type CreateEventArgs struct {
	ID        string
	Location  string
	SpeakerID string
	Time      time.Time
}

// ConferenceService is the command boundary used by frontends.
// It owns no state of its own: every call locks once and then drives the managers.
type ConferenceService struct {
	mu              sync.Mutex
	events          contract.IEventManager
	users           contract.IUserManager
	messenger       contract.IMessenger
	speakerPassword string
	log             *slog.Logger
}

func NewConferenceService(
	events contract.IEventManager,
	users contract.IUserManager,
	messenger contract.IMessenger,
	speakerPassword string,
	log *slog.Logger,
) *ConferenceService {
	return &ConferenceService{
		events:          events,
		users:           users,
		messenger:       messenger,
		speakerPassword: speakerPassword,
		log:             log,
	}
}

// Register creates an account without a role; the role is picked at login.
func (s *ConferenceService) Register(id, password string) error {
	if err := auth.ValidateRegister(auth.RegisterRequest{UserID: id, Password: password}); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.RegisterUser(id, password, domain.RoleUnset)
}

// Login opens a session and then stores the role chosen by the user,
// whatever role the account had before.
func (s *ConferenceService) Login(id, password string, role domain.Role) (domain.Session, error) {
	parsed, ok := domain.ParseRole(string(role))
	if !ok {
		return domain.Session{}, errors.ErrInvalidRole
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.users.LoginUser(id, password)
	if err != nil {
		return domain.Session{}, err
	}
	if err = s.users.SetUserRole(id, parsed); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func (s *ConferenceService) Logout(session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.LogoutUser(session)
}

func (s *ConferenceService) ChangePassword(session domain.Session, oldPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.currentUser(session)
	if err != nil {
		return err
	}
	if !user.CheckPassword(oldPassword) {
		return errors.ErrInvalidCredentials
	}
	if err = auth.ValidatePassword(newPassword); err != nil {
		return err
	}
	return s.users.SetUserPassword(user.ID, newPassword)
}

func (s *ConferenceService) Save(store ISnapshotStore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := store.SaveAll(s.events.Snapshot(), s.users.Snapshot(), s.messenger.Snapshot()); err != nil {
		return fmt.Errorf("save conference state: %w", err)
	}
	return nil
}

// currentUser resolves the session, the caller must hold mu.
func (s *ConferenceService) currentUser(session domain.Session) (domain.User, error) {
	user, ok := s.users.CurrUser(session)
	if !ok {
		return domain.User{}, errors.ErrNotLoggedIn
	}
	return user, nil
}

// requireRole resolves the session and checks the user acts under one of roles.
func (s *ConferenceService) requireRole(session domain.Session, roles ...domain.Role) (domain.User, error) {
	user, err := s.currentUser(session)
	if err != nil {
		return domain.User{}, err
	}
	if !slices.Contains(roles, user.Role) {
		s.log.Debug("Command refused for role", "user", user.ID, "role", user.Role.String())
		return domain.User{}, errors.ErrPermissionDenied
	}
	return user, nil
}
