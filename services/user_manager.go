package services

import (
	"conference-sim/contract"
	"conference-sim/domain"
	"conference-sim/errors"
	"log/slog"

	"github.com/samber/lo"
)

var _ contract.IUserManager = (*UserManager)(nil)

// UserManager owns the registered users and the sessions opened on them.
// A user is logged in through at most one session at a time.
type UserManager struct {
	users    []*domain.User
	byID     map[string]*domain.User
	sessions *SessionRegistry
	log      *slog.Logger
}

func NewUserManager(log *slog.Logger) *UserManager {
	return &UserManager{
		byID:     make(map[string]*domain.User),
		sessions: NewSessionRegistry(),
		log:      log,
	}
}

// RestoreUserManager rebuilds a manager from a snapshot.
// Sessions do not survive a restart, so every restored user is logged out.
func RestoreUserManager(snapshot domain.UserSnapshot, log *slog.Logger) *UserManager {
	m := NewUserManager(log)
	for _, u := range snapshot.Users {
		if _, ok := m.byID[u.ID]; ok {
			log.Warn("Duplicate user in snapshot, skipping", "user", u.ID)
			continue
		}
		stored := u.Clone()
		stored.LoggedIn = false
		m.users = append(m.users, &stored)
		m.byID[stored.ID] = &stored
	}
	return m
}

func (m *UserManager) IDExists(id string) bool {
	_, ok := m.byID[id]
	return ok
}

func (m *UserManager) UserIDs() []string {
	return lo.Map(m.users, func(u *domain.User, _ int) string { return u.ID })
}

func (m *UserManager) SpeakerIDs() []string {
	speakers := lo.Filter(m.users, func(u *domain.User, _ int) bool { return u.Role == domain.RoleSpeaker })
	return lo.Map(speakers, func(u *domain.User, _ int) string { return u.ID })
}

// GetUser returns a copy of the stored user.
func (m *UserManager) GetUser(id string) (domain.User, bool) {
	u, ok := m.byID[id]
	if !ok {
		return domain.User{}, false
	}
	return u.Clone(), true
}

// RegisterUser appends a new user. Pass domain.RoleUnset to leave the role
// to be asserted at login.
func (m *UserManager) RegisterUser(id, password string, role domain.Role) error {
	if m.IDExists(id) {
		m.log.Debug("Duplicate IDs are not allowed", "user", id)
		return errors.ErrUserAlreadyExists
	}
	u := domain.NewUser(id, password)
	u.Role = role
	m.users = append(m.users, u)
	m.byID[id] = u
	m.log.Info("Registration complete", "user", id, "role", role.String())
	return nil
}

// DeleteUser closes the user's sessions and removes it. Events and messages
// still referencing the ID are left as they are.
func (m *UserManager) DeleteUser(id string) error {
	u, ok := m.byID[id]
	if !ok {
		return errors.ErrUserNotFound
	}
	closed := m.sessions.CloseAll(id)
	u.LoggedIn = false
	delete(m.byID, id)
	m.users = lo.Without(m.users, u)
	m.log.Info("User deleted", "user", id, "sessions_closed", closed)
	return nil
}

func (m *UserManager) SetUserRole(id string, role domain.Role) error {
	u, ok := m.byID[id]
	if !ok {
		return errors.ErrUserNotFound
	}
	u.Role = role
	return nil
}

// SetUserPassword stores the password as given; format rules belong to the caller.
func (m *UserManager) SetUserPassword(id, password string) error {
	u, ok := m.byID[id]
	if !ok {
		return errors.ErrUserNotFound
	}
	u.Password = password
	m.log.Info("Password changed", "user", id)
	return nil
}

func (m *UserManager) LoginUser(id, password string) (domain.Session, error) {
	u, ok := m.byID[id]
	if !ok {
		m.log.Debug("Username not found", "user", id)
		return domain.Session{}, errors.ErrUserNotFound
	}
	if !u.CheckPassword(password) {
		m.log.Debug("Password mismatch", "user", id)
		return domain.Session{}, errors.ErrInvalidCredentials
	}
	if u.LoggedIn {
		m.log.Debug("User already logged in", "user", id)
		return domain.Session{}, errors.ErrAlreadyLoggedIn
	}
	u.LoggedIn = true
	session := m.sessions.Open(id)
	m.log.Info("User logged in", "user", id)
	return session, nil
}

func (m *UserManager) LogoutUser(session domain.Session) error {
	id, ok := m.sessions.Lookup(session)
	if !ok {
		return errors.ErrNotLoggedIn
	}
	u, ok := m.byID[id]
	if !ok || !u.LoggedIn {
		m.sessions.Close(session)
		return errors.ErrNotLoggedIn
	}
	m.sessions.Close(session)
	u.LoggedIn = false
	m.log.Info("User logged out", "user", id)
	return nil
}

func (m *UserManager) CurrUser(session domain.Session) (domain.User, bool) {
	u, ok := m.current(session)
	if !ok {
		return domain.User{}, false
	}
	return u.Clone(), true
}

func (m *UserManager) CurrUserID(session domain.Session) (string, bool) {
	u, ok := m.current(session)
	if !ok {
		return "", false
	}
	return u.ID, true
}

func (m *UserManager) CurrUserRole(session domain.Session) (domain.Role, bool) {
	u, ok := m.current(session)
	if !ok {
		return domain.RoleUnset, false
	}
	return u.Role, true
}

// AddUserFriend only touches id's friend list; call it twice for a mutual link.
func (m *UserManager) AddUserFriend(id, friendID string) error {
	u, ok := m.byID[id]
	if !ok {
		return errors.ErrUserNotFound
	}
	if err := u.AddFriend(friendID); err != nil {
		m.log.Debug("Username already in friend list, skipping", "user", id, "friend", friendID)
		return err
	}
	return nil
}

func (m *UserManager) DeleteUserFriend(id, friendID string) error {
	u, ok := m.byID[id]
	if !ok {
		return errors.ErrUserNotFound
	}
	if err := u.DeleteFriend(friendID); err != nil {
		m.log.Debug("No such friend found", "user", id, "friend", friendID)
		return err
	}
	return nil
}

func (m *UserManager) Friends(id string) ([]string, bool) {
	u, ok := m.byID[id]
	if !ok {
		return nil, false
	}
	return u.Clone().Friends, true
}

func (m *UserManager) UserEventSignUp(userID string, event *domain.Event) error {
	if event == nil {
		return errors.ErrEventNotFound
	}
	return event.AddAttendee(userID)
}

func (m *UserManager) UserEventCancel(userID string, event *domain.Event) error {
	if event == nil {
		return errors.ErrEventNotFound
	}
	return event.RemoveAttendee(userID)
}

func (m *UserManager) Snapshot() domain.UserSnapshot {
	return domain.UserSnapshot{
		Users: lo.Map(m.users, func(u *domain.User, _ int) domain.User { return u.Clone() }),
	}
}

// current resolves a session to a user that is still registered and logged in.
func (m *UserManager) current(session domain.Session) (*domain.User, bool) {
	id, ok := m.sessions.Lookup(session)
	if !ok {
		return nil, false
	}
	u, ok := m.byID[id]
	if !ok || !u.LoggedIn {
		return nil, false
	}
	return u, true
}
