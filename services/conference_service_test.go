package services

import (
	"conference-sim/domain"
	"conference-sim/errors"
	"conference-sim/mocks"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type conferenceMocks struct {
	events    *mocks.MockIEventManager
	users     *mocks.MockIUserManager
	messenger *mocks.MockIMessenger
}

func newMockedConference(t *testing.T) (*ConferenceService, conferenceMocks) {
	ctrl := gomock.NewController(t)
	m := conferenceMocks{
		events:    mocks.NewMockIEventManager(ctrl),
		users:     mocks.NewMockIUserManager(ctrl),
		messenger: mocks.NewMockIMessenger(ctrl),
	}
	return NewConferenceService(m.events, m.users, m.messenger, "1234", slog.Default()), m
}

func TestConferenceService_Register(t *testing.T) {
	t.Run("should register without a role when input is valid", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedConference(t)
		m.users.EXPECT().RegisterUser("alice", "pw1", domain.RoleUnset).Return(nil).Times(1)

		req.NoError(svc.Register("alice", "pw1"))
	})

	t.Run("should reject a non alphanumeric password before touching users", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedConference(t)
		m.users.EXPECT().RegisterUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(svc.Register("alice", "pass word"), errors.ErrInvalidPassword)
	})

	t.Run("should propagate duplicate registration", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedConference(t)
		m.users.EXPECT().RegisterUser("alice", "pw1", domain.RoleUnset).Return(errors.ErrUserAlreadyExists)

		req.ErrorIs(svc.Register("alice", "pw1"), errors.ErrUserAlreadyExists)
	})
}

func TestConferenceService_Login(t *testing.T) {
	t.Run("should reassert the chosen role after login", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedConference(t)
		session := domain.Session{Token: "token", UserID: "alice"}
		gomock.InOrder(
			m.users.EXPECT().LoginUser("alice", "pw1").Return(session, nil),
			m.users.EXPECT().SetUserRole("alice", domain.RoleSpeaker).Return(nil),
		)

		got, err := svc.Login("alice", "pw1", domain.RoleSpeaker)

		req.NoError(err)
		req.Equal(session, got)
	})

	t.Run("should store the canonical role whatever the case typed", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedConference(t)
		session := domain.Session{Token: "token", UserID: "alice"}
		m.users.EXPECT().LoginUser("alice", "pw1").Return(session, nil)
		m.users.EXPECT().SetUserRole("alice", domain.RoleOrganizer).Return(nil).Times(1)

		_, err := svc.Login("alice", "pw1", domain.Role("organizer"))

		req.NoError(err)
	})

	t.Run("should refuse an unknown role", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedConference(t)
		m.users.EXPECT().LoginUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Login("alice", "pw1", domain.Role("Admin"))

		req.ErrorIs(err, errors.ErrInvalidRole)
	})

	t.Run("should not change the role when credentials are wrong", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedConference(t)
		m.users.EXPECT().LoginUser("alice", "bad").Return(domain.Session{}, errors.ErrInvalidCredentials)
		m.users.EXPECT().SetUserRole(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Login("alice", "bad", domain.RoleOrganizer)

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}

func TestConferenceService_RoleGating(t *testing.T) {
	session := domain.Session{Token: "token", UserID: "alice"}
	attendee := domain.User{ID: "alice", Role: domain.RoleAttendee, LoggedIn: true}

	tests := []struct {
		name string
		call func(svc *ConferenceService) error
	}{
		{name: "AddRoom", call: func(svc *ConferenceService) error { return svc.AddRoom(session, "Hall A") }},
		{name: "RemoveRoom", call: func(svc *ConferenceService) error { return svc.RemoveRoom(session, "Hall A") }},
		{name: "CreateEvent", call: func(svc *ConferenceService) error {
			_, err := svc.CreateEvent(session, CreateEventArgs{ID: "E1", Location: "Hall A", SpeakerID: "bob", Time: jan1(10, 0)})
			return err
		}},
		{name: "DeleteEvent", call: func(svc *ConferenceService) error { return svc.DeleteEvent(session, "E1") }},
		{name: "SetEventCapacity", call: func(svc *ConferenceService) error { return svc.SetEventCapacity(session, "E1", 3) }},
		{name: "CreateSpeakerAccount", call: func(svc *ConferenceService) error { return svc.CreateSpeakerAccount(session, "bob") }},
		{name: "MessageAllSpeakers", call: func(svc *ConferenceService) error {
			_, err := svc.MessageAllSpeakers(session, "hello")
			return err
		}},
		{name: "SpeakerEvents", call: func(svc *ConferenceService) error {
			_, err := svc.SpeakerEvents(session)
			return err
		}},
		{name: "MessageEventAttendees", call: func(svc *ConferenceService) error {
			_, err := svc.MessageEventAttendees(session, "E1", "hello")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			svc, m := newMockedConference(t)
			m.users.EXPECT().CurrUser(session).Return(attendee, true)

			req.ErrorIs(tt.call(svc), errors.ErrPermissionDenied)
		})
	}
}

func TestConferenceService_NotLoggedIn(t *testing.T) {
	req := require.New(t)
	svc, m := newMockedConference(t)
	m.users.EXPECT().CurrUser(gomock.Any()).Return(domain.User{}, false).AnyTimes()

	req.ErrorIs(svc.AttendEvent(domain.Session{}, "E1"), errors.ErrNotLoggedIn)
	_, err := svc.Inbox(domain.Session{})
	req.ErrorIs(err, errors.ErrNotLoggedIn)
	req.ErrorIs(svc.AddRoom(domain.Session{}, "Hall A"), errors.ErrNotLoggedIn)
}

func TestConferenceService_CreateEvent(t *testing.T) {
	session := domain.Session{Token: "token", UserID: "org"}
	organizer := domain.User{ID: "org", Role: domain.RoleOrganizer, LoggedIn: true}

	t.Run("should use the session user as organizer and report coincidences", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedConference(t)
		m.users.EXPECT().CurrUser(session).Return(organizer, true)
		m.users.EXPECT().IDExists("spk").Return(true)
		m.events.EXPECT().EventCoincides(jan1(10, 30)).Return(true)
		m.events.EXPECT().AddEvent(jan1(10, 30), "Hall A", "E2", "org", "spk").Return(nil)

		coincides, err := svc.CreateEvent(session, CreateEventArgs{ID: "E2", Location: "Hall A", SpeakerID: "spk", Time: jan1(10, 30)})

		req.NoError(err)
		req.True(coincides)
	})

	t.Run("should refuse an unregistered speaker", func(t *testing.T) {
		req := require.New(t)
		svc, m := newMockedConference(t)
		m.users.EXPECT().CurrUser(session).Return(organizer, true)
		m.users.EXPECT().IDExists("ghost").Return(false)
		m.events.EXPECT().AddEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.CreateEvent(session, CreateEventArgs{ID: "E1", Location: "Hall A", SpeakerID: "ghost", Time: jan1(10, 0)})

		req.ErrorIs(err, errors.ErrUserNotFound)
	})
}

func TestConferenceService_MessageEventAttendees_OtherSpeaker(t *testing.T) {
	req := require.New(t)
	svc, m := newMockedConference(t)
	session := domain.Session{Token: "token", UserID: "spk2"}
	m.users.EXPECT().CurrUser(session).Return(domain.User{ID: "spk2", Role: domain.RoleSpeaker, LoggedIn: true}, true)
	event := domain.NewEvent(jan1(10, 0), "Hall A", "E1")
	event.SpeakerID = "spk1"
	m.events.EXPECT().GetEventByID("E1").Return(event, true)
	m.messenger.EXPECT().MakeMessage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.MessageEventAttendees(session, "E1", "hello")

	req.ErrorIs(err, errors.ErrPermissionDenied)
}

func TestConferenceService_Save(t *testing.T) {
	req := require.New(t)
	svc, m := newMockedConference(t)
	m.events.EXPECT().Snapshot().Return(domain.EventSnapshot{Rooms: []string{"Hall A"}})
	m.users.EXPECT().Snapshot().Return(domain.UserSnapshot{})
	m.messenger.EXPECT().Snapshot().Return(domain.MessageSnapshot{})
	store := &recordingStore{}

	req.NoError(svc.Save(store))
	req.Equal([]string{"Hall A"}, store.events.Rooms)
}

type recordingStore struct {
	events   domain.EventSnapshot
	users    domain.UserSnapshot
	messages domain.MessageSnapshot
}

func (r *recordingStore) SaveAll(events domain.EventSnapshot, users domain.UserSnapshot, messages domain.MessageSnapshot) error {
	r.events, r.users, r.messages = events, users, messages
	return nil
}

func TestConferenceService_Login_LowercaseRoleGrantsOrganizerCommands(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	svc := NewConferenceService(NewEventManager(log), NewUserManager(log), NewMessenger(log), "1234", log)
	req.NoError(svc.Register("org1", "pw1"))

	// Given a role typed in lower case
	session, err := svc.Login("org1", "pw1", domain.Role("organizer"))
	req.NoError(err)

	// When an organizer command is issued
	err = svc.AddRoom(session, "HallA")

	// Then the session is treated as an organizer
	req.NoError(err)
	req.Equal([]string{"HallA"}, svc.Rooms())
}
