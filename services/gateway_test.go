package services

import (
	"conference-sim/domain"
	"conference-sim/mocks"
	"conference-sim/repositories"
	"fmt"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGateway_LoadFailure_StartsEmpty(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	events := mocks.NewMockIEventRepository(ctrl)
	users := mocks.NewMockIUserRepository(ctrl)
	messages := mocks.NewMockIMessageRepository(ctrl)
	gateway := NewGateway(events, users, messages, slog.Default())

	events.EXPECT().LoadEvents().Return(domain.EventSnapshot{}, fmt.Errorf("disk on fire"))
	users.EXPECT().LoadUsers().Return(domain.UserSnapshot{}, fmt.Errorf("disk on fire"))
	messages.EXPECT().LoadMessages().Return(domain.MessageSnapshot{}, fmt.Errorf("disk on fire"))

	req.Empty(gateway.LoadEventManager().Events())
	req.Empty(gateway.LoadUserManager().UserIDs())
	req.Empty(gateway.LoadMessenger().Messages())
}

func TestGateway_SaveAll_StopsAtFirstFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	events := mocks.NewMockIEventRepository(ctrl)
	users := mocks.NewMockIUserRepository(ctrl)
	messages := mocks.NewMockIMessageRepository(ctrl)
	gateway := NewGateway(events, users, messages, slog.Default())
	failure := fmt.Errorf("read-only")

	events.EXPECT().SaveEvents(gomock.Any()).Return(nil)
	users.EXPECT().SaveUsers(gomock.Any()).Return(failure)
	messages.EXPECT().SaveMessages(gomock.Any()).Times(0)

	err := gateway.SaveAll(domain.EventSnapshot{}, domain.UserSnapshot{}, domain.MessageSnapshot{})

	req.ErrorIs(err, failure)
}

func TestGateway_RoundTrip(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	req.NoError(err)
	defer db.Close()
	log := slog.Default()
	gateway := NewGateway(
		repositories.NewEventRepository(db, log),
		repositories.NewUserRepository(db, log),
		repositories.NewMessageRepository(db, log),
		log,
	)

	// Given a conference with some state
	svc := gateway.LoadConference("1234")
	req.NoError(svc.Register("org", "pw"))
	organizer, err := svc.Login("org", "pw", domain.RoleOrganizer)
	req.NoError(err)
	req.NoError(svc.AddRoom(organizer, "Hall A"))
	req.NoError(svc.CreateSpeakerAccount(organizer, "spk"))
	_, err = svc.CreateEvent(organizer, CreateEventArgs{ID: "E1", Location: "Hall A", SpeakerID: "spk", Time: jan1(10, 0)})
	req.NoError(err)
	req.NoError(svc.AttendEvent(organizer, "E1"))
	_, err = svc.MessageAllSpeakers(organizer, "welcome")
	req.NoError(err)

	// When it is saved and loaded again
	req.NoError(svc.Save(gateway))
	restored := gateway.LoadConference("1234")

	// Then everything is back, with nobody logged in
	req.Equal(svc.Events(), restored.Events())
	req.Equal([]string{"Hall A"}, restored.Rooms())
	_, err = restored.Inbox(organizer)
	req.Error(err)
	spk, err := restored.Login("spk", "1234", domain.RoleSpeaker)
	req.NoError(err)
	inbox, err := restored.Inbox(spk)
	req.NoError(err)
	req.Len(inbox, 1)
	req.Equal("welcome", inbox[0].Content)
	_, err = restored.Login("org", "pw", domain.RoleOrganizer)
	req.NoError(err)
}
