package services

import (
	"conference-sim/domain"
	"conference-sim/repositories"
	"log/slog"
)

var _ ISnapshotStore = (*Gateway)(nil)

// Gateway moves manager state in and out of the repositories.
// Loading never fails: missing or unreadable data yields an empty manager.
type Gateway struct {
	events   repositories.IEventRepository
	users    repositories.IUserRepository
	messages repositories.IMessageRepository
	log      *slog.Logger
}

func NewGateway(
	events repositories.IEventRepository,
	users repositories.IUserRepository,
	messages repositories.IMessageRepository,
	log *slog.Logger,
) *Gateway {
	return &Gateway{events: events, users: users, messages: messages, log: log}
}

func (g *Gateway) LoadEventManager() *EventManager {
	snapshot, err := g.events.LoadEvents()
	if err != nil {
		g.log.Warn("Events could not be loaded, starting empty", "error", err)
		return NewEventManager(g.log)
	}
	g.log.Info("Events loaded", "rooms", len(snapshot.Rooms), "events", len(snapshot.Events))
	return RestoreEventManager(snapshot, g.log)
}

func (g *Gateway) LoadUserManager() *UserManager {
	snapshot, err := g.users.LoadUsers()
	if err != nil {
		g.log.Warn("Users could not be loaded, starting empty", "error", err)
		return NewUserManager(g.log)
	}
	g.log.Info("Users loaded", "users", len(snapshot.Users))
	return RestoreUserManager(snapshot, g.log)
}

func (g *Gateway) LoadMessenger() *Messenger {
	snapshot, err := g.messages.LoadMessages()
	if err != nil {
		g.log.Warn("Messages could not be loaded, starting empty", "error", err)
		return NewMessenger(g.log)
	}
	g.log.Info("Messages loaded", "messages", len(snapshot.Messages))
	return RestoreMessenger(snapshot, g.log)
}

// SaveAll writes the three collections. Each collection is replaced
// atomically, but a failure part way leaves the earlier ones written.
func (g *Gateway) SaveAll(events domain.EventSnapshot, users domain.UserSnapshot, messages domain.MessageSnapshot) error {
	if err := g.events.SaveEvents(events); err != nil {
		return err
	}
	if err := g.users.SaveUsers(users); err != nil {
		return err
	}
	if err := g.messages.SaveMessages(messages); err != nil {
		return err
	}
	g.log.Info("Conference state saved")
	return nil
}

// LoadConference restores the managers and wires them into a service.
func (g *Gateway) LoadConference(speakerPassword string) *ConferenceService {
	return NewConferenceService(g.LoadEventManager(), g.LoadUserManager(), g.LoadMessenger(), speakerPassword, g.log)
}

