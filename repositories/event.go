//go:generate go run go.uber.org/mock/mockgen -source=event.go -destination=../mocks/mock_event_repository.go -package=mocks
package repositories

import (
	"conference-sim/domain"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type IEventRepository interface {
	SaveEvents(snapshot domain.EventSnapshot) error
	LoadEvents() (domain.EventSnapshot, error)
}

type EventRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewEventRepository(db *badger.DB, log *slog.Logger) EventRepository {
	return EventRepository{db: db, log: log}
}

// SaveEvents replaces the stored rooms and events.
// Rooms are keyed "room:{position}:{name}" and events "event:{position}:{id}".
func (r EventRepository) SaveEvents(snapshot domain.EventSnapshot) error {
	err := replaceAll(r.db, PrefixRoom, snapshot.Rooms, func(name string) string { return name })
	if err != nil {
		return fmt.Errorf("save rooms: %w", err)
	}
	err = replaceAll(r.db, PrefixEvent, snapshot.Events, func(e domain.Event) string { return e.ID })
	if err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	r.log.Debug("Events saved", "rooms", len(snapshot.Rooms), "events", len(snapshot.Events))
	return nil
}

func (r EventRepository) LoadEvents() (domain.EventSnapshot, error) {
	rooms, err := loadAll[string](r.db, PrefixRoom)
	if err != nil {
		return domain.EventSnapshot{}, fmt.Errorf("load rooms: %w", err)
	}
	events, err := loadAll[domain.Event](r.db, PrefixEvent)
	if err != nil {
		return domain.EventSnapshot{}, fmt.Errorf("load events: %w", err)
	}
	return domain.EventSnapshot{Rooms: rooms, Events: events}, nil
}
