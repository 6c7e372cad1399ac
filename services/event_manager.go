package services

import (
	"conference-sim/contract"
	"conference-sim/domain"
	"conference-sim/errors"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

var _ contract.IEventManager = (*EventManager)(nil)

// EventManager owns the room set and the event list.
// Events are kept in insertion order and indexed by ID; every query walks
// the ordered list so that results keep the scheduling order.
type EventManager struct {
	rooms  *domain.Rooms
	events []*domain.Event
	byID   map[string]*domain.Event
	log    *slog.Logger
}

func NewEventManager(log *slog.Logger) *EventManager {
	return &EventManager{
		rooms: domain.NewRooms(),
		byID:  make(map[string]*domain.Event),
		log:   log,
	}
}

// RestoreEventManager rebuilds a manager from a snapshot.
// An event whose ID was already seen is dropped, first one wins.
func RestoreEventManager(snapshot domain.EventSnapshot, log *slog.Logger) *EventManager {
	m := NewEventManager(log)
	m.rooms = domain.NewRooms(snapshot.Rooms...)
	for _, e := range snapshot.Events {
		if _, ok := m.byID[e.ID]; ok {
			log.Warn("Duplicate event in snapshot, skipping", "event", e.ID)
			continue
		}
		stored := e.Clone()
		m.events = append(m.events, &stored)
		m.byID[stored.ID] = &stored
	}
	return m
}

func (m *EventManager) AddRoom(name string) error {
	if !m.rooms.Add(name) {
		m.log.Debug("Room already exists", "room", name)
		return errors.ErrRoomAlreadyExists
	}
	m.log.Info("Room added", "room", name)
	return nil
}

// RemoveRoom does not look at events still scheduled in the room.
func (m *EventManager) RemoveRoom(name string) error {
	if !m.rooms.Remove(name) {
		m.log.Debug("Room not found", "room", name)
		return errors.ErrRoomNotFound
	}
	m.log.Info("Room removed", "room", name)
	return nil
}

func (m *EventManager) Rooms() []string {
	return m.rooms.Names()
}

func (m *EventManager) RoomExists(name string) bool {
	return m.rooms.Contains(name)
}

func (m *EventManager) EventExists(id string) bool {
	_, ok := m.byID[id]
	return ok
}

// GetEventByID returns the stored event itself, not a copy.
func (m *EventManager) GetEventByID(id string) (*domain.Event, bool) {
	e, ok := m.byID[id]
	return e, ok
}

// EventCoincides is a non-blocking warning: AddEvent does not consult it.
func (m *EventManager) EventCoincides(t time.Time) bool {
	return lo.ContainsBy(m.events, func(e *domain.Event) bool {
		return e.Coincides(t)
	})
}

// AddEvent schedules a new event with the default capacity.
// Only an identical (time, location) pair is a venue clash, and only an
// identical time is a speaker clash.
func (m *EventManager) AddEvent(t time.Time, location, id, organizerID, speakerID string) error {
	if !m.rooms.Contains(location) {
		m.log.Debug("Location not registered", "room", location)
		return errors.ErrRoomNotFound
	}
	if m.EventExists(id) {
		m.log.Debug("Event already exists", "event", id)
		return errors.ErrEventAlreadyExists
	}
	for _, e := range m.events {
		if e.Time.Equal(t) && e.Location == location {
			m.log.Debug("Venue taken", "event", e.ID, "room", location, "at", t)
			return errors.ErrVenueTaken
		}
	}
	for _, e := range m.events {
		if e.SpeakerID == speakerID && e.Time.Equal(t) {
			m.log.Debug("Speaker unavailable", "speaker", speakerID, "event", e.ID, "at", t)
			return errors.ErrSpeakerUnavailable
		}
	}

	event := domain.NewEvent(t, location, id)
	event.OrganizerID = organizerID
	event.SpeakerID = speakerID
	m.events = append(m.events, event)
	m.byID[id] = event
	m.log.Info("Event added", "event", id, "room", location, "speaker", speakerID, "at", t)
	return nil
}

// DeleteEvent leaves the friend links created by its attendees untouched.
func (m *EventManager) DeleteEvent(id string) error {
	e, ok := m.byID[id]
	if !ok {
		return errors.ErrEventNotFound
	}
	delete(m.byID, id)
	m.events = lo.Without(m.events, e)
	m.log.Info("Event deleted", "event", id)
	return nil
}

func (m *EventManager) SetEventCapacity(id string, capacity int) error {
	e, ok := m.byID[id]
	if !ok {
		return errors.ErrEventNotFound
	}
	if err := e.SetCapacity(capacity); err != nil {
		return err
	}
	m.log.Info("Event capacity changed", "event", id, "capacity", capacity)
	return nil
}

func (m *EventManager) Events() []domain.Event {
	return m.filter(func(*domain.Event) bool { return true })
}

func (m *EventManager) EventsBySpeaker(speakerID string) []domain.Event {
	return m.filter(func(e *domain.Event) bool { return e.SpeakerID == speakerID })
}

func (m *EventManager) EventsByOrganizer(organizerID string) []domain.Event {
	return m.filter(func(e *domain.Event) bool { return e.OrganizerID == organizerID })
}

func (m *EventManager) EventsByLocation(location string) []domain.Event {
	return m.filter(func(e *domain.Event) bool { return e.Location == location })
}

func (m *EventManager) EventsByTime(t time.Time) []domain.Event {
	return m.filter(func(e *domain.Event) bool { return e.Time.Equal(t) })
}

func (m *EventManager) EventsByAttendee(userID string) []domain.Event {
	return m.filter(func(e *domain.Event) bool { return e.HasAttendee(userID) })
}

// EventAttendees returns a copy of the attendee list, false if the event is unknown.
func (m *EventManager) EventAttendees(id string) ([]string, bool) {
	e, ok := m.byID[id]
	if !ok {
		return nil, false
	}
	return e.Clone().Attendees, true
}

func (m *EventManager) Snapshot() domain.EventSnapshot {
	return domain.EventSnapshot{
		Rooms:  m.rooms.Names(),
		Events: m.Events(),
	}
}

// filter builds a fresh list of copies, callers never get a live alias.
func (m *EventManager) filter(keep func(e *domain.Event) bool) []domain.Event {
	result := make([]domain.Event, 0)
	for _, e := range m.events {
		if keep(e) {
			result = append(result, e.Clone())
		}
	}
	return result
}
