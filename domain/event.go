// Package domain contains core concepts of the conference system.
// This file defines scheduled Event entities and their attendee rules.
package domain

import (
	"conference-sim/errors"
	"fmt"
	"slices"
	"time"
)

const (
	DefaultCapacity  = 2
	DefaultOrganizer = "Default Organizer"
	DefaultSpeaker   = "TBA"

	// EventDuration is the assumed length of every event when checking for overlaps.
	EventDuration = 60 * time.Minute

	TimeLayout = "2006-01-02 15:04"
)

// Event is a talk scheduled in a registered room.
// Attendees keeps sign-up order, holds no duplicates and never exceeds Capacity.
type Event struct {
	ID          string    `json:"id"`
	Time        time.Time `json:"time"`
	Location    string    `json:"location"`
	OrganizerID string    `json:"organizer_id"`
	SpeakerID   string    `json:"speaker_id"`
	Capacity    int       `json:"capacity"`
	Attendees   []string  `json:"attendees,omitempty"`
}

func NewEvent(at time.Time, location, id string) *Event {
	return &Event{
		ID:          id,
		Time:        at,
		Location:    location,
		OrganizerID: DefaultOrganizer,
		SpeakerID:   DefaultSpeaker,
		Capacity:    DefaultCapacity,
	}
}

// SetCapacity leaves the capacity untouched for non-positive values.
func (e *Event) SetCapacity(capacity int) error {
	if capacity <= 0 {
		return errors.ErrInvalidCapacity
	}
	e.Capacity = capacity
	return nil
}

func (e *Event) HasAttendee(userID string) bool {
	return slices.Contains(e.Attendees, userID)
}

func (e *Event) AddAttendee(userID string) error {
	if e.HasAttendee(userID) {
		return errors.ErrAlreadyAttending
	}
	if len(e.Attendees) >= e.Capacity {
		return errors.ErrEventFull
	}
	e.Attendees = append(e.Attendees, userID)
	return nil
}

func (e *Event) RemoveAttendee(userID string) error {
	i := slices.Index(e.Attendees, userID)
	if i < 0 {
		return errors.ErrNotAttending
	}
	e.Attendees = slices.Delete(e.Attendees, i, i+1)
	return nil
}

// Coincides reports whether t falls on the same calendar date as the event
// and less than one EventDuration away from its start, in either direction.
func (e *Event) Coincides(t time.Time) bool {
	y1, m1, d1 := e.Time.Date()
	y2, m2, d2 := t.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return false
	}
	diff := t.Sub(e.Time)
	if diff < 0 {
		diff = -diff
	}
	return diff < EventDuration
}

// Clone returns a copy that shares no slices with e.
func (e *Event) Clone() Event {
	c := *e
	c.Attendees = slices.Clone(e.Attendees)
	return c
}

func (e Event) String() string {
	return fmt.Sprintf("%s, %s, %s", e.ID, e.Location, e.Time.Format(TimeLayout))
}
