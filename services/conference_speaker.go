package services

import (
	"conference-sim/domain"
	"conference-sim/errors"

	"github.com/samber/lo"
)

func (s *ConferenceService) SpeakerEvents(session domain.Session) ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker, err := s.requireRole(session, domain.RoleSpeaker)
	if err != nil {
		return nil, err
	}
	return s.events.EventsBySpeaker(speaker.ID), nil
}

// MessageEventAttendees is limited to the speaker of the event.
func (s *ConferenceService) MessageEventAttendees(session domain.Session, eventID, content string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker, err := s.requireRole(session, domain.RoleSpeaker)
	if err != nil {
		return 0, err
	}
	event, ok := s.events.GetEventByID(eventID)
	if !ok {
		return 0, errors.ErrEventNotFound
	}
	if event.SpeakerID != speaker.ID {
		s.log.Debug("Speaker does not speak at event", "speaker", speaker.ID, "event", eventID)
		return 0, errors.ErrPermissionDenied
	}
	if content == "" {
		return 0, errors.ErrEmptyMessage
	}
	attendees, _ := s.events.EventAttendees(eventID)
	return s.broadcast(speaker.ID, attendees, content), nil
}

// MessageAllSpeakerEventAttendees messages each attendee of the speaker's
// events once, even when they attend several of them.
func (s *ConferenceService) MessageAllSpeakerEventAttendees(session domain.Session, content string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker, err := s.requireRole(session, domain.RoleSpeaker)
	if err != nil {
		return 0, err
	}
	events := s.events.EventsBySpeaker(speaker.ID)
	if len(events) == 0 {
		return 0, errors.ErrEventNotFound
	}
	if content == "" {
		return 0, errors.ErrEmptyMessage
	}
	recipients := lo.Uniq(lo.FlatMap(events, func(e domain.Event, _ int) []string { return e.Attendees }))
	return s.broadcast(speaker.ID, recipients, content), nil
}
