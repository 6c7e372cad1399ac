package services

import (
	"conference-sim/auth"
	"conference-sim/domain"
	"conference-sim/errors"
	"strings"
)

func (s *ConferenceService) AddRoom(session domain.Session, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.requireRole(session, domain.RoleOrganizer); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return errors.ErrInvalidRequest
	}
	return s.events.AddRoom(name)
}

func (s *ConferenceService) RemoveRoom(session domain.Session, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.requireRole(session, domain.RoleOrganizer); err != nil {
		return err
	}
	return s.events.RemoveRoom(name)
}

// CreateEvent schedules a talk organized by the session user.
// The returned flag reports an event starting less than an hour away on the
// same day; it is a warning and never blocks the creation.
func (s *ConferenceService) CreateEvent(session domain.Session, args CreateEventArgs) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	organizer, err := s.requireRole(session, domain.RoleOrganizer)
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(args.ID) == "" {
		return false, errors.ErrInvalidRequest
	}
	if !s.users.IDExists(args.SpeakerID) {
		s.log.Debug("Speaker does not exist, create the account first", "speaker", args.SpeakerID)
		return false, errors.ErrUserNotFound
	}
	coincides := s.events.EventCoincides(args.Time)
	if err = s.events.AddEvent(args.Time, args.Location, args.ID, organizer.ID, args.SpeakerID); err != nil {
		return coincides, err
	}
	return coincides, nil
}

func (s *ConferenceService) DeleteEvent(session domain.Session, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.requireRole(session, domain.RoleOrganizer); err != nil {
		return err
	}
	return s.events.DeleteEvent(eventID)
}

func (s *ConferenceService) SetEventCapacity(session domain.Session, eventID string, capacity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.requireRole(session, domain.RoleOrganizer); err != nil {
		return err
	}
	return s.events.SetEventCapacity(eventID, capacity)
}

// CreateSpeakerAccount registers a speaker with the configured default password.
func (s *ConferenceService) CreateSpeakerAccount(session domain.Session, speakerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.requireRole(session, domain.RoleOrganizer); err != nil {
		return err
	}
	req := auth.RegisterRequest{UserID: speakerID, Password: s.speakerPassword}
	if err := auth.ValidateRegister(req); err != nil {
		return err
	}
	return s.users.RegisterUser(speakerID, s.speakerPassword, domain.RoleSpeaker)
}

// MessageAllSpeakers sends one message per registered speaker and returns how many were sent.
func (s *ConferenceService) MessageAllSpeakers(session domain.Session, content string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	organizer, err := s.requireRole(session, domain.RoleOrganizer)
	if err != nil {
		return 0, err
	}
	if content == "" {
		return 0, errors.ErrEmptyMessage
	}
	return s.broadcast(organizer.ID, s.users.SpeakerIDs(), content), nil
}

func (s *ConferenceService) UserIDs(session domain.Session) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.requireRole(session, domain.RoleOrganizer); err != nil {
		return nil, err
	}
	return s.users.UserIDs(), nil
}

// broadcast sends content to every recipient in order, the caller must hold mu.
func (s *ConferenceService) broadcast(senderID string, recipients []string, content string) int {
	for _, recipientID := range recipients {
		s.messenger.MakeMessage(senderID, recipientID, content)
	}
	s.log.Info("Broadcast sent", "from", senderID, "recipients", len(recipients))
	return len(recipients)
}
