package services

import (
	"conference-sim/auth"
	"conference-sim/domain"
	"conference-sim/errors"
	"conference-sim/projection"
	stderrors "errors"
	"fmt"

	"github.com/samber/lo"
)

func (s *ConferenceService) MessageUser(session domain.Session, receiverID, content string) (domain.Message, error) {
	if err := auth.ValidateMessage(auth.MessageRequest{ReceiverID: receiverID, Content: content}); err != nil {
		return domain.Message{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sender, err := s.currentUser(session)
	if err != nil {
		return domain.Message{}, err
	}
	if !s.users.IDExists(receiverID) {
		return domain.Message{}, errors.ErrUserNotFound
	}
	return s.messenger.MakeMessage(sender.ID, receiverID, content), nil
}

// AttendEvent signs the user up and then befriends everyone already attending.
// Only the newcomer's friend list changes.
func (s *ConferenceService) AttendEvent(session domain.Session, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.currentUser(session)
	if err != nil {
		return err
	}
	event, ok := s.events.GetEventByID(eventID)
	if !ok {
		return errors.ErrEventNotFound
	}
	if err = s.users.UserEventSignUp(user.ID, event); err != nil {
		return err
	}
	for _, other := range lo.Without(event.Attendees, user.ID) {
		err = s.users.AddUserFriend(user.ID, other)
		if err != nil && !stderrors.Is(err, errors.ErrFriendAlreadyAdded) {
			return fmt.Errorf("befriend %s: %w", other, err)
		}
	}
	s.log.Info("User signed up for event", "user", user.ID, "event", eventID)
	return nil
}

// CancelAttendance drops the other attendees from the user's friend list,
// then removes the user from the event.
func (s *ConferenceService) CancelAttendance(session domain.Session, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.currentUser(session)
	if err != nil {
		return err
	}
	event, ok := s.events.GetEventByID(eventID)
	if !ok {
		return errors.ErrEventNotFound
	}
	if !event.HasAttendee(user.ID) {
		return errors.ErrNotAttending
	}
	for _, other := range lo.Without(event.Attendees, user.ID) {
		err = s.users.DeleteUserFriend(user.ID, other)
		if err != nil && !stderrors.Is(err, errors.ErrFriendNotFound) {
			return fmt.Errorf("unfriend %s: %w", other, err)
		}
	}
	if err = s.users.UserEventCancel(user.ID, event); err != nil {
		return err
	}
	s.log.Info("User cancelled attendance", "user", user.ID, "event", eventID)
	return nil
}

func (s *ConferenceService) AttendingEvents(session domain.Session) ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.currentUser(session)
	if err != nil {
		return nil, err
	}
	return s.events.EventsByAttendee(user.ID), nil
}

// FellowAttendees lists, once each, the users sharing at least one event with the caller.
func (s *ConferenceService) FellowAttendees(session domain.Session) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.currentUser(session)
	if err != nil {
		return nil, err
	}
	events := s.events.EventsByAttendee(user.ID)
	fellows := lo.Uniq(lo.FlatMap(events, func(e domain.Event, _ int) []string { return e.Attendees }))
	return lo.Without(fellows, user.ID), nil
}

func (s *ConferenceService) Friends(session domain.Session) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.currentUser(session)
	if err != nil {
		return nil, err
	}
	return user.Friends, nil
}

// Inbox returns the messages received by the caller, oldest first.
func (s *ConferenceService) Inbox(session domain.Session) ([]domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.currentUser(session)
	if err != nil {
		return nil, err
	}
	inbox := s.messenger.MessagesByRecipient(user.ID)
	domain.SortBySentAt(inbox)
	return inbox, nil
}

func (s *ConferenceService) Conversation(session domain.Session, peerID string) ([]domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.currentUser(session)
	if err != nil {
		return nil, err
	}
	if !s.users.IDExists(peerID) {
		return nil, errors.ErrUserNotFound
	}
	conversation := projection.NewConversation(user.ID, peerID)
	conversation.ConsumeAll(s.messenger.Messages())
	return conversation.Replay(), nil
}

func (s *ConferenceService) Rooms() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events.Rooms()
}

func (s *ConferenceService) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events.Events()
}

func (s *ConferenceService) EventsByLocation(location string) ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.events.RoomExists(location) {
		return nil, errors.ErrRoomNotFound
	}
	return s.events.EventsByLocation(location), nil
}

func (s *ConferenceService) EventsBySpeaker(speakerID string) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events.EventsBySpeaker(speakerID)
}
