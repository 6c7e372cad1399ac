package services

import (
	"conference-sim/contract"
	"conference-sim/domain"
	"conference-sim/errors"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var _ contract.IMessenger = (*Messenger)(nil)

// Messenger is an append-only log of private messages.
// It validates nothing: empty content and unknown users are the caller's concern.
type Messenger struct {
	messages []domain.Message
	now      func() time.Time
	log      *slog.Logger
}

func NewMessenger(log *slog.Logger) *Messenger {
	return &Messenger{now: time.Now, log: log}
}

func RestoreMessenger(snapshot domain.MessageSnapshot, log *slog.Logger) *Messenger {
	m := NewMessenger(log)
	m.messages = slices.Clone(snapshot.Messages)
	return m
}

// MakeMessage stamps and appends a message. It always succeeds.
func (m *Messenger) MakeMessage(senderID, receiverID, content string) domain.Message {
	message := domain.NewMessage(senderID, receiverID, content, m.now().UTC())
	m.messages = append(m.messages, message)
	m.log.Debug("Message stored", "id", message.ID, "from", senderID, "to", receiverID)
	return message
}

func (m *Messenger) DeleteMessage(id uuid.UUID) error {
	i := slices.IndexFunc(m.messages, func(msg domain.Message) bool { return msg.ID == id })
	if i < 0 {
		return errors.ErrMessageNotFound
	}
	m.messages = slices.Delete(m.messages, i, i+1)
	m.log.Debug("Message deleted", "id", id)
	return nil
}

func (m *Messenger) MessagesByRecipient(recipientID string) []domain.Message {
	return lo.Filter(m.messages, func(msg domain.Message, _ int) bool { return msg.ReceiverID == recipientID })
}

func (m *Messenger) MessagesBySender(senderID string) []domain.Message {
	return lo.Filter(m.messages, func(msg domain.Message, _ int) bool { return msg.SenderID == senderID })
}

func (m *Messenger) Messages() []domain.Message {
	return slices.Clone(m.messages)
}

func (m *Messenger) Snapshot() domain.MessageSnapshot {
	return domain.MessageSnapshot{Messages: m.Messages()}
}
