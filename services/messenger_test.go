package services

import (
	"conference-sim/domain"
	"conference-sim/errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestMessenger() *Messenger {
	m := NewMessenger(slog.Default())
	clock := jan1(9, 0)
	m.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return m
}

func TestMessenger_MakeMessage(t *testing.T) {
	req := require.New(t)
	m := newTestMessenger()

	first := m.MakeMessage("alice", "bob", "hello")
	second := m.MakeMessage("bob", "alice", "hi")
	empty := m.MakeMessage("bob", "ghost", "")

	req.NotEqual(first.ID, second.ID)
	req.True(first.SentAt.Before(second.SentAt))
	req.Equal("", empty.Content)
	req.Equal([]domain.Message{first, second, empty}, m.Messages())
}

func TestMessenger_Queries(t *testing.T) {
	req := require.New(t)
	m := newTestMessenger()
	m1 := m.MakeMessage("alice", "bob", "one")
	m2 := m.MakeMessage("carol", "bob", "two")
	m3 := m.MakeMessage("bob", "alice", "three")

	req.Equal([]domain.Message{m1, m2}, m.MessagesByRecipient("bob"))
	req.Equal([]domain.Message{m3}, m.MessagesBySender("bob"))
	req.Empty(m.MessagesByRecipient("carol"))
	req.Empty(m.MessagesBySender("dave"))
}

func TestMessenger_DeleteMessage(t *testing.T) {
	req := require.New(t)
	m := newTestMessenger()
	m1 := m.MakeMessage("alice", "bob", "one")
	m2 := m.MakeMessage("alice", "bob", "two")

	req.NoError(m.DeleteMessage(m1.ID))
	req.ErrorIs(m.DeleteMessage(m1.ID), errors.ErrMessageNotFound)
	req.ErrorIs(m.DeleteMessage(uuid.New()), errors.ErrMessageNotFound)

	req.Equal([]domain.Message{m2}, m.Messages())
}

func TestMessenger_Messages_ReturnsCopy(t *testing.T) {
	req := require.New(t)
	m := newTestMessenger()
	m.MakeMessage("alice", "bob", "one")

	messages := m.Messages()
	messages[0].Content = "tampered"

	req.Equal("one", m.Messages()[0].Content)
}

func TestMessenger_SnapshotRestore(t *testing.T) {
	req := require.New(t)
	m := newTestMessenger()
	m.MakeMessage("alice", "bob", "one")
	m.MakeMessage("bob", "alice", "two")

	restored := RestoreMessenger(m.Snapshot(), slog.Default())

	req.Equal(m.Messages(), restored.Messages())
}
