package projection

import (
	"conference-sim/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConversation_Consume_KeepsBothDirections(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	conversation := NewConversation("bob", "alice")

	fromAlice := domain.NewMessage("alice", "bob", "Hello Bob", now)
	toAlice := domain.NewMessage("bob", "alice", "Hi Alice", now.Add(time.Second))
	fromClara := domain.NewMessage("clara", "bob", "Hey", now)
	aliceToClara := domain.NewMessage("alice", "clara", "Psst", now)

	conversation.ConsumeAll([]domain.Message{fromAlice, toAlice, fromClara, aliceToClara})

	req.Len(conversation.Messages, 2)
	req.Equal("alice", conversation.Messages[0].SenderID)
	req.Equal("bob", conversation.Messages[1].SenderID)
}

func TestConversation_Replay_OrdersBySentAt(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	conversation := NewConversation("bob", "alice")

	// Given the outbound message was collected first but sent later
	late := domain.NewMessage("bob", "alice", "late", now.Add(time.Minute))
	early := domain.NewMessage("alice", "bob", "early", now)
	conversation.Consume(late)
	conversation.Consume(early)

	// Then the replay is chronological
	replay := conversation.Replay()
	req.Equal([]domain.Message{early, late}, replay)

	// And the collected order is untouched
	req.Equal(late, conversation.Messages[0])
}

func TestConversation_Empty(t *testing.T) {
	conversation := NewConversation("bob", "alice")
	conversation.Consume(domain.NewMessage("clara", "dave", "unrelated", time.Now()))
	require.True(t, conversation.IsEmpty())
}
