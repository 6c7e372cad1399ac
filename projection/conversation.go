// Package projection builds read-side views from the message log.
// Handles filtering and ordering only.
// Does not mutate the log or interact with UI directly.
package projection

import (
	"conference-sim/domain"
	"slices"
)

// Conversation holds the messages exchanged between Owner and Peer.
type Conversation struct {
	Owner    string
	Peer     string
	Messages []domain.Message
}

func NewConversation(owner, peer string) *Conversation {
	return &Conversation{
		Owner:    owner,
		Peer:     peer,
		Messages: nil,
	}
}

// Consume keeps the message if it went from Peer to Owner or from Owner to Peer.
func (c *Conversation) Consume(m domain.Message) bool {
	inbound := m.SenderID == c.Peer && m.ReceiverID == c.Owner
	outbound := m.SenderID == c.Owner && m.ReceiverID == c.Peer
	if !inbound && !outbound {
		return false
	}
	c.Messages = append(c.Messages, m)
	return true
}

func (c *Conversation) ConsumeAll(messages []domain.Message) {
	for _, m := range messages {
		c.Consume(m)
	}
}

// Replay returns the conversation ordered by send time.
func (c *Conversation) Replay() []domain.Message {
	replay := slices.Clone(c.Messages)
	domain.SortBySentAt(replay)
	return replay
}

func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}
