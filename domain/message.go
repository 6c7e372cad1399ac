// Package domain contains core concepts of the conference system.
// This file defines private Message records exchanged between users.
// Messages are immutable once created.
package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable private message.
type Message struct {
	ID         uuid.UUID `json:"id"` // unique identifier
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
}

func NewMessage(senderID, receiverID, content string, at time.Time) Message {
	return Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		SentAt:     at,
	}
}

// CompareSentAt orders messages by send time, for use with slices.SortStableFunc.
func CompareSentAt(a, b Message) int {
	return a.SentAt.Compare(b.SentAt)
}

// SortBySentAt sorts in place, keeping insertion order for equal timestamps.
func SortBySentAt(messages []Message) {
	slices.SortStableFunc(messages, CompareSentAt)
}

func (m Message) String() string {
	return fmt.Sprintf("[%s] %s -> %s: %s", m.SentAt.Format(TimeLayout), m.SenderID, m.ReceiverID, m.Content)
}
