package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSortBySentAt_StableForEqualTimes(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	first := NewMessage("alice", "bob", "first", now)
	second := NewMessage("bob", "alice", "second", now)
	earlier := NewMessage("alice", "bob", "earlier", now.Add(-time.Minute))
	messages := []Message{first, second, earlier}

	SortBySentAt(messages)

	req.Equal([]Message{earlier, first, second}, messages)
	req.NotEqual(first.ID, second.ID)
}
