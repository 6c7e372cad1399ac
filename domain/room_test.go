package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRooms_AddRemove(t *testing.T) {
	req := require.New(t)
	rooms := NewRooms()

	req.True(rooms.Add("Hall A"))
	req.False(rooms.Add("Hall A"))
	req.True(rooms.Add("Hall B"))
	req.Equal([]string{"Hall A", "Hall B"}, rooms.Names())

	req.True(rooms.Remove("Hall A"))
	req.False(rooms.Remove("Hall A"))
	req.False(rooms.Contains("Hall A"))
	req.Equal(1, rooms.Len())
}

func TestNewRooms_DropsDuplicates(t *testing.T) {
	rooms := NewRooms("A", "B", "A")
	require.Equal(t, []string{"A", "B"}, rooms.Names())
}
