package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionRegistry_OpenLookupClose(t *testing.T) {
	req := require.New(t)
	r := NewSessionRegistry()

	s1 := r.Open("alice")
	s2 := r.Open("alice")
	req.NotEqual(s1.Token, s2.Token)
	req.Equal(2, r.Len())

	id, ok := r.Lookup(s1)
	req.True(ok)
	req.Equal("alice", id)

	req.True(r.Close(s1))
	req.False(r.Close(s1))
	_, ok = r.Lookup(s1)
	req.False(ok)
	req.Equal(1, r.Len())
}

func TestSessionRegistry_Lookup_MismatchedUser(t *testing.T) {
	req := require.New(t)
	r := NewSessionRegistry()
	s := r.Open("alice")

	s.UserID = "bob"
	_, ok := r.Lookup(s)

	req.False(ok)
}

func TestSessionRegistry_CloseAll(t *testing.T) {
	req := require.New(t)
	r := NewSessionRegistry()
	r.Open("alice")
	r.Open("alice")
	bob := r.Open("bob")

	req.Equal(2, r.CloseAll("alice"))
	req.Equal(0, r.CloseAll("alice"))
	req.Equal(1, r.Len())
	_, ok := r.Lookup(bob)
	req.True(ok)
}
