// Package domain contains core concepts of the conference system.
// This file defines User entities and related invariants.
// No runtime, storage, or UI logic should be added here.
package domain

import (
	"conference-sim/errors"
	"slices"
	"strings"
)

type Role string

const (
	RoleUnset     Role = ""
	RoleAttendee  Role = "Attendee"
	RoleOrganizer Role = "Organizer"
	RoleSpeaker   Role = "Speaker"
)

// ParseRole matches a role name case-insensitively.
// The unset role is never returned as a valid match.
func ParseRole(s string) (Role, bool) {
	for _, r := range []Role{RoleAttendee, RoleOrganizer, RoleSpeaker} {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, true
		}
	}
	return RoleUnset, false
}

func (r Role) String() string {
	if r == RoleUnset {
		return "Unset"
	}
	return string(r)
}

// User is a registered conference account.
// Friends is one-directional: adding B to A's list never touches B.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username,omitempty"`
	Password string   `json:"password"`
	Role     Role     `json:"role,omitempty"`
	LoggedIn bool     `json:"logged_in"`
	Friends  []string `json:"friends,omitempty"`
}

func NewUser(id, password string) *User {
	return &User{ID: id, Password: password}
}

// CheckPassword is a plaintext equality check.
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}

func (u *User) HasFriend(userID string) bool {
	return slices.Contains(u.Friends, userID)
}

func (u *User) AddFriend(userID string) error {
	if u.HasFriend(userID) {
		return errors.ErrFriendAlreadyAdded
	}
	u.Friends = append(u.Friends, userID)
	return nil
}

func (u *User) DeleteFriend(userID string) error {
	i := slices.Index(u.Friends, userID)
	if i < 0 {
		return errors.ErrFriendNotFound
	}
	u.Friends = slices.Delete(u.Friends, i, i+1)
	return nil
}

// Clone returns a copy that shares no slices with u.
func (u *User) Clone() User {
	c := *u
	c.Friends = slices.Clone(u.Friends)
	return c
}
