package cli

import (
	"conference-sim/domain"
	"conference-sim/errors"
	"conference-sim/internal"
	"conference-sim/services"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type command struct {
	args      []string
	help      string
	public    bool
	loggedOut bool
	roles     []domain.Role // empty: any logged-in user
	rest      bool          // last argument takes the rest of the line
	run       func(args []string) error
}

// bind checks the arity and folds trailing words into the last argument.
func (cmd command) bind(name string, args []string) ([]string, error) {
	switch {
	case len(args) < len(cmd.args):
		return nil, fmt.Errorf("usage: %s", cmd.usage(name))
	case len(args) == len(cmd.args):
		return args, nil
	case !cmd.rest:
		return nil, fmt.Errorf("usage: %s", cmd.usage(name))
	}
	last := len(cmd.args) - 1
	bound := slices.Clone(args[:last])
	return append(bound, strings.Join(args[last:], " ")), nil
}

func (cmd command) usage(name string) string {
	return strings.TrimSpace(name + " " + strings.Join(lo.Map(cmd.args, func(a string, _ int) string { return "<" + a + ">" }), " "))
}

func (c *CLI) commands() map[string]command {
	organizer := []domain.Role{domain.RoleOrganizer}
	speaker := []domain.Role{domain.RoleSpeaker}

	return map[string]command{
		"help": {public: true, help: "List the commands available right now", run: c.help},

		"register": {loggedOut: true, args: []string{"id", "password"}, help: "Create an account", run: c.register},
		"login":    {loggedOut: true, args: []string{"id", "password", "role"}, help: "Log in as Attendee, Organizer or Speaker", run: c.login},

		"logout":   {help: "Log out and save", run: c.logout},
		"password": {args: []string{"old", "new"}, help: "Change your password", run: c.changePassword},
		"rooms":    {help: "List rooms", run: c.rooms},
		"events":   {help: "List every scheduled event", run: c.events},
		"events-at": {args: []string{"room"}, help: "List events in a room", run: func(args []string) error {
			events, err := c.svc.EventsByLocation(args[0])
			if err != nil {
				return err
			}
			c.render.Events(events, c.timeLayout)
			return nil
		}},
		"events-by": {args: []string{"speaker"}, help: "List events given by a speaker", run: func(args []string) error {
			events := c.svc.EventsBySpeaker(args[0])
			if len(events) == 0 {
				return fmt.Errorf("speaker %q gives no talk", args[0])
			}
			c.render.Events(events, c.timeLayout)
			return nil
		}},
		"attend": {args: []string{"event"}, help: "Sign up for an event", run: func(args []string) error {
			if err := c.svc.AttendEvent(c.session, args[0]); err != nil {
				return err
			}
			c.render.Success("Signed up for " + args[0])
			return nil
		}},
		"cancel": {args: []string{"event"}, help: "Cancel your attendance", run: func(args []string) error {
			if err := c.svc.CancelAttendance(c.session, args[0]); err != nil {
				return err
			}
			c.render.Success("Attendance cancelled for " + args[0])
			return nil
		}},
		"my-events": {help: "List the events you attend", run: func([]string) error {
			events, err := c.svc.AttendingEvents(c.session)
			if err != nil {
				return err
			}
			c.render.Events(events, c.timeLayout)
			return nil
		}},
		"fellows": {help: "List users attending your events", run: func([]string) error {
			fellows, err := c.svc.FellowAttendees(c.session)
			if err != nil {
				return err
			}
			c.render.List("Fellow attendees", fellows)
			return nil
		}},
		"friends": {help: "List your friends", run: func([]string) error {
			friends, err := c.svc.Friends(c.session)
			if err != nil {
				return err
			}
			c.render.List("Friends", friends)
			return nil
		}},
		"message": {rest: true, args: []string{"user", "content"}, help: "Send a private message", run: func(args []string) error {
			if _, err := c.svc.MessageUser(c.session, args[0], args[1]); err != nil {
				return err
			}
			c.render.Success("Message sent to " + args[0])
			return nil
		}},
		"inbox": {help: "Read the messages you received", run: func([]string) error {
			inbox, err := c.svc.Inbox(c.session)
			if err != nil {
				return err
			}
			c.render.Messages(inbox, c.timeLayout)
			return nil
		}},
		"conversation": {args: []string{"user"}, help: "Show your exchange with a user", run: func(args []string) error {
			conversation, err := c.svc.Conversation(c.session, args[0])
			if err != nil {
				return err
			}
			c.render.Messages(conversation, c.timeLayout)
			return nil
		}},

		"add-room":    {roles: organizer, args: []string{"name"}, help: "Register a room", run: c.addRoom},
		"remove-room": {roles: organizer, args: []string{"name"}, help: "Remove a room", run: c.removeRoom},
		"add-event":   {roles: organizer, rest: true, args: []string{"id", "room", "speaker", "time"}, help: "Schedule an event, time as \"" + c.timeLayout + "\"", run: c.addEvent},
		"delete-event": {roles: organizer, args: []string{"id"}, help: "Delete an event", run: func(args []string) error {
			if err := c.svc.DeleteEvent(c.session, args[0]); err != nil {
				return err
			}
			c.render.Success("Event " + args[0] + " deleted")
			return nil
		}},
		"capacity": {roles: organizer, args: []string{"event", "capacity"}, help: "Change an event capacity", run: c.setCapacity},
		"create-speaker": {roles: organizer, args: []string{"id"}, help: "Create a speaker account with the default password", run: func(args []string) error {
			if err := c.svc.CreateSpeakerAccount(c.session, args[0]); err != nil {
				return err
			}
			c.render.Success("Speaker " + args[0] + " created")
			return nil
		}},
		"message-speakers": {roles: organizer, rest: true, args: []string{"content"}, help: "Message every speaker", run: func(args []string) error {
			sent, err := c.svc.MessageAllSpeakers(c.session, args[0])
			if err != nil {
				return err
			}
			c.render.Success(fmt.Sprintf("Message sent successfully to %d speakers", sent))
			return nil
		}},
		"users": {roles: organizer, help: "List every registered user", run: func([]string) error {
			ids, err := c.svc.UserIDs(c.session)
			if err != nil {
				return err
			}
			c.render.List("Users", ids)
			return nil
		}},

		"my-talks": {roles: speaker, help: "List the events you speak at", run: func([]string) error {
			events, err := c.svc.SpeakerEvents(c.session)
			if err != nil {
				return err
			}
			c.render.Events(events, c.timeLayout)
			return nil
		}},
		"message-event": {roles: speaker, rest: true, args: []string{"event", "content"}, help: "Message the attendees of one of your events", run: func(args []string) error {
			sent, err := c.svc.MessageEventAttendees(c.session, args[0], args[1])
			if err != nil {
				return err
			}
			c.render.Success(fmt.Sprintf("Message sent successfully to %d recipients", sent))
			return nil
		}},
		"message-attendees": {roles: speaker, rest: true, args: []string{"content"}, help: "Message the attendees of all your events", run: func(args []string) error {
			sent, err := c.svc.MessageAllSpeakerEventAttendees(c.session, args[0])
			if err != nil {
				return err
			}
			c.render.Success(fmt.Sprintf("Message sent successfully to %d recipients", sent))
			return nil
		}},
	}
}

func (c *CLI) help([]string) error {
	commands := c.commands()
	names := lo.Keys(commands)
	slices.Sort(names)

	var rows [][]string
	for _, name := range names {
		cmd := commands[name]
		if c.allowed(cmd) {
			rows = append(rows, []string{cmd.usage(name), cmd.help})
		}
	}
	rows = append(rows, []string{"quit", "Save and exit"})
	c.render.Table([]string{"Command", "Description"}, rows)
	return nil
}

func (c *CLI) register(args []string) error {
	if err := c.svc.Register(args[0], args[1]); err != nil {
		return err
	}
	c.render.Success("Registration complete, you can now log in")
	return nil
}

func (c *CLI) login(args []string) error {
	role, ok := domain.ParseRole(args[2])
	if !ok {
		return errors.ErrInvalidRole
	}
	session, err := c.svc.Login(args[0], args[1], role)
	if err != nil {
		return err
	}
	c.session, c.role = session, role
	c.render.Success(fmt.Sprintf("Logged in as %s (%s)", session.UserID, role))
	return nil
}

func (c *CLI) logout([]string) error {
	if err := c.svc.Logout(c.session); err != nil {
		return err
	}
	c.session, c.role = domain.Session{}, domain.RoleUnset
	if err := c.save(); err != nil {
		return err
	}
	c.render.Success("Logged out")
	return nil
}

func (c *CLI) changePassword(args []string) error {
	if err := c.svc.ChangePassword(c.session, args[0], args[1]); err != nil {
		return err
	}
	c.render.Success("Password changed")
	return nil
}

func (c *CLI) rooms([]string) error {
	c.render.List("Rooms", c.svc.Rooms())
	return nil
}

func (c *CLI) events([]string) error {
	c.render.Events(c.svc.Events(), c.timeLayout)
	return nil
}

func (c *CLI) addRoom(args []string) error {
	if err := c.svc.AddRoom(c.session, args[0]); err != nil {
		return err
	}
	c.render.Success("Room " + args[0] + " added successfully")
	return nil
}

func (c *CLI) removeRoom(args []string) error {
	if err := c.svc.RemoveRoom(c.session, args[0]); err != nil {
		return err
	}
	c.render.Success("Room " + args[0] + " removed successfully")
	return nil
}

func (c *CLI) addEvent(args []string) error {
	at, err := internal.ParseEventTime(c.timeLayout, args[3])
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	coincides, err := c.svc.CreateEvent(c.session, services.CreateEventArgs{
		ID:        args[0],
		Location:  args[1],
		SpeakerID: args[2],
		Time:      at,
	})
	if err != nil {
		return err
	}
	if coincides {
		c.render.Warning("Another event starts less than an hour away from this one")
	}
	c.render.Success("Event " + args[0] + " scheduled")
	return nil
}

func (c *CLI) setCapacity(args []string) error {
	capacity, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.ErrInvalidCapacity
	}
	if err = c.svc.SetEventCapacity(c.session, args[0], capacity); err != nil {
		return err
	}
	c.render.Success(fmt.Sprintf("Capacity of %s set to %d", args[0], capacity))
	return nil
}
