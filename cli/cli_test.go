package cli

import (
	"bytes"
	"conference-sim/domain"
	"conference-sim/errors"
	"conference-sim/services"
	"io"
	"log/slog"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	lines   []string
	prompts []string
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	if line == "^C" {
		return "", readline.ErrInterrupt
	}
	return line, nil
}

func (r *scriptedReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

type countingStore struct {
	saves int
	users domain.UserSnapshot
}

func (s *countingStore) SaveAll(_ domain.EventSnapshot, users domain.UserSnapshot, _ domain.MessageSnapshot) error {
	s.saves++
	s.users = users
	return nil
}

func newTestCLI(lines ...string) (*CLI, *scriptedReader, *countingStore, *bytes.Buffer) {
	log := slog.Default()
	svc := services.NewConferenceService(
		services.NewEventManager(log),
		services.NewUserManager(log),
		services.NewMessenger(log),
		"1234",
		log,
	)
	reader := &scriptedReader{lines: lines}
	store := &countingStore{}
	out := &bytes.Buffer{}
	return NewCLI(svc, store, reader, NewRenderer(out, false), domain.TimeLayout, log), reader, store, out
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "Plain words", input: "attend E1", want: []string{"attend", "E1"}},
		{name: "Quoted argument", input: `message bob "see you at 10"`, want: []string{"message", "bob", "see you at 10"}},
		{name: "Extra spaces", input: "  rooms   ", want: []string{"rooms"}},
		{name: "Empty", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseArgs(tt.input))
		})
	}
}

func TestCLI_Execute_Gating(t *testing.T) {
	req := require.New(t)
	c, _, _, _ := newTestCLI()

	_, err := c.Execute("events")
	req.ErrorIs(err, errors.ErrPermissionDenied)
	_, err = c.Execute("dance")
	req.ErrorContains(err, "unknown command")
	_, err = c.Execute("register alice")
	req.ErrorContains(err, "usage: register <id> <password>")

	_, err = c.Execute("register alice pw")
	req.NoError(err)
	_, err = c.Execute("login alice pw attendee")
	req.NoError(err)
	req.Equal("alice (Attendee)> ", c.Prompt())

	_, err = c.Execute("add-room Hall")
	req.ErrorIs(err, errors.ErrPermissionDenied)
	_, err = c.Execute("login alice pw attendee")
	req.ErrorIs(err, errors.ErrPermissionDenied)
}

func TestCLI_Execute_InvalidRole(t *testing.T) {
	req := require.New(t)
	c, _, _, _ := newTestCLI()
	_, err := c.Execute("register alice pw")
	req.NoError(err)

	_, err = c.Execute("login alice pw admin")

	req.ErrorIs(err, errors.ErrInvalidRole)
	req.True(c.session.IsZero())
}

func TestCLI_Execute_OrganizerFlow(t *testing.T) {
	req := require.New(t)
	c, _, store, out := newTestCLI()

	for _, line := range []string{
		"register org pw",
		"login org pw Organizer",
		`add-room "Hall A"`,
		"create-speaker spk",
		`add-event E1 "Hall A" spk "2024-01-01 10:00"`,
		`add-event E2 "Hall A" spk "2024-01-01 10:30"`,
		"capacity E1 3",
		"events",
	} {
		_, err := c.Execute(line)
		req.NoError(err, line)
	}

	req.Contains(out.String(), "Room Hall A added successfully")
	req.Contains(out.String(), "[Warning]")
	req.Contains(out.String(), "0/3")

	_, err := c.Execute(`add-event E3 "Hall A" spk tomorrow`)
	req.ErrorIs(err, errors.ErrInvalidRequest)
	_, err = c.Execute("capacity E1 many")
	req.ErrorIs(err, errors.ErrInvalidCapacity)

	_, err = c.Execute("logout")
	req.NoError(err)
	req.Equal(1, store.saves)
	req.Equal("conference> ", c.Prompt())
}

func TestCLI_Run_SavesOnQuit(t *testing.T) {
	req := require.New(t)
	c, reader, store, out := newTestCLI(
		"register alice pw",
		"^C",
		"login alice pw Attendee",
		"bogus",
		"quit",
		"never read",
	)

	req.NoError(c.Run())

	req.Equal(1, store.saves)
	req.Len(store.users.Users, 1)
	req.Equal([]string{"never read"}, reader.lines)
	req.Contains(out.String(), "Use 'quit' to exit the program.")
	req.Contains(out.String(), `[Error] unknown command "bogus"`)
	req.Contains(out.String(), "Goodbye.")
	req.Contains(reader.prompts, "alice (Attendee)> ")
}

func TestCLI_Run_SavesOnEOF(t *testing.T) {
	req := require.New(t)
	c, _, store, _ := newTestCLI("register alice pw")

	req.NoError(c.Run())

	req.Equal(1, store.saves)
}

func TestCLI_Help_DependsOnRole(t *testing.T) {
	req := require.New(t)
	c, _, _, out := newTestCLI()

	_, err := c.Execute("help")
	req.NoError(err)
	req.Contains(out.String(), "login <id> <password> <role>")
	req.NotContains(out.String(), "add-room")

	out.Reset()
	_, err = c.Execute("register spk pw")
	req.NoError(err)
	_, err = c.Execute("login spk pw Speaker")
	req.NoError(err)
	_, err = c.Execute("help")
	req.NoError(err)
	req.Contains(out.String(), "message-event <event> <content>")
	req.NotContains(out.String(), "add-room")
	req.NotContains(out.String(), "login <id>")
}

func TestCLI_Execute_TrailingWords(t *testing.T) {
	req := require.New(t)
	c, _, _, _ := newTestCLI()
	for _, line := range []string{"register b pw", "register a pw", "login a pw Attendee"} {
		_, err := c.Execute(line)
		req.NoError(err, line)
	}

	// When the content is typed without quotes
	_, err := c.Execute("message b hello there friend")
	req.NoError(err)

	// Then every word reaches the recipient
	_, err = c.Execute("logout")
	req.NoError(err)
	_, err = c.Execute("login b pw Attendee")
	req.NoError(err)
	inbox, err := c.svc.Inbox(c.session)
	req.NoError(err)
	req.Len(inbox, 1)
	req.Equal("hello there friend", inbox[0].Content)

	// And commands without free text refuse extra words
	_, err = c.Execute("attend E1 E2")
	req.ErrorContains(err, "usage: attend <event>")
}

func TestCLI_Execute_AddEventWithUnquotedTime(t *testing.T) {
	req := require.New(t)
	c, _, _, out := newTestCLI()

	for _, line := range []string{
		"register org pw",
		"login org pw Organizer",
		"add-room HallA",
		"create-speaker spk",
		"add-event E1 HallA spk 2024-01-01 10:00",
	} {
		_, err := c.Execute(line)
		req.NoError(err, line)
	}

	events := c.svc.Events()
	req.Len(events, 1)
	req.Equal(10, events[0].Time.Hour())

	_, err := c.Execute("help")
	req.NoError(err)
	req.Contains(out.String(), `time as "`+domain.TimeLayout+`"`)
}

func TestCLI_Help_ShowsConfiguredTimeLayout(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	svc := services.NewConferenceService(
		services.NewEventManager(log),
		services.NewUserManager(log),
		services.NewMessenger(log),
		"1234",
		log,
	)
	out := &bytes.Buffer{}
	c := NewCLI(svc, &countingStore{}, &scriptedReader{}, NewRenderer(out, false), "02/01/2006 15h04", log)
	for _, line := range []string{"register org pw", "login org pw Organizer", "help"} {
		_, err := c.Execute(line)
		req.NoError(err, line)
	}

	req.Contains(out.String(), `time as "02/01/2006 15h04"`)
}
