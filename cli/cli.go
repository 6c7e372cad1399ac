// Package cli is the interactive terminal frontend of the conference.
// It parses command lines, calls the conference service and renders results.
// It holds no conference state besides the current session.
package cli

import (
	"conference-sim/domain"
	"conference-sim/errors"
	"conference-sim/services"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader is the part of *readline.Instance the CLI uses.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

var _ LineReader = (*readline.Instance)(nil)

type CLI struct {
	svc        services.IConferenceService
	store      services.ISnapshotStore
	rl         LineReader
	render     *Renderer
	timeLayout string
	log        *slog.Logger

	session domain.Session
	role    domain.Role
}

func NewCLI(
	svc services.IConferenceService,
	store services.ISnapshotStore,
	rl LineReader,
	render *Renderer,
	timeLayout string,
	log *slog.Logger,
) *CLI {
	c := &CLI{svc: svc, store: store, rl: rl, render: render, timeLayout: timeLayout, log: log}
	c.rl.SetPrompt(c.Prompt())
	return c
}

// Prompt shows who is logged in and under which role.
func (c *CLI) Prompt() string {
	if c.session.IsZero() {
		return "conference> "
	}
	return fmt.Sprintf("%s (%s)> ", c.session.UserID, c.role)
}

// Run reads and executes lines until the user quits or input ends.
// Interrupts are reported and ignored.
func (c *CLI) Run() error {
	c.render.Info("Welcome. Type 'help' to list the available commands.")
	for {
		line, err := c.rl.Readline()
		switch {
		case stderrors.Is(err, readline.ErrInterrupt):
			c.render.Info("Use 'quit' to exit the program.")
			continue
		case stderrors.Is(err, io.EOF):
			return c.quit()
		case err != nil:
			return err
		}

		quit, err := c.Execute(line)
		if err != nil {
			c.render.Error(err)
		}
		if quit {
			return nil
		}
		c.rl.SetPrompt(c.Prompt())
	}
}

// Execute runs a single command line and reports whether the user asked to quit.
func (c *CLI) Execute(line string) (bool, error) {
	args := ParseArgs(strings.TrimSpace(line))
	if len(args) == 0 {
		return false, nil
	}
	name := strings.ToLower(args[0])

	if name == "quit" || name == "exit" {
		return true, c.quit()
	}

	cmd, ok := c.commands()[name]
	if !ok {
		return false, fmt.Errorf("unknown command %q, type 'help'", args[0])
	}
	if !c.allowed(cmd) {
		return false, errors.ErrPermissionDenied
	}
	bound, err := cmd.bind(name, args[1:])
	if err != nil {
		return false, err
	}
	return false, cmd.run(bound)
}

// allowed mirrors the service role checks so that help and dispatch agree.
func (c *CLI) allowed(cmd command) bool {
	switch {
	case cmd.public:
		return true
	case cmd.loggedOut:
		return c.session.IsZero()
	case c.session.IsZero():
		return false
	case len(cmd.roles) == 0:
		return true
	}
	for _, r := range cmd.roles {
		if r == c.role {
			return true
		}
	}
	return false
}

func (c *CLI) quit() error {
	if !c.session.IsZero() {
		if err := c.svc.Logout(c.session); err != nil {
			c.log.Debug("Logout on quit failed", "error", err)
		}
		c.session = domain.Session{}
	}
	if err := c.save(); err != nil {
		return err
	}
	c.render.Info("Goodbye.")
	return nil
}

func (c *CLI) save() error {
	if err := c.svc.Save(c.store); err != nil {
		return fmt.Errorf("state could not be saved: %w", err)
	}
	return nil
}

// ParseArgs splits a line on spaces, keeping double-quoted runs together.
func ParseArgs(input string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, char := range input {
		switch char {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes {
				if current.Len() > 0 {
					args = append(args, current.String())
					current.Reset()
				}
			} else {
				current.WriteRune(char)
			}
		default:
			current.WriteRune(char)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}
