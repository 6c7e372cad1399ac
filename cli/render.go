package cli

import (
	"conference-sim/domain"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// Renderer writes command results to the terminal.
type Renderer struct {
	out     io.Writer
	colours bool
}

func NewRenderer(out io.Writer, colours bool) *Renderer {
	return &Renderer{out: out, colours: colours}
}

func (r *Renderer) Info(msg string) {
	fmt.Fprintln(r.out, msg)
}

func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.out, r.paint(color.New(color.FgGreen), msg))
}

func (r *Renderer) Warning(msg string) {
	fmt.Fprintln(r.out, r.paint(color.New(color.FgYellow), "[Warning] "+msg))
}

func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.out, r.paint(color.New(color.FgRed, color.OpBold), "[Error] "+err.Error()))
}

func (r *Renderer) List(title string, items []string) {
	if len(items) == 0 {
		r.Info(title + ": none")
		return
	}
	r.Info(title + ": " + strings.Join(items, ", "))
}

func (r *Renderer) Events(events []domain.Event, layout string) {
	if len(events) == 0 {
		r.Info("There are no scheduled events")
		return
	}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.ID,
			e.Location,
			e.Time.Format(layout),
			e.SpeakerID,
			e.OrganizerID,
			fmt.Sprintf("%d/%d", len(e.Attendees), e.Capacity),
		})
	}
	r.Table([]string{"ID", "Room", "Time", "Speaker", "Organizer", "Seats"}, rows)
}

func (r *Renderer) Messages(messages []domain.Message, layout string) {
	if len(messages) == 0 {
		r.Info("No messages")
		return
	}
	rows := make([][]string, 0, len(messages))
	for i, m := range messages {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			m.SentAt.Format(layout),
			m.SenderID,
			m.ReceiverID,
			m.Content,
		})
	}
	r.Table([]string{"#", "Sent", "From", "To", "Content"}, rows)
}

func (r *Renderer) Table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
}

func (r *Renderer) paint(style color.Style, msg string) string {
	if !r.colours {
		return msg
	}
	return style.Render(msg)
}
