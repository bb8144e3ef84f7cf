package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/artemxpma/ollama-ticket-summary/internal/domain"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer writes styled status lines to one output stream.
type Printer struct {
	out io.Writer
}

// NewPrinter constructs a printer for the given stream.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// OK reports a successful step.
func (p *Printer) OK(format string, args ...any) {
	fmt.Fprintln(p.out, okStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Warn reports a non-fatal condition.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.out, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Fail reports a failed step.
func (p *Printer) Fail(format string, args ...any) {
	fmt.Fprintln(p.out, failStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Info reports neutral progress or context.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.out, infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Println writes an unstyled line.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Header writes a section heading.
func (p *Printer) Header(text string) {
	fmt.Fprintln(p.out, headerStyle.Render(text))
}

// TicketTable prints the ticket overview grid.
func (p *Printer) TicketTable(tickets []domain.Ticket) {
	if len(tickets) == 0 {
		p.Warn("No tickets to display")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Key", "Summary", "Status", "Priority", "Assignee", "Updated")

	for _, ticket := range tickets {
		f := ticket.Fields
		t.Row(ticket.Key, clip(f.Summary, 50), f.StatusName(), f.PriorityName(), f.AssigneeName(), f.UpdatedDate())
	}

	p.Header("\nTicket Overview:")
	fmt.Fprintln(p.out, t.String())
}

// clip bounds s to max characters without splitting a rune.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return s
}
