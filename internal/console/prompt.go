package console

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Prompter handles the interactive fallbacks kept outside the core logic.
// Core code receives explicit parameters; these adapters only fill them in
// when the user did not pass flags or arguments.
type Prompter struct {
	in      *bufio.Scanner
	printer *Printer
}

// NewPrompter constructs a prompter reading from in and writing via printer.
func NewPrompter(in io.Reader, printer *Printer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), printer: printer}
}

// MaxTickets asks how many tickets to fetch. Empty or invalid input means
// all available (0).
func (p *Prompter) MaxTickets() int {
	p.printer.Header("\nHow many tickets to fetch?")
	p.printer.Println("  - Enter a number (e.g. 500)")
	p.printer.Println("  - Press Enter for ALL available tickets")

	line := p.readLine("Max tickets (or Enter for ALL): ")
	if line == "" {
		p.printer.Info("Will fetch ALL available tickets")
		return 0
	}
	max, err := strconv.Atoi(line)
	if err != nil || max < 0 {
		p.printer.Warn("Invalid input, will fetch ALL available tickets")
		return 0
	}
	p.printer.Info("Will fetch up to %d tickets", max)
	return max
}

// ConfirmSave asks whether to save the analysis to a file.
func (p *Prompter) ConfirmSave() bool {
	answer := strings.ToLower(p.readLine("\nSave analysis to file? (y/n): "))
	return answer == "y" || answer == "yes"
}

// MenuChoice shows the analysis menu and returns the selected option.
func (p *Prompter) MenuChoice() string {
	p.printer.Header("\nAnalysis Options:")
	p.printer.Println("1. Quick Summary")
	p.printer.Println("2. Detailed Analysis")
	p.printer.Println("3. Trend Analysis")
	p.printer.Println("4. Show Ticket Table")
	p.printer.Println("5. Exit")

	return p.readLine("\nChoose an option (1-5): ")
}

func (p *Prompter) readLine(prompt string) string {
	p.printer.Warn("%s", prompt)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}
