package analysis

import (
	"fmt"
	"strings"

	"github.com/artemxpma/ollama-ticket-summary/internal/domain"
)

// Projection bounds. Each is a hard truncation, not a summarization.
const (
	maxDescriptionLen = 300
	maxCommentLen     = 150
	recentComments    = 3
	recentHistories   = 2
	ellipsis          = "..."
)

// BlockSeparator terminates every projected block so concatenating N blocks
// yields an unambiguous boundary between tickets.
const BlockSeparator = "---"

// ProjectTicket renders one ticket as a fixed-shape text block bounded in
// size regardless of how large the original record is. It is total: every
// optional field has a fallback, nothing is left blank.
func ProjectTicket(t domain.Ticket) string {
	f := t.Fields

	description := f.Description
	if description == "" {
		description = domain.PlaceholderNoDescription
	} else {
		description = truncate(description, maxDescriptionLen)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ticket: %s\n", t.Key)
	fmt.Fprintf(&b, "Title: %s\n", f.Summary)
	fmt.Fprintf(&b, "Type: %s\n", f.IssueTypeName())
	fmt.Fprintf(&b, "Status: %s\n", f.StatusName())
	fmt.Fprintf(&b, "Priority: %s\n", f.PriorityName())
	fmt.Fprintf(&b, "Assignee: %s\n", f.AssigneeName())
	fmt.Fprintf(&b, "Reporter: %s\n", f.ReporterName())
	fmt.Fprintf(&b, "Created: %s\n", f.CreatedDate())
	fmt.Fprintf(&b, "Updated: %s\n", f.UpdatedDate())
	fmt.Fprintf(&b, "Description: %s\n", description)
	fmt.Fprintf(&b, "Recent Comments:\n%s\n", projectComments(f.Comments()))
	fmt.Fprintf(&b, "Recent History:\n%s\n", projectHistory(t.Histories()))
	b.WriteString(BlockSeparator + "\n")
	return b.String()
}

// ProjectTickets concatenates the per-ticket blocks in snapshot order.
func ProjectTickets(tickets []domain.Ticket) string {
	blocks := make([]string, 0, len(tickets))
	for _, t := range tickets {
		blocks = append(blocks, ProjectTicket(t))
	}
	return strings.Join(blocks, "\n")
}

// projectComments keeps the last few comments in storage order, which is
// assumed chronological.
func projectComments(comments []domain.Comment) string {
	if len(comments) > recentComments {
		comments = comments[len(comments)-recentComments:]
	}
	if len(comments) == 0 {
		return "No comments"
	}
	lines := make([]string, 0, len(comments))
	for _, c := range comments {
		author := c.Author.DisplayName
		if author == "" {
			author = domain.PlaceholderUnknown
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", author, truncate(c.Body, maxCommentLen)))
	}
	return strings.Join(lines, "\n")
}

// projectHistory emits one line per field change of the last few changelog
// entries.
func projectHistory(histories []domain.History) string {
	if len(histories) > recentHistories {
		histories = histories[len(histories)-recentHistories:]
	}
	var lines []string
	for _, h := range histories {
		author := h.Author.DisplayName
		if author == "" {
			author = domain.PlaceholderUnknown
		}
		for _, item := range h.Items {
			lines = append(lines, fmt.Sprintf("  %s: %s changed from '%s' to '%s'",
				author, item.Field, item.FromString, item.ToString))
		}
	}
	if len(lines) == 0 {
		return "No recent changes"
	}
	return strings.Join(lines, "\n")
}

// truncate bounds s to max characters, not bytes, so multi-byte text keeps
// its full budget and no rune is split mid-sequence.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + ellipsis
	}
	return s
}
