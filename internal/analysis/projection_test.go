package analysis

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemxpma/ollama-ticket-summary/internal/domain"
)

func projectedLine(t *testing.T, block, label string) string {
	t.Helper()
	for _, line := range strings.Split(block, "\n") {
		if strings.HasPrefix(line, label+": ") {
			return strings.TrimPrefix(line, label+": ")
		}
	}
	t.Fatalf("no %q line in block:\n%s", label, block)
	return ""
}

func TestProjectTicket_DescriptionTruncation(t *testing.T) {
	ticket := domain.Ticket{
		Key:    "L2-1",
		Fields: domain.Fields{Description: strings.Repeat("x", 500)},
	}

	desc := projectedLine(t, ProjectTicket(ticket), "Description")
	assert.Len(t, desc, 303)
	assert.True(t, strings.HasSuffix(desc, "..."))
}

func TestProjectTicket_MultiByteDescriptionTruncation(t *testing.T) {
	ticket := domain.Ticket{
		Key:    "L2-7",
		Fields: domain.Fields{Description: "a" + strings.Repeat("й", 399)},
	}

	desc := projectedLine(t, ProjectTicket(ticket), "Description")
	require.True(t, utf8.ValidString(desc))

	runes := []rune(desc)
	assert.Len(t, runes, 303)
	assert.Equal(t, "...", string(runes[300:]))
	assert.Equal(t, 'й', runes[299])
}

func TestProjectTicket_MultiByteCommentTruncation(t *testing.T) {
	ticket := domain.Ticket{
		Fields: domain.Fields{Comment: &domain.CommentBlock{Comments: []domain.Comment{{
			Author: domain.User{DisplayName: "Lee"},
			Body:   strings.Repeat("ü", 200),
		}}}},
	}

	block := ProjectTicket(ticket)
	require.True(t, utf8.ValidString(block))
	assert.Contains(t, block, "  Lee: "+strings.Repeat("ü", 150)+"...")
}

func TestProjectTicket_ShortDescriptionUntouched(t *testing.T) {
	ticket := domain.Ticket{Fields: domain.Fields{Description: "stack trace attached"}}
	assert.Equal(t, "stack trace attached", projectedLine(t, ProjectTicket(ticket), "Description"))
}

func TestProjectTicket_Placeholders(t *testing.T) {
	block := ProjectTicket(domain.Ticket{Key: "L2-9"})

	assert.Equal(t, "Unassigned", projectedLine(t, block, "Assignee"))
	assert.Equal(t, "Unknown", projectedLine(t, block, "Reporter"))
	assert.Equal(t, "Unknown", projectedLine(t, block, "Status"))
	assert.Equal(t, "No description", projectedLine(t, block, "Description"))
	assert.Contains(t, block, "No comments")
	assert.Contains(t, block, "No recent changes")
}

func TestProjectTicket_LastThreeCommentsInOrder(t *testing.T) {
	comments := make([]domain.Comment, 5)
	for i := range comments {
		comments[i] = domain.Comment{
			Author: domain.User{DisplayName: "Lee"},
			Body:   fmt.Sprintf("comment %d", i+1),
		}
	}
	ticket := domain.Ticket{
		Fields: domain.Fields{Comment: &domain.CommentBlock{Comments: comments}},
	}

	block := ProjectTicket(ticket)
	assert.NotContains(t, block, "comment 1")
	assert.NotContains(t, block, "comment 2")

	i3 := strings.Index(block, "comment 3")
	i4 := strings.Index(block, "comment 4")
	i5 := strings.Index(block, "comment 5")
	require.True(t, i3 >= 0 && i4 >= 0 && i5 >= 0)
	assert.Less(t, i3, i4)
	assert.Less(t, i4, i5)
}

func TestProjectTicket_CommentBodyTruncation(t *testing.T) {
	ticket := domain.Ticket{
		Fields: domain.Fields{Comment: &domain.CommentBlock{Comments: []domain.Comment{{
			Author: domain.User{DisplayName: "Lee"},
			Body:   strings.Repeat("y", 200),
		}}}},
	}

	block := ProjectTicket(ticket)
	assert.Contains(t, block, "  Lee: "+strings.Repeat("y", 150)+"...")
	assert.NotContains(t, block, strings.Repeat("y", 151))
}

func TestProjectTicket_LastTwoHistories(t *testing.T) {
	histories := make([]domain.History, 4)
	for i := range histories {
		histories[i] = domain.History{
			Author: domain.User{DisplayName: "Dana"},
			Items: []domain.ChangeItem{{
				Field:      "status",
				FromString: fmt.Sprintf("state %d", i),
				ToString:   fmt.Sprintf("state %d", i+1),
			}},
		}
	}
	ticket := domain.Ticket{Changelog: &domain.Changelog{Histories: histories}}

	block := ProjectTicket(ticket)
	assert.NotContains(t, block, "from 'state 0'")
	assert.NotContains(t, block, "from 'state 1'")
	assert.Contains(t, block, "  Dana: status changed from 'state 2' to 'state 3'")
	assert.Contains(t, block, "  Dana: status changed from 'state 3' to 'state 4'")
}

func TestProjectTicket_DateTruncation(t *testing.T) {
	ticket := domain.Ticket{Fields: domain.Fields{
		Created: "2024-06-24T16:30:00.000+0000",
		Updated: "2024-06-25T09:12:00.000+0000",
	}}
	block := ProjectTicket(ticket)

	assert.Equal(t, "2024-06-24", projectedLine(t, block, "Created"))
	assert.Equal(t, "2024-06-25", projectedLine(t, block, "Updated"))
}

func TestProjectTicket_SeparatorTerminatesBlock(t *testing.T) {
	block := ProjectTicket(domain.Ticket{Key: "L2-1"})
	assert.True(t, strings.HasSuffix(block, BlockSeparator+"\n"))
}

func TestProjectTickets_BlockPerTicket(t *testing.T) {
	out := ProjectTickets([]domain.Ticket{{Key: "L2-1"}, {Key: "L2-2"}})

	assert.Equal(t, 2, strings.Count(out, BlockSeparator+"\n"))
	i1 := strings.Index(out, "Ticket: L2-1")
	i2 := strings.Index(out, "Ticket: L2-2")
	require.True(t, i1 >= 0 && i2 >= 0)
	assert.Less(t, i1, i2)
}
