package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds {
		parsed, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseKind("forecast")
	assert.Error(t, err)
}

func TestDetailedInstructionWording(t *testing.T) {
	instruction := KindDetailed.Instruction()

	assert.Contains(t, instruction, "reviewing 600 Level 2 tech support Jira tickets")
	assert.Contains(t, instruction, "1. 🔁 **Recurring Issues & Technical Trends**")
	assert.Contains(t, instruction, "6. 🚨 **Actionable Recommendations**")
}

func TestInstructionsAreDistinctAndTerminated(t *testing.T) {
	seen := map[string]bool{}
	for _, kind := range Kinds {
		instruction := kind.Instruction()
		assert.False(t, seen[instruction], "duplicate instruction for %s", kind)
		seen[instruction] = true
		// The projection is appended directly after the instruction text.
		assert.True(t, strings.HasSuffix(instruction, "Ticket Data:\n"), "kind %s", kind)
	}
}
