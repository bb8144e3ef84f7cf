package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPrompter(input string) *Prompter {
	return NewPrompter(strings.NewReader(input), NewPrinter(&bytes.Buffer{}))
}

func TestMaxTickets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"explicit number", "500\n", 500},
		{"empty means all", "\n", 0},
		{"invalid means all", "lots\n", 0},
		{"negative means all", "-5\n", 0},
		{"closed stdin means all", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newTestPrompter(tt.input).MaxTickets())
		})
	}
}

func TestConfirmSave(t *testing.T) {
	assert.True(t, newTestPrompter("y\n").ConfirmSave())
	assert.True(t, newTestPrompter("YES\n").ConfirmSave())
	assert.False(t, newTestPrompter("n\n").ConfirmSave())
	assert.False(t, newTestPrompter("\n").ConfirmSave())
}

func TestMenuChoice(t *testing.T) {
	assert.Equal(t, "3", newTestPrompter(" 3 \n").MenuChoice())
	assert.Equal(t, "", newTestPrompter("").MenuChoice())
}
