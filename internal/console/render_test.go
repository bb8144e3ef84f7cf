package console

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClip(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		assert.Equal(t, "login fails", clip("login fails", 50))
	})

	t.Run("long strings are cut at the character budget", func(t *testing.T) {
		got := clip(strings.Repeat("x", 60), 50)
		assert.Equal(t, strings.Repeat("x", 50)+"...", got)
	})

	t.Run("multi-byte text keeps its full budget", func(t *testing.T) {
		got := clip(strings.Repeat("画", 60), 50)
		require.True(t, utf8.ValidString(got))
		assert.Equal(t, strings.Repeat("画", 50)+"...", got)
	})
}
