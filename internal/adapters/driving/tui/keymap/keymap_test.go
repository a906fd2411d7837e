package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	tests := []struct {
		name    string
		keyStr  string
		binding key.Binding
	}{
		{"esc quits", "esc", km.Quit},
		{"ctrl+c quits", "ctrl+c", km.Quit},
		{"enter searches", "enter", km.Search},
		{"tab cycles scope", "tab", km.NextScope},
		{"ctrl+a shows all", "ctrl+a", km.ShowAll},
		{"up moves up", "up", km.Up},
		{"down moves down", "down", km.Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Matches(tt.keyStr, tt.binding))
		})
	}
}

func TestMatches_LetterKeysAreFree(t *testing.T) {
	km := DefaultKeyMap()

	for _, b := range []string{"q", "j", "k", "a"} {
		assert.False(t, Matches(b, km.Quit), b)
		assert.False(t, Matches(b, km.Up), b)
		assert.False(t, Matches(b, km.Down), b)
		assert.False(t, Matches(b, km.ShowAll), b)
	}
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	require.Len(t, help, 4)
	assert.Equal(t, "enter", help[0].Help().Key)
	assert.Equal(t, "esc", help[3].Help().Key)
}
