package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalKeyForLookup(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"ctrl+o":         "ctrl+o",
		"Shift+Ctrl+O":   "ctrl+shift+o",
		"cmd+o":          "ctrl+o",
		"option+shift+x": "alt+shift+x",
		"escape":         "esc",
		" ":              "space",
		"F1":             "f1",
	}
	for in, want := range cases {
		require.Equal(t, want, CanonicalKeyForLookup(in), in)
	}
	require.True(t, MatchesKey("control+o", "ctrl+o"))
	require.False(t, MatchesKey("ctrl+p", "ctrl+o"))
}

func TestDOMKey(t *testing.T) {
	cases := map[string]string{
		"esc":       "Escape",
		"enter":     "Enter",
		"up":        "ArrowUp",
		"shift+tab": "Tab",
		"a":         "a",
		"A":         "A",
		"ctrl+o":    "o",
		" ":         " ",
		"f1":        "F1",
	}
	for in, want := range cases {
		require.Equal(t, want, DOMKey(in), in)
	}
}

func TestDisplayKey(t *testing.T) {
	require.Equal(t, "F1", DisplayKey("f1"))
	require.Equal(t, "Esc", DisplayKey("esc"))
	require.Equal(t, "", DisplayKey(""))
	if !IsMac() {
		require.Equal(t, "Ctrl+O", DisplayKey("ctrl+o"))
	}
}
