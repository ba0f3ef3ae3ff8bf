package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	t.Run("bindings match their keys", func(t *testing.T) {
		require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace}, km.Toggle))
		require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, km.Toggle))
		require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, km.Up))
		require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, km.Down))
		require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Select))
		require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, km.Back))
		require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit))
		require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlL}, km.Logout))
	})

	t.Run("select and toggle stay distinct", func(t *testing.T) {
		require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Toggle))
		require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace}, km.Select))
	})
}
