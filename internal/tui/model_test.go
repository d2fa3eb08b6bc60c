package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"validation-guide/internal/presentation"
)

func press(t *testing.T, m *Model, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	require.Same(t, m, next)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCursorMovesWithinBounds(t *testing.T) {
	m := New(nil)
	assert.Equal(t, "p1", m.Focused())

	press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "p1", m.Focused())

	press(t, m, runes("j"))
	assert.Equal(t, "p2", m.Focused())
	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "p3", m.Focused())
	press(t, m, runes("k"))
	assert.Equal(t, "p2", m.Focused())

	for i := 0; i < 50; i++ {
		press(t, m, runes("j"))
	}
	assert.Equal(t, "load", m.Focused())
}

func TestEnterTogglesFocusedItem(t *testing.T) {
	toggles := presentation.NewCatalogToggles()
	m := New(toggles)

	assert.True(t, toggles.Expanded("p1"))
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, toggles.Expanded("p1"))
	assert.NotContains(t, m.render(), "Define core problem.")

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, toggles.Expanded("p1"))
	assert.Contains(t, m.render(), "Define core problem.")
}

func TestMethodDetailsFollowToggle(t *testing.T) {
	toggles := presentation.NewCatalogToggles()
	m := New(toggles)
	for m.Focused() != "landing-page" {
		press(t, m, runes("j"))
	}

	assert.NotContains(t, m.render(), "Validates value proposition.")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, toggles.Expanded("landing-page"))
	assert.Contains(t, m.render(), "Validates value proposition.")
}

func TestQuit(t *testing.T) {
	m := New(nil)
	cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewportFollowsCursor(t *testing.T) {
	m := New(nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})

	for m.Focused() != "load" {
		press(t, m, runes("j"))
	}
	line := m.offsets[m.cursor]
	assert.GreaterOrEqual(t, line, m.viewport.YOffset)
	assert.Less(t, line, m.viewport.YOffset+m.viewport.Height)
	assert.Contains(t, m.View(), "q quit")
}
