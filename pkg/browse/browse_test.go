package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_SizesViewportOnFirstWindowMessage(t *testing.T) {
	content := strings.Repeat("row\n", 100)
	var m tea.Model = newModel("DA RESULTS", content)
	assert.Equal(t, "loading...", m.View())

	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	bm, ok := m.(model)
	require.True(t, ok)
	assert.True(t, bm.ready)
	assert.Equal(t, 10, bm.viewport.Height)
	assert.Contains(t, bm.View(), "DA RESULTS")
	assert.Contains(t, bm.View(), "q quit")
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := newModel("t", "c").Update(key)
		require.NotNil(t, cmd, "key %q", key.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_ScrollsDown(t *testing.T) {
	var m tea.Model = newModel("t", strings.Repeat("line\n", 50))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 7})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.(model).viewport.YOffset)
}
