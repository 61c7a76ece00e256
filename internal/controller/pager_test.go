package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagerModel_WaitsForWindowSize(t *testing.T) {
	model := newPagerModel("a.c", "line\n")

	assert.Nil(t, model.Init())
	assert.False(t, model.ready)
	assert.Contains(t, model.View(), "Loading")
}

func TestPagerModel_WindowSize(t *testing.T) {
	content := strings.Repeat("row\n", 50)
	model := newPagerModel("tests/a.c", content)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	pm, ok := updated.(pagerModel)
	require.True(t, ok)

	assert.True(t, pm.ready)
	assert.Equal(t, 80, pm.viewport.Width)
	assert.Equal(t, 18, pm.viewport.Height)

	view := pm.View()
	assert.Contains(t, view, "tests/a.c")
	assert.Contains(t, view, "50 lines")
	assert.Contains(t, view, "q to quit")

	resized, _ := pm.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	pm = resized.(pagerModel)
	assert.Equal(t, 40, pm.viewport.Width)
	assert.Equal(t, 8, pm.viewport.Height)
}

func TestPagerModel_QuitKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := newPagerModel("a.c", "x\n").Update(tt.msg)
			require.NotNil(t, cmd)

			_, isQuit := cmd().(tea.QuitMsg)
			assert.True(t, isQuit)
		})
	}
}

func TestPagerModel_Scrolls(t *testing.T) {
	content := strings.Repeat("row\n", 100)

	updated, _ := newPagerModel("a.c", content).Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	pm := updated.(pagerModel)
	require.Equal(t, 0, pm.viewport.YOffset)

	scrolled, _ := pm.Update(tea.KeyMsg{Type: tea.KeyDown})
	pm = scrolled.(pagerModel)

	assert.Equal(t, 1, pm.viewport.YOffset)
}
