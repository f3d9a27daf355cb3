package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katistix/statusicon/pkg/status"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func loadedModel(t *testing.T) model {
	t.Helper()
	m := initialModel("board.json", nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, configLoadedMsg{config: BoardConfig{
		Title: "VMs",
		Resources: []ResourceConfig{
			{Name: "vm-1", Kind: "VirtualMachine", Status: "Running", TestID: "vm-1-status"},
			{Name: "vm-2", Kind: "VirtualMachine", Status: "Migrating", Spin: true},
			{Name: "web-0", Kind: "Pod", Status: "ImagePullBackOff"},
		},
	}})
	return m
}

func itemAt(m model, idx int) item {
	return m.list.Items()[idx].(item)
}

func TestConfigLoaded(t *testing.T) {
	m := loadedModel(t)

	assert.Equal(t, boardWatching, m.state)
	assert.Equal(t, "VMs", m.list.Title)
	require.Len(t, m.list.Items(), 3)
	assert.Equal(t, "VirtualMachine • Running", itemAt(m, 0).Description())
	assert.Equal(t, "Pod • Error", itemAt(m, 2).Description())
	assert.Contains(t, m.View(), "vm-1-status")
}

func TestConfigLoadError(t *testing.T) {
	m := initialModel("board.json", nil)
	m, _ = update(t, m, configLoadedMsg{err: errors.New("boom")})

	assert.Equal(t, boardError, m.state)
	assert.Contains(t, m.View(), "Could not load board.json")
}

func TestReloadKeepsItemsOnError(t *testing.T) {
	m := loadedModel(t)
	m, _ = update(t, m, configLoadedMsg{err: errors.New("bad yaml")})

	assert.Equal(t, boardError, m.state)
	assert.Len(t, m.list.Items(), 3)
}

func TestToggleSpin(t *testing.T) {
	m := loadedModel(t)
	require.False(t, itemAt(m, 0).spin)

	m, _ = update(t, m, key("s"))
	assert.True(t, itemAt(m, 0).spin)
	assert.True(t, itemAt(m, 0).element().Spinning())

	m, _ = update(t, m, key("s"))
	assert.False(t, itemAt(m, 0).element().Spinning())
}

func TestFrameAdvancesSpinningItems(t *testing.T) {
	m := loadedModel(t)

	m, cmd := update(t, m, frameMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, 0, itemAt(m, 0).frame)
	assert.Equal(t, 1, itemAt(m, 1).frame)
}

func TestGalleryToggle(t *testing.T) {
	m := loadedModel(t)

	m, _ = update(t, m, key("g"))
	assert.Equal(t, modeGallery, m.mode)
	assert.Len(t, m.list.Items(), len(status.All()))
	assert.Equal(t, "gallery-Stopped", itemAt(m, 0).config.TestID)

	m, _ = update(t, m, key("g"))
	assert.Equal(t, modeBoard, m.mode)
	assert.Len(t, m.list.Items(), 3)
}

func TestItemRendererMemoizes(t *testing.T) {
	m := loadedModel(t)
	it := itemAt(m, 0)

	_ = it.Title()
	_ = it.Description()
	_ = it.Title()
	assert.Equal(t, 1, it.renderer.Renders())
}

func TestQuit(t *testing.T) {
	m := loadedModel(t)

	m, cmd := update(t, m, key("q"))
	require.True(t, m.quitting)
	require.NotNil(t, cmd)

	msg := cmd()
	assert.IsType(t, cleanupCompleteMsg{}, msg)

	_, cmd = update(t, m, msg)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCopyMessages(t *testing.T) {
	m := loadedModel(t)

	m, _ = update(t, m, copiedToClipboardMsg{})
	assert.True(t, m.showCopied)
	assert.Contains(t, m.View(), "Copied!")

	m, _ = update(t, m, clearCopiedMsg{})
	assert.False(t, m.showCopied)

	m, _ = update(t, m, copiedToClipboardMsg{err: errors.New("no clipboard")})
	assert.False(t, m.showCopied)
	assert.Contains(t, m.View(), "no clipboard")
}
