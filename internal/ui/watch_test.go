package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asheshgoplani/tmux-doctor/internal/report"
	"github.com/asheshgoplani/tmux-doctor/internal/rules"
)

func sizedModel(t *testing.T, rep report.Report) WatchModel {
	t.Helper()
	m := NewWatchModel("/tmp/tmux.conf", rep, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	wm, ok := updated.(WatchModel)
	require.True(t, ok)
	return wm
}

func TestWatchModelQuitKeys(t *testing.T) {
	keys := map[string]tea.KeyMsg{
		"q":      {Type: tea.KeyRunes, Runes: []rune("q")},
		"ctrl+c": {Type: tea.KeyCtrlC},
		"esc":    {Type: tea.KeyEsc},
	}

	for name, msg := range keys {
		t.Run(name, func(t *testing.T) {
			m := sizedModel(t, report.New("/tmp/tmux.conf", nil))
			_, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestWatchModelRevalidateKey(t *testing.T) {
	called := false
	m := NewWatchModel("/tmp/tmux.conf", report.New("/tmp/tmux.conf", nil), func() tea.Msg {
		called = true
		return RevalidatedMsg{Report: report.New("/tmp/tmux.conf", nil)}
	})

	_, cmd := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune("r")}))
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, called)
}

func TestWatchModelRevalidatedMsg(t *testing.T) {
	m := sizedModel(t, report.New("/tmp/tmux.conf", nil))

	fresh := report.New("/tmp/tmux.conf", []rules.Diagnostic{
		{Severity: rules.SeverityError, Line: 1, Message: "bad"},
	})
	updated, _ := m.Update(RevalidatedMsg{Report: fresh})
	wm := updated.(WatchModel)

	assert.Equal(t, 1, wm.rep.Errors)
	assert.Contains(t, wm.headerView(), "1 error(s)")
}

func TestWatchModelRevalidateErrorKeepsLastReport(t *testing.T) {
	initial := report.New("/tmp/tmux.conf", []rules.Diagnostic{
		{Severity: rules.SeverityWarning, Line: 2, Message: "meh"},
	})
	m := sizedModel(t, initial)

	updated, _ := m.Update(RevalidatedMsg{Err: errors.New("read failed")})
	wm := updated.(WatchModel)

	assert.Equal(t, 1, wm.rep.Warnings)
	assert.Contains(t, wm.bodyContent(), "read failed")
}

func TestWatchModelViewBeforeSize(t *testing.T) {
	m := NewWatchModel("/tmp/tmux.conf", report.New("/tmp/tmux.conf", nil), nil)
	assert.Equal(t, "loading...", m.View())
}
