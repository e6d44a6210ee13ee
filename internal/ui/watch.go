// Package ui hosts the live watch-mode view: the report re-renders every
// time the configuration file changes on disk.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asheshgoplani/tmux-doctor/internal/report"
)

// RevalidatedMsg carries a fresh report into the model. The watch command
// sends it from the filesystem watcher goroutine.
type RevalidatedMsg struct {
	Report report.Report
	Err    error
}

// WatchModel is the bubbletea model for watch mode.
type WatchModel struct {
	path       string
	rep        report.Report
	err        error
	lastUpdate time.Time

	// Revalidate re-runs the pipeline on demand (the 'r' key).
	Revalidate func() tea.Msg

	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// NewWatchModel creates the model with an initial report.
func NewWatchModel(path string, initial report.Report, revalidate func() tea.Msg) WatchModel {
	return WatchModel{
		path:       path,
		rep:        initial,
		lastUpdate: time.Now(),
		Revalidate: revalidate,
	}
}

func (m WatchModel) Init() tea.Cmd {
	return nil
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if m.Revalidate != nil {
				return m, func() tea.Msg { return m.Revalidate() }
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		bodyHeight := msg.Height - headerHeight - footerHeight
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		m.viewport.SetContent(m.rep.Render(true))

	case RevalidatedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.rep = msg.Report
		}
		m.lastUpdate = time.Now()
		if m.ready {
			m.viewport.SetContent(m.bodyContent())
		}
	}

	var cmd tea.Cmd
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m WatchModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m WatchModel) bodyContent() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("✕ %v", m.err))
	}
	return m.rep.Render(true)
}

func (m WatchModel) headerView() string {
	status := cleanStyle.Render("✓ clean")
	switch {
	case m.rep.Errors > 0:
		status = errStyle.Render(fmt.Sprintf("✕ %d error(s)", m.rep.Errors))
	case m.rep.Warnings > 0:
		status = warnStyle.Render(fmt.Sprintf("! %d warning(s)", m.rep.Warnings))
	}
	title := titleStyle.Render("tmux-doctor watch") + " " + m.path + "  " + status
	return headerStyle.Width(max(m.width, lipgloss.Width(title))).Render(title)
}

func (m WatchModel) footerView() string {
	return footerStyle.Render(fmt.Sprintf(
		"last check %s  •  r revalidate  •  q quit",
		m.lastUpdate.Format("15:04:05")))
}
