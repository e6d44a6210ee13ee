// Package report renders diagnostics for humans and for tooling.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/asheshgoplani/tmux-doctor/internal/rules"
)

// Report is the full outcome of one validation run.
type Report struct {
	Path        string             `json:"path"`
	Diagnostics []rules.Diagnostic `json:"diagnostics"`
	Errors      int                `json:"errors"`
	Warnings    int                `json:"warnings"`
}

// New builds a report from an ordered diagnostic list.
func New(path string, diags []rules.Diagnostic) Report {
	errors, warnings := rules.Count(diags)
	return Report{
		Path:        path,
		Diagnostics: diags,
		Errors:      errors,
		Warnings:    warnings,
	}
}

// JSON renders the machine-readable form.
func (r Report) JSON() (string, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(out), nil
}

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68")).Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#787fa0"))
)

// maxOffendingWidth caps the echoed source line by display width.
const maxOffendingWidth = 100

// Render produces the human-readable report. When color is false, styles
// are skipped entirely (JSON pipelines, non-TTY output).
func (r Report) Render(color bool) string {
	var b strings.Builder

	if len(r.Diagnostics) == 0 {
		b.WriteString(styled(okStyle, color, fmt.Sprintf("✓ no issues found in %s", r.Path)))
		b.WriteString("\n")
		return b.String()
	}

	for _, d := range r.Diagnostics {
		tag := fmt.Sprintf("[%s]", d.Severity)
		if d.Severity == rules.SeverityError {
			tag = styled(errorStyle, color, tag)
		} else {
			tag = styled(warningStyle, color, tag)
		}

		if d.Line > 0 {
			fmt.Fprintf(&b, "%s Line %d: %s\n", tag, d.Line, d.Message)
		} else {
			fmt.Fprintf(&b, "%s %s\n", tag, d.Message)
		}
		if d.Text != "" {
			text := runewidth.Truncate(strings.TrimRight(d.Text, " \t"), maxOffendingWidth, "…")
			fmt.Fprintf(&b, "  %s\n", styled(dimStyle, color, "> "+text))
		}
		if d.Suggestion != "" {
			fmt.Fprintf(&b, "  %s\n", styled(dimStyle, color, "hint: "+d.Suggestion))
		}
	}

	fmt.Fprintf(&b, "\n%s: %d error(s), %d warning(s)\n", r.Path, r.Errors, r.Warnings)
	return b.String()
}

func styled(s lipgloss.Style, color bool, text string) string {
	if !color {
		return text
	}
	return s.Render(text)
}
