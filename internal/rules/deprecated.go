package rules

import (
	"fmt"
	"strings"

	"github.com/asheshgoplani/tmux-doctor/internal/tmuxconf"
)

// deprecatedEntry describes an option or command that newer tmux versions
// dropped. Replacement is empty when the feature was removed outright.
// RemovedIn is the first version that no longer accepts it, used by the
// compat check.
type deprecatedEntry struct {
	Replacement string
	RemovedIn   string
}

var deprecatedTable = map[string]deprecatedEntry{
	"mode-mouse":          {Replacement: "mouse", RemovedIn: "2.1"},
	"mouse-resize-pane":   {Replacement: "mouse", RemovedIn: "2.1"},
	"mouse-select-pane":   {Replacement: "mouse", RemovedIn: "2.1"},
	"mouse-select-window": {Replacement: "mouse", RemovedIn: "2.1"},
	"mouse-utf8":          {RemovedIn: "2.2"},
	"utf8":                {RemovedIn: "2.2"},
	"status-utf8":         {RemovedIn: "2.2"},
	"message-limit":       {RemovedIn: "2.0"},
}

// checkDeprecated warns on names from the deprecated table, whether they
// appear as option names or as command names. Entries with a known
// replacement carry a deterministic rename, which makes them
// auto-fixable.
func checkDeprecated(in *Input) []Diagnostic {
	var diags []Diagnostic
	for _, st := range in.Statements {
		name, ok := deprecatedName(st, in.Opts.ExtraDeprecated)
		if !ok {
			continue
		}

		replacement := ""
		if e, ok := deprecatedTable[name]; ok {
			replacement = e.Replacement
		} else {
			replacement = in.Opts.ExtraDeprecated[name]
		}

		d := Diagnostic{
			Severity:   SeverityWarning,
			Line:       st.Line.Number,
			Message:    fmt.Sprintf("deprecated option '%s'", name),
			Text:       st.Line.Text,
			Suggestion: "this option has been removed",
			RuleID:     RuleDeprecatedCommand,
		}
		if replacement != "" {
			d.Suggestion = fmt.Sprintf("use '%s' instead", replacement)
			d.Replacement = strings.Replace(st.Line.Text, name, replacement, 1)
		}
		diags = append(diags, d)
	}
	return diags
}

func deprecatedName(st tmuxconf.Statement, extra map[string]string) (string, bool) {
	candidates := []string{st.Command}
	if st.Kind == tmuxconf.KindOptionSet {
		candidates = append(candidates, st.Option.Name)
	}
	for _, name := range candidates {
		if _, ok := deprecatedTable[name]; ok {
			return name, true
		}
		if _, ok := extra[name]; ok {
			return name, true
		}
	}
	return "", false
}
