package rules

import (
	"fmt"

	"github.com/asheshgoplani/tmux-doctor/internal/tmuxconf"
)

// conflictPair describes two option values that cannot sensibly coexist
// within the same resolution scope.
type conflictPair struct {
	nameA, valueA string
	nameB, valueB string
	reason        string
}

var conflictPairs = []conflictPair{
	{
		nameA: "window-size", valueA: "manual",
		nameB: "aggressive-resize", valueB: "on",
		reason: "'aggressive-resize on' has no effect while 'window-size' is 'manual'",
	},
	{
		nameA: "status", valueA: "off",
		nameB: "status-interval", valueB: "0",
		reason: "'status-interval 0' disables redraw of a status line that is already off",
	},
}

var allScopes = []tmuxconf.Scope{
	tmuxconf.ScopeServer, tmuxconf.ScopeSession, tmuxconf.ScopeWindow, tmuxconf.ScopePane,
}

// checkConflictingOptions detects semantically incompatible resolved
// option values. Conflicts are evaluated per scope, matching tmux's
// option-scoping model; the diagnostic lands on the later of the two
// lines involved.
func checkConflictingOptions(in *Input) []Diagnostic {
	var diags []Diagnostic

	for _, pair := range conflictPairs {
		for _, scope := range allScopes {
			a, okA := in.State.Options[tmuxconf.OptionKey{Scope: scope, Name: pair.nameA}]
			b, okB := in.State.Options[tmuxconf.OptionKey{Scope: scope, Name: pair.nameB}]
			if !okA || !okB || a.Value != pair.valueA || b.Value != pair.valueB {
				continue
			}
			line := a.SetAtLine
			if b.SetAtLine > line {
				line = b.SetAtLine
			}
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Line:     line,
				Message:  pair.reason,
				Text:     lineText(in.Statements, line),
				RuleID:   RuleConflictingOption,
			})
		}
	}

	// prefix and prefix2 bound to the same key defeats the point of a
	// second prefix.
	p1, ok1 := in.State.Options[tmuxconf.OptionKey{Scope: tmuxconf.ScopeSession, Name: "prefix"}]
	p2, ok2 := in.State.Options[tmuxconf.OptionKey{Scope: tmuxconf.ScopeSession, Name: "prefix2"}]
	if ok1 && ok2 && p1.Value != "" &&
		tmuxconf.NormalizeChord(p1.Value) == tmuxconf.NormalizeChord(p2.Value) {
		line := p1.SetAtLine
		if p2.SetAtLine > line {
			line = p2.SetAtLine
		}
		diags = append(diags, Diagnostic{
			Severity: SeverityError,
			Line:     line,
			Message:  fmt.Sprintf("'prefix' and 'prefix2' are both set to '%s'", p1.Value),
			Text:     lineText(in.Statements, line),
			RuleID:   RuleConflictingOption,
		})
	}
	return diags
}

func lineText(stmts []tmuxconf.Statement, line int) string {
	for _, st := range stmts {
		if st.Line.Number == line {
			return st.Line.Text
		}
	}
	return ""
}
