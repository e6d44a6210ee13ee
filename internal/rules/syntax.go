package rules

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/asheshgoplani/tmux-doctor/internal/tmuxconf"
)

// typoTable maps common misspellings to the intended command.
var typoTable = map[string]string{
	"set-window-opton": "set-window-option",
	"set-opton":        "set-option",
	"bind-keys":        "bind-key",
	"unbind-keys":      "unbind-key",
	"set-envionment":   "set-environment",
}

// harmlessCommands are valid tmux commands the classifier does not model.
// They pass through as Unknown statements without a diagnostic.
var harmlessCommands = map[string]bool{
	"unbind": true, "unbind-key": true,
	"run": true, "run-shell": true,
	"if": true, "if-shell": true,
	"display": true, "display-message": true,
	"new-session": true, "new-window": true,
	"set-environment": true, "setenv": true,
	"set-hook": true,
}

// booleanOptions expect an on/off value. An empty value toggles and is
// left alone.
var booleanOptions = map[string]bool{
	"mouse": true, "status": true, "aggressive-resize": true,
	"monitor-activity": true, "set-titles": true, "renumber-windows": true,
	"allow-rename": true, "automatic-rename": true, "focus-events": true,
	"synchronize-panes": true, "alternate-screen": true, "mode-mouse": true,
}

func checkSyntax(in *Input) []Diagnostic {
	var diags []Diagnostic

	for _, st := range in.Statements {
		switch {
		case st.ParseErr:
			diags = append(diags, Diagnostic{
				Severity:   SeverityError,
				Line:       st.Line.Number,
				Message:    st.Err,
				Text:       st.Line.Text,
				Suggestion: "ensure all quotes are properly closed",
				RuleID:     RuleSyntax,
			})

		case st.Err != "":
			// Recognized command with the wrong argument shape.
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Line:     st.Line.Number,
				Message:  st.Err,
				Text:     st.Line.Text,
				RuleID:   RuleSyntax,
			})

		case st.Kind == tmuxconf.KindUnknown:
			if harmlessCommands[st.Command] {
				continue
			}
			if correct, ok := typoTable[st.Command]; ok {
				diags = append(diags, Diagnostic{
					Severity:   SeverityError,
					Line:       st.Line.Number,
					Message:    fmt.Sprintf("possible typo: '%s'", st.Command),
					Text:       st.Line.Text,
					Suggestion: fmt.Sprintf("did you mean '%s'?", correct),
					RuleID:     RuleSyntax,
				})
				continue
			}
			d := Diagnostic{
				Severity: SeverityError,
				Line:     st.Line.Number,
				Message:  fmt.Sprintf("unknown command '%s'", st.Command),
				Text:     st.Line.Text,
				RuleID:   RuleSyntax,
			}
			if guess := nearestCommand(st.Command); guess != "" {
				d.Suggestion = fmt.Sprintf("did you mean '%s'?", guess)
			}
			diags = append(diags, d)

		case st.Kind == tmuxconf.KindOptionSet:
			opt := st.Option
			if booleanOptions[opt.Name] && opt.Value != "" &&
				opt.Value != "on" && opt.Value != "off" {
				diags = append(diags, Diagnostic{
					Severity:   SeverityError,
					Line:       st.Line.Number,
					Message:    fmt.Sprintf("option '%s' expects 'on' or 'off', got '%s'", opt.Name, opt.Value),
					Text:       st.Line.Text,
					Suggestion: "use 'on' or 'off'",
					RuleID:     RuleSyntax,
				})
			}
		}
	}
	return diags
}

// nearestCommand fuzzy-matches an unknown command against the recognized
// set and returns the best candidate when it is plausibly a misspelling.
func nearestCommand(cmd string) string {
	known := tmuxconf.KnownCommands()
	matches := fuzzy.Find(cmd, known)
	if len(matches) == 0 {
		// fuzzy.Find needs the pattern's runes to appear in order; a typo
		// like "bnid-key" defeats it, so retry with the prefix only.
		if len(cmd) > 3 {
			matches = fuzzy.Find(cmd[:3], known)
		}
		if len(matches) == 0 {
			return ""
		}
	}
	best := known[matches[0].Index]
	diff := len(best) - len(cmd)
	if diff < 0 {
		diff = -diff
	}
	if diff > 4 || !strings.ContainsRune(best, rune(cmd[0])) {
		return ""
	}
	return best
}
