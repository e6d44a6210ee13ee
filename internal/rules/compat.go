package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asheshgoplani/tmux-doctor/internal/tmuxconf"
)

// checkCompat builds a rule that reports options the target tmux version
// no longer accepts. A removed option makes the config fail to load on
// that version, so these surface as errors.
func checkCompat(version string) func(in *Input) []Diagnostic {
	target, targetOK := parseVersion(version)

	return func(in *Input) []Diagnostic {
		if !targetOK {
			return []Diagnostic{{
				Severity: SeverityError,
				Line:     0,
				Message:  fmt.Sprintf("unrecognized tmux version '%s'", version),
				RuleID:   RuleCompat,
			}}
		}

		var diags []Diagnostic
		for _, st := range in.Statements {
			name := st.Command
			if st.Kind == tmuxconf.KindOptionSet {
				name = st.Option.Name
			}
			entry, ok := deprecatedTable[name]
			if !ok || entry.RemovedIn == "" {
				continue
			}
			removed, _ := parseVersion(entry.RemovedIn)
			if !versionAtLeast(target, removed) {
				continue
			}
			d := Diagnostic{
				Severity: SeverityError,
				Line:     st.Line.Number,
				Message:  fmt.Sprintf("'%s' is not supported by tmux %s (removed in %s)", name, version, entry.RemovedIn),
				Text:     st.Line.Text,
				RuleID:   RuleCompat,
			}
			if entry.Replacement != "" {
				d.Suggestion = fmt.Sprintf("use '%s' instead", entry.Replacement)
			}
			diags = append(diags, d)
		}
		return diags
	}
}

type version struct{ major, minor int }

// parseVersion accepts forms like "3.2", "3.2a", "2.1".
func parseVersion(s string) (version, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ".", 2)
	if len(parts) != 2 {
		return version{}, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return version{}, false
	}
	minorStr := strings.TrimRightFunc(parts[1], func(r rune) bool {
		return r < '0' || r > '9'
	})
	minor, err := strconv.Atoi(minorStr)
	if err != nil {
		return version{}, false
	}
	return version{major, minor}, true
}

func versionAtLeast(v, min version) bool {
	if v.major != min.major {
		return v.major > min.major
	}
	return v.minor >= min.minor
}
