package rules

import (
	"fmt"

	"github.com/asheshgoplani/tmux-doctor/internal/tmuxconf"
)

// checkDuplicateBindings flags a (table, key) pair bound more than once.
// Later bindings win on reload, so this is valid usage, but it is usually
// unintentional; the warning lands on the later line and names the
// earlier one it supersedes. Keys are compared in normalized form, so
// C-a and c-a collide.
func checkDuplicateBindings(in *Input) []Diagnostic {
	firstSeen := make(map[tmuxconf.BindingKey]int)

	var diags []Diagnostic
	for _, st := range in.Statements {
		if st.Kind != tmuxconf.KindKeyBinding {
			continue
		}
		key := tmuxconf.BindingKey{Table: st.Binding.Table, Key: st.Binding.Key}
		if prev, ok := firstSeen[key]; ok {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Line:     st.Line.Number,
				Message: fmt.Sprintf("duplicate key binding '%s' in table '%s' supersedes line %d",
					st.Binding.Key, st.Binding.Table, prev),
				Text:   st.Line.Text,
				RuleID: RuleDuplicateBinding,
			})
			firstSeen[key] = st.Line.Number
			continue
		}
		firstSeen[key] = st.Line.Number
	}
	return diags
}
