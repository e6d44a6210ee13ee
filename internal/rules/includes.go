package rules

import "fmt"

// checkDanglingReferences flags source-file directives whose target does
// not exist. The resolver already downgraded these to unresolved without
// halting the fold, so this is a warning, not an error.
func checkDanglingReferences(in *Input) []Diagnostic {
	var diags []Diagnostic
	for _, inc := range in.State.Includes {
		if inc.Resolved {
			continue
		}
		diags = append(diags, Diagnostic{
			Severity:   SeverityWarning,
			Line:       inc.Line,
			Message:    fmt.Sprintf("source file not found: %s", inc.Path),
			Text:       lineText(in.Statements, inc.Line),
			Suggestion: "verify the file exists and the path is correct",
			RuleID:     RuleDanglingReference,
		})
	}
	return diags
}
