package rules

// Severity of a diagnostic. Only ERROR-severity diagnostics fail a run.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Rule identifiers, stable for tooling and the auto-fix allow-list.
const (
	RuleSyntax            = "syntax"
	RuleDuplicateBinding  = "duplicate-binding"
	RuleConflictingOption = "conflicting-option"
	RuleDanglingReference = "dangling-reference"
	RuleDeprecatedCommand = "deprecated-command"
	RulePluginConsistency = "plugin-consistency"
	RuleCompat            = "compat"
)

// Diagnostic is one finding against the configuration. Diagnostics are
// immutable once produced and globally ordered by (line, rule category).
type Diagnostic struct {
	Severity   Severity `json:"severity"`
	Line       int      `json:"line"`
	Message    string   `json:"message"`
	Text       string   `json:"text,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
	RuleID     string   `json:"rule_id"`

	// Replacement holds the full corrected line text when the finding has
	// a deterministic rewrite. The fixer only acts on diagnostics whose
	// rule is allow-listed and whose Replacement is set.
	Replacement string `json:"-"`
}

// HasErrors reports whether any diagnostic carries ERROR severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of errors and warnings.
func Count(diags []Diagnostic) (errors, warnings int) {
	for _, d := range diags {
		switch d.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
