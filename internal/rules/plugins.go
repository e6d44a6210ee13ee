package rules

import (
	"fmt"
	"regexp"
	"slices"
)

// DefaultPluginPattern is the owner/repo shape TPM resolves on GitHub.
const DefaultPluginPattern = `^[A-Za-z0-9._-]+/[A-Za-z0-9._-]+$`

// checkPlugins validates @plugin declarations: the identifier must look
// like owner/repo (pattern overridable via config), and when the user
// config pins an expected plugin set, anything outside it is flagged.
func checkPlugins(in *Input) []Diagnostic {
	pattern := in.Opts.PluginPattern
	if pattern == "" {
		pattern = DefaultPluginPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = regexp.MustCompile(DefaultPluginPattern)
	}

	var diags []Diagnostic
	for _, name := range in.State.PluginNames() {
		line := in.State.Plugins[name]
		if !re.MatchString(name) {
			diags = append(diags, Diagnostic{
				Severity:   SeverityWarning,
				Line:       line,
				Message:    fmt.Sprintf("plugin '%s' does not look like 'owner/repo'", name),
				Text:       lineText(in.Statements, line),
				Suggestion: "declare plugins as 'owner/repo' so TPM can resolve them",
				RuleID:     RulePluginConsistency,
			})
			continue
		}
		if len(in.Opts.ExpectedPlugins) > 0 && !slices.Contains(in.Opts.ExpectedPlugins, name) {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Line:     line,
				Message:  fmt.Sprintf("plugin '%s' is not in the expected plugin list", name),
				Text:     lineText(in.Statements, line),
				RuleID:   RulePluginConsistency,
			})
		}
	}
	return diags
}
