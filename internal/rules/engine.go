package rules

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/asheshgoplani/tmux-doctor/internal/tmuxconf"
)

// Rule categories fix the tie-break order for diagnostics on the same
// line: syntax findings always come before semantic ones.
const (
	catSyntax = iota
	catDuplicateBinding
	catConflictingOption
	catDanglingReference
	catDeprecated
	catPlugin
	catCompat
)

// Input is the read-only view every rule receives: the full statement
// sequence plus the final effective state. Rules share no mutable state,
// which is what allows them to run concurrently.
type Input struct {
	Statements []tmuxconf.Statement
	State      *tmuxconf.EffectiveState
	Opts       Options
}

// Options carries user-config extensions to the built-in tables.
type Options struct {
	ExtraDeprecated map[string]string
	ExtraColors     []string
	PluginPattern   string
	ExpectedPlugins []string
}

// Rule is one independent check over the input.
type Rule struct {
	ID       string
	category int
	Check    func(in *Input) []Diagnostic
}

// DefaultRules returns the full validation pipeline in category order.
func DefaultRules() []Rule {
	return []Rule{
		{ID: RuleSyntax, category: catSyntax, Check: checkSyntax},
		{ID: RuleSyntax, category: catSyntax, Check: checkColors},
		{ID: RuleDuplicateBinding, category: catDuplicateBinding, Check: checkDuplicateBindings},
		{ID: RuleConflictingOption, category: catConflictingOption, Check: checkConflictingOptions},
		{ID: RuleDanglingReference, category: catDanglingReference, Check: checkDanglingReferences},
		{ID: RuleDeprecatedCommand, category: catDeprecated, Check: checkDeprecated},
		{ID: RulePluginConsistency, category: catPlugin, Check: checkPlugins},
	}
}

// ConflictRules returns only the conflict detectors (check-conflicts mode).
func ConflictRules() []Rule {
	return []Rule{
		{ID: RuleDuplicateBinding, category: catDuplicateBinding, Check: checkDuplicateBindings},
		{ID: RuleConflictingOption, category: catConflictingOption, Check: checkConflictingOptions},
	}
}

// PluginRules returns only the plugin consistency check (plugins mode).
func PluginRules() []Rule {
	return []Rule{
		{ID: RulePluginConsistency, category: catPlugin, Check: checkPlugins},
	}
}

// CompatRules returns the version compatibility check for a target tmux
// version (compat mode).
func CompatRules(version string) []Rule {
	return []Rule{
		{ID: RuleCompat, category: catCompat, Check: checkCompat(version)},
	}
}

// Run evaluates the rules concurrently and merges their findings into a
// deterministic order: line number ascending, syntax before semantic
// categories on ties, rule-internal order last. The result is identical
// regardless of evaluation order.
func Run(ctx context.Context, in *Input, ruleset []Rule) []Diagnostic {
	results := make([][]Diagnostic, len(ruleset))

	g, _ := errgroup.WithContext(ctx)
	for i, r := range ruleset {
		i, r := i, r
		g.Go(func() error {
			results[i] = r.Check(in)
			return nil
		})
	}
	_ = g.Wait() // checks never fail; they report through diagnostics

	type ordered struct {
		d        Diagnostic
		category int
		seq      int
	}
	var merged []ordered
	for i, ds := range results {
		for j, d := range ds {
			merged = append(merged, ordered{d: d, category: ruleset[i].category, seq: j})
		}
	}

	sort.SliceStable(merged, func(a, b int) bool {
		if merged[a].d.Line != merged[b].d.Line {
			return merged[a].d.Line < merged[b].d.Line
		}
		if merged[a].category != merged[b].category {
			return merged[a].category < merged[b].category
		}
		return merged[a].seq < merged[b].seq
	})

	out := make([]Diagnostic, len(merged))
	for i, m := range merged {
		out[i] = m.d
	}
	return out
}
