// Package fix rewrites a configuration file according to the safe subset
// of diagnostics, after taking a byte-for-byte backup of the original.
package fix

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/asheshgoplani/tmux-doctor/internal/logging"
	"github.com/asheshgoplani/tmux-doctor/internal/rules"
)

var fixLog = logging.ForComponent(logging.CompFix)

// autoFixable lists the rule ids whose rewrites are deterministic enough
// to apply without user judgment. Duplicate bindings and conflicting
// options are deliberately excluded: resolving those requires intent.
var autoFixable = map[string]bool{
	rules.RuleDeprecatedCommand: true,
	rules.RuleSyntax:            true, // only color-token rewrites carry a replacement
}

// Entry is one planned edit: replace the line, or delete it.
type Entry struct {
	Line        int
	Replacement string
	Delete      bool
}

// Plan is an ordered set of line edits derived from diagnostics.
type Plan struct {
	Entries []Entry
}

// BuildPlan keeps only diagnostics that are on the allow-list and carry a
// concrete replacement. At most one edit per line; the first diagnostic
// for a line wins since later ones were computed against the same
// original text.
func BuildPlan(diags []rules.Diagnostic) Plan {
	seen := make(map[int]bool)
	var plan Plan
	for _, d := range diags {
		if !autoFixable[d.RuleID] || d.Replacement == "" || d.Line <= 0 {
			continue
		}
		if seen[d.Line] {
			continue
		}
		seen[d.Line] = true
		plan.Entries = append(plan.Entries, Entry{Line: d.Line, Replacement: d.Replacement})
	}
	return plan
}

// Apply rewrites src according to the plan. Lines not referenced by the
// plan pass through byte-for-byte, so applying the same plan twice (or a
// plan built from already-fixed text, which is empty) is idempotent.
func (p Plan) Apply(src string) string {
	if len(p.Entries) == 0 {
		return src
	}

	edits := make(map[int]Entry, len(p.Entries))
	for _, e := range p.Entries {
		edits[e.Line] = e
	}

	trailingNewline := strings.HasSuffix(src, "\n")
	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")

	var out []string
	for i, line := range lines {
		e, ok := edits[i+1]
		switch {
		case !ok:
			out = append(out, line)
		case e.Delete:
			// dropped
		default:
			out = append(out, e.Replacement)
		}
	}

	result := strings.Join(out, "\n")
	if trailingNewline {
		result += "\n"
	}
	return result
}

// Result reports what a fix run did.
type Result struct {
	BackupPath string
	Changed    int
}

// Run applies the plan to the file at path. The original content is
// copied to a timestamped sibling first; if that copy fails nothing is
// mutated. The rewrite itself goes through a temp file and rename in the
// same directory, so the target is either fully written or untouched.
func Run(path string, plan Plan) (*Result, error) {
	if len(plan.Entries) == 0 {
		return &Result{}, nil
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	backupPath := fmt.Sprintf("%s.bak-%s", path, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(backupPath, original, 0o644); err != nil {
		return nil, fmt.Errorf("write backup %s: %w", backupPath, err)
	}

	fixed := plan.Apply(string(original))
	if err := atomicWrite(path, []byte(fixed)); err != nil {
		return nil, fmt.Errorf("write fixed config: %w", err)
	}

	fixLog.Info("fix_applied",
		slog.String("path", path),
		slog.String("backup", backupPath),
		slog.Int("edits", len(plan.Entries)))

	return &Result{BackupPath: backupPath, Changed: len(plan.Entries)}, nil
}

func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
