package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConflictingOptionsWindowSize(t *testing.T) {
	text := "set -g window-size manual\nset -g aggressive-resize on\n"
	diags := checkConflictingOptions(makeInput(text, "", Options{}))

	require.Len(t, diags, 1)
	assert.Equal(t, SeverityError, diags[0].Severity)
	assert.Equal(t, 2, diags[0].Line)
	assert.Contains(t, diags[0].Message, "aggressive-resize")
}

func TestCheckConflictingOptionsStatusInterval(t *testing.T) {
	text := "set -g status off\nset -g status-interval 0\n"
	diags := checkConflictingOptions(makeInput(text, "", Options{}))

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "status-interval")
}

func TestCheckConflictingOptionsLastWriteWins(t *testing.T) {
	// The conflicting value is overwritten later, so the effective state
	// holds no conflict.
	text := "set -g window-size manual\nset -g aggressive-resize on\nset -g aggressive-resize off\n"
	diags := checkConflictingOptions(makeInput(text, "", Options{}))
	assert.Empty(t, diags)
}

func TestCheckConflictingOptionsScopeSeparation(t *testing.T) {
	// One half of the pair at window scope, the other at session scope:
	// not a conflict under tmux's option model.
	text := "setw -g window-size manual\nset -g aggressive-resize on\n"
	diags := checkConflictingOptions(makeInput(text, "", Options{}))
	assert.Empty(t, diags)
}

func TestCheckConflictingPrefixes(t *testing.T) {
	text := "set -g prefix C-a\nset -g prefix2 c-a\n"
	diags := checkConflictingOptions(makeInput(text, "", Options{}))

	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Line)
	assert.Contains(t, diags[0].Message, "prefix2")
}

func TestCheckPrefixesDistinct(t *testing.T) {
	text := "set -g prefix C-a\nset -g prefix2 C-b\n"
	assert.Empty(t, checkConflictingOptions(makeInput(text, "", Options{})))
}
