package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDeprecatedWithReplacement(t *testing.T) {
	diags := checkDeprecated(makeInput("set -g mode-mouse on\n", "", Options{}))

	require.Len(t, diags, 1)
	d := diags[0]
	assert.Equal(t, SeverityWarning, d.Severity)
	assert.Contains(t, d.Message, "mode-mouse")
	assert.Equal(t, "use 'mouse' instead", d.Suggestion)
	assert.Equal(t, "set -g mouse on", d.Replacement)
}

func TestCheckDeprecatedRemovedOutright(t *testing.T) {
	diags := checkDeprecated(makeInput("set -g status-utf8 on\n", "", Options{}))

	require.Len(t, diags, 1)
	assert.Equal(t, "this option has been removed", diags[0].Suggestion)
	assert.Empty(t, diags[0].Replacement)
}

func TestCheckDeprecatedAllMouseOptions(t *testing.T) {
	text := "set -g mouse-resize-pane on\nset -g mouse-select-pane on\nset -g mouse-select-window on\n"
	diags := checkDeprecated(makeInput(text, "", Options{}))

	require.Len(t, diags, 3)
	for _, d := range diags {
		assert.Equal(t, "use 'mouse' instead", d.Suggestion)
	}
}

func TestCheckDeprecatedExtraTable(t *testing.T) {
	opts := Options{ExtraDeprecated: map[string]string{"my-old-option": "my-new-option"}}
	diags := checkDeprecated(makeInput("set -g my-old-option 1\n", "", opts))

	require.Len(t, diags, 1)
	assert.Equal(t, "use 'my-new-option' instead", diags[0].Suggestion)
	assert.Equal(t, "set -g my-new-option 1", diags[0].Replacement)
}

func TestCheckDeprecatedCurrentOptionsPass(t *testing.T) {
	text := "set -g mouse on\nset -g status on\nset -g history-limit 10000\n"
	assert.Empty(t, checkDeprecated(makeInput(text, "", Options{})))
}
