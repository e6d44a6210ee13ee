package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPluginsValidIdentifiers(t *testing.T) {
	text := `set -g @plugin "tmux-plugins/tpm"
set -g @plugin "catppuccin/tmux"
`
	assert.Empty(t, checkPlugins(makeInput(text, "", Options{})))
}

func TestCheckPluginsBadIdentifier(t *testing.T) {
	diags := checkPlugins(makeInput(`set -g @plugin "not a repo"`+"\n", "", Options{}))

	require.Len(t, diags, 1)
	assert.Equal(t, SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "owner/repo")
}

func TestCheckPluginsExpectedSet(t *testing.T) {
	text := `set -g @plugin "tmux-plugins/tpm"
set -g @plugin "someone/surprise"
`
	opts := Options{ExpectedPlugins: []string{"tmux-plugins/tpm"}}
	diags := checkPlugins(makeInput(text, "", opts))

	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Line)
	assert.Contains(t, diags[0].Message, "someone/surprise")
}

func TestCheckPluginsCustomPattern(t *testing.T) {
	text := `set -g @plugin "local-plugin"` + "\n"

	require.Len(t, checkPlugins(makeInput(text, "", Options{})), 1)

	opts := Options{PluginPattern: `^[a-z-]+$`}
	assert.Empty(t, checkPlugins(makeInput(text, "", opts)))
}
