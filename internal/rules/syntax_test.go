package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSyntaxKnownTypos(t *testing.T) {
	tests := []struct {
		line    string
		correct string
	}{
		{"set-window-opton -g mode-keys vi", "set-window-option"},
		{"set-opton -g mouse on", "set-option"},
		{"bind-keys x kill-pane", "bind-key"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			diags := checkSyntax(makeInput(tt.line+"\n", "", Options{}))
			require.Len(t, diags, 1)
			assert.Equal(t, SeverityError, diags[0].Severity)
			assert.Contains(t, diags[0].Message, "possible typo")
			assert.Contains(t, diags[0].Suggestion, tt.correct)
		})
	}
}

func TestCheckSyntaxUnknownCommandFuzzyMatch(t *testing.T) {
	diags := checkSyntax(makeInput("bnd-key x kill-pane\n", "", Options{}))

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "unknown command 'bnd-key'")
	assert.Contains(t, diags[0].Suggestion, "bind-key")
}

func TestCheckSyntaxUnknownCommandNoGuess(t *testing.T) {
	diags := checkSyntax(makeInput("zzzzqq x y\n", "", Options{}))

	require.Len(t, diags, 1)
	assert.Empty(t, diags[0].Suggestion)
}

func TestCheckSyntaxHarmlessCommandsPass(t *testing.T) {
	text := "unbind C-b\nrun-shell ~/script.sh\nif-shell 'true' 'set -g mouse on'\ndisplay-message hello\nset-hook -g session-created 'display ok'\n"
	diags := checkSyntax(makeInput(text, "", Options{}))
	assert.Empty(t, diags)
}

func TestCheckSyntaxBooleanOptionValue(t *testing.T) {
	diags := checkSyntax(makeInput("set -g mouse yes\n", "", Options{}))

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "'mouse' expects 'on' or 'off'")
	assert.Equal(t, "use 'on' or 'off'", diags[0].Suggestion)

	// A bare boolean toggles; no value is fine.
	assert.Empty(t, checkSyntax(makeInput("set -g mouse\n", "", Options{})))
	assert.Empty(t, checkSyntax(makeInput("set -g mouse on\n", "", Options{})))
}

func TestCheckSyntaxUnterminatedQuote(t *testing.T) {
	diags := checkSyntax(makeInput("set -g status-left \"oops\n", "", Options{}))

	require.Len(t, diags, 1)
	assert.Equal(t, SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "unterminated")
	assert.Contains(t, diags[0].Suggestion, "quotes")
}

func TestCheckSyntaxArityError(t *testing.T) {
	diags := checkSyntax(makeInput("bind-key x\n", "", Options{}))

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "requires a key and a command")
}
