package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCompatFlagsRemovedOptions(t *testing.T) {
	text := "set -g mode-mouse on\nset -g status-utf8 on\nset -g mouse on\n"

	// tmux 3.2 rejects both removed options.
	diags := checkCompat("3.2")(makeInput(text, "", Options{}))
	require.Len(t, diags, 2)
	assert.Equal(t, SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "mode-mouse")
	assert.Contains(t, diags[0].Message, "removed in 2.1")
	assert.Equal(t, "use 'mouse' instead", diags[0].Suggestion)
	assert.Contains(t, diags[1].Message, "status-utf8")
}

func TestCheckCompatOldVersionStillAccepts(t *testing.T) {
	text := "set -g mode-mouse on\nset -g status-utf8 on\n"

	// tmux 2.0 predates both removals.
	diags := checkCompat("2.0")(makeInput(text, "", Options{}))
	assert.Empty(t, diags)

	// tmux 2.1 dropped mode-mouse but still had status-utf8.
	diags = checkCompat("2.1")(makeInput(text, "", Options{}))
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "mode-mouse")
}

func TestCheckCompatBadVersion(t *testing.T) {
	diags := checkCompat("banana")(makeInput("set -g mouse on\n", "", Options{}))

	require.Len(t, diags, 1)
	assert.Equal(t, SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "unrecognized tmux version")
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in    string
		major int
		minor int
		ok    bool
	}{
		{"3.2", 3, 2, true},
		{"3.2a", 3, 2, true},
		{"2.1", 2, 1, true},
		{" 3.5 ", 3, 5, true},
		{"3", 0, 0, false},
		{"x.y", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, ok := parseVersion(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.major, v.major)
				assert.Equal(t, tt.minor, v.minor)
			}
		})
	}
}

func TestVersionAtLeast(t *testing.T) {
	assert.True(t, versionAtLeast(version{3, 2}, version{2, 1}))
	assert.True(t, versionAtLeast(version{2, 1}, version{2, 1}))
	assert.False(t, versionAtLeast(version{2, 0}, version{2, 1}))
	assert.False(t, versionAtLeast(version{1, 9}, version{2, 1}))
}
