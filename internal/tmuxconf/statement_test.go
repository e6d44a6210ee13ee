package tmuxconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, line string) Statement {
	t.Helper()
	stmts := Parse(line + "\n")
	require.Len(t, stmts, 1)
	return stmts[0]
}

func TestClassifyOptionSet(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		scope  Scope
		global bool
		opt    string
		value  string
	}{
		{"session default", "set escape-time 10", ScopeSession, false, "escape-time", "10"},
		{"global flag", "set -g mouse on", ScopeSession, true, "mouse", "on"},
		{"server scope", "set -s escape-time 0", ScopeServer, false, "escape-time", "0"},
		{"window via setw", "setw -g mode-keys vi", ScopeWindow, true, "mode-keys", "vi"},
		{"window via long form", "set-window-option -g monitor-activity on", ScopeWindow, true, "monitor-activity", "on"},
		{"window via -w", "set -w -g automatic-rename off", ScopeWindow, true, "automatic-rename", "off"},
		{"pane via -p", "set -p allow-rename off", ScopePane, false, "allow-rename", "off"},
		{"target flag skipped with value", "set -t mysess status off", ScopeSession, false, "status", "off"},
		{"multi-word value joined", `set -g status-left "left text" more`, ScopeSession, true, "status-left", "left text more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := parseOne(t, tt.line)
			require.Equal(t, KindOptionSet, st.Kind)
			require.NotNil(t, st.Option)
			assert.Equal(t, tt.scope, st.Option.Scope)
			assert.Equal(t, tt.global, st.Option.Global)
			assert.Equal(t, tt.opt, st.Option.Name)
			assert.Equal(t, tt.value, st.Option.Value)
		})
	}
}

func TestClassifyKeyBinding(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		table   string
		key     string
		rawKey  string
		command string
	}{
		{"prefix table default", "bind-key r source-file ~/.tmux.conf", "prefix", "r", "r", "source-file ~/.tmux.conf"},
		{"root table via -n", "bind -n C-Left select-pane -L", "root", "C-left", "C-Left", "select-pane -L"},
		{"explicit table", "bind -T copy-mode-vi v send-keys -X begin-selection", "copy-mode-vi", "v", "v", "send-keys -X begin-selection"},
		{"repeat flag ignored", "bind -r h select-pane -L", "prefix", "h", "h", "select-pane -L"},
		{"note flag skipped with value", "bind -N description s split-window", "prefix", "s", "s", "split-window"},
		{"key normalized", "bind c-A new-window", "prefix", "C-a", "c-A", "new-window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := parseOne(t, tt.line)
			require.Equal(t, KindKeyBinding, st.Kind)
			require.NotNil(t, st.Binding)
			assert.Equal(t, tt.table, st.Binding.Table)
			assert.Equal(t, tt.key, st.Binding.Key)
			assert.Equal(t, tt.rawKey, st.Binding.RawKey)
			assert.Equal(t, tt.command, st.Binding.Command)
		})
	}
}

func TestClassifyInclude(t *testing.T) {
	st := parseOne(t, "source-file ~/.tmux/local.conf")
	require.Equal(t, KindSourceInclude, st.Kind)
	require.NotNil(t, st.Include)
	assert.Equal(t, "~/.tmux/local.conf", st.Include.Path)

	st = parseOne(t, "source -q extra.conf")
	require.Equal(t, KindSourceInclude, st.Kind)
	assert.Equal(t, "extra.conf", st.Include.Path)
}

func TestClassifyPluginDeclare(t *testing.T) {
	st := parseOne(t, `set -g @plugin "tmux-plugins/tmux-sensible"`)
	require.Equal(t, KindPluginDeclare, st.Kind)
	require.NotNil(t, st.Plugin)
	assert.Equal(t, "tmux-plugins/tmux-sensible", st.Plugin.Name)
	assert.Nil(t, st.Option)
}

func TestClassifyArityErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"set without option name", "set -g"},
		{"bind without command", "bind-key x"},
		{"source without path", "source-file"},
		{"plugin without name", "set -g @plugin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := parseOne(t, tt.line)
			assert.Equal(t, KindUnknown, st.Kind)
			assert.NotEmpty(t, st.Err)
			assert.False(t, st.ParseErr)
		})
	}
}

func TestUnrecognizedCommandStaysUnknown(t *testing.T) {
	st := parseOne(t, "run-shell ~/script.sh")
	assert.Equal(t, KindUnknown, st.Kind)
	assert.Empty(t, st.Err)
}

func TestKnownCommands(t *testing.T) {
	known := KnownCommands()
	assert.Contains(t, known, "set-option")
	assert.Contains(t, known, "set-window-option")
	assert.Contains(t, known, "bind-key")
	assert.Contains(t, known, "source-file")
}
