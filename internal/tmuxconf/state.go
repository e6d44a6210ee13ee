package tmuxconf

import (
	"os"
	"path/filepath"
	"strings"
)

// OptionKey identifies an option within its resolution scope.
type OptionKey struct {
	Scope Scope
	Name  string
}

// BindingKey identifies a key binding within its table.
type BindingKey struct {
	Table string
	Key   string
}

// OptionValue is the resolved value of an option and the line that last
// set it.
type OptionValue struct {
	Value     string
	SetAtLine int
}

// BoundCommand is the resolved command of a binding and the line that
// last set it.
type BoundCommand struct {
	Command   string
	SetAtLine int
}

// IncludeRef is one source-file directive with its resolution status.
type IncludeRef struct {
	Path     string
	Expanded string
	Resolved bool
	Line     int
}

// EffectiveState is the configuration that would be in force after a live
// reload processed every statement in file order. It is built fresh per
// run by Resolve; nothing survives across runs.
type EffectiveState struct {
	Options  map[OptionKey]OptionValue
	Bindings map[BindingKey]BoundCommand
	Includes []IncludeRef
	Plugins  map[string]int // plugin name -> first declaring line

	pluginOrder []string
}

// Resolve folds the statement sequence into an EffectiveState using
// last-write-wins per (scope, option) and per (table, key). Includes that
// reference a missing path are marked unresolved but never halt the fold;
// the referenced file simply contributes nothing.
func Resolve(stmts []Statement, baseDir string) *EffectiveState {
	state := &EffectiveState{
		Options:  make(map[OptionKey]OptionValue),
		Bindings: make(map[BindingKey]BoundCommand),
		Plugins:  make(map[string]int),
	}

	for _, st := range stmts {
		switch st.Kind {
		case KindOptionSet:
			key := OptionKey{Scope: st.Option.Scope, Name: st.Option.Name}
			state.Options[key] = OptionValue{Value: st.Option.Value, SetAtLine: st.Line.Number}
		case KindKeyBinding:
			key := BindingKey{Table: st.Binding.Table, Key: st.Binding.Key}
			state.Bindings[key] = BoundCommand{Command: st.Binding.Command, SetAtLine: st.Line.Number}
		case KindSourceInclude:
			expanded := ExpandPath(st.Include.Path, baseDir)
			_, err := os.Stat(expanded)
			ref := IncludeRef{
				Path:     st.Include.Path,
				Expanded: expanded,
				Resolved: err == nil,
				Line:     st.Line.Number,
			}
			st.Include.Resolved = ref.Resolved
			state.Includes = append(state.Includes, ref)
		case KindPluginDeclare:
			if _, seen := state.Plugins[st.Plugin.Name]; !seen {
				state.Plugins[st.Plugin.Name] = st.Line.Number
				state.pluginOrder = append(state.pluginOrder, st.Plugin.Name)
			}
		}
	}
	return state
}

// PluginNames returns declared plugin names in first-declaration order.
func (s *EffectiveState) PluginNames() []string {
	return s.pluginOrder
}

// ExpandPath expands ~ and environment variables, then resolves relative
// paths against baseDir (the directory of the file being validated).
func ExpandPath(path, baseDir string) string {
	path = os.ExpandEnv(path)

	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	} else if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	return filepath.Clean(path)
}
