package tmuxconf

// Kind classifies a parsed statement.
type Kind int

const (
	KindUnknown Kind = iota
	KindOptionSet
	KindKeyBinding
	KindSourceInclude
	KindPluginDeclare
)

func (k Kind) String() string {
	switch k {
	case KindOptionSet:
		return "option-set"
	case KindKeyBinding:
		return "key-binding"
	case KindSourceInclude:
		return "source-include"
	case KindPluginDeclare:
		return "plugin-declare"
	default:
		return "unknown"
	}
}

// Scope is the resolution scope of an option, matching tmux's option model.
type Scope string

const (
	ScopeServer  Scope = "server"
	ScopeSession Scope = "session"
	ScopeWindow  Scope = "window"
	ScopePane    Scope = "pane"
)

// SourceLine is one physical line of input. Line numbers are 1-based and
// stable across the whole pipeline so diagnostics always point at the file.
type SourceLine struct {
	Number int
	Text   string
}

// Statement is one classified directive. Statements are built once by the
// parser and never mutated afterwards; exactly one of the typed fields is
// non-nil, matching Kind.
type Statement struct {
	Line    SourceLine
	Command string
	Args    []string

	Kind Kind

	// ParseErr marks a line the tokenizer could not split (unterminated
	// quote). Err carries the reason for both tokenizer and classifier
	// failures; the syntax rule surfaces it.
	ParseErr bool
	Err      string

	Option  *OptionSet
	Binding *KeyBinding
	Include *SourceInclude
	Plugin  *PluginDeclare
}

// OptionSet is a set/set-option/set-window-option statement.
type OptionSet struct {
	Scope  Scope
	Name   string
	Value  string
	Global bool
}

// KeyBinding is a bind/bind-key statement. Key holds the normalized chord
// so conflicting bindings compare equal regardless of spelling.
type KeyBinding struct {
	Table   string
	Key     string
	RawKey  string
	Command string
}

// SourceInclude is a source/source-file statement. Resolved is filled in
// by the effective-state fold.
type SourceInclude struct {
	Path     string
	Resolved bool
}

// PluginDeclare is a TPM-style `set -g @plugin "owner/repo"` declaration.
type PluginDeclare struct {
	Name string
}

// optionCommands maps set-family command names to a forced scope.
// Empty scope means the scope comes from flags (default session).
var optionCommands = map[string]Scope{
	"set":               "",
	"set-option":        "",
	"setw":              ScopeWindow,
	"set-window-option": ScopeWindow,
}

var bindingCommands = map[string]bool{
	"bind":     true,
	"bind-key": true,
}

var includeCommands = map[string]bool{
	"source":      true,
	"source-file": true,
}

// KnownCommands returns the command names the classifier recognizes,
// for did-you-mean matching against unknown commands.
func KnownCommands() []string {
	names := make([]string, 0, len(optionCommands)+len(bindingCommands)+len(includeCommands))
	for name := range optionCommands {
		names = append(names, name)
	}
	for name := range bindingCommands {
		names = append(names, name)
	}
	for name := range includeCommands {
		names = append(names, name)
	}
	return names
}

// classify fills in Kind and the matching typed field from Command/Args.
// Argument-shape mismatches downgrade to KindUnknown with Err set; they
// never abort the parse.
func classify(st *Statement) {
	if st.ParseErr {
		return
	}

	switch {
	case hasCommand(optionCommands, st.Command):
		classifyOptionSet(st)
	case bindingCommands[st.Command]:
		classifyKeyBinding(st)
	case includeCommands[st.Command]:
		classifyInclude(st)
	}
}

func hasCommand(m map[string]Scope, name string) bool {
	_, ok := m[name]
	return ok
}

func classifyOptionSet(st *Statement) {
	scope := optionCommands[st.Command]
	if scope == "" {
		scope = ScopeSession
	}
	global := false

	args := st.Args
	for len(args) > 0 && len(args[0]) > 1 && args[0][0] == '-' {
		flag := args[0]
		args = args[1:]
		switch flag {
		case "-g":
			global = true
		case "-s":
			scope = ScopeServer
		case "-w":
			scope = ScopeWindow
		case "-p":
			scope = ScopePane
		case "-t", "-F":
			// takes a value
			if len(args) > 0 {
				args = args[1:]
			}
		}
		// -a, -q, -u, -o and combined forms carry no value
	}

	if len(args) == 0 {
		st.Err = st.Command + " requires an option name"
		return
	}

	name := args[0]
	value := joinArgs(args[1:])

	// TPM plugin declarations ride on set -g @plugin "owner/repo".
	if name == "@plugin" {
		if value == "" {
			st.Err = "@plugin requires a plugin name"
			return
		}
		st.Kind = KindPluginDeclare
		st.Plugin = &PluginDeclare{Name: value}
		return
	}

	st.Kind = KindOptionSet
	st.Option = &OptionSet{
		Scope:  scope,
		Name:   name,
		Value:  value,
		Global: global,
	}
}

func classifyKeyBinding(st *Statement) {
	table := "prefix"

	args := st.Args
	for len(args) > 0 && len(args[0]) > 1 && args[0][0] == '-' {
		flag := args[0]
		args = args[1:]
		switch flag {
		case "-n":
			table = "root"
		case "-T", "-N":
			if len(args) > 0 {
				if flag == "-T" {
					table = args[0]
				}
				args = args[1:]
			}
		}
		// -r and combined flags like -nr carry no value
	}

	if len(args) < 2 {
		st.Err = st.Command + " requires a key and a command"
		return
	}

	st.Kind = KindKeyBinding
	st.Binding = &KeyBinding{
		Table:   table,
		Key:     NormalizeChord(args[0]),
		RawKey:  args[0],
		Command: joinArgs(args[1:]),
	}
}

func classifyInclude(st *Statement) {
	args := st.Args
	for len(args) > 0 && len(args[0]) > 1 && args[0][0] == '-' {
		args = args[1:] // -q, -F, -v carry no value
	}

	if len(args) == 0 {
		st.Err = st.Command + " requires a file path"
		return
	}

	st.Kind = KindSourceInclude
	st.Include = &SourceInclude{Path: args[0]}
}

func joinArgs(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += " "
		}
		out += a
	}
	return out
}
