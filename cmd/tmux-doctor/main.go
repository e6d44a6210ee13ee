package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/asheshgoplani/tmux-doctor/internal/config"
	"github.com/asheshgoplani/tmux-doctor/internal/fix"
	"github.com/asheshgoplani/tmux-doctor/internal/logging"
	"github.com/asheshgoplani/tmux-doctor/internal/report"
	"github.com/asheshgoplani/tmux-doctor/internal/rules"
	"github.com/asheshgoplani/tmux-doctor/internal/tmuxconf"
	"github.com/asheshgoplani/tmux-doctor/internal/ui"
	"github.com/asheshgoplani/tmux-doctor/internal/watch"
)

const Version = "0.3.1"

// init sets up color profile for consistent terminal colors across environments
func init() {
	initColorProfile()
}

// initColorProfile configures lipgloss color profile based on terminal
// capabilities, with a TMUXDOCTOR_COLOR override: truecolor, 256, 16, none.
func initColorProfile() {
	if colorEnv := os.Getenv("TMUXDOCTOR_COLOR"); colorEnv != "" {
		switch strings.ToLower(colorEnv) {
		case "truecolor", "true", "24bit":
			lipgloss.SetColorProfile(termenv.TrueColor)
			return
		case "256", "ansi256":
			lipgloss.SetColorProfile(termenv.ANSI256)
			return
		case "16", "ansi", "basic":
			lipgloss.SetColorProfile(termenv.ANSI)
			return
		case "none", "off", "ascii":
			lipgloss.SetColorProfile(termenv.Ascii)
			return
		}
	}

	colorTerm := os.Getenv("COLORTERM")
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func main() {
	userCfg, cfgErr := config.Load()
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", cfgErr)
	}

	setupLogging(userCfg)
	defer logging.Shutdown()

	args := os.Args[1:]
	if len(args) == 0 {
		handleValidate(userCfg, nil)
		return
	}

	switch args[0] {
	case "version", "--version", "-v":
		fmt.Printf("tmux-doctor v%s\n", Version)
	case "help", "--help", "-h":
		printHelp()
	case "validate":
		handleValidate(userCfg, args[1:])
	case "check-conflicts":
		handleConflicts(userCfg, args[1:])
	case "suggest":
		handleSuggest(userCfg, args[1:])
	case "fix":
		handleFix(userCfg, args[1:])
	case "compat":
		handleCompat(userCfg, args[1:])
	case "plugins":
		handlePlugins(userCfg, args[1:])
	case "watch":
		handleWatch(userCfg, args[1:])
	default:
		// Bare path shorthand: tmux-doctor ~/.tmux.conf
		if _, err := os.Stat(args[0]); err == nil {
			handleValidate(userCfg, args)
			return
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		printHelp()
		os.Exit(exitOperational)
	}
}

// setupLogging wires the rotating debug log. When TMUXDOCTOR_DEBUG is not
// set, logs are discarded so report output stays clean.
func setupLogging(userCfg *config.Config) {
	debugMode := os.Getenv("TMUXDOCTOR_DEBUG") != ""
	if !debugMode {
		logging.Init(logging.Config{})
		return
	}

	baseDir, err := config.StateDir()
	if err != nil {
		logging.Init(logging.Config{})
		return
	}

	logCfg := logging.Config{
		Debug:    true,
		LogDir:   baseDir,
		Level:    "debug",
		Format:   "json",
		Compress: true,
	}
	ls := userCfg.Logs
	if ls.DebugLevel != "" {
		logCfg.Level = ls.DebugLevel
	}
	if ls.DebugFormat != "" {
		logCfg.Format = ls.DebugFormat
	}
	if ls.DebugMaxMB > 0 {
		logCfg.MaxSizeMB = ls.DebugMaxMB
	}
	if ls.DebugBackups > 0 {
		logCfg.MaxBackups = ls.DebugBackups
	}
	if ls.DebugRetentionDays > 0 {
		logCfg.MaxAgeDays = ls.DebugRetentionDays
	}
	logging.Init(logCfg)
}

// pipeline holds one parsed configuration ready for rule evaluation.
type pipeline struct {
	path       string
	statements []tmuxconf.Statement
	state      *tmuxconf.EffectiveState
}

// loadPipeline reads and parses the target file. A read failure here is
// an operational failure, not a configuration defect.
func loadPipeline(userCfg *config.Config, pathArg string) (*pipeline, error) {
	path, err := userCfg.DiscoverConfPath(pathArg)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}
	stmts := tmuxconf.Parse(string(data))
	state := tmuxconf.Resolve(stmts, filepath.Dir(path))
	return &pipeline{path: path, statements: stmts, state: state}, nil
}

func (p *pipeline) input(userCfg *config.Config) *rules.Input {
	return &rules.Input{
		Statements: p.statements,
		State:      p.state,
		Opts: rules.Options{
			ExtraDeprecated: userCfg.Deprecated,
			ExtraColors:     userCfg.Colors.ExtraNames,
			PluginPattern:   userCfg.Plugins.Pattern,
			ExpectedPlugins: userCfg.Plugins.Expected,
		},
	}
}

// runReport is the shared body of validate, check-conflicts and suggest.
func runReport(userCfg *config.Config, pathArg string, ruleset []rules.Rule, onlySuggestions, jsonOutput, quiet bool) {
	out := NewCLIOutput(jsonOutput, quiet)

	p, err := loadPipeline(userCfg, pathArg)
	if err != nil {
		out.Error(err.Error(), ErrCodeIOFailure)
		os.Exit(exitOperational)
	}

	diags := rules.Run(context.Background(), p.input(userCfg), ruleset)
	if onlySuggestions {
		var kept []rules.Diagnostic
		for _, d := range diags {
			if d.Suggestion != "" {
				kept = append(kept, d)
			}
		}
		diags = kept
	}

	rep := report.New(p.path, diags)
	if jsonOutput {
		s, err := rep.JSON()
		if err != nil {
			out.Error(err.Error(), ErrCodeInvalidOperation)
			os.Exit(exitOperational)
		}
		fmt.Println(s)
	} else if !quiet {
		fmt.Print(rep.Render(colorEnabled()))
	}

	if rules.HasErrors(diags) {
		os.Exit(exitIssues)
	}
}

func handleValidate(userCfg *config.Config, args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Output as JSON")
	quiet := fs.Bool("quiet", false, "Suppress the report, keep the exit code")
	quietShort := fs.Bool("q", false, "Suppress the report (short)")
	fs.Usage = func() {
		fmt.Println("Usage: tmux-doctor validate [path] [options]")
		fmt.Println()
		fmt.Println("Run every check against a tmux configuration file.")
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(normalizeArgs(args)); err != nil {
		os.Exit(exitOperational)
	}
	runReport(userCfg, fs.Arg(0), rules.DefaultRules(), false, *jsonOutput, *quiet || *quietShort)
}

func handleConflicts(userCfg *config.Config, args []string) {
	fs := flag.NewFlagSet("check-conflicts", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Output as JSON")
	quiet := fs.Bool("q", false, "Suppress the report, keep the exit code")
	fs.Usage = func() {
		fmt.Println("Usage: tmux-doctor check-conflicts [path] [options]")
		fmt.Println()
		fmt.Println("Only run the duplicate-binding and conflicting-option checks.")
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(normalizeArgs(args)); err != nil {
		os.Exit(exitOperational)
	}
	runReport(userCfg, fs.Arg(0), rules.ConflictRules(), false, *jsonOutput, *quiet)
}

func handleSuggest(userCfg *config.Config, args []string) {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Output as JSON")
	fs.Usage = func() {
		fmt.Println("Usage: tmux-doctor suggest [path] [options]")
		fmt.Println()
		fmt.Println("Run every check but report only findings that carry a suggestion.")
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(normalizeArgs(args)); err != nil {
		os.Exit(exitOperational)
	}
	runReport(userCfg, fs.Arg(0), rules.DefaultRules(), true, *jsonOutput, false)
}

func handleFix(userCfg *config.Config, args []string) {
	fs := flag.NewFlagSet("fix", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Output as JSON")
	dryRun := fs.Bool("dry-run", false, "Show the planned edits without writing")
	quiet := fs.Bool("q", false, "Minimal output")
	fs.Usage = func() {
		fmt.Println("Usage: tmux-doctor fix [path] [options]")
		fmt.Println()
		fmt.Println("Apply the safe subset of fixes (deprecated renames, color")
		fmt.Println("spellings). The original file is backed up first; a failed")
		fmt.Println("backup aborts with no changes applied.")
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(normalizeArgs(args)); err != nil {
		os.Exit(exitOperational)
	}

	out := NewCLIOutput(*jsonOutput, *quiet)

	p, err := loadPipeline(userCfg, fs.Arg(0))
	if err != nil {
		out.Error(err.Error(), ErrCodeIOFailure)
		os.Exit(exitOperational)
	}

	diags := rules.Run(context.Background(), p.input(userCfg), rules.DefaultRules())
	plan := fix.BuildPlan(diags)

	if len(plan.Entries) == 0 {
		out.Success(fmt.Sprintf("nothing to fix in %s", FormatPath(p.path)), map[string]interface{}{
			"success": true,
			"path":    p.path,
			"edits":   0,
		})
		return
	}

	if *dryRun {
		var human strings.Builder
		fmt.Fprintf(&human, "Planned edits for %s:\n", FormatPath(p.path))
		for _, e := range plan.Entries {
			fmt.Fprintf(&human, "  %s line %d: %s\n", bulletSymbol, e.Line, e.Replacement)
		}
		out.Print(human.String(), map[string]interface{}{
			"success": true,
			"path":    p.path,
			"dry_run": true,
			"edits":   plan.Entries,
		})
		return
	}

	res, err := fix.Run(p.path, plan)
	if err != nil {
		out.Error(err.Error(), ErrCodeIOFailure)
		os.Exit(exitOperational)
	}

	out.Success(
		fmt.Sprintf("applied %d fix(es) to %s (backup: %s)",
			res.Changed, FormatPath(p.path), FormatPath(res.BackupPath)),
		map[string]interface{}{
			"success": true,
			"path":    p.path,
			"edits":   res.Changed,
			"backup":  res.BackupPath,
		})
}

func handleCompat(userCfg *config.Config, args []string) {
	fs := flag.NewFlagSet("compat", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Output as JSON")
	fs.Usage = func() {
		fmt.Println("Usage: tmux-doctor compat <version> [path] [options]")
		fmt.Println()
		fmt.Println("Report options the given tmux version no longer supports.")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  tmux-doctor compat 3.2")
		fmt.Println("  tmux-doctor compat 2.1 ~/.tmux.conf")
	}
	if err := fs.Parse(normalizeArgs(args)); err != nil {
		os.Exit(exitOperational)
	}

	version := fs.Arg(0)
	if version == "" {
		fmt.Fprintln(os.Stderr, "Error: tmux version is required")
		fs.Usage()
		os.Exit(exitOperational)
	}
	runReport(userCfg, fs.Arg(1), rules.CompatRules(version), false, *jsonOutput, false)
}

func handlePlugins(userCfg *config.Config, args []string) {
	fs := flag.NewFlagSet("plugins", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Output as JSON")
	fs.Usage = func() {
		fmt.Println("Usage: tmux-doctor plugins [path] [options]")
		fmt.Println()
		fmt.Println("List declared plugins and check their identifiers.")
	}
	if err := fs.Parse(normalizeArgs(args)); err != nil {
		os.Exit(exitOperational)
	}

	out := NewCLIOutput(*jsonOutput, false)

	p, err := loadPipeline(userCfg, fs.Arg(0))
	if err != nil {
		out.Error(err.Error(), ErrCodeIOFailure)
		os.Exit(exitOperational)
	}

	diags := rules.Run(context.Background(), p.input(userCfg), rules.PluginRules())

	type pluginJSON struct {
		Name string `json:"name"`
		Line int    `json:"line"`
	}
	var plugins []pluginJSON
	for _, name := range p.state.PluginNames() {
		plugins = append(plugins, pluginJSON{Name: name, Line: p.state.Plugins[name]})
	}

	var human strings.Builder
	if len(plugins) == 0 {
		fmt.Fprintf(&human, "No plugins declared in %s\n", FormatPath(p.path))
	} else {
		fmt.Fprintf(&human, "Plugins declared in %s:\n", FormatPath(p.path))
		for _, pl := range plugins {
			fmt.Fprintf(&human, "  %s %s (line %d)\n", bulletSymbol, pl.Name, pl.Line)
		}
	}
	if len(diags) > 0 {
		human.WriteString("\n")
		human.WriteString(report.New(p.path, diags).Render(colorEnabled()))
	}

	out.Print(human.String(), map[string]interface{}{
		"success":     true,
		"path":        p.path,
		"plugins":     plugins,
		"diagnostics": diags,
	})

	if rules.HasErrors(diags) {
		os.Exit(exitIssues)
	}
}

func handleWatch(userCfg *config.Config, args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println("Usage: tmux-doctor watch [path]")
		fmt.Println()
		fmt.Println("Revalidate the file live as it changes. Press q to quit.")
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(exitOperational)
	}

	path, err := userCfg.DiscoverConfPath(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitOperational)
	}

	revalidate := func() tea.Msg {
		p, err := loadPipeline(userCfg, path)
		if err != nil {
			return ui.RevalidatedMsg{Err: err}
		}
		diags := rules.Run(context.Background(), p.input(userCfg), rules.DefaultRules())
		return ui.RevalidatedMsg{Report: report.New(p.path, diags)}
	}

	initial, ok := revalidate().(ui.RevalidatedMsg)
	if !ok || initial.Err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", initial.Err)
		os.Exit(exitOperational)
	}

	model := ui.NewWatchModel(path, initial.Report, revalidate)
	program := tea.NewProgram(model, tea.WithAltScreen())

	debounce := time.Duration(userCfg.Watch.DebounceMS) * time.Millisecond
	watcher, err := watch.New(path, debounce, func() {
		program.Send(revalidate())
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create watcher: %v\n", err)
		os.Exit(exitOperational)
	}
	if err := watcher.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start watcher: %v\n", err)
		os.Exit(exitOperational)
	}
	defer watcher.Stop()

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitOperational)
	}
}

// colorEnabled reports whether styled output should be used.
func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func printHelp() {
	fmt.Printf("tmux-doctor v%s - validate tmux configuration files\n\n", Version)
	fmt.Println("Usage: tmux-doctor <command> [path] [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  validate [path]          Run every check (default command)")
	fmt.Println("  check-conflicts [path]   Duplicate bindings and conflicting options only")
	fmt.Println("  suggest [path]           Show only findings with a suggested fix")
	fmt.Println("  fix [path]               Apply safe fixes after writing a backup")
	fmt.Println("  compat <version> [path]  Check against a specific tmux version")
	fmt.Println("  plugins [path]           List and check declared plugins")
	fmt.Println("  watch [path]             Revalidate live as the file changes")
	fmt.Println("  version                  Show version")
	fmt.Println("  help                     Show this help")
	fmt.Println()
	fmt.Println("Without a path, the file is discovered from config.toml, then")
	fmt.Println("~/.tmux.conf, then ~/.config/tmux/tmux.conf.")
	fmt.Println()
	fmt.Println("Options (per command):")
	fmt.Println("  --json      Machine-readable output")
	fmt.Println("  -q          Suppress the report, keep the exit code")
	fmt.Println("  --dry-run   (fix) Show planned edits without writing")
	fmt.Println()
	fmt.Println("Exit codes: 0 clean or warnings only, 1 errors found, 2 operational failure.")
}
