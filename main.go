package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/advent-of-random/app"
	"github.com/Guerrilla-Interactive/advent-of-random/app/banner"
	"github.com/Guerrilla-Interactive/advent-of-random/app/cli"
	"github.com/Guerrilla-Interactive/advent-of-random/app/commands/args"
	"github.com/Guerrilla-Interactive/advent-of-random/app/logging"
	"github.com/Guerrilla-Interactive/advent-of-random/app/picker"
	"github.com/Guerrilla-Interactive/advent-of-random/app/screens/setup"
	"github.com/Guerrilla-Interactive/advent-of-random/app/screens/shared"
	"github.com/Guerrilla-Interactive/advent-of-random/app/state"
	config "github.com/Guerrilla-Interactive/advent-of-random/internal"
)

// Version is set via linker flags during release builds.
var Version = "v0.1.0"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	parsedArgs := cli.ParseCommandLineArgs(argv, args.AllFlagDefs())

	if len(parsedArgs.Errors) > 0 {
		fmt.Fprintln(os.Stderr, "Error parsing arguments:")
		for _, err := range parsedArgs.Errors {
			fmt.Fprintf(os.Stderr, "  - %v\n", err)
		}
		fmt.Fprintf(os.Stderr, "Run `%s --help` for usage.\n", app.Name)
		return exitUsage
	}
	if len(parsedArgs.Variables) > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected argument %q\n", parsedArgs.Variables[0])
		fmt.Fprintf(os.Stderr, "Run `%s --help` for usage.\n", app.Name)
		return exitUsage
	}

	// --version takes precedence over everything else
	if parsedArgs.VersionRequested {
		fmt.Printf("Advent of Random %s\n", Version)
		return exitOK
	}
	if parsedArgs.HelpRequested {
		displayGeneralHelp(os.Stdout)
		return exitOK
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}

	logger := logging.New(cfg.Debug || parsedArgs.BoolFlags["debug"])
	defer logger.Sync() //nolint:errcheck // stderr sync fails on some terminals

	prompt := setup.RunPlain
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		prompt = setup.RunInteractive
	}

	style := func(s string) string { return s }
	if cfg.Color {
		style = func(s string) string { return app.BannerStyle.Render(s) }
	}

	p := picker.New()
	a := &App{
		Config: cfg,
		Store:  state.NewFileStore(cfg.StateFile),
		Prompt: prompt,
		Picker: p,
		Rand:   p.Rand(),
		Now:    time.Now,
		Copy:   clipboard.WriteAll,
		Style:  style,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
	return a.Run(parsedArgs)
}

// App wires the components for one invocation. Every dependency is explicit
// so the whole flow can run against a MemoryStore in tests.
type App struct {
	Config config.Config
	Store  state.Store
	Prompt setup.Prompter
	Picker *picker.Picker
	Rand   *rand.Rand
	Now    func() time.Time
	Copy   func(string) error
	Style  func(string) string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// locker is implemented by stores that can guard their file against
// concurrent invocations.
type locker interface {
	Lock() (*state.FileLock, error)
}

// Run executes a single invocation and returns the process exit code.
func (a *App) Run(parsedArgs cli.CommandArgs) int {
	exists, err := a.Store.Exists()
	if err != nil {
		return a.fail(err)
	}
	// A reset with nothing saved must not touch the filesystem, lock included.
	if !exists && parsedArgs.Has("reset") {
		return a.reset(parsedArgs)
	}

	unlock, err := a.lock()
	if err != nil {
		return a.fail(err)
	}
	defer unlock()
	return a.runLocked(parsedArgs)
}

func (a *App) runLocked(parsedArgs cli.CommandArgs) int {
	// Checked again under the lock; another invocation may have finished
	// setup or a reset in the meantime.
	exists, err := a.Store.Exists()
	if err != nil {
		return a.fail(err)
	}

	if !exists {
		// Nothing to reset, and no reason to make the user go through setup first.
		if parsedArgs.Has("reset") {
			return a.reset(parsedArgs)
		}

		a.Logger.Debug("no saved state, running setup", zap.String("path", a.Store.Path()))
		if _, err := setup.Run(a.Store, a.Prompt, a.Stdin, a.Stdout, a.Logger); err != nil {
			if errors.Is(err, setup.ErrCancelled) {
				fmt.Fprintln(a.Stdout, "Setup cancelled.")
				return exitOK
			}
			return a.fail(err)
		}
		return exitOK
	}

	rec, err := a.Store.Load()
	if err != nil {
		return a.fail(err)
	}
	a.Logger.Debug("state loaded",
		zap.String("path", a.Store.Path()),
		zap.Int("languages", len(rec.Languages)),
		zap.Int("bag", len(rec.Bag)))

	result, err := args.Apply(a.env(rec), parsedArgs)
	if err != nil {
		return a.fail(err)
	}
	switch result {
	case args.Exit:
		return exitOK
	case args.Handled:
		return a.save(rec)
	}

	language, err := a.Picker.Pick(rec)
	if errors.Is(err, picker.ErrEmptyLanguages) {
		fmt.Fprintf(a.Stderr, "No languages configured. Add one with --add <language>.\n")
		return exitFailure
	}
	if err != nil {
		return a.fail(err)
	}
	a.Logger.Debug("language picked", zap.String("language", language), zap.Int("remaining", len(rec.Bag)))

	art := banner.Choose(a.Config.Art, a.Rand)
	fmt.Fprintf(a.Stdout, "\n%s\n\n", a.Style(banner.Render(rec.Username, language, a.Now(), art)))

	if parsedArgs.Has("copy") {
		if err := a.Copy(language); err != nil {
			a.Logger.Warn("clipboard copy failed", zap.Error(err))
			fmt.Fprintf(a.Stderr, "Warning: could not copy %s to the clipboard: %v\n", language, err)
		} else {
			fmt.Fprintf(a.Stdout, "%s copied to the clipboard.\n", language)
		}
	}

	return a.save(rec)
}

func (a *App) lock() (func(), error) {
	l, ok := a.Store.(locker)
	if !a.Config.Lock || !ok {
		return func() {}, nil
	}
	fl, err := l.Lock()
	if err != nil {
		return nil, err
	}
	a.Logger.Debug("state locked", zap.String("path", a.Store.Path()))
	return func() {
		if err := fl.Release(); err != nil {
			a.Logger.Warn("could not release state lock", zap.Error(err))
		}
	}, nil
}

func (a *App) reset(parsedArgs cli.CommandArgs) int {
	cmd, _ := args.GetCommand("reset")
	if _, err := cmd.Execute(a.env(nil), parsedArgs); err != nil {
		return a.fail(err)
	}
	return exitOK
}

func (a *App) env(rec *state.Record) *args.Env {
	return &args.Env{Store: a.Store, Record: rec, Out: a.Stdout, Logger: a.Logger}
}

func (a *App) save(rec *state.Record) int {
	if err := a.Store.Save(rec); err != nil {
		return a.fail(err)
	}
	return exitOK
}

func (a *App) fail(err error) int {
	a.Logger.Debug("fatal error", zap.Error(err))
	fmt.Fprintf(a.Stderr, "Error: %v\n", err)
	return exitFailure
}

// displayGeneralHelp prints the top-level help message.
func displayGeneralHelp(w io.Writer) {
	fmt.Fprintln(w, shared.WrapText("Advent of Random - an extra Advent of Code challenge that picks a random programming language for you every day!", 80))
	fmt.Fprintf(w, "Usage: %s [--flags...]\n", app.Name)
	fmt.Fprintln(w, "Run without flags to get today's language. The first run asks a few setup questions.")

	fmt.Fprintln(w, "\nFlags:")
	for _, flag := range args.AllFlagDefs() {
		flagUsage := "--" + flag.Name
		if flag.ShortName != "" {
			flagUsage = "-" + flag.ShortName + ", " + flagUsage
		} else {
			flagUsage = "    " + flagUsage
		}
		if flag.HasValue {
			flagUsage += " <" + flag.ValueName + ">"
		}
		fmt.Fprintf(w, "  %-26s %s\n", flagUsage, flag.Description)
	}

	fmt.Fprintln(w, "\nEnvironment:")
	for _, line := range []string{
		"AOR_STATE_FILE  state file location (default " + config.DefaultStateFile + ")",
		"AOR_ART         " + strings.Join([]string{config.ArtSnowflake, config.ArtTree, config.ArtRandom}, ", "),
		"AOR_DEBUG       debug logging to stderr",
		"AOR_LOCK        lock the state file while running (default true)",
		"AOR_COLOR       colored banner (default true)",
	} {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
