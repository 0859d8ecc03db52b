package args

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/advent-of-random/app/cli"
	"github.com/Guerrilla-Interactive/advent-of-random/app/state"
)

// FlagDef is an alias for cli.FlagDef
type FlagDef = cli.FlagDef

// Result tells the caller what to do after the flag handlers ran.
type Result int

const (
	// Continue means no handler ran and the daily pick should proceed.
	Continue Result = iota
	// Handled means state may have changed; save it and skip the pick.
	Handled
	// Exit means stop immediately without saving.
	Exit
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Handled:
		return "handled"
	case Exit:
		return "exit"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Env is what a command is allowed to touch.
type Env struct {
	Store  state.Store
	Record *state.Record
	Out    io.Writer
	Logger *zap.Logger
}

func (e *Env) printf(format string, a ...any) {
	fmt.Fprintf(e.Out, format, a...)
}

// Command represents one flag category that acts on the saved state.
type Command interface {
	// Name returns the command's name, which is also its long flag.
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Order fixes the evaluation order; lower runs first.
	Order() int
	// Flag returns the flag definition that triggers the command.
	Flag() FlagDef
	// Execute runs the command logic with the parsed arguments.
	Execute(env *Env, args cli.CommandArgs) (Result, error)
}

// commandRegistry holds all registered commands, keyed by name.
var commandRegistry = make(map[string]Command)

// RegisterCommand adds a command to the registry. It is called from init()
// in each command's file.
func RegisterCommand(cmd Command) {
	if _, exists := commandRegistry[cmd.Name()]; exists {
		panic(fmt.Sprintf("Command already registered: %s", cmd.Name()))
	}
	commandRegistry[cmd.Name()] = cmd
}

// GetCommand retrieves a command from the registry by its name.
func GetCommand(name string) (Command, bool) {
	cmd, found := commandRegistry[name]
	return cmd, found
}

// GetAllCommands returns every registered command in evaluation order.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Order() < cmds[j].Order()
	})
	return cmds
}

// GlobalFlags are understood by main rather than by a registered command.
var GlobalFlags = []FlagDef{
	{Name: "copy", ShortName: "c", Description: "Copy the day's language to the clipboard"},
	{Name: "debug", Description: "Print debug logs to stderr"},
	{Name: "help", ShortName: "h", Description: "Show this help message and exit"},
	{Name: "version", Description: "Print the version and exit"},
}

// AllFlagDefs returns the command flags in evaluation order followed by the global flags.
func AllFlagDefs() []FlagDef {
	var defs []FlagDef
	for _, cmd := range GetAllCommands() {
		defs = append(defs, cmd.Flag())
	}
	return append(defs, GlobalFlags...)
}

// Apply runs every command whose flag is present, in evaluation order.
// The first Exit stops the run; otherwise any command that ran makes the
// result Handled.
func Apply(env *Env, parsed cli.CommandArgs) (Result, error) {
	result := Continue
	for _, cmd := range GetAllCommands() {
		if !parsed.Has(cmd.Name()) {
			continue
		}
		env.Logger.Debug("applying flag", zap.String("flag", cmd.Name()))
		r, err := cmd.Execute(env, parsed)
		if err != nil {
			return Exit, fmt.Errorf("--%s: %w", cmd.Name(), err)
		}
		if r == Exit {
			return Exit, nil
		}
		if r == Handled {
			result = Handled
		}
	}
	return result, nil
}
