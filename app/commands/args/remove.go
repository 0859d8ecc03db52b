package args

import (
	"strings"

	"github.com/Guerrilla-Interactive/advent-of-random/app/cli"
)

// RemoveCommand takes a language out of the candidate list and the bag.
type RemoveCommand struct{}

func init() {
	RegisterCommand(&RemoveCommand{})
}

func (c *RemoveCommand) Name() string { return "remove" }

func (c *RemoveCommand) Description() string { return "Remove a language from the list" }

func (c *RemoveCommand) Order() int { return 30 }

func (c *RemoveCommand) Flag() FlagDef {
	return FlagDef{Name: "remove", ShortName: "r", Description: c.Description(), HasValue: true, ValueName: "language"}
}

func (c *RemoveCommand) Execute(env *Env, args cli.CommandArgs) (Result, error) {
	lang := strings.TrimSpace(args.Flags["remove"])
	switch {
	case lang == "":
		env.printf("The language name cannot be empty!\n")
	case env.Record.RemoveLanguage(lang):
		env.printf("The %s language has been successfully removed!\n", lang)
	default:
		env.printf("The %s language is not in the list!\n", lang)
	}
	return Handled, nil
}
