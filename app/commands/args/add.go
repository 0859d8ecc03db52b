package args

import (
	"strings"

	"github.com/Guerrilla-Interactive/advent-of-random/app/cli"
)

// AddCommand puts a new language into the candidate list and the current bag.
type AddCommand struct{}

func init() {
	RegisterCommand(&AddCommand{})
}

func (c *AddCommand) Name() string { return "add" }

func (c *AddCommand) Description() string { return "Add a new language to the list" }

func (c *AddCommand) Order() int { return 20 }

func (c *AddCommand) Flag() FlagDef {
	return FlagDef{Name: "add", ShortName: "a", Description: c.Description(), HasValue: true, ValueName: "language"}
}

func (c *AddCommand) Execute(env *Env, args cli.CommandArgs) (Result, error) {
	lang := strings.TrimSpace(args.Flags["add"])
	switch {
	case lang == "":
		env.printf("The language name cannot be empty!\n")
	case env.Record.AddLanguage(lang):
		env.printf("The %s language has been successfully added!\n", lang)
	default:
		env.printf("The %s language is already listed!\n", lang)
	}
	return Handled, nil
}
