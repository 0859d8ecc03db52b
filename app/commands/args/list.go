package args

import (
	"strings"

	"github.com/Guerrilla-Interactive/advent-of-random/app/cli"
)

// ListCommand prints the candidate list. The bag stays hidden.
type ListCommand struct{}

func init() {
	RegisterCommand(&ListCommand{})
}

func (c *ListCommand) Name() string { return "list" }

func (c *ListCommand) Description() string { return "Show the list of possible languages" }

func (c *ListCommand) Order() int { return 40 }

func (c *ListCommand) Flag() FlagDef {
	return FlagDef{Name: "list", ShortName: "l", Description: c.Description()}
}

func (c *ListCommand) Execute(env *Env, _ cli.CommandArgs) (Result, error) {
	env.printf("%s\n", strings.Join(env.Record.Languages, ", "))
	return Handled, nil
}
