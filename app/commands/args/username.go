package args

import (
	"strings"

	"github.com/Guerrilla-Interactive/advent-of-random/app/cli"
)

// UsernameCommand changes the name used in the greeting.
type UsernameCommand struct{}

func init() {
	RegisterCommand(&UsernameCommand{})
}

func (c *UsernameCommand) Name() string { return "username" }

func (c *UsernameCommand) Description() string { return "Change your username" }

func (c *UsernameCommand) Order() int { return 10 }

func (c *UsernameCommand) Flag() FlagDef {
	return FlagDef{Name: "username", ShortName: "u", Description: c.Description(), HasValue: true, ValueName: "name"}
}

func (c *UsernameCommand) Execute(env *Env, args cli.CommandArgs) (Result, error) {
	name := strings.TrimSpace(args.Flags["username"])
	if name == "" {
		env.printf("The username cannot be empty!\n")
		return Handled, nil
	}
	env.Record.Username = name
	env.printf("Username successfully updated: %s\n", name)
	return Handled, nil
}
