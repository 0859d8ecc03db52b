package args

import (
	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/advent-of-random/app/cli"
)

// ResetCommand deletes the saved state. It always ends the run.
type ResetCommand struct{}

func init() {
	RegisterCommand(&ResetCommand{})
}

func (c *ResetCommand) Name() string { return "reset" }

func (c *ResetCommand) Description() string { return "Remove persistent data" }

func (c *ResetCommand) Order() int { return 50 }

func (c *ResetCommand) Flag() FlagDef {
	return FlagDef{Name: "reset", Description: c.Description()}
}

func (c *ResetCommand) Execute(env *Env, _ cli.CommandArgs) (Result, error) {
	removed, err := env.Store.Remove()
	if err != nil {
		return Exit, err
	}
	if removed {
		env.Logger.Debug("state removed", zap.String("path", env.Store.Path()))
		env.printf("Persistent data successfully removed!\n")
	} else {
		env.printf("No persistent data to remove.\n")
	}
	return Exit, nil
}
