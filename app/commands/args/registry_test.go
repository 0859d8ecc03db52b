package args

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Guerrilla-Interactive/advent-of-random/app/cli"
	"github.com/Guerrilla-Interactive/advent-of-random/app/state"
)

func newEnv(rec *state.Record) (*Env, *state.MemoryStore, *bytes.Buffer) {
	store := state.NewMemoryStore(rec)
	var out bytes.Buffer
	return &Env{Store: store, Record: rec, Out: &out, Logger: zap.NewNop()}, store, &out
}

func parse(t *testing.T, argv ...string) cli.CommandArgs {
	t.Helper()
	parsed := cli.ParseCommandLineArgs(argv, AllFlagDefs())
	require.NoError(t, parsed.Err())
	return parsed
}

func TestCommandsAreOrdered(t *testing.T) {
	var names []string
	for _, cmd := range GetAllCommands() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"username", "add", "remove", "list", "reset"}, names)

	var flags []string
	for _, def := range AllFlagDefs() {
		flags = append(flags, def.Name)
	}
	assert.Equal(t, []string{"username", "add", "remove", "list", "reset", "copy", "debug", "help", "version"}, flags)
}

func TestApplyNoFlagsContinues(t *testing.T) {
	env, _, out := newEnv(state.NewRecord("ada", []string{"Go"}))

	res, err := Apply(env, parse(t))
	require.NoError(t, err)
	assert.Equal(t, Continue, res)
	assert.Empty(t, out.String())
}

func TestApplyGlobalFlagsDoNotSuppressPick(t *testing.T) {
	env, _, _ := newEnv(state.NewRecord("ada", []string{"Go"}))

	res, err := Apply(env, parse(t, "--copy", "--debug"))
	require.NoError(t, err)
	assert.Equal(t, Continue, res)
}

func TestUsername(t *testing.T) {
	rec := state.NewRecord("ada", []string{"Go"})
	env, _, out := newEnv(rec)

	res, err := Apply(env, parse(t, "--username", "grace"))
	require.NoError(t, err)
	assert.Equal(t, Handled, res)
	assert.Equal(t, "grace", rec.Username)
	assert.Equal(t, "Username successfully updated: grace\n", out.String())
}

func TestUsernameEmpty(t *testing.T) {
	rec := state.NewRecord("ada", []string{"Go"})
	env, _, out := newEnv(rec)

	res, err := Apply(env, parse(t, "--username=  "))
	require.NoError(t, err)
	assert.Equal(t, Handled, res)
	assert.Equal(t, "ada", rec.Username)
	assert.Contains(t, out.String(), "cannot be empty")
}

func TestAddTwiceIsIdempotent(t *testing.T) {
	rec := state.NewRecord("ada", []string{"Go"})
	env, _, out := newEnv(rec)

	_, err := Apply(env, parse(t, "--add", "Rust"))
	require.NoError(t, err)
	res, err := Apply(env, parse(t, "-a", "Rust"))
	require.NoError(t, err)
	assert.Equal(t, Handled, res)

	assert.Equal(t, []string{"Go", "Rust"}, rec.Languages)
	assert.Equal(t, []string{"Go", "Rust"}, rec.Bag)
	assert.Equal(t,
		"The Rust language has been successfully added!\n"+
			"The Rust language is already listed!\n",
		out.String())

	out.Reset()
	_, err = Apply(env, parse(t, "--list"))
	require.NoError(t, err)
	assert.Equal(t, "Go, Rust\n", out.String())
}

func TestRemove(t *testing.T) {
	rec := state.NewRecord("ada", []string{"Go", "Rust", "Python"})
	env, _, out := newEnv(rec)

	res, err := Apply(env, parse(t, "--remove", "Rust"))
	require.NoError(t, err)
	assert.Equal(t, Handled, res)
	assert.Equal(t, []string{"Go", "Python"}, rec.Languages)
	assert.Equal(t, []string{"Go", "Python"}, rec.Bag)
	assert.Equal(t, "The Rust language has been successfully removed!\n", out.String())

	out.Reset()
	res, err = Apply(env, parse(t, "-r", "COBOL"))
	require.NoError(t, err)
	assert.Equal(t, Handled, res)
	assert.Equal(t, []string{"Go", "Python"}, rec.Languages)
	assert.Equal(t, []string{"Go", "Python"}, rec.Bag)
	assert.Equal(t, "The COBOL language is not in the list!\n", out.String())
}

func TestListHidesBag(t *testing.T) {
	rec := state.NewRecord("ada", []string{"Go", "Rust", "Python"})
	rec.Bag = []string{"Python"}
	env, _, out := newEnv(rec)

	res, err := Apply(env, parse(t, "-l"))
	require.NoError(t, err)
	assert.Equal(t, Handled, res)
	assert.Equal(t, "Go, Rust, Python\n", out.String())
}

func TestFlagsRunInFixedOrder(t *testing.T) {
	rec := state.NewRecord("ada", []string{"Go"})
	env, _, out := newEnv(rec)

	res, err := Apply(env, parse(t, "--list", "--remove", "Go", "--add", "Zig", "--username", "grace"))
	require.NoError(t, err)
	assert.Equal(t, Handled, res)
	assert.Equal(t,
		"Username successfully updated: grace\n"+
			"The Zig language has been successfully added!\n"+
			"The Go language has been successfully removed!\n"+
			"Zig\n",
		out.String())
}

func TestResetExistingState(t *testing.T) {
	rec := state.NewRecord("ada", []string{"Go"})
	env, store, out := newEnv(rec)

	res, err := Apply(env, parse(t, "--add", "Zig", "--reset"))
	require.NoError(t, err)
	assert.Equal(t, Exit, res)
	assert.Contains(t, out.String(), "Persistent data successfully removed!\n")

	exists, err := store.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Zero(t, store.Saves)
}

func TestResetWithoutState(t *testing.T) {
	env, _, out := newEnv(nil)
	env.Store = state.NewMemoryStore(nil)

	cmd, ok := GetCommand("reset")
	require.True(t, ok)
	res, err := cmd.Execute(env, parse(t, "--reset"))
	require.NoError(t, err)
	assert.Equal(t, Exit, res)
	assert.Equal(t, "No persistent data to remove.\n", out.String())
}

type failingStore struct{ state.MemoryStore }

func (failingStore) Remove() (bool, error) { return false, errors.New("disk on fire") }

func TestResetError(t *testing.T) {
	env, _, _ := newEnv(state.NewRecord("ada", []string{"Go"}))
	env.Store = &failingStore{}

	res, err := Apply(env, parse(t, "--reset"))
	assert.Equal(t, Exit, res)
	assert.ErrorContains(t, err, "--reset: disk on fire")
}

func TestApplyLogsFlags(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	env, _, _ := newEnv(state.NewRecord("ada", []string{"Go"}))
	env.Logger = zap.New(core)

	_, err := Apply(env, parse(t, "--list"))
	require.NoError(t, err)

	entries := logs.FilterMessage("applying flag").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "list", entries[0].ContextMap()["flag"])
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "handled", Handled.String())
	assert.Equal(t, "exit", Exit.String())
	assert.Equal(t, "Result(9)", Result(9).String())
}
