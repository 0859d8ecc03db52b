package setup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/advent-of-random/app/state"
)

// Prompter collects the setup answers.
type Prompter func(in io.Reader, out io.Writer) (Answers, error)

// RunInteractive asks the questions through a bubbletea program.
func RunInteractive(in io.Reader, out io.Writer) (Answers, error) {
	p := tea.NewProgram(NewModel(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return Answers{}, fmt.Errorf("setup prompt failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Answers{}, fmt.Errorf("setup prompt returned unexpected model %T", final)
	}
	return m.Answers(), nil
}

// RunPlain asks the questions line by line, for when stdin is not a terminal.
// Empty answers are asked again; running out of input cancels setup.
func RunPlain(in io.Reader, out io.Writer) (Answers, error) {
	scanner := bufio.NewScanner(in)
	ask := func(question string) (string, bool, error) {
		fmt.Fprintf(out, "%s\n\t", question)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return "", false, scanner.Err()
		}
		return scanner.Text(), true, nil
	}

	var answers Answers
	for answers.Username == "" {
		line, ok, err := ask("Please choose a username:")
		if err != nil {
			return Answers{}, fmt.Errorf("failed to read username: %w", err)
		}
		if !ok {
			return Answers{Cancelled: true}, nil
		}
		answers.Username = strings.TrimSpace(line)
	}
	fmt.Fprintf(out, "Welcome to Advent of Random %s!\n", answers.Username)

	for len(answers.Languages) == 0 {
		line, ok, err := ask("What languages do you want me to pick from? (comma separated)")
		if err != nil {
			return Answers{}, fmt.Errorf("failed to read languages: %w", err)
		}
		if !ok {
			return Answers{Cancelled: true}, nil
		}
		answers.Languages = ParseLanguages(line)
	}
	return answers, nil
}

// ErrCancelled is returned by Run when the user aborted the prompts.
var ErrCancelled = errors.New("setup cancelled")

// Run collects the answers, saves the initial record and prints a summary.
func Run(store state.Store, prompt Prompter, in io.Reader, out io.Writer, logger *zap.Logger) (*state.Record, error) {
	answers, err := prompt(in, out)
	if err != nil {
		return nil, err
	}
	if answers.Cancelled {
		return nil, ErrCancelled
	}

	rec := state.NewRecord(answers.Username, answers.Languages)
	if err := store.Save(rec); err != nil {
		return nil, err
	}
	logger.Debug("setup saved",
		zap.String("path", store.Path()),
		zap.Strings("languages", rec.Languages))

	PrintSummary(out, rec)
	return rec, nil
}

// PrintSummary tells the user what was saved.
func PrintSummary(out io.Writer, rec *state.Record) {
	rule := strings.Repeat("-", 26)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "Setup successfully finished with the following languages:")
	fmt.Fprintf(out, "\t%s\n", strings.Join(rec.Languages, ", "))
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "Launch the script once a day to know your language for the day ;)")
	fmt.Fprintln(out, "Good luck!")
}
