// Package setup runs the first-run flow that creates the saved state.
package setup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/advent-of-random/app"
	"github.com/Guerrilla-Interactive/advent-of-random/app/screens/shared"
)

// Answers is what the user typed during setup.
type Answers struct {
	Username  string
	Languages []string
	Cancelled bool
}

// Model is the bubbletea model for the interactive setup.
type Model struct {
	CurrentScreen  app.Screen
	UsernameInput  textinput.Model
	LanguagesInput textinput.Model
	Status         string
	answers        Answers
}

// NewModel returns a model focused on the username prompt.
func NewModel() Model {
	username := textinput.New()
	username.Placeholder = "ada"
	username.CharLimit = 64
	username.Prompt = "> "
	username.Focus()

	languages := textinput.New()
	languages.Placeholder = "Go, Rust, Python"
	languages.Prompt = "> "

	return Model{
		CurrentScreen:  app.ScreenUsername,
		UsernameInput:  username,
		LanguagesInput: languages,
	}
}

// Answers returns the collected input once the program has quit.
func (m Model) Answers() Answers { return m.answers }

func (m Model) Init() tea.Cmd {
	return cursor.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.answers = Answers{Cancelled: true}
			m.CurrentScreen = app.ScreenDone
			return m, tea.Quit
		case tea.KeyEnter:
			switch m.CurrentScreen {
			case app.ScreenUsername:
				return UpdateScreenUsername(m)
			case app.ScreenLanguages:
				return UpdateScreenLanguages(m)
			}
		}
	}

	var cmd tea.Cmd
	switch m.CurrentScreen {
	case app.ScreenUsername:
		m.UsernameInput, cmd = m.UsernameInput.Update(msg)
	case app.ScreenLanguages:
		m.LanguagesInput, cmd = m.LanguagesInput.Update(msg)
	}
	return m, cmd
}

// UpdateScreenUsername validates the username and moves on to the language prompt.
func UpdateScreenUsername(m Model) (Model, tea.Cmd) {
	name := strings.TrimSpace(m.UsernameInput.Value())
	if name == "" {
		m.Status = "Please enter a username."
		return m, nil
	}
	m.answers.Username = name
	m.UsernameInput.Blur()
	m.LanguagesInput.Focus()
	m.CurrentScreen = app.ScreenLanguages
	m.Status = ""
	return m, cursor.Blink
}

// UpdateScreenLanguages validates the language list and ends the program.
func UpdateScreenLanguages(m Model) (Model, tea.Cmd) {
	langs := ParseLanguages(m.LanguagesInput.Value())
	if len(langs) == 0 {
		m.Status = "Please enter at least one language."
		return m, nil
	}
	m.answers.Languages = langs
	m.LanguagesInput.Blur()
	m.CurrentScreen = app.ScreenDone
	return m, tea.Quit
}

func (m Model) View() string {
	if m.CurrentScreen == app.ScreenDone {
		return ""
	}

	var b strings.Builder
	b.WriteString(app.TitleStyle.Render("Advent of Random") + "\n\n")

	switch m.CurrentScreen {
	case app.ScreenUsername:
		b.WriteString("Please choose a username:\n")
		b.WriteString(m.UsernameInput.View())
	case app.ScreenLanguages:
		b.WriteString(fmt.Sprintf("Welcome to Advent of Random %s!\n", app.HighlightStyle.Render(m.answers.Username)))
		b.WriteString("What languages do you want me to pick from? (comma separated)\n")
		b.WriteString(m.LanguagesInput.View())
	}

	if m.Status != "" {
		b.WriteString("\n" + app.ErrorStyle.Render(m.Status))
	}
	b.WriteString("\n\n" + shared.Footer("Enter confirm", "Esc cancel"))

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String()) + "\n"
}

// ParseLanguages splits a comma separated list, trims every entry and drops
// empty entries and duplicates.
func ParseLanguages(input string) []string {
	seen := make(map[string]bool)
	langs := make([]string, 0)
	for _, part := range strings.Split(input, ",") {
		lang := strings.TrimSpace(part)
		if lang == "" || seen[lang] {
			continue
		}
		seen[lang] = true
		langs = append(langs, lang)
	}
	return langs
}
