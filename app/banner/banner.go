// Package banner renders the framed message announcing the day's language.
package banner

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// PartOfDay maps an hour (0-23) to the greeting bucket.
func PartOfDay(hour int) string {
	switch {
	case hour >= 4 && hour <= 11:
		return "morning"
	case hour >= 12 && hour <= 17:
		return "afternoon"
	case hour >= 18 && hour <= 22:
		return "evening"
	default:
		return "night"
	}
}

// Lines returns the four message lines, uncentered.
func Lines(username, language string, now time.Time) []string {
	return []string{
		fmt.Sprintf("Good %s %s!", PartOfDay(now.Hour()), username),
		"I hope you are ready for today's challenge!",
		fmt.Sprintf("Today, you'll have to program in... %s!", language),
		"Good luck!",
	}
}

// Center pads every line to the width of the widest one. When the padding is
// odd the extra space goes after the line. Widths are terminal cells.
func Center(lines []string) []string {
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		pad := width - lipgloss.Width(l)
		before := pad / 2
		after := pad - before
		out[i] = strings.Repeat(" ", before) + l + strings.Repeat(" ", after)
	}
	return out
}

// Render frames the day's message with art.
func Render(username, language string, now time.Time, art Art) string {
	text := Center(Lines(username, language, now))
	width := lipgloss.Width(text[0])
	blank := strings.Repeat(" ", width)

	rows := make([]string, 0, len(art.Side)+2)
	for i, side := range art.Side {
		content := blank
		if k := i - art.TextRow; k >= 0 && k < len(text) {
			content = text[k]
		}
		rows = append(rows, ".   "+content+side)
	}

	border := art.border(width + 4 + art.sideWidth())
	rows = append([]string{border}, rows...)
	rows = append(rows, border)
	return strings.Join(rows, "\n")
}

// Art is a piece of ASCII decoration drawn to the right of the message.
type Art struct {
	Name string
	// Side rows all share the same width and end with the frame edge.
	Side []string
	// TextRow is the index in Side where the first message line is drawn.
	TextRow int
	// Pattern is tiled to build the top and bottom borders.
	Pattern string
}

func (a Art) sideWidth() int {
	return lipgloss.Width(a.Side[0])
}

func (a Art) border(width int) string {
	tiled := strings.Repeat(a.Pattern, width/len(a.Pattern)+1)
	return tiled[:width-1] + "."
}

// Snowflake is the default decoration.
var Snowflake = Art{
	Name:    "snowflake",
	TextRow: 3,
	Pattern: ".:*~*:._",
	Side: []string{
		`                  .`,
		`      .      .    .`,
		`      _\/  \/_    .`,
		`       _\/\/_     .`,
		`   _\_\_\/\/_/_/_ .`,
		`    / /_/\/\_\ \  .`,
		`       _/\/\_     .`,
		`       /\  /\     .`,
		`      '      '    .`,
		`                  .`,
	},
}

// Tree is a small decorated fir.
var Tree = Art{
	Name:    "tree",
	TextRow: 3,
	Pattern: ".+*+",
	Side: []string{
		`                  .`,
		`         *        .`,
		`        /.\       .`,
		`       /..'\      .`,
		`       /'.'\      .`,
		`      /.''.'\     .`,
		`      /.'.'.\     .`,
		`     /'.''.'.\    .`,
		`     ^^^[_]^^^    .`,
		`                  .`,
	},
}

// Arts lists every decoration in display order.
var Arts = []Art{Snowflake, Tree}

// Lookup returns the art registered under name.
func Lookup(name string) (Art, bool) {
	for _, a := range Arts {
		if a.Name == name {
			return a, true
		}
	}
	return Art{}, false
}

// Choose resolves an art name; "random" draws one of Arts with rng.
// Unknown names fall back to Snowflake.
func Choose(name string, rng *rand.Rand) Art {
	if name == "random" {
		return Arts[rng.IntN(len(Arts))]
	}
	if a, ok := Lookup(name); ok {
		return a
	}
	return Snowflake
}
