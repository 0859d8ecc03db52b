package shared

import (
	"strings"

	"github.com/Guerrilla-Interactive/advent-of-random/app"
)

const footerSep = "  •  "

// Footer renders key hints on one line in the help style.
func Footer(hints ...string) string {
	if len(hints) == 0 {
		return ""
	}
	return app.HelpStyle.Render(strings.Join(hints, footerSep))
}
