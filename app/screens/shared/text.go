package shared

import "strings"

// WrapText breaks a single paragraph at spaces so no line is longer than
// width, unless one word alone already is.
func WrapText(s string, width int) string {
	words := strings.Fields(s)
	if width <= 0 || len(words) == 0 {
		return s
	}
	var b strings.Builder
	col := 0
	for _, w := range words {
		switch {
		case col == 0:
		case col+1+len(w) > width:
			b.WriteByte('\n')
			col = 0
		default:
			b.WriteByte(' ')
			col++
		}
		b.WriteString(w)
		col += len(w)
	}
	return b.String()
}
