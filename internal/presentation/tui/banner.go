package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes a small colored title for interactive sessions.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	title := termenv.String(" dialogtree ").Bold().Foreground(p.Color("#f8fafc")).Background(p.Color("#6366f1"))
	hint := termenv.String(" type an option number, or 'exit' to leave").Foreground(p.Color("#a78bfa"))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s\n", title, hint)
	fmt.Fprintln(w)
}

// NumberStyle returns a decorator that highlights option numbers.
func NumberStyle() func(string) string {
	p := termenv.ColorProfile()
	return func(s string) string {
		return termenv.String(s).Bold().Foreground(p.Color("#c084fc")).String()
	}
}
