// Package printer holds the CLI's colored status output and text tables.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

func init() {
	// NO_COLOR disables color even on a terminal.
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	bold   = color.New(color.Bold)
)

func Success(format string, a ...any) {
	green.Printf("✓ %s", fmt.Sprintf(format, a...))
}

func Info(format string, a ...any) {
	fmt.Printf(format, a...)
}

func Warning(format string, a ...any) {
	yellow.Fprintf(os.Stderr, "! %s", fmt.Sprintf(format, a...))
}

func Step(format string, a ...any) {
	cyan.Printf("→ %s", fmt.Sprintf(format, a...))
}

// Error prints title, explanation and suggestions to stderr and returns an
// error carrying only the title, for cobra to exit on.
func Error(title, explanation string, suggestions []string) error {
	writeError(os.Stderr, title, explanation, suggestions)
	return fmt.Errorf("%s", title)
}

func writeError(w io.Writer, title, explanation string, suggestions []string) {
	red.Fprintf(w, "%s\n\n", title)
	if explanation != "" {
		fmt.Fprintf(w, "%s\n", explanation)
	}
	switch len(suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(w, "\n%s\n", suggestions[0])
	default:
		fmt.Fprintf(w, "\nEither:\n")
		for i, s := range suggestions {
			fmt.Fprintf(w, "  %d. %s\n", i+1, s)
		}
	}
}
