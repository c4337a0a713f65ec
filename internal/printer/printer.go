// Package printer writes colored command feedback.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	faint  = color.New(color.Faint)
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects printer output. Tests use it to capture text.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
}

// Success prints a success message in green with a checkmark prefix.
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprint(stdout, msg)
}

// Info prints an informational message in the default color.
func Info(format string, a ...any) {
	fmt.Fprintf(stdout, format, a...)
}

// Warning prints a warning message in yellow.
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "!") {
		msg = "! " + msg
	}
	yellow.Fprint(stderr, msg)
}

// Heading prints a section heading in cyan.
func Heading(format string, a ...any) {
	cyan.Fprintf(stdout, format, a...)
}

// Dim prints secondary text.
func Dim(format string, a ...any) {
	faint.Fprintf(stdout, format, a...)
}

// Error prints a titled error with suggestions to stderr and returns a
// plain error for cobra.
func Error(title, explanation string, suggestions ...string) error {
	red.Fprintf(stderr, "%s\n", title)
	if explanation != "" {
		fmt.Fprintf(stderr, "\n%s\n", explanation)
	}

	switch len(suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(stderr, "\n%s\n", suggestions[0])
	default:
		fmt.Fprintf(stderr, "\nEither:\n")
		for i, s := range suggestions {
			fmt.Fprintf(stderr, "  %d. %s\n", i+1, s)
		}
	}

	return fmt.Errorf("%s", title)
}
