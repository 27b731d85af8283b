package cli

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	colorHeading = color.New(color.FgCyan, color.Bold)
	colorSuccess = color.New(color.FgGreen)
	colorError   = color.New(color.FgRed)
	colorWarn    = color.New(color.FgYellow)
	colorMuted   = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func wrapWidth() int {
	width := termWidth() - 2
	if width > 100 {
		width = 100
	}
	if width < 20 {
		width = 20
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}
