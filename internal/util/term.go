package util

import (
	"os"

	"github.com/fatih/color"
)

// IsTTY reports whether stdout is attached to a terminal. It decides
// between the interactive shelf browser and plain command output, and
// whether colored output makes sense at all.
func IsTTY() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// InitColor turns colored output off when the user asked for --no-color
// or when stdout is piped somewhere that won't render escape codes.
func InitColor(noColor bool) {
	if noColor || !IsTTY() {
		color.NoColor = true
	}
}
