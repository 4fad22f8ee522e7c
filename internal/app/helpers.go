package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/shelfsync/shelfsync/internal/collection"
)

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

// statusFromArg resolves a user-supplied shelf name: wire values, display
// names and short aliases are all accepted.
func statusFromArg(s string) (collection.Status, error) {
	if st := collection.Status(s); st.Valid() {
		return st, nil
	}
	if st, ok := collection.StatusFromDisplay(s); ok {
		return st, nil
	}
	switch s {
	case "want", "want-to-read", "wishlist":
		return collection.StatusWantToRead, nil
	case "reading", "current":
		return collection.StatusReading, nil
	case "read", "done", "finished":
		return collection.StatusRead, nil
	}
	return "", fmt.Errorf("unknown shelf %q (want, reading, read)", s)
}

// loadCollection fills the store from the server, warning about any
// records that were skipped.
func loadCollection() error {
	dropped, err := ctrl.Reload()
	if err != nil {
		return fmt.Errorf("loading collection: %w", err)
	}
	if dropped > 0 {
		warn("skipped %d record(s) with an unknown shelf", dropped)
	}
	return nil
}
