package util_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/shelfsync/shelfsync/internal/util"
)

func TestInitColor_Disable(t *testing.T) {
	prev := color.NoColor
	defer func() { color.NoColor = prev }()

	util.InitColor(true)
	if !color.NoColor {
		t.Error("InitColor(true) should disable color")
	}
}
