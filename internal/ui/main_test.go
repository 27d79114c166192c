package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	// Plain text output so assertions do not depend on the terminal
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}
