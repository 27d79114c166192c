package terminal

import (
	"errors"

	"github.com/atotto/clipboard"

	"jiractl/internal/ports"
)

// Clipboard implements ports.Clipboard with the system clipboard
type Clipboard struct{}

var _ ports.Clipboard = (*Clipboard)(nil)

// NewClipboard creates a new Clipboard
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// WriteAll replaces the clipboard content
func (c *Clipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}
