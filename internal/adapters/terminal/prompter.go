package terminal

import (
	"errors"

	"github.com/charmbracelet/huh"

	"jiractl/internal/domain"
	"jiractl/internal/ports"
)

// Prompter implements ports.Prompter with single-field huh forms
type Prompter struct {
	accessible bool
	theme      *huh.Theme
}

var _ ports.Prompter = (*Prompter)(nil)

// NewPrompter creates a new Prompter. Accessible mode replaces the
// interactive widgets with plain line prompts.
func NewPrompter(accessible bool) *Prompter {
	return &Prompter{
		accessible: accessible,
		theme:      huh.ThemeCharm(),
	}
}

// Input asks for free text
func (p *Prompter) Input(title, description string) (string, error) {
	var value string

	field := huh.NewInput().
		Title(title).
		Value(&value)
	if description != "" {
		field = field.Description(description)
	}

	if err := p.run(field); err != nil {
		return "", err
	}
	return value, nil
}

// Select asks to pick one option. selected is preselected when it matches an option value.
func (p *Prompter) Select(title string, options []ports.Option, selected string) (string, error) {
	value := selected

	huhOptions := make([]huh.Option[string], 0, len(options))
	for _, option := range options {
		huhOptions = append(huhOptions, huh.NewOption(option.Label, option.Value))
	}

	field := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&value)

	if err := p.run(field); err != nil {
		return "", err
	}
	return value, nil
}

func (p *Prompter) run(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(p.accessible).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return domain.ErrAborted
	}
	return err
}
