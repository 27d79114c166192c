package ports

// Option is one choice of a Select prompt
type Option struct {
	Label string
	Value string
}

// Prompter asks the user for values, one prompt at a time.
// Implementations return domain.ErrAborted when the user cancels.
type Prompter interface {
	Input(title, description string) (string, error)
	Select(title string, options []Option, selected string) (string, error)
}
