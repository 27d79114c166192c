package ports

import "context"

// StatusReporter shows the progress of remote calls in the terminal
type StatusReporter interface {
	// Run shows a spinner with title while action runs and returns its error.
	// The title is kept as the default message of the next Succeed/Fail/Warn.
	Run(ctx context.Context, title string, action func(ctx context.Context) error) error
	Succeed(message string)
	Fail(message string)
	Warn(message string)

	// Error writes a console error line
	Error(message string)
}
