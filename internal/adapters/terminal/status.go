package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"jiractl/internal/logging"
	"jiractl/internal/ports"
	"jiractl/internal/theme"
)

// Status symbols
const (
	SymbolFail    = "✖"
	SymbolSucceed = "✔"
	SymbolWarn    = "⚠"
)

// StatusReporter implements ports.StatusReporter with a huh spinner
type StatusReporter struct {
	animate bool
	console *log.Logger
	out     io.Writer
	title   string
}

var _ ports.StatusReporter = (*StatusReporter)(nil)

// NewStatusReporter writes status lines to out and console errors to errOut.
// The spinner only animates when out is a terminal.
func NewStatusReporter(out, errOut io.Writer) *StatusReporter {
	return &StatusReporter{
		animate: isTerminal(out),
		console: log.NewWithOptions(errOut, log.Options{ReportTimestamp: false}),
		out:     out,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Run shows a spinner while action runs
func (r *StatusReporter) Run(ctx context.Context, title string, action func(ctx context.Context) error) error {
	r.title = title
	logging.Logger.Debug("Running action", "title", title)

	if !r.animate {
		return action(ctx)
	}

	var actionErr error
	err := spinner.New().
		Type(spinner.Dots).
		Style(theme.SpinnerStyle).
		Title(" " + title).
		Context(ctx).
		Output(r.out).
		Action(func() {
			actionErr = action(ctx)
		}).
		Run()
	if err != nil {
		return err
	}
	return actionErr
}

// Succeed prints a success line, defaulting to the last title
func (r *StatusReporter) Succeed(message string) {
	r.printStatus(SymbolSucceed, theme.SucceedStyle.Render(SymbolSucceed), message, false)
}

// Fail prints a failure line, defaulting to the last title
func (r *StatusReporter) Fail(message string) {
	r.printStatus(SymbolFail, theme.FailStyle.Render(SymbolFail), message, true)
}

// Warn prints a warning line, defaulting to the last title
func (r *StatusReporter) Warn(message string) {
	r.printStatus(SymbolWarn, theme.WarnStyle.Render(SymbolWarn), message, true)
}

func (r *StatusReporter) printStatus(symbol, styledSymbol, message string, highlight bool) {
	if message == "" {
		message = r.title
	}
	if highlight {
		switch symbol {
		case SymbolFail:
			message = theme.FailStyle.Render(message)
		case SymbolWarn:
			message = theme.WarnStyle.Render(message)
		}
	}
	fmt.Fprintf(r.out, "%s %s\n", styledSymbol, message)
}

// Error writes an error line on the console
func (r *StatusReporter) Error(message string) {
	r.console.Error(message)
}
