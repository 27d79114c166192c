package cmd

import (
	"context"

	"jiractl/internal/ui"
)

// RunCmd starts the interactive prompt
type RunCmd struct {
	Accessible bool `help:"Use plain line prompts instead of interactive widgets" env:"ACCESSIBLE"`
}

// Run executes the interactive loop
func (r *RunCmd) Run(cli *CLI, ctx context.Context) error {
	container, err := cli.Connect(ctx, r.Accessible, cli.stdout())
	if err != nil {
		return err
	}

	app := ui.NewApp(
		container.Tracker,
		container.Prompter,
		container.Status,
		container.NewTicketView(),
		cli.stdout(),
		cli.Debug,
	)

	if err := app.Start(ctx, container.Config.DefaultBoard); err != nil {
		return err
	}
	return app.Run(ctx)
}
