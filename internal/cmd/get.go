package cmd

import (
	"context"
	"fmt"
	"strings"
)

// GetCmd shows one ticket without entering the interactive prompt
type GetCmd struct {
	Ticket string `arg:"" help:"Ticket key (e.g. PROJ-123)"`
}

// Run executes the get command
func (g *GetCmd) Run(cli *CLI, ctx context.Context) error {
	ticketID := strings.TrimSpace(g.Ticket)
	if ticketID == "" {
		return fmt.Errorf("ticket key cannot be empty")
	}

	container, err := cli.Connect(ctx, false, cli.stdout())
	if err != nil {
		return err
	}

	ticket := container.Tracker.GetTicket(ctx, ticketID)
	if ticket == nil {
		return fmt.Errorf("ticket %s could not be retrieved", ticketID)
	}

	fmt.Fprintln(cli.stdout())
	container.NewTicketView().Display(ticket)
	return nil
}
