package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"jiractl/internal/domain"
)

// BoardsCmd lists the boards visible to the current user
type BoardsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// boardOutput is the JSON shape of a board
type boardOutput struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	ProjectKey      string           `json:"projectKey,omitempty"`
	ProjectName     string           `json:"projectName,omitempty"`
	SupportsSprints bool             `json:"supportsSprints"`
	Type            domain.BoardType `json:"type"`
}

// Run executes the boards command
func (b *BoardsCmd) Run(cli *CLI, ctx context.Context) error {
	// Keep stdout parseable when printing JSON
	statusOut := cli.stdout()
	if b.Format == "json" {
		statusOut = cli.stderr()
	}

	container, err := cli.Connect(ctx, false, statusOut)
	if err != nil {
		return err
	}

	boards := container.Tracker.ListBoards(ctx)
	fmt.Fprintln(statusOut)
	if boards == nil {
		return fmt.Errorf("boards could not be retrieved")
	}
	return writeBoards(cli.stdout(), boards, b.Format)
}

func writeBoards(w io.Writer, boards []domain.Board, format string) error {
	if format == "json" {
		output := make([]boardOutput, 0, len(boards))
		for _, board := range boards {
			output = append(output, boardOutput{
				ID:              board.ID,
				Name:            board.Name,
				ProjectKey:      board.ProjectKey,
				ProjectName:     board.ProjectName,
				SupportsSprints: board.SupportsSprints(),
				Type:            board.Type,
			})
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if len(boards) == 0 {
		fmt.Fprintln(w, "No board found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tPROJECT\tSPRINTS")
	for _, board := range boards {
		sprints := "no"
		if board.SupportsSprints() {
			sprints = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", board.ID, board.Name, board.Type, board.ProjectKey, sprints)
	}
	return tw.Flush()
}
