package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"jiractl/internal/domain"
	"jiractl/internal/logging"
	"jiractl/internal/ports"
	"jiractl/internal/services"
)

// Menu actions
const (
	ActionCreateTicket = "createTicket"
	ActionGetTicket    = "getTicket"
	ActionQuit         = "quit"
)

// noSprint is the sprint option value meaning "do not assign"
const noSprint = "0"

var actionOptions = []ports.Option{
	{Label: "Create a ticket", Value: ActionCreateTicket},
	{Label: "Get a ticket", Value: ActionGetTicket},
	{Label: "Quit", Value: ActionQuit},
}

// App runs the interactive menu loop
type App struct {
	debug    bool
	out      io.Writer
	prompter ports.Prompter
	session  Session
	status   ports.StatusReporter
	tracker  *services.TrackerService
	view     *TicketView
}

// NewApp creates a new App
func NewApp(
	tracker *services.TrackerService,
	prompter ports.Prompter,
	status ports.StatusReporter,
	view *TicketView,
	out io.Writer,
	debug bool,
) *App {
	return &App{
		debug:    debug,
		out:      out,
		prompter: prompter,
		status:   status,
		tracker:  tracker,
		view:     view,
	}
}

// Session returns a copy of the loop state
func (a *App) Session() Session {
	return a.session
}

// Start loads the current user and the boards, and selects defaultBoard
// when it is set. It fails with domain.ErrCurrentUserNotFound when the
// current user cannot be fetched.
func (a *App) Start(ctx context.Context, defaultBoard int) error {
	user := a.tracker.GetCurrentUser(ctx)
	if user == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		return domain.ErrCurrentUserNotFound
	}
	a.session.CurrentUser = user

	a.session.Boards = a.tracker.ListBoards(ctx)

	if defaultBoard != 0 {
		if !a.selectBoard(ctx, defaultBoard) {
			a.status.Warn(fmt.Sprintf("Unable to load the default board %d", defaultBoard))
		}
	}

	fmt.Fprintln(a.out)
	return nil
}

// Run shows the menu until the user quits. Aborting a prompt quits too.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, renderHeader(a.debug))
	fmt.Fprintln(a.out)

	previous := ActionCreateTicket
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := a.prompter.Select("What do you want to do?", actionOptions, previous)
		if errors.Is(err, domain.ErrAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to select an action: %w", err)
		}

		logging.Logger.Debug("Action selected", "action", action)
		fmt.Fprintln(a.out)

		switch action {
		case ActionCreateTicket:
			err = a.createTicket(ctx)
		case ActionGetTicket:
			err = a.getTicket(ctx)
		case ActionQuit:
			return nil
		}

		if errors.Is(err, domain.ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		previous = action
		fmt.Fprintln(a.out)
	}
}

// selectBoard loads a board with its project and, when supported, its
// sprints. The session is left untouched when the board cannot be loaded.
func (a *App) selectBoard(ctx context.Context, boardID int) bool {
	board := a.tracker.GetBoard(ctx, boardID)
	if board == nil {
		return false
	}

	a.session.clearBoard()
	a.session.Board = board

	if board.ProjectID != "" {
		a.session.Project = a.tracker.GetProject(ctx, board.ProjectID)
	}

	if a.tracker.SupportsSprints(board) {
		a.session.ActiveSprint = a.tracker.GetActiveSprint(ctx, board.ID)
		a.session.FutureSprints = a.tracker.ListFutureSprints(ctx, board.ID)
	}
	return true
}

func (a *App) createTicket(ctx context.Context) error {
	if len(a.session.Boards) == 0 {
		a.status.Warn("No board found, unable to create a ticket")
		return nil
	}

	boardID, err := a.promptBoard()
	if err != nil {
		return err
	}

	if a.session.Board == nil || a.session.Board.ID != boardID {
		if !a.selectBoard(ctx, boardID) {
			a.status.Warn(fmt.Sprintf("Unable to load the board %d", boardID))
			return nil
		}
		fmt.Fprintln(a.out)
	}

	project := a.session.Project
	if project == nil {
		a.status.Warn(fmt.Sprintf("No project found for the board %s, unable to create a ticket", a.session.Board.Name))
		return nil
	}
	if len(project.IssueTypes) == 0 {
		a.status.Warn(fmt.Sprintf("No issue type found in the project %s, unable to create a ticket", project.Name))
		return nil
	}

	summary, err := a.prompter.Input("Enter the title", "")
	if err != nil {
		return err
	}

	description, err := a.prompter.Input("Enter the description", "")
	if err != nil {
		return err
	}

	issueTypeID, err := a.promptIssueType(project)
	if err != nil {
		return err
	}

	labels, err := a.prompter.Input(
		"Do you want to set any label on this ticket?",
		"Comma separated list of labels, leave empty to ignore")
	if err != nil {
		return err
	}

	sprintID := 0
	if a.tracker.SupportsSprints(a.session.Board) {
		sprintID, err = a.promptSprint()
		if err != nil {
			return err
		}
	}

	created := a.tracker.CreateTicket(ctx, domain.NewTicket{
		Assignee:    a.session.CurrentUser,
		Description: description,
		IssueTypeID: issueTypeID,
		Labels:      labels,
		ProjectID:   project.ID,
		SprintID:    sprintID,
		Summary:     summary,
	})
	if created == nil || created.Key == "" {
		return nil
	}

	ticket := a.tracker.GetTicket(ctx, created.Key)
	if ticket != nil {
		fmt.Fprintln(a.out)
		a.view.Display(ticket)
	}
	return nil
}

func (a *App) getTicket(ctx context.Context) error {
	ticketID, err := a.prompter.Input("Enter the Jira ticket ID", "")
	if err != nil {
		return err
	}

	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		a.status.Warn("No ticket ID given")
		return nil
	}

	ticket := a.tracker.GetTicket(ctx, ticketID)
	if ticket != nil {
		fmt.Fprintln(a.out)
		a.view.Display(ticket)
	}
	return nil
}

// promptBoard asks for a board, the current one (or the first) preselected
func (a *App) promptBoard() (int, error) {
	options := make([]ports.Option, 0, len(a.session.Boards))
	for _, board := range a.session.Boards {
		options = append(options, ports.Option{Label: board.Name, Value: strconv.Itoa(board.ID)})
	}

	selected := options[0].Value
	if a.session.Board != nil {
		selected = strconv.Itoa(a.session.Board.ID)
	}

	value, err := a.prompter.Select("In which board do you want to create your issue?", options, selected)
	if err != nil {
		return 0, err
	}

	boardID, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid board id %q: %w", value, err)
	}
	return boardID, nil
}

func (a *App) promptIssueType(project *domain.Project) (string, error) {
	options := make([]ports.Option, 0, len(project.IssueTypes))
	for _, issueType := range project.IssueTypes {
		options = append(options, ports.Option{Label: issueType.Name, Value: issueType.ID})
	}

	return a.prompter.Select("Which type of ticket do you want to create?", options, options[0].Value)
}

// promptSprint asks for the sprint of the new ticket. The active sprint is
// preselected when there is one. 0 means no sprint.
func (a *App) promptSprint() (int, error) {
	options := []ports.Option{{Label: "Don't assign ticket to a sprint", Value: noSprint}}
	selected := noSprint

	if sprint := a.session.ActiveSprint; sprint != nil {
		value := strconv.Itoa(sprint.ID)
		options = append(options, ports.Option{Label: sprint.Name + " (current sprint)", Value: value})
		selected = value
	}
	for _, sprint := range a.session.FutureSprints {
		options = append(options, ports.Option{Label: sprint.Name, Value: strconv.Itoa(sprint.ID)})
	}

	value, err := a.prompter.Select("Do you want to assign your ticket to a sprint?", options, selected)
	if err != nil {
		return 0, err
	}

	sprintID, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid sprint id %q: %w", value, err)
	}
	return sprintID, nil
}
