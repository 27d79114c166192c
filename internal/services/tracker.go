package services

import (
	"context"
	"encoding/json"
	"fmt"

	"jiractl/internal/config"
	"jiractl/internal/domain"
	"jiractl/internal/logging"
	"jiractl/internal/ports"
)

const (
	boardsPageSize  = 100
	sprintsPageSize = 100
)

// TrackerService exposes the Jira operations behind the prompts.
// Every operation makes one remote call; failures are reported on the
// terminal and turned into nil (or false) results, never into errors.
type TrackerService struct {
	clipboard ports.Clipboard
	config    *config.Config
	status    ports.StatusReporter
	tracker   ports.IssueTracker
}

// NewTrackerService creates a new TrackerService. clipboard may be nil.
func NewTrackerService(
	tracker ports.IssueTracker,
	status ports.StatusReporter,
	clipboard ports.Clipboard,
	cfg *config.Config,
) *TrackerService {
	return &TrackerService{
		clipboard: clipboard,
		config:    cfg,
		status:    status,
		tracker:   tracker,
	}
}

// SupportsSprints reports whether sprint calls make sense for the board
func (s *TrackerService) SupportsSprints(board *domain.Board) bool {
	return board != nil && board.SupportsSprints()
}

// BrowseURL returns the web URL of a ticket
func (s *TrackerService) BrowseURL(ticketID string) string {
	return s.config.BrowseURL(ticketID)
}

// GetTicket fetches a ticket and sets its browse URL.
// The URL is copied to the clipboard when enabled.
func (s *TrackerService) GetTicket(ctx context.Context, ticketID string) *domain.Ticket {
	var ticket *domain.Ticket
	err := s.status.Run(ctx, fmt.Sprintf("Getting ticket %s...", ticketID), func(ctx context.Context) error {
		var err error
		ticket, err = s.tracker.FindIssue(ctx, ticketID)
		return err
	})
	if err == nil && ticket == nil {
		err = &domain.RemoteError{Errors: []string{"empty response"}}
	}
	if err != nil {
		s.reportFailure(ctx, fmt.Sprintf("An error occurred while getting the ticket %s!", ticketID), err)
		return nil
	}

	ticket.URL = s.BrowseURL(ticketID)

	message := fmt.Sprintf("Ticket %s retrieved", ticketID)
	if !s.config.CopyToClipboard || s.clipboard == nil {
		s.status.Succeed(message)
		return ticket
	}

	if err := s.clipboard.WriteAll(ticket.URL); err != nil {
		logging.Logger.Warn("Failed to copy ticket URL", "url", ticket.URL, "error", err)
		s.status.Succeed(message)
		s.status.Warn(fmt.Sprintf("Unable to copy the URL to your clipboard: %v", err))
		return ticket
	}

	s.status.Succeed(message + " (the URL to the ticket has been copied in your clipboard)")
	return ticket
}

// GetBoard fetches a board
func (s *TrackerService) GetBoard(ctx context.Context, boardID int) *domain.Board {
	var board *domain.Board
	err := s.status.Run(ctx, fmt.Sprintf("Getting board %d...", boardID), func(ctx context.Context) error {
		var err error
		board, err = s.tracker.GetBoard(ctx, boardID)
		return err
	})
	if err != nil {
		s.reportFailure(ctx, fmt.Sprintf("An error occurred while getting the board %d!", boardID), err)
		return nil
	}

	s.status.Succeed("")
	return board
}

// ListBoards fetches the first boards visible to the user.
// It returns nil when the call fails and an empty slice when there is no board.
func (s *TrackerService) ListBoards(ctx context.Context) []domain.Board {
	var page *ports.BoardPage
	err := s.status.Run(ctx, "Getting the list of boards...", func(ctx context.Context) error {
		var err error
		page, err = s.tracker.GetAllBoards(ctx, 0, boardsPageSize)
		return err
	})
	if err != nil {
		s.reportFailure(ctx, "An error occurred while getting the list of boards!", err)
		return nil
	}
	if page == nil {
		page = &ports.BoardPage{}
	}

	s.status.Succeed(countMessage(len(page.Values), page.Total, "board"))
	if page.Values == nil {
		return []domain.Board{}
	}
	return page.Values
}

// GetActiveSprint returns the active sprint of a board, nil when there is none
func (s *TrackerService) GetActiveSprint(ctx context.Context, boardID int) *domain.Sprint {
	var page *ports.SprintPage
	err := s.status.Run(ctx, fmt.Sprintf("Getting active sprint for board %d...", boardID), func(ctx context.Context) error {
		var err error
		page, err = s.tracker.GetAllSprints(ctx, boardID, 0, 1, domain.SprintActive)
		return err
	})
	if err != nil {
		s.reportFailure(ctx, fmt.Sprintf("An error occurred while getting the active sprint for the board %d!", boardID), err)
		return nil
	}

	s.status.Succeed("")
	if page == nil || len(page.Values) == 0 {
		return nil
	}
	activeSprint := page.Values[0]
	return &activeSprint
}

// ListFutureSprints returns the sprints of a board that have not started yet
func (s *TrackerService) ListFutureSprints(ctx context.Context, boardID int) []domain.Sprint {
	var page *ports.SprintPage
	err := s.status.Run(ctx, fmt.Sprintf("Getting future sprints for board %d...", boardID), func(ctx context.Context) error {
		var err error
		page, err = s.tracker.GetAllSprints(ctx, boardID, 0, sprintsPageSize, domain.SprintFuture)
		return err
	})
	if err != nil {
		s.reportFailure(ctx, fmt.Sprintf("An error occurred while getting the future sprints for the board %d!", boardID), err)
		return nil
	}
	if page == nil {
		page = &ports.SprintPage{}
	}

	s.status.Succeed(countMessage(len(page.Values), page.Total, "future sprint"))
	return page.Values
}

// GetProject fetches a project with its issue types
func (s *TrackerService) GetProject(ctx context.Context, projectID string) *domain.Project {
	var project *domain.Project
	err := s.status.Run(ctx, fmt.Sprintf("Getting project %s...", projectID), func(ctx context.Context) error {
		var err error
		project, err = s.tracker.GetProject(ctx, projectID)
		return err
	})
	if err != nil {
		s.reportFailure(ctx, fmt.Sprintf("An error occurred while getting the project %s!", projectID), err)
		return nil
	}

	s.status.Succeed("")
	return project
}

// CreateTicket creates a ticket and, when a sprint is given, moves it there.
// A failed move only warns: the created ticket is still returned.
func (s *TrackerService) CreateTicket(ctx context.Context, input domain.NewTicket) *domain.Ticket {
	fields := ports.IssueFields{
		Assignee:    input.Assignee,
		Description: input.Description,
		IssueTypeID: input.IssueTypeID,
		Labels:      domain.ParseLabels(input.Labels),
		ProjectID:   input.ProjectID,
		Summary:     input.Summary,
	}

	var ticket *domain.Ticket
	err := s.status.Run(ctx, fmt.Sprintf("Creating ticket %q...", input.Summary), func(ctx context.Context) error {
		var err error
		ticket, err = s.tracker.AddNewIssue(ctx, fields)
		return err
	})
	if err == nil && ticket == nil {
		err = &domain.RemoteError{Errors: []string{"empty response"}}
	}
	if err != nil {
		s.reportFailure(ctx, "An error occurred while creating the ticket!", err)
		return nil
	}

	s.status.Succeed(fmt.Sprintf("Ticket %s created!", ticket.Key))
	logging.Logger.Info("Ticket created", "key", ticket.Key, "project", input.ProjectID)

	if input.SprintID != 0 {
		if !s.MoveTicketToSprint(ctx, ticket.Key, input.SprintID) {
			s.status.Warn(fmt.Sprintf("Unable to move %s to sprint %d", ticket.Key, input.SprintID))
		}
	}

	return ticket
}

// MoveTicketToSprint moves a ticket to a sprint and reports whether it worked
func (s *TrackerService) MoveTicketToSprint(ctx context.Context, ticketID string, sprintID int) bool {
	err := s.status.Run(ctx, fmt.Sprintf("Moving ticket %s to sprint %d...", ticketID, sprintID), func(ctx context.Context) error {
		return s.tracker.AddIssueToSprint(ctx, ticketID, sprintID)
	})
	if err != nil {
		s.reportFailure(ctx, fmt.Sprintf("An error occurred while moving the ticket %s to the sprint %d!", ticketID, sprintID), err)
		return false
	}

	s.status.Succeed("")
	return true
}

// GetCurrentUser fetches the authenticated user
func (s *TrackerService) GetCurrentUser(ctx context.Context) *domain.User {
	var user *domain.User
	err := s.status.Run(ctx, "Getting your user...", func(ctx context.Context) error {
		var err error
		user, err = s.tracker.GetCurrentUser(ctx)
		return err
	})
	if err != nil {
		s.reportFailure(ctx, "An error occurred while getting your user!", err)
		return nil
	}

	s.status.Succeed("")
	return user
}

// reportFailure prints the failure and the remote status and errors.
// Nothing is printed once ctx is done.
func (s *TrackerService) reportFailure(ctx context.Context, message string, err error) {
	if ctx.Err() != nil {
		logging.Logger.Debug("Call interrupted", "message", message, "error", ctx.Err())
		return
	}

	remoteErr := domain.AsRemoteError(err)

	s.status.Fail(message)

	payload, marshalErr := json.Marshal(remoteErr.Errors)
	if marshalErr != nil {
		payload = []byte(fmt.Sprintf("%q", remoteErr.Errors))
	}
	s.status.Error(fmt.Sprintf("%d %s", remoteErr.StatusCode, payload))

	logging.Logger.Error(message,
		"status_code", remoteErr.StatusCode,
		"errors", remoteErr.Errors)
}

// countMessage formats "N (on TOTAL) things found"
func countMessage(count, total int, noun string) string {
	if total == 0 {
		total = count
	}
	if count > 1 {
		noun += "s"
	}
	return fmt.Sprintf("%d (on %d) %s found", count, total, noun)
}
