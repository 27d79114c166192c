package ports

import (
	"context"

	"jiractl/internal/domain"
)

// BoardPage is one page of boards
type BoardPage struct {
	Total  int // Total number of boards, 0 when the server did not say
	Values []domain.Board
}

// SprintPage is one page of sprints of a board
type SprintPage struct {
	Total  int
	Values []domain.Sprint
}

// IssueFields are the fields sent when creating an issue
type IssueFields struct {
	Assignee    *domain.User
	Description string
	IssueTypeID string
	Labels      []string // nil omits the field
	ProjectID   string
	Summary     string
}

// IssueReader reads issues and the entities around them
type IssueReader interface {
	FindIssue(ctx context.Context, issueID string) (*domain.Ticket, error)
	GetCurrentUser(ctx context.Context) (*domain.User, error)
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)
}

// IssueWriter creates issues and plans them into sprints
type IssueWriter interface {
	AddIssueToSprint(ctx context.Context, issueID string, sprintID int) error
	AddNewIssue(ctx context.Context, fields IssueFields) (*domain.Ticket, error)
}

// BoardReader queries agile boards and their sprints
type BoardReader interface {
	GetAllBoards(ctx context.Context, startAt, maxResults int) (*BoardPage, error)
	GetAllSprints(ctx context.Context, boardID, startAt, maxResults int, state domain.SprintState) (*SprintPage, error)
	GetBoard(ctx context.Context, boardID int) (*domain.Board, error)
}

// IssueTracker is the composite interface over the remote Jira API.
// Failed calls return a *domain.RemoteError.
type IssueTracker interface {
	BoardReader
	IssueReader
	IssueWriter
}
