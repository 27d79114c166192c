package domain

import "time"

// BoardType is the workflow of a board
type BoardType string

const (
	BoardKanban BoardType = "kanban"
	BoardScrum  BoardType = "scrum"
	BoardSimple BoardType = "simple"
)

// SprintState is the lifecycle state of a sprint
type SprintState string

const (
	SprintActive SprintState = "active"
	SprintClosed SprintState = "closed"
	SprintFuture SprintState = "future"
)

// Board is a Jira agile board
type Board struct {
	ID          int
	Name        string
	ProjectID   string
	ProjectKey  string
	ProjectName string
	Type        BoardType
}

// SupportsSprints reports whether sprints can be queried on the board.
// Only scrum and simple boards have sprints.
func (b Board) SupportsSprints() bool {
	return b.Type == BoardScrum || b.Type == BoardSimple
}

// Sprint is a time-boxed group of tickets in a board
type Sprint struct {
	BoardID   int
	EndDate   *time.Time
	ID        int
	Name      string
	StartDate *time.Time
	State     SprintState
}

// Project is a Jira project with the issue types it accepts
type Project struct {
	ID         string
	IssueTypes []IssueType
	Key        string
	Name       string
}

// User is a Jira account
type User struct {
	AccountID    string
	DisplayName  string
	EmailAddress string
	Key          string
	Name         string
}
