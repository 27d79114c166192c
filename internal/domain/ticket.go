package domain

import (
	"strings"
	"time"
)

// IssueType is a kind of ticket allowed in a project (bug, task, story...)
type IssueType struct {
	ID      string
	Name    string
	Subtask bool
}

// ProjectRef is the project a ticket belongs to
type ProjectRef struct {
	ID   string
	Key  string
	Name string
}

// Ticket is a Jira issue as returned by the remote API
type Ticket struct {
	Assignee    *User
	Created     time.Time
	Creator     *User
	Description string
	ID          string
	Key         string
	Labels      []string
	Project     *ProjectRef
	Summary     string
	Type        IssueType
	Updated     time.Time
	URL         string // Browse URL, only set when fetched through the tracker service
}

// NewTicket holds the values collected to create a ticket
type NewTicket struct {
	Assignee    *User
	Description string
	IssueTypeID string
	Labels      string // Comma separated, as typed by the user
	ProjectID   string
	SprintID    int // 0 means no sprint
	Summary     string
}

// ParseLabels splits a comma separated list of labels and trims each entry.
// Blank entries are dropped and an empty input returns nil.
func ParseLabels(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var labels []string
	for _, label := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	return labels
}
