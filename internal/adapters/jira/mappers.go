package jira

import (
	"strconv"
	"time"

	gojira "github.com/andygrunwald/go-jira"

	"jiractl/internal/domain"
	"jiractl/internal/ports"
)

func toTicket(issue *gojira.Issue) *domain.Ticket {
	if issue == nil {
		return nil
	}

	ticket := &domain.Ticket{
		ID:  issue.ID,
		Key: issue.Key,
	}

	fields := issue.Fields
	if fields == nil {
		return ticket
	}

	ticket.Assignee = toUser(fields.Assignee)
	ticket.Created = time.Time(fields.Created)
	ticket.Creator = toUser(fields.Creator)
	ticket.Description = fields.Description
	ticket.Labels = fields.Labels
	ticket.Summary = fields.Summary
	ticket.Type = toIssueType(fields.Type)
	ticket.Updated = time.Time(fields.Updated)

	if fields.Project.ID != "" || fields.Project.Key != "" {
		ticket.Project = &domain.ProjectRef{
			ID:   fields.Project.ID,
			Key:  fields.Project.Key,
			Name: fields.Project.Name,
		}
	}

	return ticket
}

func toIssueType(issueType gojira.IssueType) domain.IssueType {
	return domain.IssueType{
		ID:      issueType.ID,
		Name:    issueType.Name,
		Subtask: issueType.Subtask,
	}
}

func toUser(user *gojira.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		AccountID:    user.AccountID,
		DisplayName:  user.DisplayName,
		EmailAddress: user.EmailAddress,
		Key:          user.Key,
		Name:         user.Name,
	}
}

// fromUser keeps only what identifies the account: accountId on cloud, name on server
func fromUser(user *domain.User) *gojira.User {
	if user == nil {
		return nil
	}
	return &gojira.User{
		AccountID: user.AccountID,
		Name:      user.Name,
	}
}

func toProject(project *gojira.Project) *domain.Project {
	if project == nil {
		return nil
	}

	issueTypes := make([]domain.IssueType, 0, len(project.IssueTypes))
	for _, issueType := range project.IssueTypes {
		issueTypes = append(issueTypes, toIssueType(issueType))
	}

	return &domain.Project{
		ID:         project.ID,
		IssueTypes: issueTypes,
		Key:        project.Key,
		Name:       project.Name,
	}
}

func fromIssueFields(fields ports.IssueFields) *gojira.Issue {
	return &gojira.Issue{
		Fields: &gojira.IssueFields{
			Assignee:    fromUser(fields.Assignee),
			Description: fields.Description,
			Labels:      fields.Labels,
			Project:     gojira.Project{ID: fields.ProjectID},
			Summary:     fields.Summary,
			Type:        gojira.IssueType{ID: fields.IssueTypeID},
		},
	}
}

func toBoard(b board) domain.Board {
	result := domain.Board{
		ID:   b.ID,
		Name: b.Name,
		Type: domain.BoardType(b.Type),
	}
	if b.Location != nil {
		if b.Location.ProjectID != 0 {
			result.ProjectID = strconv.Itoa(b.Location.ProjectID)
		}
		result.ProjectKey = b.Location.ProjectKey
		result.ProjectName = b.Location.ProjectName
	}
	return result
}

func toSprint(s gojira.Sprint, boardID int) domain.Sprint {
	if s.OriginBoardID != 0 {
		boardID = s.OriginBoardID
	}
	return domain.Sprint{
		BoardID:   boardID,
		EndDate:   s.EndDate,
		ID:        s.ID,
		Name:      s.Name,
		StartDate: s.StartDate,
		State:     domain.SprintState(s.State),
	}
}
