package jira

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	gojira "github.com/andygrunwald/go-jira"

	"jiractl/internal/domain"
	"jiractl/internal/logging"
	"jiractl/internal/ports"
)

// The board resources are requested directly because the board location
// (its project) is not part of go-jira's Board type. Sprints go through
// go-jira's board service.

type boardLocation struct {
	ProjectID   int    `json:"projectId"`
	ProjectKey  string `json:"projectKey"`
	ProjectName string `json:"projectName"`
}

type board struct {
	ID       int            `json:"id"`
	Location *boardLocation `json:"location,omitempty"`
	Name     string         `json:"name"`
	Type     string         `json:"type"`
}

type boardsPage struct {
	IsLast     bool    `json:"isLast"`
	MaxResults int     `json:"maxResults"`
	StartAt    int     `json:"startAt"`
	Total      int     `json:"total"`
	Values     []board `json:"values"`
}

// GetBoard fetches a single board
func (c *Client) GetBoard(ctx context.Context, boardID int) (*domain.Board, error) {
	logging.Logger.Debug("Getting board", "board", boardID)

	var b board
	if err := c.get(ctx, fmt.Sprintf("rest/agile/1.0/board/%d", boardID), nil, &b); err != nil {
		return nil, err
	}

	result := toBoard(b)
	return &result, nil
}

// GetAllBoards fetches one page of boards visible to the user
func (c *Client) GetAllBoards(ctx context.Context, startAt, maxResults int) (*ports.BoardPage, error) {
	logging.Logger.Debug("Listing boards", "start_at", startAt, "max_results", maxResults)

	query := url.Values{}
	query.Set("startAt", strconv.Itoa(startAt))
	query.Set("maxResults", strconv.Itoa(maxResults))

	var page boardsPage
	if err := c.get(ctx, "rest/agile/1.0/board", query, &page); err != nil {
		return nil, err
	}

	boards := make([]domain.Board, 0, len(page.Values))
	for _, b := range page.Values {
		boards = append(boards, toBoard(b))
	}
	return &ports.BoardPage{Total: page.Total, Values: boards}, nil
}

// GetAllSprints fetches one page of sprints of a board in the given state
func (c *Client) GetAllSprints(ctx context.Context, boardID, startAt, maxResults int, state domain.SprintState) (*ports.SprintPage, error) {
	logging.Logger.Debug("Listing sprints",
		"board", boardID,
		"state", state,
		"start_at", startAt,
		"max_results", maxResults)

	options := &gojira.GetAllSprintsOptions{
		State: string(state),
		SearchOptions: gojira.SearchOptions{
			MaxResults: maxResults,
			StartAt:    startAt,
		},
	}

	list, resp, err := c.client.Board.GetAllSprintsWithOptionsWithContext(ctx, boardID, options)
	if err != nil {
		return nil, remoteError(resp, err)
	}

	sprints := make([]domain.Sprint, 0, len(list.Values))
	for _, s := range list.Values {
		sprints = append(sprints, toSprint(s, boardID))
	}
	return &ports.SprintPage{Total: list.Total, Values: sprints}, nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, v any) error {
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := c.client.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &domain.RemoteError{Errors: []string{err.Error()}}
	}

	resp, err := c.client.Do(req, v)
	if err != nil {
		return remoteError(resp, err)
	}
	return nil
}
