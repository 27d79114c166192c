package jira

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	gojira "github.com/andygrunwald/go-jira"
	"golang.org/x/oauth2"

	"jiractl/internal/config"
	"jiractl/internal/domain"
	"jiractl/internal/logging"
	"jiractl/internal/ports"
)

// Client implements ports.IssueTracker on top of go-jira
type Client struct {
	client *gojira.Client
	host   string
}

var _ ports.IssueTracker = (*Client)(nil)

// NewClient creates a Jira client from the configuration.
// Errors wrap domain.ErrJiraConnect.
func NewClient(cfg *config.Config) (*Client, error) {
	apiURL := cfg.APIURL()
	logging.Logger.Debug("Creating Jira client",
		"api_url", apiURL,
		"username", cfg.Username,
		"strict_ssl", cfg.StrictSSL,
		"token_auth", cfg.Token != "")

	client, err := gojira.NewClient(newHTTPClient(cfg), apiURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrJiraConnect, err)
	}

	return &Client{client: client, host: cfg.Host}, nil
}

// Host returns the Jira host the client talks to
func (c *Client) Host() string {
	return c.host
}

// newHTTPClient builds the transport chain: TLS settings, then authentication.
// A token takes precedence over username/password.
func newHTTPClient(cfg *config.Config) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !cfg.StrictSSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- strictSSL is opt-in
	}

	var roundTripper http.RoundTripper = transport
	switch {
	case cfg.Token != "":
		roundTripper = &oauth2.Transport{
			Base:   transport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}),
		}
	case cfg.Username != "":
		roundTripper = &gojira.BasicAuthTransport{
			Password:  cfg.Password,
			Transport: transport,
			Username:  cfg.Username,
		}
	}

	return &http.Client{
		Timeout:   time.Duration(cfg.Timeout) * time.Second,
		Transport: roundTripper,
	}
}

// FindIssue fetches an issue by id or key
func (c *Client) FindIssue(ctx context.Context, issueID string) (*domain.Ticket, error) {
	logging.Logger.Debug("Finding issue", "issue", issueID)

	issue, resp, err := c.client.Issue.GetWithContext(ctx, issueID, nil)
	if err != nil {
		return nil, remoteError(resp, err)
	}

	return toTicket(issue), nil
}

// AddNewIssue creates an issue and returns its id and key
func (c *Client) AddNewIssue(ctx context.Context, fields ports.IssueFields) (*domain.Ticket, error) {
	logging.Logger.Debug("Creating issue",
		"project", fields.ProjectID,
		"issue_type", fields.IssueTypeID,
		"labels", fields.Labels)

	issue, resp, err := c.client.Issue.CreateWithContext(ctx, fromIssueFields(fields))
	if err != nil {
		return nil, remoteError(resp, err)
	}

	return toTicket(issue), nil
}

// AddIssueToSprint moves an issue to a sprint
func (c *Client) AddIssueToSprint(ctx context.Context, issueID string, sprintID int) error {
	logging.Logger.Debug("Moving issue to sprint", "issue", issueID, "sprint", sprintID)

	resp, err := c.client.Sprint.MoveIssuesToSprintWithContext(ctx, sprintID, []string{issueID})
	if err != nil {
		return remoteError(resp, err)
	}
	return nil
}

// GetProject fetches a project with its issue types
func (c *Client) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	logging.Logger.Debug("Getting project", "project", projectID)

	project, resp, err := c.client.Project.GetWithContext(ctx, projectID)
	if err != nil {
		return nil, remoteError(resp, err)
	}

	return toProject(project), nil
}

// GetCurrentUser fetches the authenticated user
func (c *Client) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	logging.Logger.Debug("Getting current user")

	user, resp, err := c.client.User.GetSelfWithContext(ctx)
	if err != nil {
		return nil, remoteError(resp, err)
	}

	return toUser(user), nil
}
