package jira

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jiractl/internal/config"
	"jiractl/internal/domain"
	"jiractl/internal/ports"
)

func newTestClient(t *testing.T, handler http.Handler, mutate ...func(*config.Config)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	cfg := config.NewDefaultConfig()
	cfg.Host = u.Hostname()
	cfg.Port = port
	cfg.Protocol = "http"
	cfg.Username = "jane@example.com"
	cfg.Password = "secret"
	for _, m := range mutate {
		m(cfg)
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := io.WriteString(w, body)
	require.NoError(t, err)
}

func TestFindIssue_MapsFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/issue/PROJ-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		writeJSON(t, w, http.StatusOK, `{
			"id": "10001",
			"key": "PROJ-1",
			"fields": {
				"summary": "Fix login",
				"description": "Users *cannot* log in",
				"labels": ["auth"],
				"issuetype": {"id": "1", "name": "Bug"},
				"assignee": {"accountId": "abc", "displayName": "Jane Doe", "emailAddress": "jane@example.com"},
				"creator": {"accountId": "def", "displayName": "John Roe"},
				"created": "2024-03-01T10:00:00.000+0000",
				"project": {"id": "10000", "key": "PROJ", "name": "Project"}
			}
		}`)
	})
	client := newTestClient(t, mux)

	ticket, err := client.FindIssue(context.Background(), "PROJ-1")

	require.NoError(t, err)
	assert.Equal(t, "10001", ticket.ID)
	assert.Equal(t, "PROJ-1", ticket.Key)
	assert.Equal(t, "Fix login", ticket.Summary)
	assert.Equal(t, "Users *cannot* log in", ticket.Description)
	assert.Equal(t, []string{"auth"}, ticket.Labels)
	assert.Equal(t, domain.IssueType{ID: "1", Name: "Bug"}, ticket.Type)
	require.NotNil(t, ticket.Assignee)
	assert.Equal(t, "Jane Doe", ticket.Assignee.DisplayName)
	require.NotNil(t, ticket.Creator)
	assert.Equal(t, "John Roe", ticket.Creator.DisplayName)
	assert.True(t, ticket.Created.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	require.NotNil(t, ticket.Project)
	assert.Equal(t, "Project", ticket.Project.Name)
	assert.Empty(t, ticket.URL)
}

func TestFindIssue_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/issue/PROJ-404", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound,
			`{"errorMessages": ["Issue does not exist or you do not have permission to see it."], "errors": {}}`)
	})
	client := newTestClient(t, mux)

	ticket, err := client.FindIssue(context.Background(), "PROJ-404")

	assert.Nil(t, ticket)
	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.StatusCode)
	assert.Equal(t, []string{"Issue does not exist or you do not have permission to see it."}, remoteErr.Errors)
}

func TestAddNewIssue_SendsFields(t *testing.T) {
	var payload map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/issue", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		writeJSON(t, w, http.StatusCreated, `{"id": "10002", "key": "PROJ-2", "self": "http://jira/rest/api/2/issue/10002"}`)
	})
	client := newTestClient(t, mux)

	ticket, err := client.AddNewIssue(context.Background(), ports.IssueFields{
		Assignee:    &domain.User{AccountID: "abc", DisplayName: "Jane Doe"},
		Description: "Details",
		IssueTypeID: "3",
		Labels:      []string{"a", "b"},
		ProjectID:   "10000",
		Summary:     "New ticket",
	})

	require.NoError(t, err)
	assert.Equal(t, "PROJ-2", ticket.Key)
	assert.Equal(t, "10002", ticket.ID)

	fields, ok := payload["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "New ticket", fields["summary"])
	assert.Equal(t, "Details", fields["description"])
	assert.Equal(t, []any{"a", "b"}, fields["labels"])

	issueType, ok := fields["issuetype"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "3", issueType["id"])

	project, ok := fields["project"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "10000", project["id"])

	assignee, ok := fields["assignee"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "abc", assignee["accountId"])
	assert.NotContains(t, assignee, "displayName")
}

func TestAddNewIssue_OmitsEmptyLabels(t *testing.T) {
	var payload map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/issue", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		writeJSON(t, w, http.StatusCreated, `{"id": "10003", "key": "PROJ-3"}`)
	})
	client := newTestClient(t, mux)

	_, err := client.AddNewIssue(context.Background(), ports.IssueFields{
		IssueTypeID: "3",
		ProjectID:   "10000",
		Summary:     "No labels",
	})

	require.NoError(t, err)
	fields, ok := payload["fields"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, fields, "labels")
}

func TestAddNewIssue_ValidationErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/issue", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest,
			`{"errorMessages": [], "errors": {"summary": "You must specify a summary of the issue.", "issuetype": "valid issue type is required"}}`)
	})
	client := newTestClient(t, mux)

	ticket, err := client.AddNewIssue(context.Background(), ports.IssueFields{ProjectID: "10000"})

	assert.Nil(t, ticket)
	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadRequest, remoteErr.StatusCode)
	assert.Equal(t, []string{
		"issuetype: valid issue type is required",
		"summary: You must specify a summary of the issue.",
	}, remoteErr.Errors)
}

func TestAddIssueToSprint(t *testing.T) {
	var payload map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/agile/1.0/sprint/7/issue", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusNoContent)
	})
	client := newTestClient(t, mux)

	err := client.AddIssueToSprint(context.Background(), "PROJ-2", 7)

	require.NoError(t, err)
	assert.Equal(t, []string{"PROJ-2"}, payload["issues"])
}

func TestAddIssueToSprint_Error(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/agile/1.0/sprint/7/issue", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, `{"errorMessages": ["Sprint is closed"]}`)
	})
	client := newTestClient(t, mux)

	err := client.AddIssueToSprint(context.Background(), "PROJ-2", 7)

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusForbidden, remoteErr.StatusCode)
	assert.Equal(t, []string{"Sprint is closed"}, remoteErr.Errors)
}

func TestGetAllBoards(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/agile/1.0/board", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0", r.URL.Query().Get("startAt"))
		assert.Equal(t, "100", r.URL.Query().Get("maxResults"))
		writeJSON(t, w, http.StatusOK, `{
			"maxResults": 100, "startAt": 0, "total": 2, "isLast": true,
			"values": [
				{"id": 1, "name": "Team scrum", "type": "scrum", "location": {"projectId": 10000, "projectKey": "PROJ", "projectName": "Project"}},
				{"id": 2, "name": "Support", "type": "kanban"}
			]
		}`)
	})
	client := newTestClient(t, mux)

	page, err := client.GetAllBoards(context.Background(), 0, 100)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Values, 2)
	assert.Equal(t, domain.Board{
		ID:          1,
		Name:        "Team scrum",
		ProjectID:   "10000",
		ProjectKey:  "PROJ",
		ProjectName: "Project",
		Type:        domain.BoardScrum,
	}, page.Values[0])
	assert.Equal(t, domain.BoardKanban, page.Values[1].Type)
	assert.Empty(t, page.Values[1].ProjectID)
}

func TestGetBoard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/agile/1.0/board/12", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"id": 12, "name": "Platform", "type": "simple", "location": {"projectId": 10010}}`)
	})
	client := newTestClient(t, mux)

	board, err := client.GetBoard(context.Background(), 12)

	require.NoError(t, err)
	assert.Equal(t, 12, board.ID)
	assert.Equal(t, "10010", board.ProjectID)
	assert.True(t, board.SupportsSprints())
}

func TestGetAllSprints_FiltersByState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/agile/1.0/board/12/sprint", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "future", r.URL.Query().Get("state"))
		assert.Equal(t, "100", r.URL.Query().Get("maxResults"))
		writeJSON(t, w, http.StatusOK, `{
			"maxResults": 100, "startAt": 0, "isLast": true,
			"values": [
				{"id": 8, "name": "Sprint 8", "state": "future", "originBoardId": 12},
				{"id": 9, "name": "Sprint 9", "state": "future", "startDate": "2024-04-01T09:00:00.000+02:00"}
			]
		}`)
	})
	client := newTestClient(t, mux)

	page, err := client.GetAllSprints(context.Background(), 12, 0, 100, domain.SprintFuture)

	require.NoError(t, err)
	require.Len(t, page.Values, 2)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, "Sprint 8", page.Values[0].Name)
	assert.Equal(t, domain.SprintFuture, page.Values[0].State)
	assert.Equal(t, 12, page.Values[1].BoardID)
	require.NotNil(t, page.Values[1].StartDate)
	assert.Nil(t, page.Values[0].StartDate)
}

func TestGetAllSprints_ActiveFirstPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/agile/1.0/board/12/sprint", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "active", r.URL.Query().Get("state"))
		assert.Equal(t, "1", r.URL.Query().Get("maxResults"))
		writeJSON(t, w, http.StatusOK, `{
			"maxResults": 1, "startAt": 0, "total": 3, "isLast": false,
			"values": [{"id": 7, "name": "Sprint 7", "state": "active", "originBoardId": 12}]
		}`)
	})
	client := newTestClient(t, mux)

	page, err := client.GetAllSprints(context.Background(), 12, 0, 1, domain.SprintActive)

	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Values, 1)
	assert.Equal(t, 7, page.Values[0].ID)
	assert.Equal(t, domain.SprintActive, page.Values[0].State)
}

func TestGetAllSprints_Error(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/agile/1.0/board/12/sprint", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, `{"errorMessages": ["The board does not support sprints"]}`)
	})
	client := newTestClient(t, mux)

	page, err := client.GetAllSprints(context.Background(), 12, 0, 100, domain.SprintFuture)

	require.Error(t, err)
	assert.Nil(t, page)
	remoteErr := domain.AsRemoteError(err)
	assert.Equal(t, http.StatusBadRequest, remoteErr.StatusCode)
	assert.Equal(t, []string{"The board does not support sprints"}, remoteErr.Errors)
}

func TestGetProject(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/project/10000", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{
			"id": "10000", "key": "PROJ", "name": "Project",
			"issueTypes": [{"id": "1", "name": "Bug"}, {"id": "5", "name": "Sub-task", "subtask": true}]
		}`)
	})
	client := newTestClient(t, mux)

	project, err := client.GetProject(context.Background(), "10000")

	require.NoError(t, err)
	assert.Equal(t, "PROJ", project.Key)
	assert.Equal(t, []domain.IssueType{
		{ID: "1", Name: "Bug"},
		{ID: "5", Name: "Sub-task", Subtask: true},
	}, project.IssueTypes)
}

func TestGetCurrentUser_UsesBasicAuth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/myself", func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "jane@example.com", username)
		assert.Equal(t, "secret", password)
		writeJSON(t, w, http.StatusOK, `{"accountId": "abc", "displayName": "Jane Doe", "emailAddress": "jane@example.com"}`)
	})
	client := newTestClient(t, mux)

	user, err := client.GetCurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &domain.User{AccountID: "abc", DisplayName: "Jane Doe", EmailAddress: "jane@example.com"}, user)
}

func TestGetCurrentUser_UsesBearerToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/myself", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer pat-123", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, `{"name": "jane", "displayName": "Jane Doe"}`)
	})
	client := newTestClient(t, mux, func(cfg *config.Config) {
		cfg.Token = "pat-123"
	})

	user, err := client.GetCurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "jane", user.Name)
}

func TestGetCurrentUser_Unauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/myself", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	client := newTestClient(t, mux)

	user, err := client.GetCurrentUser(context.Background())

	assert.Nil(t, user)
	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusUnauthorized, remoteErr.StatusCode)
	assert.NotEmpty(t, remoteErr.Errors)
}

func TestRemoteError_NoResponse(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 1
	cfg.Protocol = "http"
	client, err := NewClient(cfg)
	require.NoError(t, err)

	_, err = client.GetBoard(context.Background(), 1)

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, 0, remoteErr.StatusCode)
	assert.NotEmpty(t, remoteErr.Errors)
}

func TestNewClient_InvalidURL(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Host = "jira example.com"

	_, err := NewClient(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrJiraConnect)
}
