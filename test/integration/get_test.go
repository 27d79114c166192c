package integration_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"jiractl/test/integration/harness"
)

func TestGet(t *testing.T) {
	jira := harness.NewFakeJira(t)
	jira.Respond("/rest/api/2/issue/PROJ-1", http.StatusOK, ticketJSON)

	env := harness.NewTestEnvironment(t)
	env.WriteConfig(".jirarc", jira.Config(map[string]any{"locale": "fr-FR"}))

	result := harness.RunCommand(t, env, "get", "PROJ-1")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Ticket PROJ-1 retrieved")
	harness.AssertStdoutContains(t, result, "🔴 - PROJ-1 - Fix login")
	harness.AssertStdoutContains(t, result, "Users cannot log in, see runbook (https://wiki.example.com/login)")
	harness.AssertStdoutContains(t, result, "Created by you on 01/03/2024")
	harness.AssertStdoutContains(t, result, "Assigned to Jane Roe in Project")
	harness.AssertStdoutContains(t, result, "/browse/PROJ-1")
}

func TestGet_ConfigInParentDirectory(t *testing.T) {
	jira := harness.NewFakeJira(t)
	jira.Respond("/rest/api/2/issue/PROJ-1", http.StatusOK, ticketJSON)

	env := harness.NewTestEnvironment(t)
	env.WriteConfig(".jirarc.json", jira.Config(nil))

	nested := filepath.Join(env.WorkDir, "service", "api")
	require.NoError(t, os.MkdirAll(nested, 0755))
	env.WorkDir = nested

	result := harness.RunCommand(t, env, "get", "PROJ-1")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "PROJ-1 - Fix login")
}

func TestGet_NotFound(t *testing.T) {
	jira := harness.NewFakeJira(t)
	jira.Respond("/rest/api/2/issue/PROJ-404", http.StatusNotFound,
		`{"errorMessages": ["Issue does not exist or you do not have permission to see it."], "errors": {}}`)

	env := harness.NewTestEnvironment(t)
	env.WriteConfig(".jirarc", jira.Config(nil))

	result := harness.RunCommand(t, env, "get", "PROJ-404")

	harness.AssertFailure(t, result)
	harness.AssertStdoutContains(t, result, "An error occurred while getting the ticket PROJ-404!")
	harness.AssertStderrContains(t, result, "Issue does not exist")
}
