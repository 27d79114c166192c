package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jiractl/test/integration/harness"
)

func TestBoards_Table(t *testing.T) {
	jira := harness.NewFakeJira(t)
	jira.Respond("/rest/agile/1.0/board", http.StatusOK, boardsJSON)

	env := harness.NewTestEnvironment(t)
	env.WriteConfig(".jirarc", jira.Config(nil))

	result := harness.RunCommand(t, env, "boards")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "2 (on 2) boards found")
	harness.AssertStdoutContains(t, result, "Team scrum")
	harness.AssertStdoutContains(t, result, "SPRINTS")
}

func TestBoards_JSON(t *testing.T) {
	jira := harness.NewFakeJira(t)
	jira.Respond("/rest/agile/1.0/board", http.StatusOK, boardsJSON)

	env := harness.NewTestEnvironment(t)
	env.WriteConfig(".jirarc", jira.Config(nil))

	result := harness.RunCommand(t, env, "boards", "--format", "json")

	harness.AssertSuccess(t, result)

	var boards []map[string]any
	harness.AssertValidJSON(t, result, &boards)
	require.Len(t, boards, 2)
	assert.Equal(t, "Team scrum", boards[0]["name"])
	assert.Equal(t, true, boards[0]["supportsSprints"])
	assert.Equal(t, "kanban", boards[1]["type"])
	assert.Equal(t, false, boards[1]["supportsSprints"])
}

func TestBoards_RemoteFailure(t *testing.T) {
	jira := harness.NewFakeJira(t)
	jira.Respond("/rest/agile/1.0/board", http.StatusUnauthorized,
		`{"errorMessages": ["You are not authenticated."], "errors": {}}`)

	env := harness.NewTestEnvironment(t)
	env.WriteConfig(".jirarc", jira.Config(nil))

	result := harness.RunCommand(t, env, "boards", "--format", "json")

	harness.AssertFailure(t, result)
	assert.Empty(t, result.Stdout)
	harness.AssertStderrContains(t, result, "An error occurred while getting the list of boards!")
	harness.AssertStderrContains(t, result, "boards could not be retrieved")
}

func TestBoards_Empty(t *testing.T) {
	jira := harness.NewFakeJira(t)
	jira.Respond("/rest/agile/1.0/board", http.StatusOK, `{"maxResults": 100, "startAt": 0, "total": 0, "isLast": true, "values": []}`)

	env := harness.NewTestEnvironment(t)
	env.WriteConfig(".jirarc", jira.Config(nil))

	result := harness.RunCommand(t, env, "boards")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No board found.")
}
