package integration_test

import (
	"net/http"
	"testing"

	"jiractl/test/integration/harness"
)

const (
	exitConfigNotFound      = 1
	exitConfigInvalid       = 2
	exitCurrentUserNotFound = 4
)

func TestExitCode_ConfigNotFound(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "run")

	harness.AssertExitCode(t, result, exitConfigNotFound)
	harness.AssertStdoutContains(t, result, `Please create a ".jirarc" file`)
}

func TestExitCode_ExplicitConfigNotFound(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--config", "missing.json", "boards")

	harness.AssertExitCode(t, result, exitConfigNotFound)
}

func TestExitCode_ConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"missing host", ".jirarc", `{"username": "jdoe"}`},
		{"malformed json", ".jirarc", `{"host": `},
		{"malformed yaml", ".jirarc.yaml", "host: [unclosed"},
		{"unsupported api version", ".jirarc.toml", "host = 'jira.example.com'\napiVersion = '3'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			env.WriteConfig(tt.file, tt.content)

			result := harness.RunCommand(t, env, "run")

			harness.AssertExitCode(t, result, exitConfigInvalid)
			harness.AssertStdoutContains(t, result, "The configuration found is not valid!")
		})
	}
}

func TestExitCode_CurrentUserNotFound(t *testing.T) {
	jira := harness.NewFakeJira(t)
	jira.Respond("/rest/api/2/myself", http.StatusUnauthorized, `{"errorMessages": ["Unauthorized"]}`)

	env := harness.NewTestEnvironment(t)
	env.WriteConfig(".jirarc", jira.Config(nil))

	result := harness.RunCommand(t, env, "run")

	harness.AssertExitCode(t, result, exitCurrentUserNotFound)
	harness.AssertStdoutContains(t, result, "Successfully connected to 127.0.0.1 as jdoe@example.com!")
	harness.AssertStdoutContains(t, result, "An error occurred while getting your user!")
	harness.AssertStderrContains(t, result, "401")
}
