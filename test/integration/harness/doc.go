// Package harness provides utilities for integration testing the jiractl CLI.
// It handles binary compilation, environment isolation, a fake Jira server
// and command execution.
//
// Environment variables managed:
//   - HOME: Isolated per test (temp directory), so debug logs stay in it
//   - JIRACTL_*: Removed from the inherited environment
//   - JIRACTL_DEBUG: Disabled to reduce noise
package harness
