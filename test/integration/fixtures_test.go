package integration_test

const currentUserJSON = `{
	"accountId": "abc",
	"displayName": "John Doe",
	"emailAddress": "jdoe@example.com",
	"name": "jdoe"
}`

const ticketJSON = `{
	"id": "10001",
	"key": "PROJ-1",
	"fields": {
		"summary": "Fix login",
		"description": "Users *cannot* log in, see [runbook|https://wiki.example.com/login]",
		"issuetype": {"id": "1", "name": "Bug"},
		"assignee": {"accountId": "def", "displayName": "Jane Roe", "emailAddress": "jroe@example.com"},
		"creator": {"accountId": "abc", "displayName": "John Doe", "emailAddress": "jdoe@example.com"},
		"created": "2024-03-01T10:00:00.000+0000",
		"project": {"id": "10000", "key": "PROJ", "name": "Project"}
	}
}`

const boardsJSON = `{
	"maxResults": 100, "startAt": 0, "total": 2, "isLast": true,
	"values": [
		{"id": 42, "name": "Team scrum", "type": "scrum", "location": {"projectId": 10000, "projectKey": "PROJ", "projectName": "Project"}},
		{"id": 43, "name": "Support", "type": "kanban", "location": {"projectId": 20000, "projectKey": "SUP", "projectName": "Support"}}
	]
}`
