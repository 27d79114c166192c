package jira

import (
	"errors"
	"fmt"
	"sort"

	gojira "github.com/andygrunwald/go-jira"

	"jiractl/internal/domain"
)

// remoteError decodes a go-jira failure into a domain.RemoteError.
// Missing response or payload are tolerated.
func remoteError(resp *gojira.Response, err error) error {
	remoteErr := &domain.RemoteError{}
	if resp != nil && resp.Response != nil {
		remoteErr.StatusCode = resp.StatusCode
	}

	var jiraErr *gojira.Error
	if !errors.As(err, &jiraErr) && resp != nil && resp.Response != nil && resp.Body != nil {
		// Some go-jira calls hand back the raw response without reading the payload
		errors.As(gojira.NewJiraError(resp, err), &jiraErr)
	}

	if jiraErr != nil {
		remoteErr.Errors = append(remoteErr.Errors, jiraErr.ErrorMessages...)

		fields := make([]string, 0, len(jiraErr.Errors))
		for field := range jiraErr.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			remoteErr.Errors = append(remoteErr.Errors, fmt.Sprintf("%s: %s", field, jiraErr.Errors[field]))
		}
	}

	if len(remoteErr.Errors) == 0 && err != nil {
		remoteErr.Errors = []string{err.Error()}
	}

	return remoteErr
}
