package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotARepository   = errors.New("not a git repository")
	ErrConfigMissing    = errors.New("no [gitlab] section in git config")
	ErrConfigIncomplete = errors.New("incomplete gitlab config")
	ErrDetachedHead     = errors.New("no branch checked out")

	ErrNetwork         = errors.New("gitlab request failed")
	ErrAuthentication  = errors.New("gitlab authentication failed")
	ErrProjectNotFound = errors.New("gitlab project not found")
	ErrNoPipelineFound = errors.New("no pipeline found")
)

// APIError is any other non-2xx response from the GitLab API.
type APIError struct {
	Code int
	Body string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("gitlab api error: HTTP %d", e.Code)
	}
	return fmt.Sprintf("gitlab api error: HTTP %d: %s", e.Code, e.Body)
}
