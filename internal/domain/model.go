package domain

import "strings"

// Status is a pipeline or job state as reported by the GitLab API.
// Unrecognized values stay as-is so the renderer can still show them.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusRunning  Status = "running"
	StatusPending  Status = "pending"
	StatusCanceled Status = "canceled"
	StatusSkipped  Status = "skipped"
	StatusCreated  Status = "created"
	StatusManual   Status = "manual"
)

func ParseStatus(s string) Status {
	return Status(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether the status is one of the documented GitLab
// pipeline/job states.
func (s Status) Known() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusRunning, StatusPending,
		StatusCanceled, StatusSkipped, StatusCreated, StatusManual:
		return true
	}
	return false
}

// Config holds the GitLab connection settings read from the
// repository's git configuration. Immutable after load.
type Config struct {
	Server  string
	Token   string
	Project string
}

type Pipeline struct {
	ID     int64
	Ref    string
	Status Status
	WebURL string
}

type Job struct {
	Name   string
	Stage  string
	Status Status
}
