package domain

import (
	"context"
)

type MockGitLab struct {
	Pipeline    Pipeline
	PipelineErr error
	JobList     []Job
	JobsErr     error

	PipelineCalls int
	JobsCalls     int
}

func (m *MockGitLab) LatestPipeline(ctx context.Context, project, ref string) (Pipeline, error) {
	m.PipelineCalls++
	if m.PipelineErr != nil {
		return Pipeline{}, m.PipelineErr
	}
	return m.Pipeline, nil
}

func (m *MockGitLab) Jobs(ctx context.Context, project string, pipelineID int64) ([]Job, error) {
	m.JobsCalls++
	if m.JobsErr != nil {
		return nil, m.JobsErr
	}
	return m.JobList, nil
}

type MockReporter struct {
	Branches  []string
	Pipelines []Pipeline
	JobLists  [][]Job
}

func (r *MockReporter) Branch(name string) {
	r.Branches = append(r.Branches, name)
}

func (r *MockReporter) Pipeline(p Pipeline) {
	r.Pipelines = append(r.Pipelines, p)
}

func (r *MockReporter) Jobs(jobs []Job) {
	r.JobLists = append(r.JobLists, jobs)
}
