package domain

import "context"

type GitlabClient interface {
	LatestPipeline(ctx context.Context, project, ref string) (Pipeline, error)
	Jobs(ctx context.Context, project string, pipelineID int64) ([]Job, error)
}

type Reporter interface {
	Branch(name string)
	Pipeline(p Pipeline)
	Jobs(jobs []Job)
}
