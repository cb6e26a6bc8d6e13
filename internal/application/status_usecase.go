package application

import (
	"context"

	"github.com/davarch/glab-status/internal/domain"
)

// StatusUseCase prints one status report: the current branch, its
// latest pipeline, and that pipeline's jobs.
type StatusUseCase struct {
	gl  domain.GitlabClient
	out domain.Reporter
}

func NewStatusUseCase(gl domain.GitlabClient, out domain.Reporter) *StatusUseCase {
	return &StatusUseCase{gl: gl, out: out}
}

// Run is strictly sequential: the job lookup needs the pipeline id.
// Lines already rendered stay visible when a later step fails.
func (uc *StatusUseCase) Run(ctx context.Context, cfg domain.Config, branch string) error {
	uc.out.Branch(branch)

	p, err := uc.gl.LatestPipeline(ctx, cfg.Project, branch)
	if err != nil {
		return err
	}
	uc.out.Pipeline(p)

	jobs, err := uc.gl.Jobs(ctx, cfg.Project, p.ID)
	if err != nil {
		return err
	}
	uc.out.Jobs(jobs)

	return nil
}
