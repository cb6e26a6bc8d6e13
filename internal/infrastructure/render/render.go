package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/davarch/glab-status/internal/domain"
)

var (
	SucceededColor = color.New(color.FgGreen, color.Bold)
	FailedColor    = color.New(color.FgRed, color.Bold)
	BuildingColor  = color.New(color.FgYellow, color.Bold)
	CanceledColor  = color.New(color.FgWhite, color.Bold)
	SkippedColor   = color.New(color.FgBlue, color.Bold)
	NeutralColor   = color.New(color.FgWhite, color.Bold)

	branchColor = color.New(color.FgCyan)
)

func ColorFor(s domain.Status) *color.Color {
	switch s {
	case domain.StatusSuccess:
		return SucceededColor
	case domain.StatusFailed:
		return FailedColor
	case domain.StatusRunning, domain.StatusPending:
		return BuildingColor
	case domain.StatusCanceled:
		return CanceledColor
	case domain.StatusSkipped:
		return SkippedColor
	default:
		return NeutralColor
	}
}

func LabelFor(s domain.Status) string {
	switch s {
	case domain.StatusRunning, domain.StatusPending:
		return "● BUILDING"
	default:
		return "● " + strings.ToUpper(string(s))
	}
}

// Report writes the status summary for one run.
type Report struct {
	w io.Writer
}

func NewReport(w io.Writer) *Report {
	return &Report{w: w}
}

func (r *Report) Branch(name string) {
	fmt.Fprintf(r.w, "Branch: %s\n", branchColor.Sprint(name))
}

func (r *Report) Pipeline(p domain.Pipeline) {
	fmt.Fprintf(r.w, "Pipeline ID: %d\n", p.ID)
	fmt.Fprintf(r.w, "Status: %s\n", colorize(p.Status))
	if p.WebURL != "" {
		fmt.Fprintf(r.w, "URL: %s\n", p.WebURL)
	}
}

func (r *Report) Jobs(jobs []domain.Job) {
	if len(jobs) == 0 {
		return
	}

	fmt.Fprintf(r.w, "\nJobs:\n")
	for _, j := range jobs {
		fmt.Fprintf(r.w, "  %s (%s) - %s\n", j.Name, j.Stage, colorize(j.Status))
	}
}

func colorize(s domain.Status) string {
	return ColorFor(s).Sprint(LabelFor(s))
}
