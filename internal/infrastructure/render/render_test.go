package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/davarch/glab-status/internal/domain"
)

func TestColorFor_Table(t *testing.T) {
	cases := []struct {
		status domain.Status
		want   *color.Color
	}{
		{domain.StatusSuccess, SucceededColor},
		{domain.StatusFailed, FailedColor},
		{domain.StatusRunning, BuildingColor},
		{domain.StatusPending, BuildingColor},
		{domain.StatusCanceled, CanceledColor},
		{domain.StatusSkipped, SkippedColor},
		{domain.StatusCreated, NeutralColor},
		{domain.StatusManual, NeutralColor},
		{domain.Status("waiting_for_resource"), NeutralColor},
	}

	for _, tc := range cases {
		if got := ColorFor(tc.status); got != tc.want {
			t.Errorf("ColorFor(%q) returned the wrong color", tc.status)
		}
	}
}

func TestLabelFor(t *testing.T) {
	cases := []struct {
		status domain.Status
		want   string
	}{
		{domain.StatusSuccess, "● SUCCESS"},
		{domain.StatusFailed, "● FAILED"},
		{domain.StatusRunning, "● BUILDING"},
		{domain.StatusPending, "● BUILDING"},
		{domain.StatusCanceled, "● CANCELED"},
		{domain.StatusSkipped, "● SKIPPED"},
		{domain.Status("waiting_for_resource"), "● WAITING_FOR_RESOURCE"},
	}

	for _, tc := range cases {
		if got := LabelFor(tc.status); got != tc.want {
			t.Errorf("LabelFor(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestReport_Pipeline(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	var buf bytes.Buffer
	r := NewReport(&buf)

	r.Branch("main")
	r.Pipeline(domain.Pipeline{ID: 7, Ref: "main", Status: domain.StatusRunning})

	out := buf.String()
	if !strings.Contains(out, "Branch: ") {
		t.Errorf("missing branch line:\n%s", out)
	}
	if !strings.Contains(out, "Pipeline ID: 7") {
		t.Errorf("missing pipeline id:\n%s", out)
	}
	if !strings.Contains(out, "\x1b[33;1m● BUILDING\x1b[0m") {
		t.Errorf("running status not rendered yellow bold:\n%q", out)
	}
}

func TestReport_Jobs(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	var buf bytes.Buffer
	r := NewReport(&buf)

	r.Jobs([]domain.Job{
		{Name: "build", Stage: "build", Status: domain.StatusSuccess},
		{Name: "test", Stage: "test", Status: domain.StatusFailed},
	})

	out := buf.String()
	if !strings.Contains(out, "build (build) - \x1b[32;1m● SUCCESS\x1b[0m") {
		t.Errorf("build job not rendered green:\n%q", out)
	}
	if !strings.Contains(out, "test (test) - \x1b[31;1m● FAILED\x1b[0m") {
		t.Errorf("test job not rendered red:\n%q", out)
	}
}

func TestReport_NoJobsPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	NewReport(&buf).Jobs(nil)

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
