package gitlab_http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/davarch/glab-status/internal/domain"
)

// maxErrBody caps how much of an error response is carried in the error.
const maxErrBody = 4 << 10

type Client struct {
	baseUrl string
	token   string
	hc      *http.Client
}

func New(baseUrl string, token string, timeout time.Duration) *Client {
	tr := &http.Transport{
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseUrl: trimSlash(baseUrl),
		token:   token,
		hc:      &http.Client{Transport: tr, Timeout: timeout},
	}
}

type pipelineDTO struct {
	ID     int64  `json:"id"`
	Ref    string `json:"ref"`
	Status string `json:"status"`
	WebURL string `json:"web_url"`
}

type jobDTO struct {
	Name   string `json:"name"`
	Stage  string `json:"stage"`
	Status string `json:"status"`
}

// LatestPipeline returns the most recent pipeline for ref, which the
// API lists first.
func (c *Client) LatestPipeline(ctx context.Context, project, ref string) (domain.Pipeline, error) {
	listURL := fmt.Sprintf("%s/api/v4/projects/%s/pipelines?ref=%s",
		c.baseUrl, url.PathEscape(project), url.QueryEscape(ref))

	var list []pipelineDTO
	if err := c.getJSON(ctx, listURL, &list); err != nil {
		return domain.Pipeline{}, err
	}

	if len(list) == 0 {
		return domain.Pipeline{}, fmt.Errorf("%w for ref %q", domain.ErrNoPipelineFound, ref)
	}

	p := list[0]
	return domain.Pipeline{
		ID:     p.ID,
		Ref:    p.Ref,
		Status: domain.ParseStatus(p.Status),
		WebURL: p.WebURL,
	}, nil
}

// Jobs returns the pipeline's jobs in API order. An empty list is a
// valid result, not an error.
func (c *Client) Jobs(ctx context.Context, project string, pipelineID int64) ([]domain.Job, error) {
	jobsURL := fmt.Sprintf("%s/api/v4/projects/%s/pipelines/%d/jobs",
		c.baseUrl, url.PathEscape(project), pipelineID)

	var list []jobDTO
	if err := c.getJSON(ctx, jobsURL, &list); err != nil {
		return nil, err
	}

	jobs := make([]domain.Job, 0, len(list))
	for _, j := range list {
		jobs = append(jobs, domain.Job{
			Name:   j.Name,
			Stage:  j.Stage,
			Status: domain.ParseStatus(j.Status),
		})
	}

	return jobs, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("PRIVATE-TOKEN", c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: gitlab %s", domain.ErrAuthentication, resp.Status)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: gitlab %s", domain.ErrProjectNotFound, resp.Status)
	case resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return &domain.APIError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gitlab response: %w", err)
	}

	return nil
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
