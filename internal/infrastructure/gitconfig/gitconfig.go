package gitconfig

import (
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/davarch/glab-status/internal/domain"
)

const section = "gitlab"

// Load reads the [gitlab] section of the enclosing repository's
// git config:
//
//	[gitlab]
//	    server = https://gitlab.com
//	    access-token = <token>
//	    project-name = <namespace>/<project>
//
// All three keys are required.
func Load(dir string) (domain.Config, error) {
	repo, err := open(dir)
	if err != nil {
		return domain.Config{}, err
	}

	cfg, err := repo.Config()
	if err != nil {
		return domain.Config{}, fmt.Errorf("read git config: %w", err)
	}

	if !cfg.Raw.HasSection(section) {
		return domain.Config{}, domain.ErrConfigMissing
	}

	sec := cfg.Raw.Section(section)

	out := domain.Config{
		Server:  trimSlash(sec.Option("server")),
		Token:   sec.Option("access-token"),
		Project: sec.Option("project-name"),
	}

	for key, val := range map[string]string{
		"server":       out.Server,
		"access-token": out.Token,
		"project-name": out.Project,
	} {
		if val == "" {
			return domain.Config{}, fmt.Errorf("%w: gitlab.%s", domain.ErrConfigIncomplete, key)
		}
	}

	return out, nil
}

// CurrentBranch resolves the branch HEAD points at without requiring
// any commits to exist yet.
func CurrentBranch(dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDetachedHead, err)
	}

	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", domain.ErrDetachedHead
	}

	return head.Target().Short(), nil
}

func open(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotARepository, err)
	}
	return repo, nil
}

func trimSlash(s string) string {
	return strings.TrimRight(s, "/")
}
