package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/semver-changelog-release/pkg/changelog"
	"github.com/semver-changelog-release/pkg/release"
)

type ChangelogBuilder interface {
	Build(ctx context.Context) (*changelog.Changelog, error)
}

type Publisher interface {
	Create(ctx context.Context, req release.Request) (*release.Result, error)
}

// Inputs are the raw action inputs plus the repository the release goes to.
type Inputs struct {
	TagName     string
	ReleaseName string
	Draft       string
	Prerelease  string
	Owner       string
	Repo        string
	DryRun      bool
}

// Outcome describes a finished run. Result is nil for a dry run.
type Outcome struct {
	Request release.Request `json:"request"`
	Next    string          `json:"next"`
	Curr    string          `json:"curr,omitempty"`
	Range   string          `json:"range"`
	DryRun  bool            `json:"dry_run"`
	Result  *release.Result `json:"result,omitempty"`
}

type Runner struct {
	changelog ChangelogBuilder
	publisher Publisher
	logger    *slog.Logger
}

func New(cl ChangelogBuilder, pub Publisher, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		changelog: cl,
		publisher: pub,
		logger:    logger,
	}
}

// Run computes the changelog and creates the release. Any failure aborts the
// run; nothing is retried.
func (r *Runner) Run(ctx context.Context, in Inputs) (*Outcome, error) {
	tag := release.StripRef(in.TagName)
	name := release.StripRef(in.ReleaseName)

	// Reported as-is: a repository without versions fails with exactly
	// "no semver in tags".
	cl, err := r.changelog.Build(ctx)
	if err != nil {
		return nil, err
	}

	out := &Outcome{
		Request: release.Request{
			Owner:      in.Owner,
			Repo:       in.Repo,
			TagName:    tag,
			Name:       name,
			Body:       cl.Body,
			Draft:      release.ParseFlag(in.Draft),
			Prerelease: release.ParseFlag(in.Prerelease),
		},
		Next:   cl.Next.Original(),
		Range:  cl.Range,
		DryRun: in.DryRun,
	}
	if cl.Curr != nil {
		out.Curr = cl.Curr.Original()
	}

	r.logger.Info("resolved changelog range",
		"next", out.Next,
		"curr", out.Curr,
		"range", out.Range,
	)
	r.logger.Debug("changelog body", "body", cl.Body)

	if in.DryRun {
		r.logger.Info("dry run, release not created", "tag", tag)
		return out, nil
	}
	if r.publisher == nil {
		return nil, fmt.Errorf("no publisher configured")
	}

	res, err := r.publisher.Create(ctx, out.Request)
	if err != nil {
		return nil, err
	}
	out.Result = res

	r.logger.Info("release created",
		"owner", in.Owner,
		"repo", in.Repo,
		"tag", tag,
		"id", res.ID,
		"url", res.HTMLURL,
	)
	return out, nil
}
