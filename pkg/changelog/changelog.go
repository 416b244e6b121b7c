package changelog

import (
	"context"
	"fmt"

	"github.com/semver-changelog-release/pkg/vcs"
	"github.com/semver-changelog-release/pkg/version"
)

// Changelog is the release body together with the versions it was derived from.
type Changelog struct {
	Next  *version.Version
	Curr  *version.Version
	Range string
	Body  string
}

type Builder struct {
	repo vcs.Repository
	head string
}

// New returns a Builder reading from repo. head is the revision the commit
// range ends at; empty selects version.DefaultHead.
func New(repo vcs.Repository, head string) *Builder {
	return &Builder{repo: repo, head: head}
}

// Build lists tags, picks the two newest semantic versions and returns the
// one-line log between the checkout and the older of the two.
func (b *Builder) Build(ctx context.Context) (*Changelog, error) {
	tags, err := b.repo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	r, err := version.Resolve(version.Parse(tags), b.head)
	if err != nil {
		return nil, err
	}

	rng := r.String()
	body, err := b.repo.Log(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	return &Changelog{
		Next:  r.Next,
		Curr:  r.Curr,
		Range: rng,
		Body:  body,
	}, nil
}
