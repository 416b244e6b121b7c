package vcs

import "context"

// Repository is the local version-control checkout a changelog is read from.
type Repository interface {
	// ListTags returns the raw tag listing, one tag per line.
	ListTags(ctx context.Context) (string, error)

	// Log returns one line per commit in the given revision range. An empty
	// range means the whole history up to the checkout.
	Log(ctx context.Context, revRange string) (string, error)
}
