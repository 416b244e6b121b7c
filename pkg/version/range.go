package version

import (
	"errors"
	"fmt"
)

// DefaultHead is the revision the commit range runs to.
const DefaultHead = "head"

var ErrNoVersionFound = errors.New("no semver in tags")

// Range is the pair of versions a changelog is computed between.
type Range struct {
	// Next is the newest version. It gates the run but never appears in the
	// revision range.
	Next *Version
	// Curr is the version before Next, nil when only one version exists.
	Curr *Version
	// Head is the revision the range ends at.
	Head string
}

// Resolve picks Next and Curr from a descending version list.
func Resolve(vers []*Version, head string) (Range, error) {
	if len(vers) == 0 {
		return Range{}, ErrNoVersionFound
	}
	if head == "" {
		head = DefaultHead
	}

	r := Range{Next: vers[0], Head: head}
	if len(vers) > 1 {
		r.Curr = vers[1]
	}
	return r, nil
}

// String returns the revision range for git log. Empty means the whole
// history up to the checkout.
func (r Range) String() string {
	if r.Curr == nil {
		return ""
	}
	return fmt.Sprintf("%s...%s", r.Head, r.Curr.Original())
}
