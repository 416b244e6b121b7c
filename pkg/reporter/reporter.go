package reporter

import (
	"io"

	"github.com/semver-changelog-release/pkg/runner"
)

type Reporter interface {
	Report(out *runner.Outcome) error
}

func New(format string, w io.Writer) Reporter {
	switch format {
	case "json":
		return &JSONReporter{w: w}
	default:
		return &TableReporter{w: w}
	}
}
