package reporter

import (
	"encoding/json"
	"io"

	"github.com/semver-changelog-release/pkg/runner"
)

type JSONReporter struct {
	w io.Writer
}

func (r *JSONReporter) Report(out *runner.Outcome) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
