// Package action adapts the GitHub Actions runner protocol to the release
// step: reading inputs, the triggering repository, writing outputs and
// reporting failure.
package action

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sethvargo/go-githubactions"
)

// Input returns the value the runner bound to an action input, trimmed.
func Input(name string) string {
	return githubactions.GetInput(name)
}

// InActions reports whether the process runs inside a GitHub Actions job.
func InActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// Repo returns "owner/repo" for the repository of the triggering event, or
// the empty string when the job context does not name one.
func Repo() string {
	ctx, err := githubactions.Context()
	if err != nil {
		return ""
	}
	owner, repo := ctx.Repo()
	if owner == "" || repo == "" {
		return ""
	}
	return owner + "/" + repo
}

// Fail reports err as the run's failure reason. Inside Actions it is emitted
// as an error workflow command; elsewhere as a coloured line.
func Fail(w io.Writer, err error) {
	if InActions() {
		githubactions.New(githubactions.WithWriter(w)).Errorf("%s", err.Error())
		return
	}
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(w, "error:")
	fmt.Fprintf(w, " %s\n", err.Error())
}

// Output is a single step output.
type Output struct {
	Name  string
	Value string
}

// SetOutputs appends outputs to the file named by GITHUB_OUTPUT. It is a
// no-op when the variable is unset.
func SetOutputs(outputs ...Output) {
	if os.Getenv("GITHUB_OUTPUT") == "" {
		return
	}
	gha := githubactions.New()
	for _, o := range outputs {
		gha.SetOutput(o.Name, o.Value)
	}
}
