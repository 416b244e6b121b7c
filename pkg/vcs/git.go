package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Error is returned when a git invocation fails to start or exits non-zero.
type Error struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Git runs the git CLI against a working directory.
type Git struct {
	path string
	dir  string
}

// NewGit returns a Git that runs the binary at path ("git" when empty) in dir
// (the process working directory when empty).
func NewGit(path, dir string) *Git {
	if path == "" {
		path = "git"
	}
	return &Git{path: path, dir: dir}
}

func (g *Git) ListTags(ctx context.Context) (string, error) {
	return g.run(ctx, "tag")
}

func (g *Git) Log(ctx context.Context, revRange string) (string, error) {
	args := []string{"log"}
	if revRange != "" {
		args = append(args, revRange)
	}
	args = append(args, "--oneline")
	return g.run(ctx, args...)
}

func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, g.path, args...)
	cmd.Dir = g.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &Error{Args: args, Stderr: stderr.String(), Err: err}
	}
	return stdout.String(), nil
}
