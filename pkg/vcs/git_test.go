package vcs

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gitOrSkip(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// newTestRepo creates a repository with one empty commit per tag, each
// tagged in order.
func newTestRepo(t *testing.T, tags ...string) string {
	t.Helper()
	dir := t.TempDir()

	mustGit := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{
			"-c", "user.name=test",
			"-c", "user.email=test@example.com",
			"-c", "commit.gpgsign=false",
			"-c", "tag.gpgsign=false",
		}, args...)...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}

	mustGit("init", "-q")
	mustGit("commit", "-q", "--allow-empty", "-m", "initial")
	for _, tag := range tags {
		mustGit("commit", "-q", "--allow-empty", "-m", "release "+tag)
		mustGit("tag", tag)
	}
	return dir
}

func TestGit_ListTags(t *testing.T) {
	gitOrSkip(t)
	dir := newTestRepo(t, "v1.0.0", "not-a-version", "v1.1.0")

	out, err := NewGit("", dir).ListTags(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.ElementsMatch(t, []string{"v1.0.0", "not-a-version", "v1.1.0"}, lines)
}

func TestGit_Log(t *testing.T) {
	gitOrSkip(t)
	dir := newTestRepo(t, "v1.0.0", "v1.1.0")
	g := NewGit("", dir)

	t.Run("whole history", func(t *testing.T) {
		out, err := g.Log(context.Background(), "")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "release v1.1.0")
		assert.Contains(t, lines[2], "initial")
	})

	t.Run("range", func(t *testing.T) {
		out, err := g.Log(context.Background(), "HEAD...v1.0.0")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "release v1.1.0")
	})

	t.Run("unknown revision", func(t *testing.T) {
		_, err := g.Log(context.Background(), "HEAD...v9.9.9")
		var gitErr *Error
		require.True(t, errors.As(err, &gitErr))
		assert.Equal(t, []string{"log", "HEAD...v9.9.9", "--oneline"}, gitErr.Args)
		assert.NotEmpty(t, gitErr.Stderr)
	})
}

func TestGit_NotARepository(t *testing.T) {
	gitOrSkip(t)

	_, err := NewGit("", t.TempDir()).ListTags(context.Background())
	var gitErr *Error
	require.True(t, errors.As(err, &gitErr))
	assert.Equal(t, []string{"tag"}, gitErr.Args)
	assert.Contains(t, err.Error(), "git tag")
}

func TestGit_MissingBinary(t *testing.T) {
	_, err := NewGit("/nonexistent/git-binary", t.TempDir()).ListTags(context.Background())
	var gitErr *Error
	require.True(t, errors.As(err, &gitErr))
}

func TestParseGitHubRepo(t *testing.T) {
	tests := []struct {
		in        string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{in: "octo/hello", wantOwner: "octo", wantRepo: "hello"},
		{in: "https://github.com/octo/hello.git", wantOwner: "octo", wantRepo: "hello"},
		{in: "github.com/octo/hello/", wantOwner: "octo", wantRepo: "hello"},
		{in: "octo", wantErr: true},
		{in: "", wantErr: true},
		{in: "octo/hello/extra", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			owner, repo, err := ParseGitHubRepo(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}
