package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/semver-changelog-release/pkg/action"
	"github.com/semver-changelog-release/pkg/changelog"
	"github.com/semver-changelog-release/pkg/config"
	"github.com/semver-changelog-release/pkg/release"
	"github.com/semver-changelog-release/pkg/reporter"
	"github.com/semver-changelog-release/pkg/runner"
	"github.com/semver-changelog-release/pkg/vcs"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and reports any failure as the run's single
// failure reason. It returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		w := stderr
		if action.InActions() {
			w = stdout
		}
		action.Fail(w, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "create-release",
		Short:         "Create a GitHub release whose body is the commit log since the previous semver tag",
		Long:          `Lists local git tags, picks the two newest semantic versions, collects the one-line commit log between the checkout and the older of the two, and creates a GitHub release with it as the body.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().String("tag-name", action.Input("tag_name"), "Tag to create the release for (refs/tags/ prefix is stripped)")
	rootCmd.Flags().String("release-name", action.Input("release_name"), "Release name (refs/tags/ prefix is stripped)")
	rootCmd.Flags().String("draft", action.Input("draft"), `"true" to create a draft release`)
	rootCmd.Flags().String("prerelease", action.Input("prerelease"), `"true" to mark the release as a prerelease`)
	rootCmd.Flags().String("repo", action.Repo(), "GitHub repo (owner/repo) to create the release in")
	rootCmd.Flags().String("github-token", os.Getenv("GITHUB_TOKEN"), "GitHub token for API access")
	rootCmd.Flags().String("api-url", os.Getenv("GITHUB_API_URL"), "GitHub API URL (GitHub Enterprise Server)")
	rootCmd.Flags().Bool("dry-run", false, "Print the release without creating it")
	rootCmd.Flags().String("output", "table", "Output format: json | table")
	rootCmd.Flags().String("config", config.DefaultPath, "Path to config file")
	rootCmd.Flags().String("git", "git", "Path to the git binary")
	rootCmd.Flags().String("dir", ".", "Repository checkout to read tags and log from")
	rootCmd.Flags().String("head-ref", "head", "Revision the changelog range ends at")
	rootCmd.Flags().String("log-level", "info", "Log level: debug | info | warn | error")
	rootCmd.Flags().Bool("log-json", false, "Write logs as JSON")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not load config file: %v (using defaults)\n", err)
		}
		cfg = config.Default()
	}

	cfg = config.MergeFlags(cfg, cmd.Flags())

	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.DryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "dry-run mode: the release will not be created")
	}

	var owner, repo string
	if cfg.Repo != "" {
		owner, repo, err = vcs.ParseGitHubRepo(cfg.Repo)
		if err != nil {
			return err
		}
	}

	var pub runner.Publisher
	if !cfg.DryRun {
		p, err := release.NewPublisher(cfg.Token, release.WithAPIURL(cfg.APIURL))
		if err != nil {
			return err
		}
		pub = p
	}

	git := vcs.NewGit(cfg.Git.Path, cfg.Git.Dir)
	r := runner.New(changelog.New(git, cfg.Git.Head), pub, logger)

	out, err := r.Run(cmd.Context(), runner.Inputs{
		TagName:     cfg.TagName,
		ReleaseName: cfg.ReleaseName,
		Draft:       cfg.Draft,
		Prerelease:  cfg.Prerelease,
		Owner:       owner,
		Repo:        repo,
		DryRun:      cfg.DryRun,
	})
	if err != nil {
		return err
	}

	if out.Result != nil {
		action.SetOutputs(
			action.Output{Name: "id", Value: strconv.FormatInt(out.Result.ID, 10)},
			action.Output{Name: "html_url", Value: out.Result.HTMLURL},
			action.Output{Name: "upload_url", Value: out.Result.UploadURL},
			action.Output{Name: "body", Value: out.Request.Body},
		)
	}

	return reporter.New(cfg.Output, cmd.OutOrStdout()).Report(out)
}
