package reporter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/semver-changelog-release/pkg/runner"
)

type TableReporter struct {
	w io.Writer
}

func (r *TableReporter) Report(out *runner.Outcome) error {
	req := out.Request

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	fmt.Fprintf(tw, "repository\t%s\n", orUnknown(joinRepo(req.Owner, req.Repo)))
	fmt.Fprintf(tw, "tag\t%s\n", req.TagName)
	fmt.Fprintf(tw, "name\t%s\n", req.Name)
	fmt.Fprintf(tw, "draft\t%t\n", req.Draft)
	fmt.Fprintf(tw, "prerelease\t%t\n", req.Prerelease)
	fmt.Fprintf(tw, "next\t%s\n", out.Next)
	fmt.Fprintf(tw, "previous\t%s\n", orUnknown(out.Curr))
	fmt.Fprintf(tw, "range\t%s\n", orWholeHistory(out.Range))
	if out.Result != nil {
		fmt.Fprintf(tw, "id\t%d\n", out.Result.ID)
		fmt.Fprintf(tw, "url\t%s\n", out.Result.HTMLURL)
	} else if out.DryRun {
		fmt.Fprintln(tw, "status\tdry run, not created")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(r.w, "\nCHANGELOG (%d commits)\n", countLines(req.Body))
	fmt.Fprintln(r.w, strings.TrimRight(req.Body, "\n"))
	return nil
}

func joinRepo(owner, repo string) string {
	if owner == "" || repo == "" {
		return ""
	}
	return owner + "/" + repo
}

func orUnknown(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func orWholeHistory(s string) string {
	if s == "" {
		return "(whole history)"
	}
	return s
}

func countLines(body string) int {
	body = strings.TrimRight(body, "\n")
	if body == "" {
		return 0
	}
	return strings.Count(body, "\n") + 1
}
