package release

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v60/github"
)

const defaultAPIURL = "https://api.github.com"

// APIError is returned when GitHub rejects or fails the create-release call.
type APIError struct {
	Owner string
	Repo  string
	Tag   string
	Err   error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("create release %s in %s/%s: %v", e.Tag, e.Owner, e.Repo, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// Result identifies the release GitHub created.
type Result struct {
	ID        int64  `json:"id"`
	HTMLURL   string `json:"html_url"`
	UploadURL string `json:"upload_url"`
}

type Publisher struct {
	client *github.Client
}

type options struct {
	httpClient *http.Client
	apiURL     string
}

type Option func(*options)

// WithHTTPClient sets the transport used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithAPIURL points the publisher at a GitHub Enterprise Server API root.
func WithAPIURL(u string) Option {
	return func(o *options) { o.apiURL = u }
}

// NewPublisher builds a Publisher authenticated with token.
func NewPublisher(token string, opts ...Option) (*Publisher, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	client := github.NewClient(o.httpClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	if u := strings.TrimSuffix(o.apiURL, "/"); u != "" && u != defaultAPIURL {
		// Uploads live beside the API root, not under it.
		upload := strings.TrimSuffix(u, "/api/v3")
		var err error
		client, err = client.WithEnterpriseURLs(u, upload)
		if err != nil {
			return nil, fmt.Errorf("configure api url %q: %w", o.apiURL, err)
		}
	}

	return &Publisher{client: client}, nil
}

// Create issues one create-release call. It is not retried and does not check
// for an existing release with the same tag.
func (p *Publisher) Create(ctx context.Context, req Request) (*Result, error) {
	rel, _, err := p.client.Repositories.CreateRelease(ctx, req.Owner, req.Repo, &github.RepositoryRelease{
		TagName:    github.String(req.TagName),
		Name:       github.String(req.Name),
		Body:       github.String(req.Body),
		Draft:      github.Bool(req.Draft),
		Prerelease: github.Bool(req.Prerelease),
	})
	if err != nil {
		return nil, &APIError{Owner: req.Owner, Repo: req.Repo, Tag: req.TagName, Err: err}
	}

	return &Result{
		ID:        rel.GetID(),
		HTMLURL:   rel.GetHTMLURL(),
		UploadURL: rel.GetUploadURL(),
	}, nil
}
