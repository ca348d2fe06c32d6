package github

import (
	"context"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// Client adapts the GitHub REST API to the Session port.
type Client struct {
	gh *gh.Client
}

// NewClient creates an authenticated GitHub client from an access token.
func NewClient(ctx context.Context, token string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{gh: gh.NewClient(oauth2.NewClient(ctx, src))}
}

// WithBaseURL points the client at a different API endpoint (GitHub
// Enterprise, test servers). The URL must end with a trailing slash.
func (c *Client) WithBaseURL(baseURL string) (*Client, error) {
	client, err := c.gh.WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to set base URL: %w", err)
	}
	return &Client{gh: client}, nil
}

// GetRepository looks up owner/name on GitHub.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (Repository, error) {
	repo, _, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, name, err)
	}
	return newRepoHandle(c.gh, repo), nil
}

// CreateRepository creates name under the authenticated identity.
func (c *Client) CreateRepository(ctx context.Context, name string) (Repository, error) {
	// An empty organization creates the repository for the token's user
	repo, _, err := c.gh.Repositories.Create(ctx, "", &gh.Repository{Name: gh.String(name)})
	if err != nil {
		return nil, fmt.Errorf("failed to create repository %s: %w", name, err)
	}
	return newRepoHandle(c.gh, repo), nil
}

// repoHandle adapts one GitHub repository to the Repository port.
type repoHandle struct {
	gh       *gh.Client
	owner    string
	name     string
	fullName string
}

func newRepoHandle(client *gh.Client, repo *gh.Repository) *repoHandle {
	return &repoHandle{
		gh:       client,
		owner:    repo.GetOwner().GetLogin(),
		name:     repo.GetName(),
		fullName: repo.GetFullName(),
	}
}

// FullName returns the "owner/name" identifier of the repository.
func (r *repoHandle) FullName() string {
	return r.fullName
}

// StatFile queries the contents API for path.
func (r *repoHandle) StatFile(ctx context.Context, path string) (FileStatus, error) {
	fileContent, dirContent, resp, err := r.gh.Repositories.GetContents(ctx, r.owner, r.name, path, nil)
	return classifyContent(fileContent, dirContent, resp, err)
}

// classifyContent maps a contents API response onto a FileStatus.
// A 404 is a definitive not-found, not an error; everything else non-nil is
// surfaced to the caller as a failed check.
func classifyContent(fileContent *gh.RepositoryContent, dirContent []*gh.RepositoryContent, resp *gh.Response, err error) (FileStatus, error) {
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return StatusNotFound, nil
		}
		return StatusNotFound, fmt.Errorf("failed to check remote content: %w", err)
	}

	if dirContent != nil {
		return StatusNotFile, nil
	}

	if fileContent != nil && fileContent.GetType() == "file" {
		return StatusFile, nil
	}

	return StatusNotFile, nil
}

// CreateFile uploads content as a new file at path.
func (r *repoHandle) CreateFile(ctx context.Context, path, content, message string) error {
	opts := &gh.RepositoryContentFileOptions{
		Message: gh.String(message),
		Content: []byte(content),
	}

	_, _, err := r.gh.Repositories.CreateFile(ctx, r.owner, r.name, path, opts)
	if err != nil {
		return fmt.Errorf("failed to create %s in %s: %w", path, r.fullName, err)
	}

	return nil
}
