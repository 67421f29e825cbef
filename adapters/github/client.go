// Package github fetches the profile stats block shown on the landing page.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GaluhWikri/Portofolio-Galuh/internal/config"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/apperror"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

// Placeholder values, matching what the dashboard has always shown: fetching
// these accurately needs the GraphQL contributions API.
const (
	staticPullRequests  = 71
	staticIssues        = 3
	staticContributedTo = 7
)

type Stats struct {
	PublicRepos   int `json:"publicRepos"`
	Commits       int `json:"commits"`
	PullRequests  int `json:"pullRequests"`
	Issues        int `json:"issues"`
	ContributedTo int `json:"contributedTo"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	token      string
	logger     logger.Logger
}

func NewClient(cfg config.Config, log logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://api.github.com",
		username:   cfg.GitHub.Username,
		token:      cfg.GitHub.Token,
		logger:     log,
	}
}

// NewClientWithBaseURL exists for tests against a fake upstream.
func NewClientWithBaseURL(baseURL, username, token string, log logger.Logger) *Client {
	c := NewClient(config.Config{}, log)
	c.baseURL = baseURL
	c.username = username
	c.token = token
	return c
}

// FetchStats builds the stats block. Only the user lookup is allowed to fail
// the request (publicRepos has no fallback); repo and commit lookups degrade
// to partial or zero counts.
func (c *Client) FetchStats(ctx context.Context) (*Stats, error) {
	user, err := c.fetchUser(ctx)
	if err != nil {
		return nil, apperror.NewUpstream(fmt.Sprintf("Failed to fetch GitHub data: %v", err), err)
	}

	stats := &Stats{
		PublicRepos:   user.PublicRepos,
		PullRequests:  staticPullRequests,
		Issues:        staticIssues,
		ContributedTo: staticContributedTo,
	}

	repos, err := c.fetchRepoNames(ctx)
	if err != nil {
		c.logger.Warn("failed to list GitHub repos, commit count falls back to zero", zap.Error(err))
		return stats, nil
	}

	for _, repo := range repos {
		count, err := c.countCommits(ctx, repo)
		if err != nil {
			// Empty or restricted repos respond with errors; skip them.
			continue
		}
		stats.Commits += count
	}
	return stats, nil
}

type githubUser struct {
	PublicRepos int `json:"public_repos"`
}

func (c *Client) fetchUser(ctx context.Context) (*githubUser, error) {
	var user githubUser
	if err := c.getJSON(ctx, fmt.Sprintf("%s/users/%s", c.baseURL, c.username), &user, nil); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) fetchRepoNames(ctx context.Context) ([]string, error) {
	var repos []struct {
		Name string `json:"name"`
	}
	url := fmt.Sprintf("%s/users/%s/repos?type=owner&per_page=100", c.baseURL, c.username)
	if err := c.getJSON(ctx, url, &repos, nil); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.Name)
	}
	return names, nil
}

var lastPageRegex = regexp.MustCompile(`[?&]page=(\d+)>; rel="last"`)

// countCommits asks for one commit per page and reads the page count of the
// last page from the Link header, which equals the author's commit total.
// Much cheaper than paginating every commit like a naive client would.
func (c *Client) countCommits(ctx context.Context, repo string) (int, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/commits?author=%s&per_page=1", c.baseURL, c.username, repo, c.username)

	var commits []json.RawMessage
	var linkHeader string
	if err := c.getJSON(ctx, url, &commits, &linkHeader); err != nil {
		return 0, err
	}

	if m := lastPageRegex.FindStringSubmatch(linkHeader); m != nil {
		return strconv.Atoi(m[1])
	}
	// No Link header: everything fit on one page.
	return len(commits), nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any, linkHeader *string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github responded %s for %s", resp.Status, url)
	}
	if linkHeader != nil {
		*linkHeader = resp.Header.Get("Link")
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
