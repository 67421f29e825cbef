package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaluhWikri/Portofolio-Galuh/pkg/apperror"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

func TestFetchStats(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octo":
			fmt.Fprint(w, `{"public_repos": 12}`)
		case "/users/octo/repos":
			fmt.Fprint(w, `[{"name":"alpha"},{"name":"beta"},{"name":"empty"}]`)
		case "/repos/octo/alpha/commits":
			w.Header().Set("Link", `<https://api.github.com/repos/octo/alpha/commits?author=octo&per_page=1&page=40>; rel="last"`)
			fmt.Fprint(w, `[{}]`)
		case "/repos/octo/beta/commits":
			// single page, no Link header
			fmt.Fprint(w, `[{}]`)
		case "/repos/octo/empty/commits":
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer upstream.Close()

	client := NewClientWithBaseURL(upstream.URL, "octo", "", logger.NewNop())
	stats, err := client.FetchStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, stats.PublicRepos)
	assert.Equal(t, 41, stats.Commits) // 40 via Link header + 1 single-page
	assert.Equal(t, staticPullRequests, stats.PullRequests)
	assert.Equal(t, staticIssues, stats.Issues)
	assert.Equal(t, staticContributedTo, stats.ContributedTo)
}

func TestFetchStatsUserFailureHasNoFallback(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer upstream.Close()

	client := NewClientWithBaseURL(upstream.URL, "octo", "", logger.NewNop())
	_, err := client.FetchStats(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUpstream))
}

func TestFetchStatsRepoListFailureFallsBack(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/octo" {
			fmt.Fprint(w, `{"public_repos": 3}`)
			return
		}
		w.WriteHeader(http.StatusForbidden)
	}))
	defer upstream.Close()

	client := NewClientWithBaseURL(upstream.URL, "octo", "", logger.NewNop())
	stats, err := client.FetchStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.PublicRepos)
	assert.Equal(t, 0, stats.Commits)
	assert.Equal(t, staticPullRequests, stats.PullRequests)
}

func TestTokenIsSentWhenConfigured(t *testing.T) {
	var gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"public_repos": 0}`)
	}))
	defer upstream.Close()

	client := NewClientWithBaseURL(upstream.URL, "octo", "secret-token", logger.NewNop())
	_, err := client.fetchUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}
