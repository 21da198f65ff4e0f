package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"devstats/internal/models"
	"devstats/internal/providers"
	"devstats/internal/statistic"
	"devstats/internal/structures"
)

const (
	SourceLeetCode      = "LeetCode"
	SourceGitHub        = "GitHub"
	SourceGitHubGraphQL = "GitHub GraphQL"

	maxUpstreamBodySize = 10 << 20 // 10 MB
	repositoriesPerPage = 100
)

const leetCodeProfileQuery = `
query userPublicProfile($username: String!) {
  allQuestionsCount {
    difficulty
    count
  }
  matchedUser(username: $username) {
    profile {
      ranking
    }
    submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
      }
    }
  }
}`

const gitHubContributionsQuery = `
query($username: String!) {
  user(login: $username) {
    contributionsCollection {
      totalCommitContributions
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
            contributionLevel
          }
        }
      }
    }
  }
}`

type StatsServiceInterface interface {
	GetProblemStats(ctx context.Context, username string) (*models.ProblemStats, error)
	GetContributionStats(ctx context.Context, username string) (*models.ContributionSummary, error)
	ListRepositories(ctx context.Context, username string) (json.RawMessage, error)
	HasGitHubToken() bool
}

// StatsService turns upstream API responses into display payloads. It keeps
// no state between calls and never retries.
type StatsService struct {
	client   providers.HttpClientInterface
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	upstream structures.UpstreamConfig
}

type graphQLRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

func NewStatsService(conf *structures.Config, client providers.HttpClientInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) StatsServiceInterface {
	return &StatsService{
		client:   client,
		logger:   logger,
		metrics:  metrics,
		upstream: conf.Upstream,
	}
}

func (ss *StatsService) HasGitHubToken() bool {
	return ss.upstream.GitHubToken != ""
}

func (ss *StatsService) GetProblemStats(ctx context.Context, username string) (*models.ProblemStats, error) {
	req, err := ss.newGraphQLRequest(ctx, ss.upstream.LeetCodeURL, leetCodeProfileQuery, username)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Referer", "https://leetcode.com/")

	body, status, err := ss.fetch(SourceLeetCode, req)
	if err != nil {
		return nil, err
	}

	var resp models.LeetCodeResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, &models.UpstreamError{Source: SourceLeetCode, Status: status, Detail: "invalid JSON response: " + err.Error()}
	}

	user := resp.MatchedUser()
	if user == nil {
		return nil, fmt.Errorf("LeetCode user %q: %w", username, models.ErrNotFound)
	}

	stats := statistic.Summarize(user.SubmissionCounts(), resp.QuestionCounts(), user.Ranking())
	return &stats, nil
}

func (ss *StatsService) GetContributionStats(ctx context.Context, username string) (*models.ContributionSummary, error) {
	if !ss.HasGitHubToken() {
		return nil, fmt.Errorf("GITHUB_TOKEN is not configured: %w", models.ErrServiceUnavailable)
	}

	req, err := ss.newGraphQLRequest(ctx, ss.upstream.GitHubGraphQLURL, gitHubContributionsQuery, username)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+ss.upstream.GitHubToken)

	body, status, err := ss.fetch(SourceGitHubGraphQL, req)
	if err != nil {
		return nil, err
	}

	var resp models.GitHubContributionsResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, &models.UpstreamError{Source: SourceGitHubGraphQL, Status: status, Detail: "invalid JSON response: " + err.Error()}
	}
	if messages := resp.ErrorMessages(); messages != "" {
		ss.logger.Warnf(providers.TypeUpstream, "GitHub GraphQL errors for %s: %s", username, messages)
		return nil, &models.UpstreamError{Source: SourceGitHubGraphQL, Status: status, Detail: messages}
	}

	collection := resp.Collection()
	days := statistic.Flatten(collection.Calendar())

	return &models.ContributionSummary{
		TotalContributions:       collection.Calendar().Total(),
		TotalCommitContributions: collection.CommitContributions(),
		CurrentStreak:            statistic.CurrentStreak(days),
		Contributions:            days,
	}, nil
}

// ListRepositories returns the user's most recently updated owned
// repositories exactly as upstream sent them.
func (ss *StatsService) ListRepositories(ctx context.Context, username string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=%d&type=owner",
		strings.TrimRight(ss.upstream.GitHubAPIURL, "/"), url.PathEscape(username), repositoriesPerPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to build GitHub request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if ss.HasGitHubToken() {
		req.Header.Set("Authorization", "Bearer "+ss.upstream.GitHubToken)
	}

	body, status, err := ss.fetch(SourceGitHub, req)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, &models.UpstreamError{Source: SourceGitHub, Status: status, Detail: "invalid JSON response"}
	}
	return json.RawMessage(body), nil
}

func (ss *StatsService) newGraphQLRequest(ctx context.Context, endpoint, query, username string) (*http.Request, error) {
	payload, err := json.Marshal(graphQLRequest{
		Query:     query,
		Variables: map[string]string{"username": username},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to encode GraphQL query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("unable to build GraphQL request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// fetch performs the call and returns the body of a 2xx response. Any other
// outcome is an *models.UpstreamError.
func (ss *StatsService) fetch(source string, req *http.Request) ([]byte, int, error) {
	start := time.Now()
	resp, err := ss.client.Do(req)
	if err != nil {
		ss.metrics.ObserveUpstreamDuration(source, 0, time.Since(start))
		ss.logger.Errorf(providers.TypeUpstream, "%s request failed: %s", source, err)
		return nil, 0, &models.UpstreamError{Source: source, Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBodySize))
	ss.metrics.ObserveUpstreamDuration(source, resp.StatusCode, time.Since(start))
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		ss.logger.Warnf(providers.TypeUpstream, "%s responded with status %d", source, resp.StatusCode)
		return nil, resp.StatusCode, &models.UpstreamError{Source: source, Status: resp.StatusCode, Detail: http.StatusText(resp.StatusCode)}
	}
	if err != nil {
		return nil, resp.StatusCode, &models.UpstreamError{Source: source, Status: resp.StatusCode, Detail: "unable to read response: " + err.Error()}
	}

	ss.logger.Debugf(providers.TypeUpstream, "%s %s -> %d (%d bytes)", req.Method, req.URL.Path, resp.StatusCode, len(body))
	return body, resp.StatusCode, nil
}
