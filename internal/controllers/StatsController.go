package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"devstats/internal/models"
	"devstats/internal/providers"
	"devstats/internal/services"
)

// failureMessages are the user-facing texts of one endpoint.
type failureMessages struct {
	notFound    string
	unavailable string
	upstream    string
}

var (
	leetCodeMessages = failureMessages{
		notFound: "LeetCode user not found.",
		upstream: "Unable to fetch LeetCode stats.",
	}
	repositoriesMessages = failureMessages{
		upstream: "Unable to fetch GitHub repositories.",
	}
	contributionsMessages = failureMessages{
		unavailable: "GITHUB_TOKEN is not configured on the backend.",
		upstream:    "Unable to fetch GitHub contribution stats.",
	}
)

type StatsController struct {
	logger  providers.Logger
	service services.StatsServiceInterface
	cache   providers.CacheProviderInterface
}

func NewStatsController(logger providers.Logger, service services.StatsServiceInterface, cache providers.CacheProviderInterface) *StatsController {
	return &StatsController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

// serveFromCacheOrCompute answers from the cache when possible. Only
// successful payloads are cached.
func (sc *StatsController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, messages failureMessages, compute func() (any, error)) {
	if data, ok := sc.cache.Get(cacheKey); ok {
		writeRawJSON(w, http.StatusOK, data)
		return
	}

	result, err := compute()
	if err != nil {
		sc.writeError(w, cacheKey, messages, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		sc.logger.Errorf(providers.TypeGet, "Unable to encode %s: %s", cacheKey, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sc.cache.Set(cacheKey, gson)
	writeRawJSON(w, http.StatusOK, gson)
}

func (sc *StatsController) writeError(w http.ResponseWriter, cacheKey string, messages failureMessages, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound) && messages.notFound != "":
		writeMessage(w, http.StatusNotFound, messages.notFound, "")
	case errors.Is(err, models.ErrServiceUnavailable) && messages.unavailable != "":
		writeMessage(w, http.StatusServiceUnavailable, messages.unavailable, "")
	default:
		sc.logger.Errorf(providers.TypeGet, "%s failed: %s", cacheKey, err)
		writeMessage(w, http.StatusInternalServerError, messages.upstream, err.Error())
	}
}

func (sc *StatsController) GetLeetCodeStats(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	sc.serveFromCacheOrCompute(w, "leetcode:"+username, leetCodeMessages, func() (any, error) {
		return sc.service.GetProblemStats(r.Context(), username)
	})
}

func (sc *StatsController) GetGitHubRepos(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	sc.serveFromCacheOrCompute(w, "repos:"+username, repositoriesMessages, func() (any, error) {
		return sc.service.ListRepositories(r.Context(), username)
	})
}

func (sc *StatsController) GetGitHubStats(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	sc.serveFromCacheOrCompute(w, "github:"+username, contributionsMessages, func() (any, error) {
		return sc.service.GetContributionStats(r.Context(), username)
	})
}
