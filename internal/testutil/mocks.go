package testutil

import (
	"bytes"
	"context"
	"devstats/internal/models"
	"devstats/internal/providers"
	"io"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockHttpClient implements providers.HttpClientInterface. Requests are
// recorded with their bodies already read.
type MockHttpClient struct {
	mu       sync.Mutex
	DoFn     func(req *http.Request) (*http.Response, error)
	Requests []*http.Request
	Bodies   [][]byte
}

func (m *MockHttpClient) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.Bodies = append(m.Bodies, body)
	fn := m.DoFn
	m.mu.Unlock()

	if fn == nil {
		return JSONResponse(http.StatusOK, "{}"), nil
	}
	return fn(req)
}

func (m *MockHttpClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}

// JSONResponse builds a response with the given status and raw JSON body.
func JSONResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

// MockStatsService implements services.StatsServiceInterface.
type MockStatsService struct {
	mu                sync.Mutex
	ProblemStats      *models.ProblemStats
	ProblemErr        error
	Contributions     *models.ContributionSummary
	ContributionErr   error
	Repositories      json.RawMessage
	RepositoriesErr   error
	TokenConfigured   bool
	ProblemCalls      []string
	ContributionCalls []string
	RepositoryCalls   []string
}

func (m *MockStatsService) GetProblemStats(_ context.Context, username string) (*models.ProblemStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProblemCalls = append(m.ProblemCalls, username)
	return m.ProblemStats, m.ProblemErr
}

func (m *MockStatsService) GetContributionStats(_ context.Context, username string) (*models.ContributionSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ContributionCalls = append(m.ContributionCalls, username)
	return m.Contributions, m.ContributionErr
}

func (m *MockStatsService) ListRepositories(_ context.Context, username string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RepositoryCalls = append(m.RepositoryCalls, username)
	return m.Repositories, m.RepositoriesErr
}

func (m *MockStatsService) HasGitHubToken() bool {
	return m.TokenConfigured
}

// MockEnquiryStore implements interfaces.EnquiryStoreInterface.
type MockEnquiryStore struct {
	mu        sync.Mutex
	AppendErr error
	CountErr  error
	Records   []*models.EnquiryRecord
	Inputs    []models.EnquiryInput
}

func (m *MockEnquiryStore) Append(input models.EnquiryInput) (*models.EnquiryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Inputs = append(m.Inputs, input)
	if m.AppendErr != nil {
		return nil, m.AppendErr
	}
	record := &models.EnquiryRecord{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
	}
	m.Records = append(m.Records, record)
	return record, nil
}

func (m *MockEnquiryStore) Count() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Records), m.CountErr
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and counts the
// calls that tests assert on.
type MockMetrics struct {
	mu              sync.Mutex
	UpstreamCalls   []UpstreamObservation
	EnquiryResults  []string
	Persistences    int
	EnquiryRows     int
	CacheHits       int
	CacheMisses     int
	RequestStatuses []int
}

type UpstreamObservation struct {
	Source string
	Status int
}

func (m *MockMetrics) IncRequestsTotal(_ string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestStatuses = append(m.RequestStatuses, status)
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObserveUpstreamDuration(source string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpstreamCalls = append(m.UpstreamCalls, UpstreamObservation{Source: source, Status: status})
}
func (m *MockMetrics) IncEnquiriesTotal(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnquiryResults = append(m.EnquiryResults, result)
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persistences++
}
func (m *MockMetrics) SetEnquiryRows(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnquiryRows = count
}
