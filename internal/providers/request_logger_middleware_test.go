package providers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	cacheTestLogger
	types []TypeEnum
	lines []string
}

func (l *recordingLogger) Infof(t TypeEnum, format string, args ...interface{}) {
	l.types = append(l.types, t)
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestRequestLoggerMiddleware_GeneratesRequestID(t *testing.T) {
	logger := &recordingLogger{}
	mw := RequestLoggerMiddleware(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stats/leetcode/ghost", nil))

	id := rr.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	require.Len(t, logger.lines, 1)
	assert.Equal(t, TypeGet, logger.types[0])
	assert.Contains(t, logger.lines[0], id)
	assert.Contains(t, logger.lines[0], "404")
}

func TestRequestLoggerMiddleware_KeepsIncomingID(t *testing.T) {
	logger := &recordingLogger{}
	mw := RequestLoggerMiddleware(logger, dummyHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/enquiries", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
	assert.Equal(t, TypePost, logger.types[0])
}
