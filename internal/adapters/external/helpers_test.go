package external

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/mock"
	"uvdash.app/internal/mocks"
)

// setupLoggerMock accepts any log call; fields arrive as a single slice argument
func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return mockLogger
}

type stubRoute struct {
	status int
	body   string
}

// newStubUpstream serves fixed responses per URL path and counts requests per path
func newStubUpstream(t *testing.T, routes map[string]stubRoute) (*httptest.Server, map[string]*int64) {
	t.Helper()

	counters := make(map[string]*int64, len(routes))
	for path := range routes {
		counters[path] = new(int64)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		atomic.AddInt64(counters[r.URL.Path], 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(route.status)
		_, _ = w.Write([]byte(route.body))
	}))
	t.Cleanup(server.Close)

	return server, counters
}
