package external

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) record(level, msg string, fields []ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := logEntry{level: level, message: msg, fields: make(map[string]interface{}, len(fields))}
	for _, f := range fields {
		entry.fields[f.Key] = f.Value
	}
	l.entries = append(l.entries, entry)
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) { l.record("DEBUG", msg, fields) }
func (l *testLogger) Info(msg string, fields ...ports.Field)  { l.record("INFO", msg, fields) }
func (l *testLogger) Warn(msg string, fields ...ports.Field)  { l.record("WARN", msg, fields) }
func (l *testLogger) Error(msg string, fields ...ports.Field) { l.record("ERROR", msg, fields) }

type testUVProvider struct {
	name     string
	response *ports.UVSnapshotData
	err      error
	delay    time.Duration
}

func (p *testUVProvider) FetchSnapshot(ctx context.Context, coord ports.Coordinate) (*ports.UVSnapshotData, error) {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return p.response, p.err
}

func (p *testUVProvider) GetProviderName() string {
	return p.name
}

func TestUVProviderLoggingDecorator_Success(t *testing.T) {
	peak := ports.UVReadingData{Value: 8.2}
	provider := &testUVProvider{
		name: "openuv",
		response: &ports.UVSnapshotData{
			Current:     ports.UVReadingData{Value: 4.4},
			DailyMax:    &peak,
			Forecast:    []ports.UVReadingData{{Value: 4.4}, {Value: 8.2}},
			SourceLabel: "OpenUV",
		},
		delay: 5 * time.Millisecond,
	}
	logger := &testLogger{}

	decorator := NewUVProviderLoggingDecorator(provider, logger)
	snapshot, err := decorator.FetchSnapshot(context.Background(), stockholm)

	require.NoError(t, err)
	assert.Same(t, provider.response, snapshot)
	require.Len(t, logger.entries, 2)

	request := logger.entries[0]
	assert.Equal(t, "INFO", request.level)
	assert.Equal(t, "UV API request started", request.message)
	assert.Equal(t, "openuv", request.fields["provider"])
	assert.Equal(t, 59.3293, request.fields["latitude"])
	assert.Equal(t, "request", request.fields["event"])

	response := logger.entries[1]
	assert.Equal(t, "UV API request completed", response.message)
	assert.Equal(t, "response", response.fields["event"])
	assert.Equal(t, 4.4, response.fields["current"])
	assert.Equal(t, 2, response.fields["forecast_entries"])
	assert.Equal(t, 8.2, response.fields["daily_max"])
	duration, ok := response.fields["duration_ms"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(5))

	assert.Equal(t, "openuv", decorator.GetProviderName())
}

func TestUVProviderLoggingDecorator_FetchError(t *testing.T) {
	provider := &testUVProvider{
		name: "meteomatics",
		err:  errors.NewUpstreamStatusError("meteomatics", 401),
	}
	logger := &testLogger{}

	decorator := NewUVProviderLoggingDecorator(provider, logger)
	snapshot, err := decorator.FetchSnapshot(context.Background(), stockholm)

	assert.Nil(t, snapshot)
	assert.Same(t, provider.err, err)
	require.Len(t, logger.entries, 2)

	failure := logger.entries[1]
	assert.Equal(t, "ERROR", failure.level)
	assert.Equal(t, "UV API request failed", failure.message)
	assert.Equal(t, "upstream-status", failure.fields["reason"])
	assert.Equal(t, 401, failure.fields["status"])
}

func TestUVProviderLoggingDecorator_PlainError(t *testing.T) {
	provider := &testUVProvider{name: "openmeteo", err: stderrors.New("boom")}
	logger := &testLogger{}

	_, err := NewUVProviderLoggingDecorator(provider, logger).FetchSnapshot(context.Background(), stockholm)

	require.Error(t, err)
	failure := logger.entries[1]
	assert.Equal(t, "boom", failure.fields["error"])
	assert.NotContains(t, failure.fields, "reason")
}

func TestUVProviderLoggingDecorator_NilSnapshot(t *testing.T) {
	logger := &testLogger{}

	snapshot, err := NewUVProviderLoggingDecorator(&testUVProvider{name: "openuv"}, logger).
		FetchSnapshot(context.Background(), stockholm)

	assert.NoError(t, err)
	assert.Nil(t, snapshot)
	assert.Equal(t, "WARN", logger.entries[1].level)
}
