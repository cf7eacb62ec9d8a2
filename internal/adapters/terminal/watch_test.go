package terminal

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uvdash.app/internal/core/location"
	"uvdash.app/internal/ports"
)

func newTestWatchModel(fetch FetchFunc) WatchModel {
	return NewWatchModel(context.Background(), NewRenderer(70, time.UTC), fetch, time.Minute)
}

func sampleView() View {
	return View{
		Snapshot: sampleSnapshot(),
		Location: location.Resolution{
			Coordinate: ports.Coordinate{Latitude: 51.5072, Longitude: -0.1276, Label: "London"},
			Source:     "ipapi",
		},
	}
}

func TestWatchModel_InitFetches(t *testing.T) {
	calls := 0
	m := newTestWatchModel(func(ctx context.Context) (View, error) {
		calls++
		return sampleView(), nil
	})

	assert.Contains(t, m.View(), "Loading")

	cmd := m.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, 1, calls)

	fetched, ok := msg.(viewFetchedMsg)
	require.True(t, ok)
	assert.NoError(t, fetched.err)
}

func TestWatchModel_FetchedViewIsRendered(t *testing.T) {
	m := newTestWatchModel(nil)

	updated, cmd := m.Update(viewFetchedMsg{view: sampleView()})
	m = updated.(WatchModel)

	assert.NotNil(t, cmd, "a tick is scheduled after every fetch")
	assert.False(t, m.loading)
	out := m.View()
	assert.Contains(t, out, "London")
	assert.Contains(t, out, "OpenUV")
	assert.NotContains(t, out, "Refresh failed")
}

func TestWatchModel_FailedRefreshKeepsLastPane(t *testing.T) {
	m := newTestWatchModel(nil)

	updated, _ := m.Update(viewFetchedMsg{view: sampleView()})
	updated, _ = updated.(WatchModel).Update(refreshMsg(time.Now()))
	assert.True(t, updated.(WatchModel).loading)

	updated, _ = updated.(WatchModel).Update(viewFetchedMsg{err: errors.New("upstream down")})
	m = updated.(WatchModel)

	out := m.View()
	assert.Contains(t, out, "London")
	assert.Contains(t, out, "Refresh failed: upstream down")
}

func TestWatchModel_RefreshIgnoredWhileLoading(t *testing.T) {
	m := newTestWatchModel(nil)
	require.True(t, m.loading)

	_, cmd := m.Update(refreshMsg(time.Now()))
	assert.Nil(t, cmd)
}

func TestWatchModel_Quit(t *testing.T) {
	m := newTestWatchModel(nil)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}
