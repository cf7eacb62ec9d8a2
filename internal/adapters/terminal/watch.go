package terminal

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FetchFunc loads the data for one redraw
type FetchFunc func(ctx context.Context) (View, error)

// refreshMsg asks the model to fetch again
type refreshMsg time.Time

// viewFetchedMsg carries the result of a fetch
type viewFetchedMsg struct {
	view View
	err  error
}

// WatchModel is a bubbletea model that refetches and redraws on a fixed interval
type WatchModel struct {
	ctx      context.Context
	renderer *Renderer
	fetch    FetchFunc
	interval time.Duration

	view    View
	err     error
	loaded  bool
	loading bool
}

func NewWatchModel(ctx context.Context, renderer *Renderer, fetch FetchFunc, interval time.Duration) WatchModel {
	return WatchModel{
		ctx:      ctx,
		renderer: renderer,
		fetch:    fetch,
		interval: interval,
		loading:  true,
	}
}

func (m WatchModel) Init() tea.Cmd {
	return m.fetchCmd()
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r":
			if !m.loading {
				m.loading = true
				return m, m.fetchCmd()
			}
		}
		return m, nil

	case refreshMsg:
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, m.fetchCmd()

	case viewFetchedMsg:
		m.loading = false
		m.err = msg.err
		// A failed refresh keeps the last good pane on screen
		if msg.err == nil || !m.loaded {
			m.view = msg.view
			m.loaded = true
		}
		return m, m.tickCmd()
	}

	return m, nil
}

func (m WatchModel) View() string {
	if !m.loaded {
		return noticeStyle.Render("Loading UV index...") + "\n"
	}

	out := m.renderer.Render(m.view)
	if m.err != nil {
		out += "\n" + errorStyle.Render("Refresh failed: "+m.err.Error())
	}
	return out + "\n" + footerStyle.Render("r refresh · q quit") + "\n"
}

func (m WatchModel) fetchCmd() tea.Cmd {
	ctx, fetch := m.ctx, m.fetch
	return func() tea.Msg {
		view, err := fetch(ctx)
		return viewFetchedMsg{view: view, err: err}
	}
}

func (m WatchModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}
