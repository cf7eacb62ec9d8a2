// Command uvterm prints the UV index for the current location to the terminal
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"uvdash.app/internal/adapters/terminal"
	"uvdash.app/internal/app"
	"uvdash.app/internal/config"
	"uvdash.app/internal/core/location"
	"uvdash.app/internal/core/uv"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/logger"
)

type options struct {
	provider string
	city     string
	lat      float64
	lon      float64
	width    int
	watch    time.Duration
}

func main() {
	var opts options
	flag.StringVar(&opts.provider, "provider", "", "UV provider (openuv, openmeteo, meteomatics); defaults to UV_PROVIDER")
	flag.StringVar(&opts.city, "city", "", "city from the catalog to show instead of the detected position")
	flag.Float64Var(&opts.lat, "lat", 0, "latitude; requires -lon")
	flag.Float64Var(&opts.lon, "lon", 0, "longitude; requires -lat")
	flag.IntVar(&opts.width, "width", 0, "pane width in columns")
	flag.DurationVar(&opts.watch, "watch", 0, "refresh at this interval in a full-screen view; q quits")
	flag.Parse()

	_ = godotenv.Load()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "uvterm:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	// Keep the pane readable; only warnings and errors reach stderr
	logger.NewFromOptions(os.Stderr, "warn", "text").SetDefault()

	deps, err := app.NewDependencyContainer(cfg, app.DependencyOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = deps.Cleanup() }()
	p := deps.ApplicationPorts()

	useCase, err := uv.NewUseCase(uv.UseCaseDependencies{
		Providers: p.UVProviders,
		Cache:     p.SnapshotCache,
		Config:    p.ConfigProvider,
		Logger:    p.Logger,
		Metrics:   p.UVMetrics,
		Collector: p.MetricsCollector,
	})
	if err != nil {
		return err
	}
	resolver, err := location.NewResolver(location.ResolverDependencies{
		Source:    p.PositionSource,
		Catalog:   p.CityCatalog,
		Config:    p.ConfigProvider,
		Logger:    p.Logger,
		Collector: p.MetricsCollector,
	})
	if err != nil {
		return err
	}

	if err := applyLocation(resolver, opts); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := terminal.NewRenderer(opts.width, time.Local)
	fetch := func(ctx context.Context) (terminal.View, error) {
		return loadView(ctx, useCase, resolver, opts.provider)
	}

	if opts.watch <= 0 {
		view, err := fetch(ctx)
		fmt.Println(renderer.Render(view))
		return err
	}

	// Refresh errors are shown in the pane; stderr output would tear the alt screen
	logger.NewFromOptions(io.Discard, "warn", "text").SetDefault()
	program := tea.NewProgram(terminal.NewWatchModel(ctx, renderer, fetch, opts.watch),
		tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func applyLocation(resolver *location.Resolver, opts options) error {
	latSet, lonSet := false, false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			latSet = true
		case "lon":
			lonSet = true
		}
	})

	switch {
	case opts.city != "":
		_, err := resolver.SelectCity(opts.city)
		return err
	case latSet != lonSet:
		return fmt.Errorf("-lat and -lon must be given together")
	case latSet:
		_, err := resolver.Select(ports.Coordinate{Latitude: opts.lat, Longitude: opts.lon})
		return err
	}
	return nil
}

func loadView(ctx context.Context, useCase *uv.UseCase, resolver *location.Resolver, provider string) (terminal.View, error) {
	res := resolver.Resolve(ctx)
	view := terminal.View{Location: res}

	snapshot, err := useCase.GetSnapshot(ctx, uv.SnapshotRequest{
		Provider:   provider,
		Coordinate: res.Coordinate,
	})
	if err == nil {
		view.Snapshot = snapshot
	}
	return view, err
}
