package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/foldkit/accordeon/internal/logging"
	"github.com/foldkit/accordeon/internal/model"
)

// App is the demo application coordinator, responsible for wiring together
// configuration, logging and state and managing the window lifecycle.
type App struct {
	fyneApp  fyne.App
	window   fyne.Window
	config   *Config
	logger   *slog.Logger
	manifest *Manifest
	state    *model.DemoState
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.InitLogger("accordeon-demo", cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("initializing accordeon demo",
		slog.Bool("debug", cfg.Debug),
		slog.String("manifest_path", cfg.ManifestPath),
	)

	manifest, err := LoadManifest(cfg.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load section manifest: %w", err)
	}

	state := model.NewDemoState()
	_ = state.SectionCount.Set(len(manifest.Sections))

	logger.Info("application initialized successfully",
		slog.Int("sections", len(manifest.Sections)),
	)

	return &App{
		fyneApp:  fyneApp,
		config:   cfg,
		logger:   logger,
		manifest: manifest,
		state:    state,
	}, nil
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// Manifest returns the loaded section manifest.
func (a *App) Manifest() *Manifest {
	return a.manifest
}

// State returns the demo state for use by UI components.
func (a *App) State() *model.DemoState {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
