package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	fyneapp "fyne.io/fyne/v2/app"

	demoapp "github.com/foldkit/accordeon/internal/app"
	"github.com/foldkit/accordeon/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Temporary stdout logger for bootstrap errors
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting accordeon demo")

	cfg := demoapp.ConfigFromEnv()

	fyneApp := fyneapp.NewWithID("com.foldkit.accordeon.demo")

	application, err := demoapp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	mainWindow := ui.NewMainWindow(application.FyneApp(), application)

	// Blocking: runs the Fyne event loop
	application.Run(mainWindow.Window())

	application.Logger().Info("application shutdown complete")
	return nil
}
