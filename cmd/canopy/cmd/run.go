package cmd

import (
	"fmt"

	"github.com/go-drift/canopy/cmd/canopy/internal/demo"
	"github.com/go-drift/canopy/pkg/platform"
	"github.com/go-drift/canopy/pkg/platform/shiny"
	"github.com/go-drift/canopy/pkg/ui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Open the demo in a native window",
		Long: `Open a native window and run the demo application until it quits.

The window size, title and toolkit defaults come from canopy.yaml in the
--config directory. Press Escape or the Quit button to exit.`,
		Usage: "canopy run",
		Run:   runRun,
	})
}

func runRun(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected arguments: %v\n\nUsage: canopy run", args)
	}
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	opts := shiny.Options{Width: cfg.Width, Height: cfg.Height, Title: cfg.Title}
	return shiny.Run(opts, func(display platform.Display, source platform.EventSource) error {
		app, err := ui.New(ui.Options{
			Display: display,
			Source:  source,
			Config:  cfg,
			Logger:  logger,
		})
		if err != nil {
			return err
		}
		demo.Build(app)
		logger.Info("window open", "size", display.Size(), "title", cfg.Title)
		if err := app.Run(); err != nil {
			return err
		}
		s := app.Stats()
		logger.Info("window closed", "events", s.EventsDispatched, "frames", s.Frames)
		return nil
	})
}
