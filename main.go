package main

import (
	"log/slog"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-calc/internal/cli"
	"github.com/iburimskiy/particle-calc/internal/config"
	"github.com/iburimskiy/particle-calc/internal/game"
)

// runWindow reports window failures in a dialog as well, since the app is
// usually started without a terminal.
func runWindow(cfg config.Config, dark bool, log *slog.Logger) error {
	err := game.Run(cfg, dark, log)
	if err != nil {
		if dlgErr := zenity.Error(err.Error(), zenity.Title("Calculator")); dlgErr != nil {
			log.Warn("Cannot show error dialog", "error", dlgErr)
		}
	}
	return err
}

func main() {
	if err := cli.NewRootCommand(runWindow).Execute(); err != nil {
		os.Exit(1)
	}
}
