package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/glintui/glint/internal/config"
	"github.com/glintui/glint/internal/logger"
	"github.com/glintui/glint/internal/tui/gallery"
)

func newGalleryCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "gallery",
		Short: "Launch the interactive component gallery",
		Long:  `Launch the interactive TUI gallery to browse every component with the configured theme.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, flags, log)
		},
	}
}

func runGallery(cmd *cobra.Command, flags *rootFlags, log *logger.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the gallery needs an interactive terminal")
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		log.Error(err, "failed to load configuration")
		return err
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}
	runLog := log.WithFields(map[string]any{"level": level, "theme": cfg.Theme.Name})
	runLog.Info("launching gallery")

	program := tea.NewProgram(
		gallery.NewModel(cfg, runLog),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		runLog.Error(err, "gallery terminated abnormally")
		return fmt.Errorf("failed to run gallery: %w", err)
	}
	return nil
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.ParseConfig(flags.configPath)
}
