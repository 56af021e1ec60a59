package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"selectable-list/internal/config"
	"selectable-list/internal/infra/logx"
	"selectable-list/internal/ui"
)

func main() {
	// Enable debug logging when DEBUG environment variable is set
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
		fmt.Println("Debug logging enabled. Run 'tail -f debug.log' to view logs.")
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	defer closeLog()

	if _, err := tea.NewProgram(
		ui.InitialModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

// setupLogging points logx at the configured file. Without a file, dev mode
// still gets its warnings in selectlist.log since stdout is the TUI.
func setupLogging(cfg config.Config) (func(), error) {
	path := cfg.LogFile
	if path == "" && cfg.Dev {
		path = "selectlist.log"
	}
	if path == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logx.SetOutput(f)
	logx.SetVerbose(cfg.LogVerbose)
	if lvl, ok := logx.ParseLevel(cfg.LogLevel); ok {
		logx.SetMinLevel(lvl)
	} else if cfg.LogLevel != "" {
		logx.Warnf("unknown LOG_LEVEL %q, using warn", cfg.LogLevel)
	}
	return func() { _ = f.Close() }, nil
}
