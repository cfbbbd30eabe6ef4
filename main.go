package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/taskxp/internal/config"
	"github.com/sadopc/taskxp/internal/model"
	"github.com/sadopc/taskxp/internal/store"
	"github.com/sadopc/taskxp/internal/tracker"
	"github.com/sadopc/taskxp/internal/tui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to a yaml config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logOut, err := openLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logOut.Close()
	log := makeLogger(cfg.LogLevel, logOut)

	s, err := store.New(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()
	s.SetLogger(log)

	snap, ok := s.LoadTasks()
	if !ok {
		log.Info("no saved tasks, starting fresh", "user", cfg.UserName)
		snap = tracker.Empty(cfg.UserName)
	}
	themeState, ok := s.LoadTheme()
	if !ok {
		themeState = model.ThemeState{DarkMode: cfg.DarkMode}
	}

	t := tracker.New(snap)
	stop := tracker.Autosave(t, s, log)
	defer stop()
	theme := tracker.NewTheme(themeState)
	tracker.AutosaveTheme(theme, s, log)

	log.Info("starting", "db", cfg.DBPath, "tasks", len(snap.Tasks))

	app := tui.NewApp(t, theme, tui.Options{
		HorizonDays: cfg.UpcomingDays,
		DBPath:      cfg.DBPath,
		LogFile:     cfg.LogFile,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.Error("program exited", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func openLog(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func makeLogger(levelStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
