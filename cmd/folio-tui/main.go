package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/tinytelemetry/folio/internal/config"
	"github.com/tinytelemetry/folio/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var showVersion bool
	var light bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/folio/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.BoolVar(&light, "light", false, "start in the light theme")
	flag.Parse()

	if showVersion {
		fmt.Printf("Folio TUI - Terminal Portfolio\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if light {
		cfg.Dark = false
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg config.Config) error {
	cleanupLogger := configureRuntimeLogger()
	defer cleanupLogger()

	profile, themes, err := cfg.Content()
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	zones := zone.New()
	portfolio, err := tui.NewPortfolioModel(tui.Options{
		Profile:            profile,
		Themes:             themes,
		Theme:              cfg.Theme(),
		Typing:             cfg.Typing(),
		DownloadDir:        cfg.DownloadDir,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
		Hyperlinks:         tui.SupportsHyperlinks(os.Getenv),
		Zones:              zones,
	})
	if err != nil {
		zones.Close()
		return err
	}

	app := tui.NewApp(zones, tui.NewPortfolioPage(portfolio))
	defer app.Close()

	log.Printf("tui: starting (config=%q)", cfg.ConfigPath)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// configureRuntimeLogger sends the standard logger to a file so nothing is
// written over the alternate screen.
func configureRuntimeLogger() func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}

	logDir := filepath.Join(home, ".local", "state", "folio")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}

	logPath := filepath.Join(logDir, "folio.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		_ = f.Close()
	}
}
