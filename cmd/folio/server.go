package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/folio/internal/config"
	"github.com/tinytelemetry/folio/internal/httpserver"
)

// runServer serves the portfolio over HTTP until interrupted.
func runServer(cfg config.Config) error {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(os.Stderr)

	profile, themes, err := cfg.Content()
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	srv, err := httpserver.NewServer(httpserver.Config{
		Addr:    cfg.HTTPAddr,
		Profile: profile,
		Themes:  themes,
		Theme:   cfg.Theme(),
		Typing:  cfg.Typing(),
	})
	if err != nil {
		return fmt.Errorf("failed to build HTTP server: %w", err)
	}
	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	printStartupBanner(cfg, profile.Name)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case <-sigCh:
			fmt.Println("\nShutting down gracefully...")
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return srv.Stop()
	})

	if err := g.Wait(); err != nil {
		log.Printf("server: shutdown: %v", err)
	}
	return nil
}

func printStartupBanner(cfg config.Config, name string) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	teal := lipgloss.NewStyle().Foreground(lipgloss.Color("#14B8A6"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")

	logo := teal.Bold(true).Render(`
    ╔═╗╔═╗╦  ╦╔═╗
    ╠╣ ║ ║║  ║║ ║
    ╚  ╚═╝╩═╝╩╚═╝`)

	separator := dim.Render("    ─────────────────────────────────")

	lines := []string{
		"",
		logo,
		"    " + dim.Render("v"+version),
		"",
		separator,
		"",
		bold.Render("    Portfolio"),
		"",
		fmt.Sprintf("    %s  Owner          %s", check, teal.Render(name)),
		fmt.Sprintf("    %s  HTTP           %s", check, teal.Render("http://"+cfg.HTTPAddr)),
		fmt.Sprintf("    %s  Theme          %s", check, dim.Render(cfg.Theme().Name())),
		"",
		bold.Render("    Content"),
		"",
		sourceLine(check, dot, dim, "Profile", cfg.ProfilePath),
		sourceLine(check, dot, dim, "Palettes", cfg.ThemePath),
		sourceLine(check, dot, dim, "Config File", cfg.ConfigPath),
		"",
		separator,
		"",
		"    " + dim.Render("Press ") + yellow.Render("Ctrl+C") + dim.Render(" to stop"),
		"",
	}

	fmt.Println(strings.Join(lines, "\n"))
}

func sourceLine(check, dot string, dim lipgloss.Style, label, path string) string {
	if path == "" {
		return fmt.Sprintf("    %s  %-14s %s", dot, label, dim.Render("built-in"))
	}
	return fmt.Sprintf("    %s  %-14s %s", check, label, dim.Render(shortenPath(path)))
}

func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
