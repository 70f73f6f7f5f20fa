package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/tinytelemetry/folio/internal/config"
	"github.com/tinytelemetry/folio/internal/tui"
	"github.com/tinytelemetry/folio/internal/typewriter"
)

const bannerWidth = 80

// printBanner prints the hero once. On a terminal the headline is typed
// first; elsewhere the finished hero is written directly.
func printBanner(out *os.File, cfg config.Config) error {
	animate := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return writeBanner(ctx, out, cfg, nil, animate)
}

// writeBanner renders the hero to w. clock drives the typing when animate is
// set; nil means real time.
func writeBanner(ctx context.Context, w io.Writer, cfg config.Config, clock typewriter.Clock, animate bool) error {
	profile, themes, err := cfg.Content()
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}
	rc := tui.NewRenderContext(cfg.Theme(), themes, bannerWidth)
	rc.Hyperlinks = animate && tui.SupportsHyperlinks(os.Getenv)

	if animate {
		tw, err := typewriter.New(profile.Heading, cfg.Typing())
		if err != nil {
			return fmt.Errorf("headline: %w", err)
		}

		accent := lipgloss.NewStyle().Foreground(lipgloss.Color(rc.Palette.Accent)).Bold(true)
		text := lipgloss.NewStyle().Bold(true)
		runner := typewriter.NewRunner(tw, clock, func(revealed string) {
			fmt.Fprint(w, "\r\033[K"+text.Render(revealed)+accent.Render(".|"))
		})
		runner.Start(ctx)
		<-runner.Done()
		fmt.Fprint(w, "\r\033[K")

		if runner.State() == typewriter.Cancelled {
			fmt.Fprintln(w)
			return nil
		}
	}

	_, err = fmt.Fprintln(w, tui.RenderHero(rc, profile, strings.Split(profile.Heading, " ")))
	return err
}
