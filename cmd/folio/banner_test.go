package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tinytelemetry/folio/internal/config"
	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/typewriter"
)

func TestWriteBanner_Plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := config.Config{Dark: true}
	if err := writeBanner(context.Background(), &buf, cfg, nil, false); err != nil {
		t.Fatalf("writeBanner: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Melissa Adu-Poku") {
		t.Errorf("banner missing heading: %q", out)
	}
	if strings.Contains(out, "\r") {
		t.Error("plain banner should not redraw lines")
	}
}

func TestWriteBanner_TypesHeadline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := config.Config{Dark: true}
	if err := writeBanner(context.Background(), &buf, cfg, nil, true); err != nil {
		t.Fatalf("writeBanner: %v", err)
	}

	heading := model.DefaultProfile().Heading
	if got := strings.Count(buf.String(), "\r\033[K"); got != len([]rune(heading))+1 {
		t.Errorf("redraws = %d, want %d", got, len([]rune(heading))+1)
	}
}

func TestWriteBanner_Interrupted(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	cfg := config.Config{Dark: true, StartDelay: time.Hour}
	done := make(chan error, 1)
	go func() { done <- writeBanner(ctx, &buf, cfg, typewriter.RealClock(), true) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("writeBanner: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("banner did not stop on cancel")
	}
	if strings.Contains(buf.String(), "A Fullstack Software Engineer") {
		t.Error("interrupted banner printed the hero")
	}
}
