package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/folio/internal/model"
)

// ErrNoResume is returned when the profile has no resume file.
var ErrNoResume = errors.New("no resume configured")

// saveResume copies the resume into the download directory off the event loop.
func (m *PortfolioModel) saveResume() tea.Cmd {
	resume, dir := m.profile.Resume, m.downloadDir
	m.setStatus("Saving resume...", false)
	return func() tea.Msg {
		path, err := CopyResume(resume, dir)
		return resumeSavedMsg{path: path, err: err}
	}
}

// CopyResume copies r.Path into dir under r.DownloadName and returns the
// destination path.
func CopyResume(r model.Resume, dir string) (string, error) {
	if r.Path == "" {
		return "", ErrNoResume
	}
	name := filepath.Base(r.DownloadName)
	if r.DownloadName == "" || name == "." || name == string(filepath.Separator) {
		name = filepath.Base(r.Path)
	}
	if dir == "" {
		dir = "."
	}

	src, err := os.Open(r.Path)
	if err != nil {
		return "", fmt.Errorf("open resume: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	dest := filepath.Join(dir, name)
	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dest, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return "", fmt.Errorf("copy resume: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", dest, err)
	}
	return dest, nil
}
