package model

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyHeading reports a profile whose typed headline is blank.
var ErrEmptyHeading = errors.New("profile: heading is empty")

// LoadProfile reads a YAML profile from path. Fields missing from the file
// keep their DefaultProfile values. An empty path returns the defaults.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading profile %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Validate reports authoring mistakes that would break rendering.
// Section ids are checked when the navigator is built.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Heading) == "" {
		return ErrEmptyHeading
	}
	return nil
}
