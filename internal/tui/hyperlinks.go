package tui

import "strings"

// SupportsHyperlinks reports whether the terminal described by getenv
// renders OSC 8 hyperlinks. Only environment variables are inspected.
func SupportsHyperlinks(getenv func(string) string) bool {
	switch strings.ToLower(getenv("TERM_PROGRAM")) {
	case "ghostty", "wezterm", "iterm.app", "vscode", "alacritty":
		return true
	case "tmux":
		return false
	}

	term := getenv("TERM")
	switch {
	case term == "xterm-ghostty", term == "xterm-kitty", strings.HasPrefix(term, "alacritty"):
		return true
	}

	for _, key := range []string{"KITTY_WINDOW_ID", "ITERM_SESSION_ID", "WEZTERM_EXECUTABLE", "VTE_VERSION"} {
		if getenv(key) != "" {
			return true
		}
	}
	return getenv("LC_TERMINAL") == "iTerm2"
}

// hyperlink wraps text in an OSC 8 link to url.
func hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
