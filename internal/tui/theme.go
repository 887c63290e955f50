package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must stay readable on both light and dark terminal backgrounds,
// and the user can flip between the two at runtime (ctrl+t), so styles are
// built per-appearance rather than from lipgloss.AdaptiveColor (adaptive
// colors resolve once against the detected background and cannot follow a
// runtime toggle).

type theme struct {
	dark bool

	header    lipgloss.Style
	faint     lipgloss.Style
	label     lipgloss.Style
	errorText lipgloss.Style

	notifOK  lipgloss.Style
	notifErr lipgloss.Style

	rowNormal   lipgloss.Style
	rowSelected lipgloss.Style
}

func newTheme(dark bool) theme {
	t := theme{dark: dark}
	if dark {
		t.header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
		t.faint = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		t.label = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		t.errorText = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		t.notifOK = lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("114")).
			Padding(0, 1)
		t.notifErr = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("160")).
			Padding(0, 1)
		t.rowNormal = lipgloss.NewStyle()
		t.rowSelected = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("236")).
			Bold(true)
		return t
	}
	t.header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235"))
	t.faint = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	t.label = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	t.errorText = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	t.notifOK = lipgloss.NewStyle().
		Foreground(lipgloss.Color("235")).
		Background(lipgloss.Color("150")).
		Padding(0, 1)
	t.notifErr = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("196")).
		Padding(0, 1)
	t.rowNormal = lipgloss.NewStyle()
	t.rowSelected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("240")).
		Bold(true)
	return t
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile respects CLICOLOR, which is useful for pipeable
// CLI output but can accidentally disable colors in a full-screen TUI; here
// we honor only NO_COLOR and otherwise trust the terminal.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	}
	lipgloss.SetColorProfile(profile)
}

// initialDarkBackground resolves the starting appearance.
//
// Priority: USERDIR_THEME=light|dark, then USERDIR_DARKBG=true|false, then
// the COLORFGBG heuristic (format like "15;0" = fg;bg), then terminal
// background probing.
func initialDarkBackground() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("USERDIR_THEME"))) {
	case "light":
		return false
	case "dark":
		return true
	}
	if v := strings.TrimSpace(os.Getenv("USERDIR_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			return bg < 7
		}
	}
	return lipgloss.HasDarkBackground()
}
