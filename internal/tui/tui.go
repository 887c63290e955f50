package tui

import (
	"os"
	"strings"

	"userdir-cli/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive client against the given API client.
// USERDIR_DEBUG_LOG routes log output to a file (the TUI owns stdout).
func Run(client *api.Client) error {
	if path := strings.TrimSpace(os.Getenv("USERDIR_DEBUG_LOG")); path != "" {
		f, err := tea.LogToFile(path, "userdir")
		if err == nil {
			defer f.Close()
		}
	}

	applyColorProfilePreference()

	m := newAppModel(client)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
