package cli

import (
	"os"
	"strings"
	"time"

	"userdir-cli/internal/api"
	"userdir-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Server     string
	TimeoutSec int
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "userdir",
		Short:        "Terminal client for a remote user directory",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  userdir

  # Scriptable commands
  userdir users list
  userdir users create --name Ann --age 30 --email a@x.com --password pw
  userdir login --email a@x.com --password pw
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return tui.Run(app.client())
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Server, "server", envOr("USERDIR_SERVER", "http://localhost:3000"), "Base URL of the user-directory server")
	cmd.PersistentFlags().IntVar(&app.TimeoutSec, "timeout", 10, "Per-request timeout in seconds")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newLoginCmd(app))

	return cmd
}

func (app *App) client() *api.Client {
	return api.New(app.Server, api.WithTimeout(time.Duration(app.TimeoutSec)*time.Second))
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
