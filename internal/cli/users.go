package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"userdir-cli/internal/model"

	"github.com/spf13/cobra"
)

// Scriptable counterparts of the TUI flows. They share internal/api with
// the TUI and print the server's records as JSON.

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List, create and update directory users",
	}
	cmd.AddCommand(newUsersListCmd(app))
	cmd.AddCommand(newUsersCreateCmd(app))
	cmd.AddCommand(newUsersUpdateCmd(app))
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Fetch the full user directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.client().ListUsers(context.Background())
			if err != nil {
				return err
			}
			return printJSON(cmd, app, users)
		},
	}
}

func newUsersCreateCmd(app *App) *cobra.Command {
	var draft model.UserRecord
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user (server assigns the id)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := draft.Validate(); err != nil {
				return err
			}
			created, err := app.client().CreateUser(context.Background(), draft)
			if err != nil {
				return err
			}
			return printJSON(cmd, app, created)
		},
	}
	addUserFlags(cmd, &draft)
	return cmd
}

func newUsersUpdateCmd(app *App) *cobra.Command {
	var draft model.UserRecord
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user by server id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := draft.Validate(); err != nil {
				return err
			}
			updated, err := app.client().UpdateUser(context.Background(), args[0], draft)
			if err != nil {
				return err
			}
			return printJSON(cmd, app, updated)
		},
	}
	addUserFlags(cmd, &draft)
	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check credentials against the directory server",
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := app.client().Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			return printJSON(cmd, app, principal)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email to log in with")
	cmd.Flags().StringVar(&password, "password", "", "Password to log in with")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func addUserFlags(cmd *cobra.Command, draft *model.UserRecord) {
	cmd.Flags().StringVar(&draft.Name, "name", "", "User name")
	cmd.Flags().IntVar(&draft.Age, "age", 0, "User age")
	cmd.Flags().StringVar(&draft.Email, "email", "", "User email")
	cmd.Flags().StringVar(&draft.Password, "password", "", "User password")
	cmd.Flags().IntVar(&draft.Phone, "phone", 0, "User phone (optional)")
}

func printJSON(cmd *cobra.Command, app *App, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if app.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
