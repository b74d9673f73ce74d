package commands

import (
	"errors"
	"fmt"

	"zfast-backend/internal/database"

	"github.com/spf13/cobra"
)

var (
	username    string
	newPassword string
)

// setPasswordCmd resets an admin password without the running server
var setPasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Set an admin password and revoke its tokens",
	Long: `Set the password of the admin account. On an empty store the account is
created; otherwise the username must name the existing admin. Every token issued
to the account before the change stops working.

Examples:
  zfastctl set-password --username admin --password 'a-long-secret'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetPassword(cmd)
	},
}

func init() {
	setPasswordCmd.Flags().StringVarP(&username, "username", "u", "admin", "Admin username")
	setPasswordCmd.Flags().StringVarP(&newPassword, "password", "p", "", "New password (8 to 72 characters)")
	_ = setPasswordCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(setPasswordCmd)
}

func runSetPassword(cmd *cobra.Command) error {
	if username == "" {
		return errors.New("username must not be empty")
	}
	if len(newPassword) < 8 || len(newPassword) > 72 {
		return errors.New("password must be between 8 and 72 characters")
	}

	db, cfg, err := openDatabase()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.SetAdminPassword(cmd.Context(), db, username, newPassword, cfg.BcryptCost); err != nil {
		return fmt.Errorf("set password: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Password updated for %s\n", username)
	return nil
}
