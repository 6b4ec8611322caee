package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session credential",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if authService == nil {
			return errors.New("auth service not configured")
		}
		authService.SignOut()
		cmd.Println("Signed out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
