package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the signed-in user's profile",
	RunE:  runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	if authService == nil || sessionService == nil {
		return errors.New("auth service not configured")
	}
	if !sessionService.Current().Authenticated() {
		return errors.New("not signed in; run 'medlink login'")
	}

	profile, err := authService.RefreshProfile(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	cmd.Printf("Username:    %s\n", profile.Username)
	cmd.Printf("Role:        %s\n", profile.UserType)
	if profile.InstitutionName != "" {
		cmd.Printf("Institution: %s\n", profile.InstitutionName)
	}
	if profile.Specialisation != "" {
		cmd.Printf("Speciality:  %s\n", profile.Specialisation)
	}
	if profile.Experience > 0 {
		cmd.Printf("Experience:  %d years\n", profile.Experience)
	}
	if profile.DateJoined != "" {
		cmd.Printf("Joined:      %s\n", profile.DateJoined)
	}
	return nil
}
