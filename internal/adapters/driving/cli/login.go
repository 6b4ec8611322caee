package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
)

var (
	loginWallet   bool
	loginAddress  string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Sign in and store the session credential",
	Long: `Sign in to the MedConnect service.

By default the command exchanges a username and password for a session
credential. With --wallet it instead derives the credential from a wallet
address registered in the on-chain doctor registry.

The credential is persisted; subsequent commands and the TUI reuse it until
you run 'medlink logout'.

Examples:
  medlink login drsmith                 # prompts for the password
  medlink login --wallet --address 0xAB # wallet-registry sign-in`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().BoolVar(
		&loginWallet, "wallet", false, "sign in via a registered wallet address")
	loginCmd.Flags().StringVar(
		&loginAddress, "address", "", "wallet address (with --wallet)")
	loginCmd.Flags().StringVar(
		&loginPassword, "password", "", "password (prompts when omitted)")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	provider, err := buildProvider(cmd, args)
	if err != nil {
		return err
	}

	profile, err := authService.SignIn(context.Background(), provider)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	cmd.Printf("Signed in as %s (%s)\n", profile.Username, profile.UserType)
	return nil
}

//nolint:errcheck // CLI interactive flow
func buildProvider(cmd *cobra.Command, args []string) (driven.CredentialProvider, error) {
	reader := bufio.NewReader(cmd.InOrStdin())

	if loginWallet {
		if walletProvider == nil {
			return nil, errors.New("wallet sign-in not configured")
		}
		address := loginAddress
		if address == "" {
			cmd.Print("Wallet address: ")
			input, _ := reader.ReadString('\n')
			address = strings.TrimSpace(input)
		}
		if address == "" {
			return nil, errors.New("wallet address is required")
		}
		return walletProvider(address), nil
	}

	if passwordProvider == nil {
		return nil, errors.New("password sign-in not configured")
	}

	var username string
	if len(args) == 1 {
		username = args[0]
	} else {
		cmd.Print("Username: ")
		input, _ := reader.ReadString('\n')
		username = strings.TrimSpace(input)
	}
	if username == "" {
		return nil, errors.New("username is required")
	}

	password := loginPassword
	if password == "" {
		password, _ = readPassword(cmd, reader)
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	return passwordProvider(username, password), nil
}

// readPassword prompts without echo when stdin is a terminal, and falls back
// to a plain line read otherwise (tests, pipes).
//
//nolint:errcheck // CLI interactive flow
func readPassword(cmd *cobra.Command, reader *bufio.Reader) (string, error) {
	cmd.Print("Password: ")
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		cmd.Println()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input), nil
}
