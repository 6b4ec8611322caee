package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

var (
	signupAddress        string
	signupName           string
	signupSpecialization string
	signupLicense        string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register as a doctor in the wallet registry",
	Long: `Register a doctor in the wallet-based registry.

The registration keys your name, specialization and license number to a
wallet address. Once registered, the address signs in with
'medlink login --wallet'.

Examples:
  medlink signup --address 0xAB12 --name "Dr Smith" --specialization cardiology --license MD-4417`,
	RunE: runSignup,
}

func init() {
	signupCmd.Flags().StringVar(
		&signupAddress, "address", "", "wallet address to register")
	signupCmd.Flags().StringVar(
		&signupName, "name", "", "doctor name")
	signupCmd.Flags().StringVar(
		&signupSpecialization, "specialization", "", "medical specialization")
	signupCmd.Flags().StringVar(
		&signupLicense, "license", "", "medical license number")
	rootCmd.AddCommand(signupCmd)
}

//nolint:errcheck // CLI interactive flow
func runSignup(cmd *cobra.Command, _ []string) error {
	if doctorRegistry == nil {
		return errors.New("doctor registry not configured")
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	address := signupAddress
	if address == "" {
		cmd.Print("Wallet address: ")
		input, _ := reader.ReadString('\n')
		address = strings.TrimSpace(input)
	}
	if address == "" {
		return errors.New("wallet address is required")
	}

	name := signupName
	if name == "" {
		cmd.Print("Name: ")
		input, _ := reader.ReadString('\n')
		name = strings.TrimSpace(input)
	}
	if name == "" {
		return errors.New("name is required")
	}

	ctx := context.Background()

	existing, err := doctorRegistry.Doctor(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to check the registry: %w", err)
	}
	if existing.IsRegistered {
		return fmt.Errorf("address %s is already registered to %s", address, existing.Name)
	}

	record := domain.DoctorRecord{
		Address:        address,
		Name:           name,
		Specialization: signupSpecialization,
		LicenseNumber:  signupLicense,
	}
	if err := doctorRegistry.RegisterDoctor(ctx, record); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	cmd.Printf("Registered %s as %s\n", name, address)
	cmd.Printf("Sign in with: medlink login --wallet --address %s\n", address)
	return nil
}
