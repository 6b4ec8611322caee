package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
)

// fetchTimeout bounds one-shot CLI waits on the async caches.
const fetchTimeout = 30 * time.Second

var patientsSearch string

var (
	patientsAddName     string
	patientsAddAge      int
	patientsAddGender   string
	patientsAddDoctorID string
)

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "Manage the patient directory",
	RunE:  runPatientsList,
}

var patientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List patients, optionally filtered",
	RunE:  runPatientsList,
}

var patientsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new patient",
	Long: `Register a new patient with the service.

Examples:
  medlink patients add --name "Jane Roe" --age 41 --gender female --doctor-id 7`,
	RunE: runPatientsAdd,
}

func init() {
	patientsCmd.PersistentFlags().StringVarP(
		&patientsSearch, "search", "s", "", "filter patients by name")

	patientsAddCmd.Flags().StringVar(&patientsAddName, "name", "", "patient name")
	patientsAddCmd.Flags().IntVar(&patientsAddAge, "age", 0, "patient age")
	patientsAddCmd.Flags().StringVar(&patientsAddGender, "gender", "", "patient gender")
	patientsAddCmd.Flags().StringVar(&patientsAddDoctorID, "doctor-id", "", "attending doctor id")

	patientsCmd.AddCommand(patientsListCmd)
	patientsCmd.AddCommand(patientsAddCmd)
	rootCmd.AddCommand(patientsCmd)
}

func runPatientsList(cmd *cobra.Command, _ []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	// One-shot command: the final query is already known, so skip the
	// keystroke debounce entirely.
	snap, err := awaitDirectory(func() {
		directoryService.Search(patientsSearch)
	})
	if err != nil {
		return err
	}
	if snap.Err != nil {
		return fmt.Errorf("failed to fetch patients: %w", snap.Err)
	}

	if len(snap.Patients) == 0 {
		cmd.Println("No patients found.")
		return nil
	}

	cmd.Println("Patients:")
	for i := range snap.Patients {
		p := snap.Patients[i]
		cmd.Printf("  [%d] %s (age %d, %s)\n", p.ID, p.Name, p.Age, p.Gender)
	}
	return nil
}

func runPatientsAdd(cmd *cobra.Command, _ []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}
	if patientsAddName == "" {
		return errors.New("--name is required")
	}

	// Default to the signed-in doctor.
	doctorID := patientsAddDoctorID
	if doctorID == "" && sessionService != nil {
		doctorID = sessionService.Current().UserID
	}

	patient := domain.NewPatient{
		DoctorID: doctorID,
		Name:     patientsAddName,
		Age:      patientsAddAge,
		Gender:   patientsAddGender,
	}
	if err := directoryService.AddPatient(context.Background(), patient); err != nil {
		return fmt.Errorf("failed to add patient: %w", err)
	}

	cmd.Printf("Added patient: %s\n", patientsAddName)
	return nil
}

// awaitDirectory kicks off a directory fetch and blocks until the cache
// settles or the timeout elapses.
func awaitDirectory(kick func()) (driving.DirectorySnapshot, error) {
	updates := make(chan struct{}, 1)
	directoryService.SetOnUpdate(func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	})
	defer directoryService.SetOnUpdate(nil)

	kick()

	deadline := time.After(fetchTimeout)
	for {
		snap := directoryService.Snapshot()
		if !snap.Loading {
			return snap, nil
		}
		select {
		case <-updates:
		case <-deadline:
			return driving.DirectorySnapshot{}, errors.New("timed out waiting for the patient directory")
		}
	}
}
