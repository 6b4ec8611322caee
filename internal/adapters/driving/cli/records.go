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

var recordsPatientID int

var (
	recordsAddName string
	recordsAddURL  string
	recordsAddType string
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage a patient's medical records",
	RunE:  runRecordsList,
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a patient's records",
	RunE:  runRecordsList,
}

var recordsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Attach a report to a patient",
	Long: `Attach a report to a patient's record.

Examples:
  medlink records add -p 7 --name "Blood panel" --url https://... --type lab`,
	RunE: runRecordsAdd,
}

func init() {
	recordsCmd.PersistentFlags().IntVarP(
		&recordsPatientID, "patient", "p", 0, "patient id (required)")

	recordsAddCmd.Flags().StringVar(&recordsAddName, "name", "", "report name")
	recordsAddCmd.Flags().StringVar(&recordsAddURL, "url", "", "report document URL")
	recordsAddCmd.Flags().StringVar(&recordsAddType, "type", "", "record type")

	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsAddCmd)
	rootCmd.AddCommand(recordsCmd)
}

func runRecordsList(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}
	if recordsPatientID == 0 {
		return errors.New("--patient is required")
	}

	snap, err := awaitRecords(func() {
		recordService.Select(recordsPatientID)
	})
	if err != nil {
		return err
	}
	if snap.Err != nil {
		return fmt.Errorf("failed to fetch records: %w", snap.Err)
	}

	if len(snap.Records) == 0 {
		cmd.Println("No records on file.")
		return nil
	}

	cmd.Printf("Records for patient %d:\n", snap.PatientID)
	for i := range snap.Records {
		r := snap.Records[i]
		cmd.Printf("  [%d] %s (%s) %s\n", i+1, r.Name, r.RecordType, r.Date)
		if r.Summary != "" {
			cmd.Printf("      %s\n", r.Summary)
		}
		if r.URL != "" {
			cmd.Printf("      %s\n", r.URL)
		}
	}
	return nil
}

func runRecordsAdd(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}
	if recordsPatientID == 0 {
		return errors.New("--patient is required")
	}
	if recordsAddName == "" {
		return errors.New("--name is required")
	}

	if _, err := awaitRecords(func() {
		recordService.Select(recordsPatientID)
	}); err != nil {
		return err
	}

	record := domain.NewRecord{
		PatientID:  recordsPatientID,
		Name:       recordsAddName,
		URL:        recordsAddURL,
		RecordType: recordsAddType,
	}
	if err := recordService.AddReport(context.Background(), record); err != nil {
		return fmt.Errorf("failed to add report: %w", err)
	}

	cmd.Printf("Added report: %s\n", recordsAddName)
	return nil
}

// awaitRecords kicks off a record fetch and blocks until the cache settles
// or the timeout elapses.
func awaitRecords(kick func()) (driving.RecordsSnapshot, error) {
	updates := make(chan struct{}, 1)
	recordService.SetOnUpdate(func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	})
	defer recordService.SetOnUpdate(nil)

	kick()

	deadline := time.After(fetchTimeout)
	for {
		snap := recordService.Snapshot()
		if !snap.Loading {
			return snap, nil
		}
		select {
		case <-updates:
		case <-deadline:
			return driving.RecordsSnapshot{}, errors.New("timed out waiting for records")
		}
	}
}
