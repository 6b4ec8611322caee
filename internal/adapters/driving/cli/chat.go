package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

var chatPatientID int

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the assistant about a patient",
	Long: `Exchange messages with the AI assistant about a specific patient.

Each patient has a separate transcript, persisted across sessions.

Examples:
  medlink chat send -p 7 "Summarise the latest labs"
  medlink chat history -p 7
  medlink chat clear -p 7`,
}

var chatSendCmd = &cobra.Command{
	Use:   "send [prompt]",
	Short: "Send a prompt and print the reply",
	Args:  cobra.ExactArgs(1),
	RunE:  runChatSend,
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the patient's transcript",
	RunE:  runChatHistory,
}

var chatClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the patient's transcript",
	RunE:  runChatClear,
}

func init() {
	chatCmd.PersistentFlags().IntVarP(
		&chatPatientID, "patient", "p", 0, "patient id (required)")

	chatCmd.AddCommand(chatSendCmd)
	chatCmd.AddCommand(chatHistoryCmd)
	chatCmd.AddCommand(chatClearCmd)
	rootCmd.AddCommand(chatCmd)
}

func selectChatPatient(ctx context.Context) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}
	if chatPatientID == 0 {
		return errors.New("--patient is required")
	}
	if err := chatService.SelectPatient(ctx, chatPatientID); err != nil {
		return fmt.Errorf("failed to load transcript: %w", err)
	}
	return nil
}

func runChatSend(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := selectChatPatient(ctx); err != nil {
		return err
	}

	if err := chatService.Send(ctx, args[0]); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}

	// The reply (or the synthetic error entry) is the newest transcript
	// entry.
	transcript := chatService.Transcript()
	if len(transcript) == 0 {
		return errors.New("empty transcript after send")
	}
	last := transcript[len(transcript)-1]
	cmd.Println(last.Text)
	return nil
}

func runChatHistory(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	if err := selectChatPatient(ctx); err != nil {
		return err
	}

	transcript := chatService.Transcript()
	if len(transcript) == 0 {
		cmd.Println("No messages yet.")
		return nil
	}

	for i := range transcript {
		msg := transcript[i]
		prefix := "assistant"
		switch msg.Type {
		case domain.MessageSent:
			prefix = "you"
		case domain.MessageError:
			prefix = "error"
		case domain.MessageReceived:
		}
		text := strings.ReplaceAll(msg.Text, "\n", "\n      ")
		cmd.Printf("%9s  %s\n", prefix, text)
	}
	return nil
}

func runChatClear(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	if err := selectChatPatient(ctx); err != nil {
		return err
	}

	if err := chatService.ClearHistory(ctx); err != nil {
		return fmt.Errorf("failed to clear transcript: %w", err)
	}
	cmd.Printf("Cleared transcript for patient %d.\n", chatPatientID)
	return nil
}
