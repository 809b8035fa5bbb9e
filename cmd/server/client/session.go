package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/greed-island/internal/handlers/greedisland/v1alpha1"
)

var playerName string

var createSessionCmd = &cobra.Command{
	Use:   "create-session",
	Short: "Start a new game",
	RunE:  runCreateSession,
}

var getSessionCmd = &cobra.Command{
	Use:   "get-session",
	Short: "Show a game",
	RunE:  runGetSession,
}

func init() {
	createSessionCmd.Flags().StringVar(&playerName, "name", "", "Player name (server default when empty)")
	requireSessionFlag(getSessionCmd)
}

// withClient runs fn with a connected client and a request deadline
func withClient(fn func(ctx context.Context, client *v1alpha1.GameServiceClient) error) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}

func runCreateSession(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.GameServiceClient) error {
		resp, err := client.CreateSession(ctx, &v1alpha1.CreateSessionRequest{PlayerName: playerName})
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		fmt.Printf("Created session %s\n\n", resp.Session.ID)
		PrintSession(os.Stdout, resp.Session, DefaultLogTail)
		return nil
	})
}

func runGetSession(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.GameServiceClient) error {
		resp, err := client.GetSession(ctx, &v1alpha1.GetSessionRequest{SessionID: sessionID})
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}

		PrintSession(os.Stdout, resp.Session, DefaultLogTail)
		return nil
	})
}

// printAction reports a rejected action before the session
func printAction(resp *v1alpha1.ActionResponse) {
	if !resp.Applied {
		fmt.Println("Action not available right now.")
	}
	PrintSession(os.Stdout, resp.Session, DefaultLogTail)
}
