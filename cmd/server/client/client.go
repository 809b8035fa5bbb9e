// Package client provides commands that drive a running Greed Island server
// over gRPC
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/greed-island/internal/handlers/greedisland/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Shared request flags
	sessionID string
	cardID    string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Play against a running server",
	Long:  `Client commands make real gRPC requests against a Greed Island server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Session commands
	ClientCmd.AddCommand(createSessionCmd)
	ClientCmd.AddCommand(getSessionCmd)

	// Adventure commands
	ClientCmd.AddCommand(exploreCmd)
	ClientCmd.AddCommand(chooseCmd)
	ClientCmd.AddCommand(travelCmd)
	ClientCmd.AddCommand(useCardCmd)
	ClientCmd.AddCommand(bookCmd)

	// Ending commands
	ClientCmd.AddCommand(rewardsCmd)
	ClientCmd.AddCommand(toggleCmd)
	ClientCmd.AddCommand(finishCmd)
	ClientCmd.AddCommand(retryCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createGameClient creates a game service client
func createGameClient() (*v1alpha1.GameServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewGameServiceClient(conn), cleanup, nil
}

func requireSessionFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	_ = cmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
}

func requireCardFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cardID, "card-id", "", "Card ID (required)")
	_ = cmd.MarkFlagRequired("card-id") // nolint:errcheck // safe to ignore in init
}
