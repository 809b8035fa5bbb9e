package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/greed-island/internal/handlers/greedisland/v1alpha1"
)

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "Open reward selection after a victory",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.GameServiceClient) error {
			resp, err := client.ProceedToRewards(ctx, &v1alpha1.ProceedToRewardsRequest{SessionID: sessionID})
			if err != nil {
				return fmt.Errorf("failed to open rewards: %w", err)
			}
			printAction(resp)
			return nil
		})
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Add or remove a card from the cards you keep",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.GameServiceClient) error {
			resp, err := client.ToggleEndingSelection(ctx, &v1alpha1.ToggleEndingSelectionRequest{
				SessionID: sessionID,
				CardID:    cardID,
			})
			if err != nil {
				return fmt.Errorf("failed to toggle selection: %w", err)
			}

			switch {
			case !resp.Applied:
				fmt.Printf("Could not toggle %s.\n", cardID)
			case resp.Selected:
				fmt.Printf("Keeping %s.\n", cardID)
			default:
				fmt.Printf("Released %s.\n", cardID)
			}
			PrintSession(os.Stdout, resp.Session, 0)
			return nil
		})
	},
}

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Leave the island with the selected cards",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.GameServiceClient) error {
			resp, err := client.FinishGame(ctx, &v1alpha1.FinishGameRequest{SessionID: sessionID})
			if err != nil {
				return fmt.Errorf("failed to finish game: %w", err)
			}
			if !resp.Applied {
				fmt.Println("Select exactly three cards first.")
				return nil
			}
			PrintSummary(os.Stdout, resp.Summary)
			return nil
		})
	},
}

var retryCmd = &cobra.Command{
	Use:   "retry",
	Short: "Start the game over",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.GameServiceClient) error {
			resp, err := client.Retry(ctx, &v1alpha1.RetryRequest{SessionID: sessionID})
			if err != nil {
				return fmt.Errorf("failed to retry: %w", err)
			}
			printAction(resp)
			return nil
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{rewardsCmd, toggleCmd, finishCmd, retryCmd} {
		requireSessionFlag(cmd)
	}
	requireCardFlag(toggleCmd)
}
