package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/greed-island/internal/handlers/greedisland/v1alpha1"
)

var choiceID string

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Ask the game master for an encounter",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.GameServiceClient) error {
			resp, err := client.Explore(ctx, &v1alpha1.ExploreRequest{SessionID: sessionID})
			if err != nil {
				return fmt.Errorf("failed to explore: %w", err)
			}
			printAction(resp)
			return nil
		})
	},
}

var chooseCmd = &cobra.Command{
	Use:   "choose",
	Short: "Pick a choice in the current encounter",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.GameServiceClient) error {
			resp, err := client.Choose(ctx, &v1alpha1.ChooseRequest{SessionID: sessionID, ChoiceID: choiceID})
			if err != nil {
				return fmt.Errorf("failed to choose: %w", err)
			}
			if !resp.Applied {
				fmt.Println("No decision is pending.")
			}
			PrintResolution(os.Stdout, resp.Resolution)
			fmt.Println()
			PrintSession(os.Stdout, resp.Session, DefaultLogTail)
			return nil
		})
	},
}

var travelCmd = &cobra.Command{
	Use:   "travel",
	Short: "Move to the next location",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.GameServiceClient) error {
			resp, err := client.Travel(ctx, &v1alpha1.TravelRequest{SessionID: sessionID})
			if err != nil {
				return fmt.Errorf("failed to travel: %w", err)
			}
			printAction(resp)
			return nil
		})
	},
}

var useCardCmd = &cobra.Command{
	Use:   "use-card",
	Short: "Use a spell card or a free-slot item",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.GameServiceClient) error {
			resp, err := client.UseCard(ctx, &v1alpha1.UseCardRequest{SessionID: sessionID, CardID: cardID})
			if err != nil {
				return fmt.Errorf("failed to use card: %w", err)
			}
			printAction(resp)
			return nil
		})
	},
}

var bookCmd = &cobra.Command{
	Use:   "book [question...]",
	Short: "Ask the Book a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.GameServiceClient) error {
			resp, err := client.ConsultBook(ctx, &v1alpha1.ConsultBookRequest{
				SessionID: sessionID,
				Query:     strings.Join(args, " "),
			})
			if err != nil {
				return fmt.Errorf("failed to consult the book: %w", err)
			}
			fmt.Printf("Book: %s\n", resp.Answer)
			return nil
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{exploreCmd, chooseCmd, travelCmd, useCardCmd, bookCmd} {
		requireSessionFlag(cmd)
	}
	requireCardFlag(useCardCmd)

	chooseCmd.Flags().StringVar(&choiceID, "choice-id", "", "Choice ID (required)")
	_ = chooseCmd.MarkFlagRequired("choice-id") // nolint:errcheck // safe to ignore in init
}
