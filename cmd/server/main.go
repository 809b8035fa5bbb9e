// Package main is the entry point for the Greed Island game server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/greed-island/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "greed-island",
	Short: "Greed Island game server",
	Long: `Greed Island is a card-collecting adventure. A game master narrates
encounters and the player collects the 100 specified slot cards to win.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
