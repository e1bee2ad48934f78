package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravflip/internal/namegen"
)

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Fetch a random pilot name",
	Long: `Fetch a random first name from randommer.io. The API key is read from
--api-key or RANDOMMER_API_KEY.`,
	Run: runName,
}

func init() {
	nameCmd.Flags().StringVar(&flagAPIKey, "api-key", os.Getenv("RANDOMMER_API_KEY"), "randommer.io API key")
}

func runName(cmd *cobra.Command, _ []string) {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	name, err := namegen.RandomName(ctx, flagAPIKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(name)
}
