package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravflip/internal/registry"
	"github.com/vovakirdan/gravflip/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch a recorded run",
	Long: `Play back a recorded run. The replay uses the seed and flips that
were recorded, so it needs the same game config as the original run.

Examples:
  gravflip replay 12
  gravflip replay 12 --window`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	addFrontendFlags(replayCmd)
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", args[0])
		os.Exit(1)
	}

	s := newSession()
	defer s.close()
	if s.store == nil {
		os.Exit(1)
	}

	r, err := s.store.Replay(id)
	if errors.Is(err, storage.ErrReplayNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no replay #%d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'gravflip replays' to list them.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(r.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("playing replay", "id", r.ID, "game", r.GameID, "pilot", r.Pilot)
	if err := s.run(game, &r); err != nil {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
		os.Exit(1)
	}
}
