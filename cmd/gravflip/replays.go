package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravflip/internal/platform/tui"
	"github.com/vovakirdan/gravflip/internal/registry"
	"github.com/vovakirdan/gravflip/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded runs",
	Long: `Show recorded runs, newest first.

In the browser, Enter plays the selected run and D deletes it.

Examples:
  gravflip replays
  gravflip replays --plain --limit 5
  gravflip replays delete 7`,
	Run: runReplays,
}

var replaysDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	Run:   runReplaysDelete,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain list instead of the browser")
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to print with --plain")
	replaysCmd.AddCommand(replaysDeleteCmd)
}

func runReplays(_ *cobra.Command, _ []string) {
	if flagPlain {
		printReplays()
		return
	}

	s := newSession()
	defer s.close()
	if s.store == nil {
		os.Exit(1)
	}

	for {
		r, goBack, err := tui.RunReplayBrowser(s.store, s.cfg.ScreenW, s.cfg.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if r == nil || goBack {
			return
		}
		game, err := registry.Create(r.GameID)
		if err != nil {
			logger.Warn("replay of unknown variant", "id", r.ID, "game", r.GameID)
			continue
		}
		if err := s.run(game, r); err != nil {
			fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
			os.Exit(1)
		}
	}
}

func printReplays() {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	list, err := store.Replays(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		return
	}
	if len(list) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gravflip play' and every finished run is saved.")
		return
	}

	fmt.Printf("  %-5s  %-16s  %-16s  %-6s  %-5s  %s\n", "ID", "Pilot", "Variant", "Score", "Flips", "Date")
	fmt.Printf("  %-5s  %-16s  %-16s  %-6s  %-5s  %s\n", "--", "-----", "-------", "-----", "-----", "----")
	for _, r := range list {
		fmt.Printf("  %-5d  %-16s  %-16s  %-6d  %-5d  %s\n",
			r.ID, r.Pilot, r.GameID, r.Score, len(r.Flips), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runReplaysDelete(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", args[0])
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	err = store.DeleteReplay(id)
	switch {
	case errors.Is(err, storage.ErrReplayNotFound):
		fmt.Fprintf(os.Stderr, "Error: no replay #%d\n", id)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	default:
		fmt.Printf("Deleted replay #%d\n", id)
	}
}
