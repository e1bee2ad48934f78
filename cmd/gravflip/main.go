// gravflip is a side-scrolling runner where the only control is flipping
// gravity.
//
// Usage:
//
//	gravflip play [game]     - Play in the terminal (menu when no game is given)
//	gravflip play --window   - Play in a desktop window
//	gravflip list            - List game variants
//	gravflip serve           - Start SSH server for remote play
//	gravflip replays         - Browse recorded runs
//	gravflip replay <id>     - Watch a recorded run
//	gravflip sprites -o file - Write the player sprite strip
//	gravflip name            - Fetch a random pilot name
//	gravflip settings        - Show or change user settings
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible runs
//	--db <path>           - Replay database (default: XDG data dir)
//	--config <path>       - Game tuning YAML
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination (default: XDG state dir)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravflip/internal/config"
	_ "github.com/vovakirdan/gravflip/internal/games/gravity"
	"github.com/vovakirdan/gravflip/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravflip",
	Short: "Gravity Flip - dodge the walls by flipping gravity",
	Long: `Gravity Flip is a side-scrolling runner. Walls scroll in from the
right; the only thing you control is which way gravity pulls.

Available commands:
  play      - Play in the terminal or a window
  list      - Show game variants
  serve     - Start SSH server for remote play
  replays   - Browse recorded runs
  replay    - Watch a recorded run
  sprites   - Write the player sprite strip
  name      - Fetch a random pilot name
  settings  - Show or change settings

Examples:
  gravflip play
  gravflip play gravity-classic
  gravflip play --window
  gravflip serve --ssh :2222
  gravflip replay 3`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to replay database (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: XDG state dir)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(settingsCmd)
}

func preRun(cmd *cobra.Command, args []string) error {
	if err := setupLogging(cmd, args); err != nil {
		return err
	}
	return checkConfig()
}

// checkConfig rejects an unreadable or invalid --config before any game starts.
func checkConfig() error {
	if flagConfig == "" {
		return nil
	}
	if _, err := config.Load(flagConfig); err != nil {
		logger.Error("bad game config", "path", flagConfig, "err", err)
		return fmt.Errorf("invalid --config: %w", err)
	}
	return nil
}

// setupLogging points the logger at a file. The terminal belongs to the game.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	path := flagLogFile
	if path == "" {
		if path, err = xdg.StateFile(config.AppName + "/gravflip.log"); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: no log path: %v\n", err)
			return nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return nil
	}

	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "gravflip",
		Level:           level,
	})
	return nil
}

// openStore opens the replay database from --db or the XDG default.
func openStore() (*storage.Store, error) {
	path := flagDBPath
	if path == "" {
		p, err := storage.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return storage.Open(path)
}
