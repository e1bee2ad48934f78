package main

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravflip/internal/audio"
	"github.com/vovakirdan/gravflip/internal/config"
	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/games/gravity"
	"github.com/vovakirdan/gravflip/internal/namegen"
	"github.com/vovakirdan/gravflip/internal/platform/tui"
	"github.com/vovakirdan/gravflip/internal/platform/window"
	"github.com/vovakirdan/gravflip/internal/registry"
	"github.com/vovakirdan/gravflip/internal/settings"
	"github.com/vovakirdan/gravflip/internal/storage"
)

var (
	flagWindow      bool
	flagMute        bool
	flagPilot       string
	flagRandomPilot bool
	flagAPIKey      string
	flagSprites     string
	flagScale       float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start a run of the given variant, or pick one from a menu.

Controls:
  Space/Up/W  - Flip gravity
  P           - Pause
  R           - Restart (after game over)
  Q/Esc       - Quit

Every run that ends is saved as a replay.

Examples:
  gravflip play
  gravflip play gravity-classic
  gravflip play --window --scale 1.5
  gravflip play --pilot ada --mute
  gravflip play --random-pilot --api-key $RANDOMMER_KEY`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addFrontendFlags(playCmd)
	playCmd.Flags().StringVar(&flagPilot, "pilot", "", "Name recorded on replays")
	playCmd.Flags().BoolVar(&flagRandomPilot, "random-pilot", false, "Fetch a random pilot name from randommer.io")
	playCmd.Flags().StringVar(&flagAPIKey, "api-key", os.Getenv("RANDOMMER_API_KEY"), "randommer.io API key")
}

// addFrontendFlags registers the flags shared by play and replay.
func addFrontendFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().StringVar(&flagSprites, "sprites", "", "Player sprite strip PNG (window only)")
	cmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the field (window only)")
}

// session bundles what every run needs, whatever the frontend.
type session struct {
	settings *settings.Manager
	store    *storage.Store
	audio    audio.Player
	pilot    string
	cfg      core.RuntimeConfig
}

// newSession opens storage and audio. Both degrade rather than fail.
func newSession() *session {
	gravity.SetConfigPath(flagConfig)

	s := &session{
		settings: settings.Open(config.AppName, logger),
		audio:    audio.NopPlayer{},
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		logger.Warn("replays disabled", "err", err)
	} else {
		s.store = store
	}

	if !flagMute && !s.settings.Muted() {
		p, err := audio.NewSpeakerPlayer(s.settings.Volume(), logger)
		if err != nil {
			logger.Warn("audio unavailable", "err", err)
		} else {
			s.audio = p
		}
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	s.cfg = core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	return s
}

func (s *session) close() {
	if p, ok := s.audio.(*audio.SpeakerPlayer); ok {
		p.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
}

func (s *session) useWindow() bool {
	return flagWindow || s.settings.Frontend() == settings.FrontendWindow
}

// run plays game, or plays back r when it is not nil.
func (s *session) run(game registry.Game, r *storage.Replay) error {
	if s.useWindow() {
		g, ok := game.(*gravity.Game)
		if !ok {
			return fmt.Errorf("game %q cannot run in a window", game.ID())
		}
		return window.Run(g, s.cfg, window.Options{
			Store:      s.store,
			Audio:      s.audio,
			Logger:     logger,
			Pilot:      s.pilot,
			Replay:     r,
			SpritePath: flagSprites,
			Scale:      flagScale,
		})
	}
	return tui.Run(game, s.cfg, tui.Options{
		Store:  s.store,
		Audio:  s.audio,
		Logger: logger,
		Pilot:  s.pilot,
		Replay: r,
	})
}

func runPlay(_ *cobra.Command, args []string) {
	s := newSession()
	defer s.close()
	s.pilot = resolvePilot(s.settings)
	logger.Info("session started", "pilot", s.pilot, "window", s.useWindow())

	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'gravflip list' to see available games.")
			os.Exit(1)
		}
	}

	if gameID == "" && !s.useWindow() {
		if err := s.menuLoop(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if gameID == "" {
		gameID = "gravity"
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if err := s.run(game, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// menuLoop alternates between the picker and runs until the user quits.
func (s *session) menuLoop() error {
	for {
		choice, err := tui.RunMenu(s.cfg.ScreenW, s.cfg.ScreenH)
		if err != nil {
			return err
		}

		switch {
		case choice.Quit:
			return nil
		case choice.WantsReplays:
			if s.store == nil {
				continue
			}
			r, goBack, err := tui.RunReplayBrowser(s.store, s.cfg.ScreenW, s.cfg.ScreenH)
			if err != nil {
				return err
			}
			if r == nil {
				if goBack {
					continue
				}
				return nil
			}
			game, err := registry.Create(r.GameID)
			if err != nil {
				logger.Warn("replay of unknown variant", "id", r.ID, "game", r.GameID)
				continue
			}
			if err := s.run(game, r); err != nil {
				return err
			}
		default:
			game, err := registry.Create(choice.GameID)
			if err != nil {
				return err
			}
			if err := s.run(game, nil); err != nil {
				return err
			}
		}
	}
}

// resolvePilot picks the replay name: --pilot, then a fetched random name,
// then the saved setting, then the OS user.
func resolvePilot(sm *settings.Manager) string {
	if flagPilot != "" {
		return flagPilot
	}
	if flagRandomPilot {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		name, err := namegen.RandomName(ctx, flagAPIKey)
		if err == nil && name != "" {
			return name
		}
		logger.Warn("random pilot name unavailable", "err", err)
	}
	if p := sm.Pilot(); p != "" {
		return p
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "pilot"
}
