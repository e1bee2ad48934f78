package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravflip/internal/audio"
	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/registry"
	"github.com/vovakirdan/gravflip/internal/replay"
	"github.com/vovakirdan/gravflip/internal/storage"
)

// Options are the collaborators of a game session. Every field is optional.
type Options struct {
	Store  *storage.Store  // Where finished runs are recorded
	Audio  audio.Player    // Cue sink; defaults to silence
	Logger *log.Logger     // Defaults to a discarding logger
	Pilot  string          // Name recorded on replays
	Replay *storage.Replay // When set, the session plays this run back
}

// Model is the Bubble Tea model that drives one game session.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	opts   Options

	keys  KeyMap
	help  help.Model
	input core.InputFrame
	state core.GameState

	rec      *replay.Recorder
	script   *replay.Script
	lastSave int64 // ID of the last saved replay, 0 if none
	quitting bool
}

// NewModel resets game and wraps it in a model. A zero seed is replaced by
// the current time; a replay forces its own seed.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Replay != nil {
		cfg.Seed = opts.Replay.Seed
	} else if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.NopPlayer{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	var script *replay.Script
	if opts.Replay != nil {
		script = replay.NewScript(opts.Replay.Flips)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
		state:  game.State(),
		rec:    &replay.Recorder{},
		script: script,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		// Quit is handled at once rather than on the next tick.
		m.state = m.game.Step(core.InputOf(core.ActionQuit)).State
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Set(action)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.input
	m.input = core.NewInputFrame()
	if m.script != nil {
		in = m.script.Input(m.state, in)
	}

	res := m.game.Step(in)
	m.state = res.State
	m.rec.Observe(res)
	for _, e := range res.Events {
		m.handleEvent(e)
	}

	if m.state.Terminated() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) handleEvent(e core.Event) {
	switch e {
	case core.EventFlip:
		m.opts.Audio.Play(audio.CueJump)
	case core.EventDeath:
		m.opts.Audio.Play(audio.CueDeath)
		m.saveReplay()
	case core.EventRestart:
		m.lastSave = 0
	}
}

// saveReplay records the finished run. Failures are logged and ignored.
func (m *Model) saveReplay() {
	if m.opts.Replay != nil {
		return
	}
	if id := replay.Save(m.opts.Store, m.rec.Build(m.game, m.config.Seed, m.opts.Pilot), m.opts.Logger); id != 0 {
		m.lastSave = id
	}
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.footer())
}

func (m Model) footer() string {
	switch {
	case m.opts.Replay != nil:
		return fmt.Sprintf("replay #%d  pilot %s  %s", m.opts.Replay.ID, m.opts.Replay.Pilot, m.help.ShortHelpView([]key.Binding{m.keys.Pause, m.keys.Quit}))
	case m.state.GameOver() && m.lastSave != 0:
		return fmt.Sprintf("saved as replay #%d  %s", m.lastSave, m.help.View(m.keys))
	default:
		return m.help.View(m.keys)
	}
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting reports whether the session has ended.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Flips returns the flip ticks recorded in the current run.
func (m Model) Flips() []int {
	return m.rec.Flips()
}

// Run plays game in the terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
