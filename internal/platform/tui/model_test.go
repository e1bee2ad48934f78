package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravflip/internal/config"
	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/games/gravity"
	"github.com/vovakirdan/gravflip/internal/storage"
)

type cueLog struct {
	cues []string
}

func (c *cueLog) Play(name string) { c.cues = append(c.cues, name) }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func newGame() *gravity.Game {
	return gravity.NewWithConfig(config.DefaultGravityConfig())
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

// tickUntil sends ticks until done reports true or the limit is hit.
func tickUntil(t *testing.T, m Model, limit int, done func(core.GameState) bool) Model {
	t.Helper()
	for range limit {
		m, _ = send(t, m, TickMsg{})
		if done(m.State()) {
			return m
		}
	}
	t.Fatalf("condition not reached in %d ticks, state %+v", limit, m.State())
	return m
}

func TestModelRecordsReplayOnDeath(t *testing.T) {
	store := openStore(t)
	cues := &cueLog{}
	m := NewModel(newGame(), testConfig(), Options{Store: store, Audio: cues, Pilot: "ada"})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = send(t, m, TickMsg{})
	if got := m.Flips(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("flips = %v, want [1]", got)
	}
	m, _ = send(t, m, runeKey("w"))
	m = tickUntil(t, m, 500, core.GameState.GameOver)

	if len(cues.cues) != 3 || cues.cues[0] != "jump" || cues.cues[2] != "death" {
		t.Errorf("cues = %v, want jump jump death", cues.cues)
	}

	list, err := store.Replays(10)
	if err != nil {
		t.Fatalf("Replays: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("saved %d replays, want 1", len(list))
	}
	r := list[0]
	if r.Pilot != "ada" || r.GameID != "gravity" || r.Seed != 7 {
		t.Errorf("replay identity = %+v", r)
	}
	if r.Ticks != m.State().Tick || r.Score != m.State().Display {
		t.Errorf("replay ticks=%d score=%d, state %+v", r.Ticks, r.Score, m.State())
	}
	if len(r.Flips) != 2 || r.Flips[0] != 1 {
		t.Errorf("replay flips = %v", r.Flips)
	}
	if !strings.Contains(m.View(), "saved as replay") {
		t.Error("footer should mention the saved replay")
	}
}

func TestModelReplayReproducesRun(t *testing.T) {
	store := openStore(t)
	m := NewModel(newGame(), testConfig(), Options{Store: store})

	// Flip every 20 ticks until death.
	for i := 0; i < 2000 && !m.State().GameOver(); i++ {
		if i%20 == 0 {
			m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
		}
		m, _ = send(t, m, TickMsg{})
	}
	if !m.State().GameOver() {
		t.Fatal("run did not end")
	}
	want := m.State()

	list, err := store.Replays(1)
	if err != nil || len(list) != 1 {
		t.Fatalf("Replays: %v (%d)", err, len(list))
	}
	replay := list[0]

	cfg := testConfig()
	cfg.Seed = 999 // overridden by the replay
	pb := NewModel(newGame(), cfg, Options{Store: store, Replay: &replay})

	// Live flips are ignored during playback.
	pb, _ = send(t, pb, tea.KeyMsg{Type: tea.KeySpace})
	pb = tickUntil(t, pb, 5000, core.GameState.GameOver)

	if pb.State() != want {
		t.Errorf("playback state = %+v, want %+v", pb.State(), want)
	}
	if n, _ := store.Replays(10); len(n) != 1 {
		t.Errorf("playback saved a replay: %d stored", len(n))
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newGame(), testConfig(), Options{})
	m, cmd := send(t, m, runeKey("q"))

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if !m.State().Terminated() {
		t.Errorf("phase = %v, want terminated", m.State().Phase)
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelRestart(t *testing.T) {
	m := NewModel(newGame(), testConfig(), Options{})
	m = tickUntil(t, m, 500, core.GameState.GameOver)

	m, _ = send(t, m, runeKey("r"))
	m, _ = send(t, m, TickMsg{})

	if m.State().Phase != core.PhaseRunning || m.State().Score != 0 {
		t.Errorf("after restart state = %+v", m.State())
	}
}

func TestModelRestartClearsSavedReplay(t *testing.T) {
	store := openStore(t)
	m := NewModel(newGame(), testConfig(), Options{Store: store, Pilot: "ada"})
	m = tickUntil(t, m, 500, core.GameState.GameOver)
	if m.lastSave == 0 {
		t.Fatal("death should save a replay")
	}

	m, _ = send(t, m, runeKey("r"))
	m, _ = send(t, m, TickMsg{})
	if m.lastSave != 0 {
		t.Errorf("lastSave = %d after restart, want 0", m.lastSave)
	}

	m = tickUntil(t, m, 500, core.GameState.GameOver)
	list, err := store.Replays(10)
	if err != nil {
		t.Fatalf("Replays: %v", err)
	}
	if len(list) != 2 || m.lastSave != list[0].ID {
		t.Errorf("lastSave = %d, stored %+v", m.lastSave, list)
	}
}

func TestModelPause(t *testing.T) {
	m := NewModel(newGame(), testConfig(), Options{})
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, runeKey("p"))
	m, _ = send(t, m, TickMsg{})
	tick := m.State().Tick
	for range 5 {
		m, _ = send(t, m, TickMsg{})
	}
	if !m.State().Paused || m.State().Tick != tick {
		t.Errorf("paused model advanced: %+v", m.State())
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(newGame(), testConfig(), Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("view is missing the score")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawText(0, 0, "ab", core.ColorRed)
	scr.DrawText(2, 0, "cd", core.ColorGreen)

	out := RenderScreen(scr)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("want 2 lines, got %q", out)
	}
}
