// Package replay records the inputs of a run and scripts them back.
//
// A run is fully determined by its seed and the ticks on which gravity was
// flipped, so that is all a recording keeps.
package replay

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/registry"
	"github.com/vovakirdan/gravflip/internal/storage"
)

// RunSeeder is implemented by games that derive a fresh seed per run.
type RunSeeder interface {
	RunSeed() int64
}

// Recorder collects flip ticks from step results. A restart clears it.
type Recorder struct {
	flips []int
}

// Observe feeds one step result into the recording.
func (r *Recorder) Observe(res core.StepResult) {
	if res.Has(core.EventRestart) {
		r.flips = nil
	}
	if res.Has(core.EventFlip) {
		r.flips = append(r.flips, res.State.Tick)
	}
}

// Flips returns a copy of the recorded flip ticks.
func (r *Recorder) Flips() []int {
	return slices.Clone(r.flips)
}

// Build describes the finished run of g. fallbackSeed is used when the game
// does not report per-run seeds.
func (r *Recorder) Build(g registry.Game, fallbackSeed int64, pilot string) storage.Replay {
	seed := fallbackSeed
	if rs, ok := g.(RunSeeder); ok {
		seed = rs.RunSeed()
	}
	st := g.State()
	return storage.Replay{
		Pilot:  pilot,
		GameID: g.ID(),
		Seed:   seed,
		Ticks:  st.Tick,
		Score:  st.Display,
		Flips:  r.Flips(),
	}
}

// Save stores r and logs the outcome. It returns the new replay ID, or 0
// when the store is nil or the write failed.
func Save(store *storage.Store, r storage.Replay, logger *log.Logger) int64 {
	if store == nil {
		return 0
	}
	id, err := store.SaveReplay(r)
	if err != nil {
		logger.Warn("could not save replay", "game", r.GameID, "err", err)
		return 0
	}
	logger.Info("replay saved", "id", id, "pilot", r.Pilot, "score", r.Score, "flips", len(r.Flips))
	return id
}

// Script turns a recording back into input frames.
type Script struct {
	flips map[int]struct{}
}

// NewScript prepares playback of the given flip ticks.
func NewScript(flips []int) *Script {
	return &Script{
		flips: lo.SliceToMap(flips, func(t int) (int, struct{}) {
			return t, struct{}{}
		}),
	}
}

// Input returns the frame to step with, given the live frame and the state
// before the step. Live flips and restarts are dropped; pause and quit pass
// through. The recorded flip is added when the coming step will advance
// the tick counter.
func (s *Script) Input(before core.GameState, live core.InputFrame) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range []core.Action{core.ActionPause, core.ActionQuit} {
		if live.Has(a) {
			in.Set(a)
		}
	}

	advances := before.Paused == in.Has(core.ActionPause)
	if before.Phase == core.PhaseRunning && advances {
		if _, ok := s.flips[before.Tick+1]; ok {
			in.Set(core.ActionFlip)
		}
	}
	return in
}
