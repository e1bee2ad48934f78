package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the top-level state of a game session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
	PhaseTerminated
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// GameState is a snapshot of the session handed to the platform layer.
type GameState struct {
	Score   int   // Raw score, one point per survived tick
	Display int   // Score as shown to the player
	Tick    int   // Ticks simulated since the last reset
	Phase   Phase // Running, GameOver or Terminated
	Paused  bool
}

// GameOver reports whether the session is waiting for restart or quit.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Terminated reports whether the session has been asked to quit.
func (s GameState) Terminated() bool {
	return s.Phase == PhaseTerminated
}

// Event is a discrete occurrence during a tick that collaborators
// outside the simulation (audio, replay recorder) react to.
type Event int

const (
	EventFlip Event = iota + 1
	EventDeath
	EventRestart
)

// String returns the event name. Flip and death double as sound handle names.
func (e Event) String() string {
	switch e {
	case EventFlip:
		return "jump"
	case EventDeath:
		return "death"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
