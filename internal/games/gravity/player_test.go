package gravity

import (
	"testing"

	"github.com/vovakirdan/gravflip/internal/config"
	"github.com/vovakirdan/gravflip/internal/core"
)

func newTestPlayer() *Player {
	cfg := config.DefaultGravityConfig()
	return NewPlayer(cfg.Player, cfg.Physics)
}

func TestPlayerSpawn(t *testing.T) {
	p := newTestPlayer()
	b := p.Bounds()

	if cx, cy := b.Center(); cx != 160 || cy != 360 {
		t.Errorf("center = (%d,%d), want (160,360)", cx, cy)
	}
	if b.W != 40 || b.H != 40 {
		t.Errorf("size = %dx%d, want 40x40", b.W, b.H)
	}
	if p.Direction() != Down {
		t.Errorf("direction = %v, want down", p.Direction())
	}
	if p.Velocity() != 0 || !p.Alive() {
		t.Errorf("velocity=%v alive=%v, want 0 and alive", p.Velocity(), p.Alive())
	}
}

func TestAdvanceFallingDown(t *testing.T) {
	p := newTestPlayer()
	prevY := p.Bounds().Y

	for i := 1; i <= 10; i++ {
		p.Advance()
		if got, want := p.Velocity(), float64(i); got != want {
			t.Fatalf("tick %d: velocity = %v, want %v", i, got, want)
		}
		if got, want := p.Bounds().Y-prevY, int(p.Velocity()); got != want {
			t.Fatalf("tick %d: moved %d, want %d", i, got, want)
		}
		prevY = p.Bounds().Y
	}
}

func TestAdvanceTruncatesFractionalVelocity(t *testing.T) {
	cfg := config.DefaultGravityConfig()
	cfg.Physics.Gravity = 0.4
	p := NewPlayer(cfg.Player, cfg.Physics)
	y0 := p.Bounds().Y

	p.Advance() // v=0.4 -> moves 0
	p.Advance() // v=0.8 -> moves 0
	if p.Bounds().Y != y0 {
		t.Fatalf("y moved by %d, want 0", p.Bounds().Y-y0)
	}
	p.Advance() // v=1.2 -> moves 1
	if p.Bounds().Y != y0+1 {
		t.Fatalf("y = %d, want %d", p.Bounds().Y, y0+1)
	}
}

func TestToggleGravityKeepsVelocity(t *testing.T) {
	p := newTestPlayer()
	for range 3 {
		p.Advance()
	}
	if p.Velocity() != 3 {
		t.Fatalf("velocity = %v, want 3", p.Velocity())
	}

	p.ToggleGravity()
	if p.Velocity() != 3 {
		t.Fatalf("toggle changed velocity to %v", p.Velocity())
	}
	if p.Direction() != Up {
		t.Fatalf("direction = %v, want up", p.Direction())
	}

	want := []float64{2, 1, 0, -1, -2}
	for i, w := range want {
		p.Advance()
		if p.Velocity() != w {
			t.Fatalf("after toggle tick %d: velocity = %v, want %v", i+1, p.Velocity(), w)
		}
	}

	p.ToggleGravity()
	if p.Direction() != Down {
		t.Fatalf("second toggle: direction = %v, want down", p.Direction())
	}
}

func TestAnimationWraps(t *testing.T) {
	p := newTestPlayer()
	seen := map[int]bool{}
	for range 30 {
		p.Advance()
		f := p.Frame()
		if f < 0 || f >= 3 {
			t.Fatalf("frame %d out of range", f)
		}
		seen[f] = true
	}
	if len(seen) != 3 {
		t.Errorf("saw frames %v, want all three", seen)
	}
}

func TestResolveCollision(t *testing.T) {
	// Player bounds: X=140..180, Y=340..380.
	tests := []struct {
		name      string
		dir       Direction
		platform  core.Rect
		wantLand  bool
		wantY     int
		wantAlive bool
	}{
		{
			name:      "falling onto top face",
			dir:       Down,
			platform:  core.NewRect(130, 375, 60, 345),
			wantLand:  true,
			wantY:     335,
			wantAlive: true,
		},
		{
			name:      "falling at tolerance edge",
			dir:       Down,
			platform:  core.NewRect(130, 370, 60, 350),
			wantLand:  true,
			wantY:     330,
			wantAlive: true,
		},
		{
			name:      "falling past tolerance",
			dir:       Down,
			platform:  core.NewRect(130, 369, 60, 351),
			wantLand:  false,
			wantAlive: false,
		},
		{
			name:      "rising into bottom face",
			dir:       Up,
			platform:  core.NewRect(130, 0, 60, 345),
			wantLand:  true,
			wantY:     345,
			wantAlive: true,
		},
		{
			name:      "falling into bottom face",
			dir:       Down,
			platform:  core.NewRect(130, 0, 60, 345),
			wantLand:  false,
			wantAlive: false,
		},
		{
			name:      "rising into top face",
			dir:       Up,
			platform:  core.NewRect(130, 375, 60, 345),
			wantLand:  false,
			wantAlive: false,
		},
		{
			name:      "side hit on full wall",
			dir:       Down,
			platform:  core.NewRect(170, 0, 60, 720),
			wantLand:  false,
			wantAlive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			for range 4 {
				p.Advance()
			}
			p.entity.Bounds.Y = 340
			if tt.dir == Up {
				p.ToggleGravity()
			}

			landed := p.ResolveCollision(tt.platform)
			if landed != tt.wantLand {
				t.Errorf("landed = %v, want %v", landed, tt.wantLand)
			}
			if p.Alive() != tt.wantAlive {
				t.Errorf("alive = %v, want %v", p.Alive(), tt.wantAlive)
			}
			if tt.wantLand {
				if p.Bounds().Y != tt.wantY {
					t.Errorf("y = %d, want %d", p.Bounds().Y, tt.wantY)
				}
				if p.Velocity() != 0 {
					t.Errorf("velocity = %v, want exactly 0", p.Velocity())
				}
			}
		})
	}
}

func TestCheckBounds(t *testing.T) {
	tests := []struct {
		name      string
		dir       Direction
		y         int
		wantAlive bool
	}{
		{"down inside", Down, 600, true},
		{"down touching floor", Down, 680, true},
		{"down past floor", Down, 681, false},
		{"down above ceiling is fine", Down, -20, true},
		{"up inside", Up, 10, true},
		{"up touching ceiling", Up, 0, true},
		{"up past ceiling", Up, -1, false},
		{"up below floor is fine", Up, 700, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			if tt.dir == Up {
				p.ToggleGravity()
			}
			p.entity.Bounds.Y = tt.y
			if got := p.CheckBounds(720); got != tt.wantAlive {
				t.Errorf("CheckBounds = %v, want %v", got, tt.wantAlive)
			}
			if p.Alive() != tt.wantAlive {
				t.Errorf("Alive = %v, want %v", p.Alive(), tt.wantAlive)
			}
		})
	}
}
