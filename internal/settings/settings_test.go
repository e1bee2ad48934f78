package settings

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func isolateHome(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
}

func openTestManager(t *testing.T) (*gdata.Manager, *Manager) {
	t.Helper()
	isolateHome(t)
	store, err := gdata.Open(gdata.Config{AppName: "gravflip_test"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return store, NewManager(store, quietLogger())
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.Muted {
		t.Error("Muted: got true, want false")
	}
	if d.Volume != 0.8 {
		t.Errorf("Volume: got %v, want 0.8", d.Volume)
	}
	if d.Frontend != FrontendTUI {
		t.Errorf("Frontend: got %q, want %q", d.Frontend, FrontendTUI)
	}
}

func TestSaveAndReload(t *testing.T) {
	store, m := openTestManager(t)
	if !m.Persistent() {
		t.Fatal("expected persistent manager")
	}

	m.SetMuted(true)
	m.SetVolume(0.3)
	if err := m.SetFrontend(FrontendWindow); err != nil {
		t.Fatalf("SetFrontend: %v", err)
	}
	m.SetPilot("ada")
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := NewManager(store, quietLogger())
	got := reloaded.Settings()
	want := Settings{Muted: true, Volume: 0.3, Frontend: FrontendWindow, Pilot: "ada"}
	if got != want {
		t.Errorf("reloaded = %+v, want %+v", got, want)
	}
}

func TestSetVolumeClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{3, 1},
	}
	m := NewManager(nil, quietLogger())
	for _, tt := range tests {
		m.SetVolume(tt.in)
		if m.Volume() != tt.want {
			t.Errorf("SetVolume(%v) -> %v, want %v", tt.in, m.Volume(), tt.want)
		}
	}
}

func TestSetFrontendRejectsUnknown(t *testing.T) {
	m := NewManager(nil, quietLogger())
	if err := m.SetFrontend("vr"); err == nil {
		t.Error("expected error for unknown frontend")
	}
	if m.Frontend() != FrontendTUI {
		t.Errorf("Frontend changed to %q", m.Frontend())
	}
}

func TestMemoryOnlyMode(t *testing.T) {
	m := NewManager(nil, quietLogger())
	if m.Persistent() {
		t.Error("nil store should not be persistent")
	}
	m.SetMuted(true)
	if err := m.Save(); err != nil {
		t.Errorf("Save in memory mode: %v", err)
	}
	if !m.Muted() {
		t.Error("in-memory change lost")
	}
	if err := m.Load(); err != nil {
		t.Errorf("Load in memory mode: %v", err)
	}
	if m.Muted() {
		t.Error("Load should reset to defaults in memory mode")
	}
}

func TestLoadCorruptFallsBack(t *testing.T) {
	store, _ := openTestManager(t)
	if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte("volume: [oops")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	m := NewManager(store, quietLogger())
	if m.Settings() != Defaults() {
		t.Errorf("corrupt settings = %+v, want defaults", m.Settings())
	}
	if err := m.Load(); err == nil {
		t.Error("expected decode error")
	}
}
