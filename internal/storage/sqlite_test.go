package storage

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)

	in := Replay{
		Pilot:  "ada",
		GameID: "gravity",
		Seed:   42,
		Ticks:  1234,
		Score:  123,
		Flips:  []int{3, 17, 40, 41},
	}
	id, err := store.SaveReplay(in)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive ID, got %d", id)
	}

	got, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if got.ID != id || got.Pilot != in.Pilot || got.GameID != in.GameID {
		t.Errorf("identity mismatch: %+v", got)
	}
	if got.Seed != in.Seed || got.Ticks != in.Ticks || got.Score != in.Score {
		t.Errorf("run mismatch: %+v", got)
	}
	if !slices.Equal(got.Flips, in.Flips) {
		t.Errorf("Flips = %v, want %v", got.Flips, in.Flips)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestReplayWithoutFlips(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(Replay{Pilot: "p", GameID: "gravity", Seed: 1, Ticks: 26})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	got, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if len(got.Flips) != 0 {
		t.Errorf("Flips = %v, want empty", got.Flips)
	}
}

func TestReplaysNewestFirst(t *testing.T) {
	store := openTestStore(t)

	var ids []int64
	for i, pilot := range []string{"a", "b", "c"} {
		id, err := store.SaveReplay(Replay{Pilot: pilot, GameID: "gravity", Seed: int64(i), Ticks: 10 * (3 - i)})
		if err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
		ids = append(ids, id)
	}

	list, err := store.Replays(10)
	if err != nil {
		t.Fatalf("Replays() failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("Expected 3 replays, got %d", len(list))
	}
	// Ordered by recency, not by ticks survived.
	for i, want := range []int64{ids[2], ids[1], ids[0]} {
		if list[i].ID != want {
			t.Errorf("list[%d].ID = %d, want %d", i, list[i].ID, want)
		}
	}

	limited, err := store.Replays(2)
	if err != nil {
		t.Fatalf("Replays(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 replays, got %d", len(limited))
	}
}

func TestReplayNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Replay(999)
	if !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("Replay(999) error = %v, want ErrReplayNotFound", err)
	}
}

func TestDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(Replay{Pilot: "p", GameID: "gravity", Ticks: 5})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if _, err := store.Replay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("after delete, error = %v, want ErrReplayNotFound", err)
	}
	if err := store.DeleteReplay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("second delete error = %v, want ErrReplayNotFound", err)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store1.SaveReplay(Replay{Pilot: "p", GameID: "gravity-classic", Seed: 9, Flips: []int{1}})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store2.Close()

	got, err := store2.Replay(id)
	if err != nil {
		t.Fatalf("Replay() after reopen failed: %v", err)
	}
	if got.GameID != "gravity-classic" || got.Seed != 9 {
		t.Errorf("persisted replay mismatch: %+v", got)
	}
}

func TestFlipCodec(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "7", []int{7}, false},
		{"many", "1,2,300", []int{1, 2, 300}, false},
		{"garbage", "1,x", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeFlips(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !slices.Equal(got, tt.want) {
				t.Errorf("decodeFlips(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && encodeFlips(got) != tt.in {
				t.Errorf("encodeFlips round trip = %q, want %q", encodeFlips(got), tt.in)
			}
		})
	}
}
