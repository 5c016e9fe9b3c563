package save

import (
	"path/filepath"
	"testing"

	"tilequest/world"
)

func TestRecordRoundTrip(t *testing.T) {
	rec := NewRecord()
	if rec.ID == "" {
		t.Fatal("new record should carry an identity")
	}
	rec.ActivePuzzles[world.RoomHallOfEchoes] = world.PuzzleInProgress
	rec.ActivePuzzles[world.RoomGolemForge] = world.PuzzleSolved
	rec.PuzzleProgress[world.RoomHallOfEchoes] = 3
	rec.PuzzleProgress[world.RoomGolemForge] = 3
	rec.DiscoveredRooms = []world.RoomKind{world.RoomEntrance, world.RoomHallOfEchoes}
	rec.Player = &TilePosition{X: 12, Y: 80}

	path := filepath.Join(t.TempDir(), "save.json")
	if err := rec.Write(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if got.ID != rec.ID {
		t.Errorf("ID = %q, want %q", got.ID, rec.ID)
	}
	if got.ActivePuzzles[world.RoomHallOfEchoes] != world.PuzzleInProgress {
		t.Error("hall status lost in round trip")
	}
	if got.PuzzleProgress[world.RoomGolemForge] != 3 {
		t.Error("forge progress lost in round trip")
	}
	if len(got.DiscoveredRooms) != 2 {
		t.Errorf("discovered rooms = %v", got.DiscoveredRooms)
	}
	if got.Player == nil || got.Player.X != 12 || got.Player.Y != 80 {
		t.Errorf("player position lost: %+v", got.Player)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing save file")
	}
}

func TestReadFillsNilMaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	rec := Record{ID: "bare"}
	if err := rec.Write(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.ActivePuzzles == nil || got.PuzzleProgress == nil {
		t.Error("maps should be initialized on read")
	}
}
