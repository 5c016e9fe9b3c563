package systems

import (
	"testing"

	"tilequest/config"
	"tilequest/engine"
	"tilequest/world"
)

func newTestHandler(t *testing.T, seed int64) (*DungeonHandler, *world.DungeonMap, *engine.EventBus) {
	t.Helper()
	bus := engine.NewEventBus()
	h := NewDungeonHandler(bus)
	d := world.NewDungeonGenerator(seed).Generate(100, 100)
	bus.Emit(DungeonLoadedEvent{Dungeon: d})
	return h, d, bus
}

func TestPuzzleProgressTransitions(t *testing.T) {
	h, _, _ := newTestHandler(t, 42)

	status, ok := h.Status(world.RoomHallOfEchoes)
	if !ok || status != world.PuzzleUnsolved {
		t.Fatalf("expected unsolved start, got %v (tracked=%v)", status, ok)
	}

	// Four increments: unsolved -> in progress, not yet solved.
	for i := 0; i < 4; i++ {
		if h.IncreasePuzzleProgress(world.RoomHallOfEchoes, 1) {
			t.Fatalf("puzzle reported solved after %d of 5 steps", i+1)
		}
	}
	if status, _ := h.Status(world.RoomHallOfEchoes); status != world.PuzzleInProgress {
		t.Errorf("expected in progress, got %v", status)
	}

	// Fifth increment solves.
	if !h.IncreasePuzzleProgress(world.RoomHallOfEchoes, 1) {
		t.Error("fifth step should solve the puzzle")
	}
	if status, _ := h.Status(world.RoomHallOfEchoes); status != world.PuzzleSolved {
		t.Errorf("expected solved, got %v", status)
	}
	if h.Progress(world.RoomHallOfEchoes) != 5 {
		t.Errorf("progress = %d, want 5", h.Progress(world.RoomHallOfEchoes))
	}

	// Further increments clamp and still report solved.
	if !h.IncreasePuzzleProgress(world.RoomHallOfEchoes, 1) {
		t.Error("already-solved puzzle should report solved")
	}
	if h.Progress(world.RoomHallOfEchoes) != 5 {
		t.Errorf("progress moved past max: %d", h.Progress(world.RoomHallOfEchoes))
	}
}

func TestPuzzleProgressOvershootClamps(t *testing.T) {
	h, _, _ := newTestHandler(t, 42)

	if !h.IncreasePuzzleProgress(world.RoomGolemForge, 10) {
		t.Error("overshoot should solve the puzzle")
	}
	if h.Progress(world.RoomGolemForge) != world.PuzzleMaxProgress[world.RoomGolemForge] {
		t.Errorf("progress = %d, want clamp at %d",
			h.Progress(world.RoomGolemForge), world.PuzzleMaxProgress[world.RoomGolemForge])
	}
}

func TestUntrackedRoomKindIgnored(t *testing.T) {
	h, _, _ := newTestHandler(t, 42)

	if h.IncreasePuzzleProgress(world.RoomEntrance, 1) {
		t.Error("entrance carries no puzzle")
	}
	if h.Progress(world.RoomEntrance) != 0 {
		t.Error("untracked kind gained progress")
	}
}

func TestNoDungeonIsNoOp(t *testing.T) {
	bus := engine.NewEventBus()
	h := NewDungeonHandler(bus)

	if h.IncreasePuzzleProgress(world.RoomHallOfEchoes, 1) {
		t.Error("handler without a dungeon should do nothing")
	}
	if h.CurrentRoom(5, 5) != nil {
		t.Error("handler without a dungeon should find no room")
	}
	// Events before a dungeon loads must not panic.
	bus.Emit(PlayerMoveEvent{X: 100, Y: 100})
	bus.Emit(InteractEvent{X: 100, Y: 100})
}

func TestAllSolvedUnlocksRitualChamber(t *testing.T) {
	h, d, bus := newTestHandler(t, 42)

	unlocks := 0
	bus.Subscribe(EventRitualChamberUnlocked, func(engine.Event) { unlocks++ })

	for _, kind := range world.PuzzleRoomKinds {
		h.IncreasePuzzleProgress(kind, world.PuzzleMaxProgress[kind])
	}

	if unlocks != 1 {
		t.Errorf("expected exactly one unlock event, got %d", unlocks)
	}
	ritual := d.RoomOfKind(world.RoomRitualChamber)
	for _, door := range ritual.Doors {
		if d.TileAt(door[0], door[1]) != world.TileDoor {
			t.Errorf("ritual door (%d,%d) still sealed after all puzzles solved", door[0], door[1])
		}
	}
}

func TestInteractionConsumesEchoStone(t *testing.T) {
	h, d, bus := newTestHandler(t, 42)

	hall := d.RoomOfKind(world.RoomHallOfEchoes)
	var sx, sy int
	found := false
	for y := hall.Y; y < hall.Y+hall.Height && !found; y++ {
		for x := hall.X; x < hall.X+hall.Width && !found; x++ {
			if d.DecorationAt(x, y) == world.DecorationEchoStone {
				sx, sy = x, y
				found = true
			}
		}
	}
	if !found {
		t.Fatal("no echo stone in the hall of echoes")
	}

	bus.Emit(InteractEvent{
		X: sx*config.TileSize + config.TileSize/2,
		Y: sy*config.TileSize + config.TileSize/2,
	})

	if d.DecorationAt(sx, sy) != world.DecorationNone {
		t.Error("echo stone was not consumed")
	}
	if h.Progress(world.RoomHallOfEchoes) != 1 {
		t.Errorf("progress = %d, want 1", h.Progress(world.RoomHallOfEchoes))
	}
	if status, _ := h.Status(world.RoomHallOfEchoes); status != world.PuzzleInProgress {
		t.Errorf("status = %v, want in progress", status)
	}
}

func TestRoomDiscoveryEmitsOnce(t *testing.T) {
	h, d, bus := newTestHandler(t, 42)

	entered := 0
	bus.Subscribe(EventEnteredPuzzleRoom, func(engine.Event) { entered++ })

	hall := d.RoomOfKind(world.RoomHallOfEchoes)
	cx, cy := hall.Center()
	h.CurrentRoom(cx, cy)
	h.CurrentRoom(cx, cy)
	h.CurrentRoom(cx+1, cy)

	if entered != 1 {
		t.Errorf("expected one entered event, got %d", entered)
	}
}

func TestSnapshotRestore(t *testing.T) {
	h, _, _ := newTestHandler(t, 42)

	h.IncreasePuzzleProgress(world.RoomHallOfEchoes, 3)
	h.IncreasePuzzleProgress(world.RoomGolemForge, 3)
	rec := h.Snapshot()

	h2, _, _ := newTestHandler(t, 42)
	h2.Restore(rec)

	if h2.Progress(world.RoomHallOfEchoes) != 3 {
		t.Errorf("restored hall progress = %d, want 3", h2.Progress(world.RoomHallOfEchoes))
	}
	if status, _ := h2.Status(world.RoomHallOfEchoes); status != world.PuzzleInProgress {
		t.Errorf("restored hall status = %v, want in progress", status)
	}
	if status, _ := h2.Status(world.RoomGolemForge); status != world.PuzzleSolved {
		t.Errorf("restored forge status = %v, want solved", status)
	}
}

func TestRestoreAfterAllSolvedReopensChamber(t *testing.T) {
	h, _, _ := newTestHandler(t, 42)
	for _, kind := range world.PuzzleRoomKinds {
		h.IncreasePuzzleProgress(kind, world.PuzzleMaxProgress[kind])
	}
	rec := h.Snapshot()

	// A fresh session regenerates the dungeon with its chamber sealed.
	h2, d2, _ := newTestHandler(t, 42)
	h2.Restore(rec)

	ritual := d2.RoomOfKind(world.RoomRitualChamber)
	for _, door := range ritual.Doors {
		if d2.TileAt(door[0], door[1]) != world.TileDoor {
			t.Errorf("restore did not re-run the unlock for door (%d,%d)", door[0], door[1])
		}
	}
}
