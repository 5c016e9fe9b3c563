package systems

import (
	"fmt"

	"tilequest/config"
	"tilequest/engine"
	"tilequest/save"
	"tilequest/world"
)

// DungeonHandler bridges world-position events to room-scoped puzzle state.
// It holds a non-owning reference to the active dungeon and is the only
// mutator of the puzzle status and progress tables. Every handler method is
// a silent no-op when no dungeon is active.
type DungeonHandler struct {
	bus     *engine.EventBus
	dungeon *world.DungeonMap

	statuses   map[world.RoomKind]world.PuzzleStatus
	progress   map[world.RoomKind]int
	discovered map[world.RoomKind]bool
	unlocked   bool

	lastTileX int
	lastTileY int
}

// NewDungeonHandler creates a handler wired to the event bus.
func NewDungeonHandler(bus *engine.EventBus) *DungeonHandler {
	h := &DungeonHandler{
		bus:        bus,
		statuses:   make(map[world.RoomKind]world.PuzzleStatus),
		progress:   make(map[world.RoomKind]int),
		discovered: make(map[world.RoomKind]bool),
		lastTileX:  -1,
		lastTileY:  -1,
	}
	bus.Subscribe(EventPlayerMove, h.onPlayerMove)
	bus.Subscribe(EventInteract, h.onPlayerInteract)
	bus.Subscribe(EventDungeonLoaded, h.onDungeonLoaded)
	return h
}

// SetDungeon makes the given dungeon the active one and resets all puzzle
// tracking: every puzzle room starts unsolved with zero progress.
func (h *DungeonHandler) SetDungeon(d *world.DungeonMap) {
	h.dungeon = d
	h.statuses = make(map[world.RoomKind]world.PuzzleStatus)
	h.progress = make(map[world.RoomKind]int)
	h.discovered = make(map[world.RoomKind]bool)
	h.unlocked = false
	h.lastTileX, h.lastTileY = -1, -1
	for _, kind := range world.PuzzleRoomKinds {
		h.statuses[kind] = world.PuzzleUnsolved
		h.progress[kind] = 0
	}
}

// Status returns the tracked status of a puzzle room kind.
func (h *DungeonHandler) Status(kind world.RoomKind) (world.PuzzleStatus, bool) {
	s, ok := h.statuses[kind]
	return s, ok
}

// Progress returns the tracked progress of a puzzle room kind.
func (h *DungeonHandler) Progress(kind world.RoomKind) int {
	return h.progress[kind]
}

// CurrentRoom locates the room containing the given tile. Finding a room
// marks its kind as discovered; the first visit to a puzzle room emits an
// event for the UI and audio collaborators.
func (h *DungeonHandler) CurrentRoom(tileX, tileY int) *world.Room {
	if h.dungeon == nil {
		return nil
	}
	room := h.dungeon.RoomAt(tileX, tileY)
	if room == nil {
		return nil
	}
	if !h.discovered[room.Kind] {
		h.discovered[room.Kind] = true
		if _, tracked := h.statuses[room.Kind]; tracked {
			h.bus.Emit(EnteredPuzzleRoomEvent{Room: room.Kind})
		}
	}
	return room
}

// IncreasePuzzleProgress advances a puzzle by the given amount, capped at
// the room kind's maximum. It returns true when the puzzle is solved by the
// call or already was. Untracked kinds are ignored.
func (h *DungeonHandler) IncreasePuzzleProgress(kind world.RoomKind, amount int) bool {
	if h.dungeon == nil {
		return false
	}
	status, tracked := h.statuses[kind]
	if !tracked {
		return false
	}

	max := world.PuzzleMaxProgress[kind]
	if status == world.PuzzleSolved {
		h.progress[kind] = max
		return true
	}

	h.progress[kind] += amount
	if h.progress[kind] >= max {
		h.progress[kind] = max
		h.statuses[kind] = world.PuzzleSolved
		h.emitPuzzleState(kind)
		fmt.Printf("puzzle solved: %s\n", kind)
		h.checkAllSolved()
		return true
	}

	if status != world.PuzzleInProgress {
		h.statuses[kind] = world.PuzzleInProgress
	}
	h.emitPuzzleState(kind)
	return false
}

// emitPuzzleState publishes the current status and progress of one puzzle.
func (h *DungeonHandler) emitPuzzleState(kind world.RoomKind) {
	h.bus.Emit(PuzzleStateChangedEvent{
		Room:     kind,
		Status:   h.statuses[kind],
		Progress: h.progress[kind],
	})
}

// checkAllSolved unlocks the ritual chamber once every puzzle is solved.
func (h *DungeonHandler) checkAllSolved() {
	if !h.allPuzzlesSolved() {
		return
	}
	h.dungeon.UnlockRitualChamber()
	if !h.unlocked {
		h.unlocked = true
		h.bus.Emit(RitualChamberUnlockedEvent{})
		fmt.Println("the ritual chamber stands open")
	}
}

// allPuzzlesSolved reports whether every tracked puzzle is solved.
func (h *DungeonHandler) allPuzzlesSolved() bool {
	for _, kind := range world.PuzzleRoomKinds {
		if h.statuses[kind] != world.PuzzleSolved {
			return false
		}
	}
	return true
}

// onDungeonLoaded adopts a freshly generated dungeon as the active one.
func (h *DungeonHandler) onDungeonLoaded(e engine.Event) {
	ev, ok := e.(DungeonLoadedEvent)
	if !ok {
		return
	}
	h.SetDungeon(ev.Dungeon)
}

// onPlayerMove tracks the player's grid position and room discovery.
func (h *DungeonHandler) onPlayerMove(e engine.Event) {
	ev, ok := e.(PlayerMoveEvent)
	if !ok || h.dungeon == nil {
		return
	}
	tileX := ev.X / config.TileSize
	tileY := ev.Y / config.TileSize
	if tileX == h.lastTileX && tileY == h.lastTileY {
		return
	}
	h.lastTileX, h.lastTileY = tileX, tileY
	h.CurrentRoom(tileX, tileY)
}

// onPlayerInteract routes an interaction at a pixel position to the puzzle
// logic of the room it lands in.
func (h *DungeonHandler) onPlayerInteract(e engine.Event) {
	ev, ok := e.(InteractEvent)
	if !ok || h.dungeon == nil {
		return
	}
	tileX := ev.X / config.TileSize
	tileY := ev.Y / config.TileSize

	room := h.CurrentRoom(tileX, tileY)
	if room == nil {
		return
	}

	switch room.Kind {
	case world.RoomHallOfEchoes:
		h.interactEchoStone(tileX, tileY)
	case world.RoomGolemForge:
		h.interactGolemFragment(tileX, tileY)
	case world.RoomChasmOfWhispers:
		h.interactBridge(tileX, tileY)
	case world.RoomGalleryOfShadows:
		h.interactPainting(tileX, tileY)
	case world.RoomSanctumOfSeals:
		h.interactSeal(tileX, tileY)
	}
}

// interactEchoStone sounds an echo stone and consumes it.
func (h *DungeonHandler) interactEchoStone(x, y int) {
	if h.dungeon.DecorationAt(x, y) != world.DecorationEchoStone {
		return
	}
	h.dungeon.SetDecoration(x, y, world.DecorationNone)
	h.IncreasePuzzleProgress(world.RoomHallOfEchoes, 1)
}

// interactGolemFragment collects a golem fragment.
func (h *DungeonHandler) interactGolemFragment(x, y int) {
	if h.dungeon.DecorationAt(x, y) != world.DecorationGolemFragment {
		return
	}
	h.dungeon.SetDecoration(x, y, world.DecorationNone)
	h.IncreasePuzzleProgress(world.RoomGolemForge, 1)
}

// interactBridge secures one bridge segment over the chasm. Segments are
// not consumed; progress counts distinct interactions up to the maximum.
func (h *DungeonHandler) interactBridge(x, y int) {
	if h.dungeon.TileAt(x, y) != world.TileBridge {
		return
	}
	h.IncreasePuzzleProgress(world.RoomChasmOfWhispers, 1)
}

// interactPainting studies a painting and takes it down.
func (h *DungeonHandler) interactPainting(x, y int) {
	if h.dungeon.DecorationAt(x, y) != world.DecorationPainting {
		return
	}
	h.dungeon.SetDecoration(x, y, world.DecorationNone)
	h.IncreasePuzzleProgress(world.RoomGalleryOfShadows, 1)
}

// interactSeal breaks an elemental seal.
func (h *DungeonHandler) interactSeal(x, y int) {
	if h.dungeon.DecorationAt(x, y) != world.DecorationSealSigil {
		return
	}
	h.dungeon.SetDecoration(x, y, world.DecorationNone)
	h.IncreasePuzzleProgress(world.RoomSanctumOfSeals, 1)
}

// Snapshot captures the puzzle state for persistence.
func (h *DungeonHandler) Snapshot() save.Record {
	rec := save.NewRecord()
	for kind, status := range h.statuses {
		rec.ActivePuzzles[kind] = status
		rec.PuzzleProgress[kind] = h.progress[kind]
	}
	for kind := range h.discovered {
		rec.DiscoveredRooms = append(rec.DiscoveredRooms, kind)
	}
	if h.lastTileX >= 0 {
		rec.Player = &save.TilePosition{X: h.lastTileX, Y: h.lastTileY}
	}
	return rec
}

// Restore replays a saved puzzle state onto the active dungeon. If every
// puzzle was already solved, the ritual chamber unlock is re-run so a save
// taken after the unlock restores to an open chamber.
func (h *DungeonHandler) Restore(rec save.Record) {
	if h.dungeon == nil {
		return
	}
	for kind, status := range rec.ActivePuzzles {
		if _, tracked := h.statuses[kind]; !tracked {
			continue
		}
		h.statuses[kind] = status
		h.progress[kind] = rec.PuzzleProgress[kind]
	}
	for _, kind := range rec.DiscoveredRooms {
		h.discovered[kind] = true
	}
	if rec.Player != nil {
		h.lastTileX, h.lastTileY = rec.Player.X, rec.Player.Y
	}
	h.checkAllSolved()
}
