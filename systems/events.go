package systems

import (
	"tilequest/engine"
	"tilequest/world"
)

// Event type constants
const (
	EventPlayerMove            engine.EventType = "player_move"
	EventInteract              engine.EventType = "interact"
	EventPuzzleStateChanged    engine.EventType = "puzzle_state_changed"
	EventRitualChamberUnlocked engine.EventType = "ritual_chamber_unlocked"
	EventEnteredPuzzleRoom     engine.EventType = "entered_puzzle_room"
	EventDungeonLoaded         engine.EventType = "dungeon_loaded"
	EventCameraUpdate          engine.EventType = "camera_update"
	EventMapTransition         engine.EventType = "map_transition"
)

// PlayerMoveEvent is emitted when the player moves. Positions are in pixels.
type PlayerMoveEvent struct {
	X int
	Y int
}

// Type returns the event type
func (e PlayerMoveEvent) Type() engine.EventType {
	return EventPlayerMove
}

// InteractEvent is emitted when the player interacts with the tile in front
// of them. The position is in pixels.
type InteractEvent struct {
	X int
	Y int
}

// Type returns the event type
func (e InteractEvent) Type() engine.EventType {
	return EventInteract
}

// PuzzleStateChangedEvent is emitted whenever a puzzle's status or progress
// changes.
type PuzzleStateChangedEvent struct {
	Room     world.RoomKind
	Status   world.PuzzleStatus
	Progress int
}

// Type returns the event type
func (e PuzzleStateChangedEvent) Type() engine.EventType {
	return EventPuzzleStateChanged
}

// RitualChamberUnlockedEvent is emitted once all puzzles are solved and the
// ritual chamber doors open.
type RitualChamberUnlockedEvent struct{}

// Type returns the event type
func (e RitualChamberUnlockedEvent) Type() engine.EventType {
	return EventRitualChamberUnlocked
}

// EnteredPuzzleRoomEvent is emitted the first time the player sets foot in a
// puzzle-bearing room.
type EnteredPuzzleRoomEvent struct {
	Room world.RoomKind
}

// Type returns the event type
func (e EnteredPuzzleRoomEvent) Type() engine.EventType {
	return EventEnteredPuzzleRoom
}

// DungeonLoadedEvent is emitted when a dungeon becomes the active map.
type DungeonLoadedEvent struct {
	Dungeon *world.DungeonMap
}

// Type returns the event type
func (e DungeonLoadedEvent) Type() engine.EventType {
	return EventDungeonLoaded
}

// CameraUpdateEvent is emitted when the camera position changes.
// Coordinates are the viewport's top-left corner in pixels.
type CameraUpdateEvent struct {
	X int
	Y int
}

// Type returns the event type
func (e CameraUpdateEvent) Type() engine.EventType {
	return EventCameraUpdate
}

// MapTransitionEvent is emitted when the active map changes.
type MapTransitionEvent struct {
	To string
}

// Type returns the event type
func (e MapTransitionEvent) Type() engine.EventType {
	return EventMapTransition
}
