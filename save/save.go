// Package save persists the dungeon's puzzle state between sessions.
// The surrounding save format for player stats and inventory lives with
// their owning systems; this record covers the map core's share only.
package save

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"tilequest/world"
)

// TilePosition is a saved tile coordinate.
type TilePosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Record is the serializable puzzle-state snapshot.
type Record struct {
	ID              string                                `json:"id"`
	ActivePuzzles   map[world.RoomKind]world.PuzzleStatus `json:"active_puzzles"`
	PuzzleProgress  map[world.RoomKind]int                `json:"puzzle_progress"`
	DiscoveredRooms []world.RoomKind                      `json:"discovered_rooms"`
	Player          *TilePosition                         `json:"player,omitempty"`
}

// NewRecord creates an empty record with a fresh identity.
func NewRecord() Record {
	return Record{
		ID:             uuid.NewString(),
		ActivePuzzles:  make(map[world.RoomKind]world.PuzzleStatus),
		PuzzleProgress: make(map[world.RoomKind]int),
	}
}

// Write serializes the record to the given path.
func (r Record) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding save record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing save file: %w", err)
	}
	return nil
}

// Read loads a record from the given path.
func Read(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("reading save file: %w", err)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("decoding save record: %w", err)
	}
	if r.ActivePuzzles == nil {
		r.ActivePuzzles = make(map[world.RoomKind]world.PuzzleStatus)
	}
	if r.PuzzleProgress == nil {
		r.PuzzleProgress = make(map[world.RoomKind]int)
	}
	return r, nil
}
