package world

// PuzzleStatus tracks how far along a room's puzzle is.
type PuzzleStatus int

// Puzzle statuses. A puzzle never leaves Solved once it reaches it.
const (
	PuzzleUnsolved PuzzleStatus = iota
	PuzzleInProgress
	PuzzleSolved
)

// String returns the status name used in logs and save files.
func (s PuzzleStatus) String() string {
	switch s {
	case PuzzleUnsolved:
		return "unsolved"
	case PuzzleInProgress:
		return "in_progress"
	case PuzzleSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// PuzzleRoomKinds lists the five room kinds that carry a puzzle, in
// dungeon order.
var PuzzleRoomKinds = []RoomKind{
	RoomHallOfEchoes,
	RoomGolemForge,
	RoomChasmOfWhispers,
	RoomGalleryOfShadows,
	RoomSanctumOfSeals,
}

// PuzzleMaxProgress gives the progress each puzzle needs to be solved:
// sound patterns, fragments, bridge segments, paintings and seals.
var PuzzleMaxProgress = map[RoomKind]int{
	RoomHallOfEchoes:     5,
	RoomGolemForge:       3,
	RoomChasmOfWhispers:  8,
	RoomGalleryOfShadows: 4,
	RoomSanctumOfSeals:   4,
}
