package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.opentelemetry.io/otel/attribute"

	"tilequest/config"
	"tilequest/engine"
	"tilequest/save"
	"tilequest/systems"
	"tilequest/telemetry"
	"tilequest/world"
)

// Map identifiers for transitions.
const (
	mapOverworld = "overworld"
	mapTown      = "town"
	mapDungeon   = "dungeon"
)

// Game implements ebiten.Game interface.
type Game struct {
	bus      *engine.EventBus
	settings config.Settings
	seed     int64

	overworld *world.TerrainMap
	town      *world.TownMap
	dungeon   *world.DungeonMap

	activeMap  string
	activeGrid *world.Grid

	cameraSystem   *systems.CameraSystem
	movementSystem *systems.MovementSystem
	renderSystem   *systems.RenderSystem
	dungeonHandler *systems.DungeonHandler
}

// NewGame creates a game instance, generates the starting maps and places
// the player. startInOverworld skips the town and drops the player into the
// open world instead.
func NewGame(settings config.Settings, startInOverworld bool) *Game {
	bus := engine.NewEventBus()
	camera := systems.NewCameraSystem(bus)

	g := &Game{
		bus:            bus,
		settings:       settings,
		seed:           settings.Seed,
		cameraSystem:   camera,
		movementSystem: systems.NewMovementSystem(bus),
		renderSystem:   systems.NewRenderSystem(camera),
		dungeonHandler: systems.NewDungeonHandler(bus),
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	fmt.Printf("world seed: %d\n", g.seed)

	if startInOverworld {
		g.enterOverworld()
	} else {
		g.enterTown()
	}
	return g
}

// enterOverworld generates the overworld on first entry and activates it.
func (g *Game) enterOverworld() {
	if g.overworld == nil {
		_, span := telemetry.Tracer("generation").Start(context.Background(), "generate_overworld")
		span.SetAttributes(attribute.Int64("seed", g.seed))
		g.overworld = world.NewTerrainGenerator(g.seed).Generate(config.OverworldWidth, config.OverworldHeight)
		span.End()
	}
	g.activate(mapOverworld, g.overworld.Grid)
	g.movementSystem.SetPosition(g.overworld.SpawnPosition())
}

// enterTown generates the town on first entry and activates it.
func (g *Game) enterTown() {
	if g.town == nil {
		_, span := telemetry.Tracer("generation").Start(context.Background(), "generate_town")
		span.SetAttributes(attribute.Int64("seed", g.seed))
		g.town = world.NewTownGenerator(g.seed).Generate(config.TownWidth, config.TownHeight)
		span.End()
	}
	g.activate(mapTown, g.town.Grid)
	g.movementSystem.SetPosition(g.town.SpawnPosition())
}

// enterDungeon generates the dungeon on first entry. The instance persists
// across visits so puzzle progress carries over; only the first entry
// announces a freshly loaded dungeon.
func (g *Game) enterDungeon() {
	if g.dungeon == nil {
		_, span := telemetry.Tracer("generation").Start(context.Background(), "generate_dungeon")
		span.SetAttributes(attribute.Int64("seed", g.seed))
		g.dungeon = world.NewDungeonGenerator(g.seed).Generate(config.DungeonWidth, config.DungeonHeight)
		span.End()
		g.bus.Emit(systems.DungeonLoadedEvent{Dungeon: g.dungeon})
	}
	g.activate(mapDungeon, g.dungeon.Grid)
	g.movementSystem.SetPosition(g.dungeon.SpawnPosition())
}

// activate switches the live grid and announces the transition.
func (g *Game) activate(name string, grid *world.Grid) {
	g.activeMap = name
	g.activeGrid = grid
	g.bus.Emit(systems.MapTransitionEvent{To: name})
}

// Update advances one tick: input and movement, camera, map transitions and
// the save hotkeys.
func (g *Game) Update() error {
	g.movementSystem.Update(g.activeGrid)

	px := g.movementSystem.X + config.TileSize/2
	py := g.movementSystem.Y + config.TileSize/2
	g.cameraSystem.Update(g.activeGrid, px, py)

	g.checkTransitions()

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := g.dungeonHandler.Snapshot().Write(g.settings.SavePath); err != nil {
			fmt.Printf("save failed: %v\n", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		rec, err := save.Read(g.settings.SavePath)
		if err != nil {
			fmt.Printf("load failed: %v\n", err)
		} else {
			g.dungeonHandler.Restore(rec)
		}
	}

	return nil
}

// checkTransitions moves the player between maps at the fixed edges: the
// town's marked entrance tile leads down, the dungeon's exit gate leads
// back up.
func (g *Game) checkTransitions() {
	tileX, tileY := g.movementSystem.TilePosition()

	switch g.activeMap {
	case mapTown:
		if g.town != nil && tileX == g.town.DungeonEntrance[0] && tileY == g.town.DungeonEntrance[1] {
			g.enterDungeon()
		}
	case mapDungeon:
		if g.dungeon == nil {
			return
		}
		if tileX == g.dungeon.ExitGate[0] && tileY == g.dungeon.ExitGate[1] {
			g.leaveDungeon()
		}
	}
}

// leaveDungeon returns the player to the town, just south of the entrance.
func (g *Game) leaveDungeon() {
	if g.town == nil {
		g.enterTown()
		return
	}
	g.activate(mapTown, g.town.Grid)
	g.movementSystem.SetPosition(g.town.DungeonEntrance[0], g.town.DungeonEntrance[1]+1)
}

// Draw draws the visible map slice and the player.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(screen, g.activeGrid, g.movementSystem.X, g.movementSystem.Y)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
