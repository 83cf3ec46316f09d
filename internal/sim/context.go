// Package sim is the deterministic actor simulation: the actor table and
// its per-kind behaviour, the effect and player-shot pools, the player, the
// shot/damage and player-contact resolution and the frame orchestrator
// that ties them together.
//
// Everything lives in one Context, mutated only from UpdateFrame, LoadLevel
// and Restore. There is no concurrency and no hidden global state.
package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dn2sim/internal/arena"
	"github.com/vovakirdan/dn2sim/internal/collision"
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/particles"
	"github.com/vovakirdan/dn2sim/internal/render"
	"github.com/vovakirdan/dn2sim/internal/rng"
	"github.com/vovakirdan/dn2sim/internal/world"
)

// Table capacities.
const (
	MaxActors      = 448
	MaxEffects     = 18
	MaxPlayerShots = 6
	MaxMovingParts = 70
)

// Arena defaults, sized for the DOS level heap.
const (
	DefaultArenaBytes = 393216
	DefaultMaxChunks  = 1000

	// commonBytes is the session-long chunk pushed at creation for HUD and
	// backdrop buffers.
	commonBytes = 16384
	// actorRecordBytes is what one actor slot costs in the level heap.
	actorRecordBytes = 32
	// placementBytes is what one actor list entry costs.
	placementBytes = 8
)

// Context is the whole simulation state.
type Context struct {
	log *log.Logger

	arena      *arena.Arena
	rng        rng.RNG
	tiles      *world.Map
	levelID    string
	difficulty int

	actors    []Actor
	effects   [MaxEffects]Effect
	shots     [MaxPlayerShots]PlayerShot
	parts     [MaxMovingParts]world.MovingMapPart
	particles particles.System
	player    Player
	hud       HUD

	camera    core.Point
	frameNum  uint64
	input     core.InputFrame
	prevInput core.InputFrame

	out   *render.Frame
	fatal error

	// Direction of the shot matched by the last TestShotCollision.
	hitDirection collision.Direction
}

// Option configures a Context.
type Option func(*contextOptions)

type contextOptions struct {
	logger     *log.Logger
	arenaBytes int
	maxChunks  int
	difficulty int
}

// WithLogger routes diagnostics to l. The default logger discards.
func WithLogger(l *log.Logger) Option {
	return func(o *contextOptions) {
		o.logger = l
	}
}

// WithArena sets the arena caps.
func WithArena(bytes, maxChunks int) Option {
	return func(o *contextOptions) {
		o.arenaBytes = bytes
		o.maxChunks = maxChunks
	}
}

// WithDifficulty sets the difficulty (1..3) used by LoadLevel.
func WithDifficulty(d int) Option {
	return func(o *contextOptions) {
		o.difficulty = d
	}
}

// New creates a context with no level loaded.
func New(opts ...Option) (*Context, error) {
	o := contextOptions{
		arenaBytes: DefaultArenaBytes,
		maxChunks:  DefaultMaxChunks,
		difficulty: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.difficulty < 1 || o.difficulty > 3 {
		o.difficulty = core.Clamp(o.difficulty, 1, 3)
	}

	c := &Context{
		log:        o.logger,
		arena:      arena.New(o.arenaBytes, o.maxChunks),
		difficulty: o.difficulty,
		actors:     make([]Actor, 0, MaxActors),
		out:        render.NewFrame(),
	}
	if _, err := c.arena.PushChunk(commonBytes, arena.ChunkCommon); err != nil {
		return nil, err
	}
	return c, nil
}

// Logger returns the context's logger.
func (c *Context) Logger() *log.Logger {
	return c.log
}

// LevelID returns the ID of the loaded level.
func (c *Context) LevelID() string {
	return c.levelID
}

// Difficulty returns the difficulty used for level loads.
func (c *Context) Difficulty() int {
	return c.difficulty
}

// FrameNumber returns the number of frames simulated since the level load.
func (c *Context) FrameNumber() uint64 {
	return c.frameNum
}

// Tiles returns the live tile grid.
func (c *Context) Tiles() *world.Map {
	return c.tiles
}

// RNG returns the random number cursor.
func (c *Context) RNG() *rng.RNG {
	return &c.rng
}

// Arena returns the level heap.
func (c *Context) Arena() *arena.Arena {
	return c.arena
}

// Player returns the player.
func (c *Context) Player() *Player {
	return &c.player
}

// HUD returns the HUD bookkeeping state.
func (c *Context) HUD() *HUD {
	return &c.hud
}

// Camera returns the top-left tile of the viewport.
func (c *Context) Camera() core.Point {
	return c.camera
}

// Particles returns the particle system.
func (c *Context) Particles() *particles.System {
	return &c.particles
}

// ActorCount returns the number of slots in use or once used.
func (c *Context) ActorCount() int {
	return len(c.actors)
}

// Actor returns slot i, or nil when i is out of range.
func (c *Context) Actor(i int) *Actor {
	if i < 0 || i >= len(c.actors) {
		return nil
	}
	return &c.actors[i]
}

// AliveCount returns the number of non-deleted actors.
func (c *Context) AliveCount() int {
	n := 0
	for i := range c.actors {
		if !c.actors[i].Deleted {
			n++
		}
	}
	return n
}

// Effect returns effect slot i.
func (c *Context) Effect(i int) *Effect {
	if i < 0 || i >= MaxEffects {
		return nil
	}
	return &c.effects[i]
}

// Shot returns player shot slot i.
func (c *Context) Shot(i int) *PlayerShot {
	if i < 0 || i >= MaxPlayerShots {
		return nil
	}
	return &c.shots[i]
}

// MovingPart returns moving map part slot i.
func (c *Context) MovingPart(i int) *world.MovingMapPart {
	if i < 0 || i >= MaxMovingParts {
		return nil
	}
	return &c.parts[i]
}

// pressed reports whether a went down this frame.
func (c *Context) pressed(a core.Action) bool {
	return c.input.Has(a) && !c.prevInput.Has(a)
}

func (c *Context) viewRect() core.Rect {
	return core.NewRect(c.camera.X, c.camera.Y, render.ViewWidth, render.ViewHeight)
}

func (c *Context) playSound(s render.Sound) {
	c.out.PlaySound(s)
}
