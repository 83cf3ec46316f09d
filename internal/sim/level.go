package sim

import (
	"github.com/vovakirdan/dn2sim/internal/arena"
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/levels"
	"github.com/vovakirdan/dn2sim/internal/world"
)

// Draw passes run from back (0) to front.
const drawPasses = 4

// levelChunks are released newest first when a level is replaced.
var levelChunks = []arena.ChunkType{
	arena.ChunkDoorCache,
	arena.ChunkLevelActorList,
	arena.ChunkActors,
	arena.ChunkMap,
}

// LoadLevel replaces the current level. Arena exhaustion or an actor list
// that does not fit the actor table is fatal and poisons the context.
func (c *Context) LoadLevel(l *levels.Level) error {
	if c.fatal != nil {
		return c.fatal
	}
	m, err := l.Map()
	if err != nil {
		return errorf("load %s: %w", l.ID, err)
	}

	for _, t := range levelChunks {
		c.arena.ReleaseTop(t)
	}
	if _, err := c.arena.PushChunk(m.ByteSize(), arena.ChunkMap); err != nil {
		c.fail(errorf("load %s: map: %w", l.ID, err))
		return c.fatal
	}
	if _, err := c.arena.PushChunk(MaxActors*actorRecordBytes, arena.ChunkActors); err != nil {
		c.fail(errorf("load %s: actor table: %w", l.ID, err))
		return c.fatal
	}
	if _, err := c.arena.PushChunk(len(l.Actors)*placementBytes, arena.ChunkLevelActorList); err != nil {
		c.fail(errorf("load %s: actor list: %w", l.ID, err))
		return c.fatal
	}

	c.resetLevelState()
	c.tiles = m
	c.levelID = l.ID
	c.resetPlayer(l.PlayerStart())
	c.updateCamera()

	if err := c.SpawnLevelActors(l.Actors, c.difficulty); err != nil {
		c.fail(errorf("load %s: %w", l.ID, err))
		return c.fatal
	}
	c.countRadarDishes()
	c.log.Debug("level loaded", "level", l.ID, "actors", c.AliveCount(), "arena_used", c.arena.Used())
	return nil
}

func (c *Context) resetLevelState() {
	c.actors = c.actors[:0]
	c.effects = [MaxEffects]Effect{}
	c.shots = [MaxPlayerShots]PlayerShot{}
	c.parts = [MaxMovingParts]world.MovingMapPart{}
	c.particles.Reset()
	c.hud = HUD{Tutorials: c.hud.Tutorials}
	c.frameNum = 0
	c.input, c.prevInput = core.InputFrame{}, core.InputFrame{}
}

// SpawnLevelActors lays out a level's actor list. A difficulty marker
// raises the required difficulty of the placement right after it. The
// player start and non-spawnable entries are skipped. Actors are placed
// in draw-index passes so later passes draw in front.
func (c *Context) SpawnLevelActors(list []levels.ActorPlacement, difficulty int) error {
	placed := make([]levels.ActorPlacement, 0, len(list))
	required := 1
	for _, p := range list {
		switch p.Kind {
		case kinds.KindMarkerMedium:
			required = 2
			continue
		case kinds.KindMarkerHard:
			required = 3
			continue
		case kinds.KindPlayer:
			continue
		}
		need := required
		required = 1
		if difficulty < need {
			continue
		}
		if !p.Kind.Info().Spawnable {
			c.log.Debug("level actor skipped", "kind", p.Kind, "x", p.X, "y", p.Y)
			continue
		}
		placed = append(placed, p)
	}
	if len(placed) > MaxActors {
		return errorf("%d level actors for %d slots: %w", len(placed), MaxActors, ErrResourceExhausted)
	}

	slot := 0
	for pass := 0; pass < drawPasses; pass++ {
		for _, p := range placed {
			if p.Kind.Info().DrawIndex != pass {
				continue
			}
			if err := c.SpawnActorInSlot(slot, p.Kind, p.X, p.Y); err != nil {
				return err
			}
			if p.Contents != kinds.KindNone && p.Kind.IsItemBox() {
				c.actors[slot].Var2 = int(p.Contents)
			}
			slot++
		}
	}
	return nil
}
