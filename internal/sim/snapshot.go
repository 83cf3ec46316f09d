package sim

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/dn2sim/internal/arena"
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/particles"
	"github.com/vovakirdan/dn2sim/internal/world"
)

// Snapshot is a full deep copy of a Context, used for quick-save and
// determinism checks.
type Snapshot struct {
	LevelID    string `msgpack:"level"`
	Difficulty int    `msgpack:"difficulty"`
	Frame      uint64 `msgpack:"frame"`
	RNGIndex   uint8  `msgpack:"rng"`
	Input      uint16 `msgpack:"input"`
	PrevInput  uint16 `msgpack:"prev_input"`
	CameraX    int    `msgpack:"cam_x"`
	CameraY    int    `msgpack:"cam_y"`

	Width  int          `msgpack:"w"`
	Height int          `msgpack:"h"`
	Tiles  []uint16     `msgpack:"tiles"`
	Attrs  []world.Attr `msgpack:"attrs"`

	Actors    []Actor                             `msgpack:"actors"`
	Effects   [MaxEffects]Effect                  `msgpack:"effects"`
	Shots     [MaxPlayerShots]PlayerShot          `msgpack:"shots"`
	Parts     [MaxMovingParts]world.MovingMapPart `msgpack:"parts"`
	Particles particles.System                    `msgpack:"particles"`
	Player    Player                              `msgpack:"player"`
	HUD       HUD                                 `msgpack:"hud"`
	Arena     arena.State                         `msgpack:"arena"`
}

// Snapshot captures the whole simulation state.
func (c *Context) Snapshot() *Snapshot {
	s := &Snapshot{
		LevelID:    c.levelID,
		Difficulty: c.difficulty,
		Frame:      c.frameNum,
		RNGIndex:   c.rng.Index,
		Input:      c.input.Bits(),
		PrevInput:  c.prevInput.Bits(),
		CameraX:    c.camera.X,
		CameraY:    c.camera.Y,
		Actors:     append([]Actor(nil), c.actors...),
		Effects:    c.effects,
		Shots:      c.shots,
		Parts:      c.parts,
		Particles:  c.particles,
		Player:     c.player,
		HUD:        c.hud,
		Arena:      c.arena.State(),
	}
	s.Player.Letters = append([]kinds.Kind(nil), c.player.Letters...)
	if c.tiles != nil {
		s.Width = c.tiles.Width
		s.Height = c.tiles.Height
		s.Tiles = c.tiles.Tiles()
		s.Attrs = c.tiles.AttrTable()
	}
	return s
}

// Restore replaces the simulation state with a snapshot. The snapshot is
// copied, so it can be restored again later.
func (c *Context) Restore(s *Snapshot) error {
	var tiles *world.Map
	if s.Width > 0 && s.Height > 0 {
		m, err := world.NewMap(s.Width, s.Height, s.Attrs)
		if err != nil {
			return errorf("restore: %w", err)
		}
		if err := m.LoadTiles(s.Tiles); err != nil {
			return errorf("restore: %w", err)
		}
		tiles = m
	}
	if len(s.Actors) > MaxActors {
		return errorf("restore: %d actors: %w", len(s.Actors), ErrResourceExhausted)
	}
	if err := c.arena.Restore(s.Arena); err != nil {
		return errorf("restore: %w", err)
	}

	c.levelID = s.LevelID
	c.difficulty = s.Difficulty
	c.frameNum = s.Frame
	c.rng.Index = s.RNGIndex
	c.input = core.InputFromBits(s.Input)
	c.prevInput = core.InputFromBits(s.PrevInput)
	c.camera = core.Point{X: s.CameraX, Y: s.CameraY}
	c.tiles = tiles
	c.actors = append(c.actors[:0], s.Actors...)
	c.effects = s.Effects
	c.shots = s.Shots
	c.parts = s.Parts
	c.particles = s.Particles
	c.player = s.Player
	c.player.Letters = append([]kinds.Kind(nil), s.Player.Letters...)
	c.hud = s.HUD
	return nil
}

// EncodeSnapshot serialises a snapshot with msgpack.
func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("sim: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a blob produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("sim: decode snapshot: %w", err)
	}
	return &s, nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Frame
	h = h*31 + uint64(s.RNGIndex)
	h = h*31 + uint64(s.CameraX) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.CameraY) //#nosec G115 -- hash computation

	for _, t := range s.Tiles {
		h = h*31 + uint64(t)
	}
	for i := range s.Actors {
		a := &s.Actors[i]
		if a.Deleted {
			h = h*31 + 1
			continue
		}
		h = h*31 + uint64(a.Kind)
		h = h*31 + uint64(a.Frame)  //#nosec G115 -- hash computation
		h = h*31 + uint64(a.X)      //#nosec G115 -- hash computation
		h = h*31 + uint64(a.Y)      //#nosec G115 -- hash computation
		h = h*31 + uint64(a.Health) //#nosec G115 -- hash computation
		for _, v := range [...]int{a.Var1, a.Var2, a.Var3, a.Var4, a.Var5, a.GravityState} {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	for i := range s.Effects {
		if e := &s.Effects[i]; e.Active {
			h = h*31 + uint64(e.Kind)
			h = h*31 + uint64(e.X) //#nosec G115 -- hash computation
			h = h*31 + uint64(e.Y) //#nosec G115 -- hash computation
		}
	}
	for i := range s.Shots {
		if sh := &s.Shots[i]; sh.Active {
			h = h*31 + uint64(sh.Kind)
			h = h*31 + uint64(sh.X) //#nosec G115 -- hash computation
			h = h*31 + uint64(sh.Y) //#nosec G115 -- hash computation
		}
	}
	for i := range s.Particles.Groups {
		h = h*31 + uint64(s.Particles.Groups[i].TimeAlive) //#nosec G115 -- hash computation
	}

	p := &s.Player
	h = h*31 + uint64(p.X)      //#nosec G115 -- hash computation
	h = h*31 + uint64(p.Y)      //#nosec G115 -- hash computation
	h = h*31 + uint64(p.Health) //#nosec G115 -- hash computation
	h = h*31 + uint64(p.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(p.State)
	h = h*31 + uint64(p.Frame) //#nosec G115 -- hash computation

	return h
}

// Hash hashes the current state.
func (c *Context) Hash() uint64 {
	return c.Snapshot().Hash()
}
