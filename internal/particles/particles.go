// Package particles implements the five fixed particle groups used for
// explosion and destruction bursts.
package particles

import (
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/render"
	"github.com/vovakirdan/dn2sim/internal/rng"
)

const (
	GroupCount        = 5
	ParticlesPerGroup = 64
	// Lifetime is the number of updates a group stays alive.
	Lifetime = 29
	// startIndices bounds the random arc start so that start+Lifetime-1
	// stays inside arc.
	startIndices = 14
)

// arc is the per-frame vertical offset sequence: fast up, slow down at the
// top, then falling faster and faster.
var arc = [42]int{
	-8, -8, -8, -8, -8, -8, -8, -8, -6, -6,
	-6, -4, -4, -3, -2, -2, -1, -1, 0, 0,
	1, 1, 2, 2, 3, 4, 4, 6, 6, 8,
	8, 8, 8, 8, 8, 8, 8, 8, 8, 8,
	8, 8,
}

// Particle is one pixel of a group.
type Particle struct {
	VelocityX  int `msgpack:"vx"`
	TableIndex int `msgpack:"ti"`
	YOffset    int `msgpack:"yo"`
}

// Group is a burst of 64 particles sharing an origin and a colour.
// TimeAlive 0 means the group is free.
type Group struct {
	TimeAlive int                          `msgpack:"alive"`
	X         int                          `msgpack:"x"`
	Y         int                          `msgpack:"y"`
	Color     core.Color                   `msgpack:"color"`
	Particles [ParticlesPerGroup]Particle `msgpack:"particles"`
}

// Active reports whether the group is in use.
func (g *Group) Active() bool {
	return g.TimeAlive != 0
}

// System owns the particle groups.
type System struct {
	Groups [GroupCount]Group `msgpack:"groups"`
}

// Spawn starts a burst at the world pixel position (x, y). dir scales the
// random horizontal speeds; 0 scatters them both ways. It reports false
// when every group is busy, in which case nothing changes and no random
// numbers are drawn.
func (s *System) Spawn(r *rng.RNG, x, y, dir int, c core.Color) bool {
	for i := range s.Groups {
		g := &s.Groups[i]
		if g.Active() {
			continue
		}
		for j := range g.Particles {
			p := &g.Particles[j]
			if dir == 0 {
				p.VelocityX = int(r.Next()%20) - 9
			} else {
				p.VelocityX = dir * int(r.Next()%20)
			}
			p.TableIndex = int(r.Next() % startIndices)
			p.YOffset = 0
		}
		g.X, g.Y = x, y
		g.Color = c
		g.TimeAlive = 1
		return true
	}
	return false
}

// UpdateAndDraw advances every active group by one frame and queues a
// pixel for each particle inside view (world pixels).
func (s *System) UpdateAndDraw(view core.Rect, f *render.Frame) {
	for i := range s.Groups {
		g := &s.Groups[i]
		if !g.Active() {
			continue
		}
		for j := range g.Particles {
			p := &g.Particles[j]
			x := g.X + p.VelocityX*g.TimeAlive
			p.YOffset += arc[p.TableIndex]
			p.TableIndex++
			y := g.Y + p.YOffset
			if view.Contains(x, y) {
				f.DrawPixel(x, y, g.Color)
			}
		}
		g.TimeAlive++
		if g.TimeAlive > Lifetime {
			g.TimeAlive = 0
		}
	}
}

// ActiveCount returns the number of busy groups.
func (s *System) ActiveCount() int {
	n := 0
	for i := range s.Groups {
		if s.Groups[i].Active() {
			n++
		}
	}
	return n
}

// Reset frees every group.
func (s *System) Reset() {
	*s = System{}
}
