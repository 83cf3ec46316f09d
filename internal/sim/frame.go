package sim

import (
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/render"
)

// UpdateFrame advances the simulation by one frame and returns what it
// drew. The returned frame is reused by the next call. After a fatal error
// the context is poisoned and every call returns that error.
func (c *Context) UpdateFrame(in core.InputFrame) (*render.Frame, error) {
	if c.fatal != nil {
		c.out.Reset()
		c.out.Fatal = c.fatal.Error()
		return c.out, c.fatal
	}
	if c.tiles == nil {
		return nil, ErrNoLevel
	}

	c.out.Reset()
	c.frameNum++
	c.out.Number = c.frameNum
	c.input = in

	c.updatePlayer()
	c.updateCamera()
	c.out.Camera = c.camera
	c.updateMovingParts()
	c.updateActors()
	c.updatePlayerShots()
	c.updateEffects()
	c.particles.UpdateAndDraw(c.pixelView(), c.out)
	c.drawPlayer()
	c.drawRadar()
	c.updateHUD()

	c.prevInput = in
	if c.fatal != nil {
		c.out.Fatal = c.fatal.Error()
		return c.out, c.fatal
	}
	return c.out, nil
}

// updateActors runs every live actor in slot order. Actors spawned during
// the pass are appended and run in the same pass.
func (c *Context) updateActors() {
	for i := 0; i < len(c.actors); i++ {
		a := &c.actors[i]
		if a.Deleted {
			continue
		}

		onScreen := c.isOnScreen(a)
		if onScreen && a.RemainActive {
			a.AlwaysUpdate = true
		}
		if !onScreen && !a.AlwaysUpdate {
			continue
		}

		a.Style = render.StyleNormal
		c.applyGravity(a)
		if update := kindTable[a.Kind].update; update != nil {
			update(c, a)
		}

		if !a.Deleted && a.Style != render.StyleInvisible {
			c.HandleShotCollision(c.TestShotCollision(a), a)
			if !a.Deleted {
				c.UpdateActorPlayerCollision(a)
			}
		}
		if !a.Deleted {
			c.out.DrawSprite(a.Kind, a.Frame, a.X, a.Y, a.Style)
		}
	}
}

func (c *Context) pixelView() core.Rect {
	v := c.viewRect()
	return core.NewRect(v.X*render.PixelsPerTile, v.Y*render.PixelsPerTile, v.W*render.PixelsPerTile, v.H*render.PixelsPerTile)
}
