package sim

import (
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/render"
)

// messageFrames is how long a HUD message stays up.
const messageFrames = 60

// HUD is the bookkeeping behind the status bar.
type HUD struct {
	Message      render.Message `msgpack:"msg"`
	MessageTimer int            `msgpack:"msg_timer"`

	// Tutorials is a bit set of hints already shown this session.
	Tutorials uint32 `msgpack:"tutorials"`

	RadarDishes      int `msgpack:"radars"`
	RadarDishesTotal int `msgpack:"radars_total"`
	Kills            int `msgpack:"kills"`
}

// TutorialShown reports whether a hint was already shown.
func (h *HUD) TutorialShown(t render.Tutorial) bool {
	return h.Tutorials&(1<<t) != 0
}

func (c *Context) showMessage(m render.Message) {
	c.hud.Message = m
	c.hud.MessageTimer = messageFrames
	c.out.ShowMessage(m)
}

// showTutorial shows a hint once per session.
func (c *Context) showTutorial(t render.Tutorial) {
	if t == render.TutorialNone || t >= render.TutorialCount || c.hud.TutorialShown(t) {
		return
	}
	c.hud.Tutorials |= 1 << t
	c.out.ShowTutorial(t)
}

func (c *Context) updateHUD() {
	h := &c.hud
	if h.MessageTimer > 0 {
		h.MessageTimer--
		if h.MessageTimer == 0 {
			h.Message = render.MessageNone
		}
	}
}

// drawRadar emits a blip for every radar-visible actor near the player.
func (c *Context) drawRadar() {
	p := &c.player
	for i := range c.actors {
		a := &c.actors[i]
		if a.Deleted || !a.Kind.Info().Radar {
			continue
		}
		dx, dy := a.X-p.X, a.Y-p.Y
		if dx < -radarRange || dx > radarRange || dy < -radarRange || dy > radarRange {
			continue
		}
		c.out.AddBlip(dx, dy)
	}
}

// countRadarDishes records how many dishes the level starts with.
func (c *Context) countRadarDishes() {
	n := 0
	for i := range c.actors {
		if !c.actors[i].Deleted && c.actors[i].Kind == kinds.KindRadarDish {
			n++
		}
	}
	c.hud.RadarDishes = n
	c.hud.RadarDishesTotal = n
}
