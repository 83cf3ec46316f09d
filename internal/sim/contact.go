package sim

// UpdateActorPlayerCollision runs the kind's reaction to touching the
// player: contact damage, pickups and the attachment cases.
func (c *Context) UpdateActorPlayerCollision(a *Actor) {
	touch := kindTable[a.Kind].touch
	if touch == nil {
		return
	}
	if c.player.State == PlayerDying || !c.touchingPlayer(a) {
		return
	}
	touch(c, a)
}

func touchHurts(c *Context, a *Actor) {
	c.damagePlayer(1)
}

// touchExplodes is contact damage from projectiles that are used up.
func touchExplodes(c *Context, a *Actor) {
	c.damagePlayer(1)
	c.explode(a)
}
