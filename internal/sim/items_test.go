package sim

import (
	"testing"

	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/levels"
	"github.com/vovakirdan/dn2sim/internal/render"
)

func TestItemBoxRelease(t *testing.T) {
	c := newTestContext(t)
	a := spawn(t, c, kinds.KindBoxRed, 10, 18)

	c.HandleShotCollision(DamageRegular, a)
	if a.Var1 != boxOpened || a.Health != 0 {
		t.Fatalf("after hit: Var1 = %d, Health = %d, expected %d, 0", a.Var1, a.Health, boxOpened)
	}
	if got := c.Player().Score; got != 100 {
		t.Errorf("Score = %d, expected 100", got)
	}

	for _, phase := range []int{boxBursting, boxRelease} {
		updateItemBox(c, a)
		if a.Var1 != phase {
			t.Fatalf("Var1 = %d, expected %d", a.Var1, phase)
		}
		if a.Style != render.StyleInvisible {
			t.Errorf("Style = %v, expected invisible while bursting", a.Style)
		}
	}

	updateItemBox(c, a)
	if a.Kind != kinds.KindSodaCan {
		t.Fatalf("Kind = %s, expected soda_can", a.Kind)
	}
	if a.Health != 1 {
		t.Errorf("Health = %d, expected 1 for a shootable item", a.Health)
	}
	if a.Var1 != boxRelease || a.GravityAffected {
		t.Errorf("Var1 = %d, GravityAffected = %v, expected %d, false", a.Var1, a.GravityAffected, boxRelease)
	}

	startY := a.Y
	for i, dy := range releaseArc {
		y, phase := a.Y, a.Var1
		updateItem(c, a)
		if a.Y-y != dy {
			t.Errorf("arc step %d moved %d, expected %d", i, a.Y-y, dy)
		}
		if a.Var1 != phase+1 {
			t.Errorf("arc step %d: Var1 = %d, expected %d", i, a.Var1, phase+1)
		}
	}
	if a.Y != startY {
		t.Errorf("Y after arc = %d, expected %d", a.Y, startY)
	}
	if a.Var1 != 12 || !a.GravityAffected {
		t.Errorf("Var1 = %d, GravityAffected = %v, expected 12, true", a.Var1, a.GravityAffected)
	}

	updateItem(c, a)
	if a.Var1 != 12 || a.Y != startY {
		t.Errorf("after landing: Var1 = %d, Y = %d, expected 12, %d", a.Var1, a.Y, startY)
	}
}

func TestBoxContents(t *testing.T) {
	tests := []struct {
		box        kinds.Kind
		want       kinds.Kind
		wantHealth int
	}{
		{kinds.KindBoxGrey, kinds.KindRapidFire, 0},
		{kinds.KindBoxRed, kinds.KindSodaCan, 1},
		{kinds.KindBoxGreen, kinds.KindLaserGun, 0},
		{kinds.KindBoxBlue, kinds.KindGlobeBlue, 0},
	}

	for _, tt := range tests {
		t.Run(tt.box.String(), func(t *testing.T) {
			c := newTestContext(t)
			a := spawn(t, c, tt.box, 10, 18)
			c.releaseBoxContents(a)
			if a.Kind != tt.want {
				t.Errorf("released %s, expected %s", a.Kind, tt.want)
			}
			if a.Health != tt.wantHealth {
				t.Errorf("Health = %d, expected %d", a.Health, tt.wantHealth)
			}
		})
	}
}

func TestBoxContentsFromLevel(t *testing.T) {
	c := newTestContext(t, levels.ActorPlacement{Kind: kinds.KindBoxGrey, X: 10, Y: 18, Contents: kinds.KindKey})

	a := c.Actor(0)
	if a == nil || a.Kind != kinds.KindBoxGrey {
		t.Fatal("box not spawned in slot 0")
	}
	if kinds.Kind(a.Var2) != kinds.KindKey {
		t.Errorf("contents = %s, expected key", kinds.Kind(a.Var2))
	}
}

func TestEmptyBoxDisappears(t *testing.T) {
	c := newTestContext(t)
	a := spawn(t, c, kinds.KindBoxGrey, 10, 18)
	a.Var2 = int(kinds.KindNone)

	c.releaseBoxContents(a)
	if !a.Deleted {
		t.Error("empty box was not deleted on release")
	}
}

func TestLetterBonuses(t *testing.T) {
	tests := []struct {
		name    string
		letters []kinds.Kind
		want    int
	}{
		{"in order", []kinds.Kind{kinds.KindLetterN, kinds.KindLetterU, kinds.KindLetterK, kinds.KindLetterE, kinds.KindLetterM}, 5*letterScore + letterBonus},
		{"one out of order", []kinds.Kind{kinds.KindLetterU}, letterScore + letterPityBonus},
		// The consolation bonus repeats on every later pickup.
		{"stays out of order", []kinds.Kind{kinds.KindLetterU, kinds.KindLetterN, kinds.KindLetterK}, 3*letterScore + 3*letterPityBonus},
		{"partial in order", []kinds.Kind{kinds.KindLetterN, kinds.KindLetterU}, 2 * letterScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			for _, k := range tt.letters {
				c.collectLetter(k)
			}
			if got := c.Player().Score; got != tt.want {
				t.Errorf("Score = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestInventory(t *testing.T) {
	var inv Inventory
	items := []kinds.Kind{kinds.KindKey, kinds.KindKeycard, kinds.KindCloak, kinds.KindRapidFire, kinds.KindCircuitCard, kinds.KindKey}
	for _, k := range items {
		if !inv.Add(k) {
			t.Fatalf("Add(%s) failed before the inventory was full", k)
		}
	}
	if inv.Add(kinds.KindKeycard) {
		t.Error("Add() on a full inventory succeeded")
	}
	if inv.Count() != InventorySize {
		t.Errorf("Count() = %d, expected %d", inv.Count(), InventorySize)
	}

	if inv.Remove(kinds.KindLaserGun) {
		t.Error("Remove() of a missing item succeeded")
	}
	if !inv.Remove(kinds.KindKeycard) {
		t.Fatal("Remove(keycard) failed")
	}
	if inv.Items[1] != kinds.KindCloak || inv.Items[InventorySize-1] != kinds.KindNone {
		t.Errorf("Items = %v, expected the tail shifted left", inv.Items)
	}
	if !inv.Has(kinds.KindKey) || inv.Has(kinds.KindKeycard) {
		t.Error("Has() disagrees with the contents")
	}
}

func TestFullInventoryLeavesItem(t *testing.T) {
	c := newTestContext(t)
	for iter := 0; iter < InventorySize; iter++ {
		c.Player().Inventory.Add(kinds.KindCircuitCard)
	}
	a := spawn(t, c, kinds.KindKey, 10, 18)

	touchInventoryItem(c, a)
	if a.Deleted {
		t.Error("item picked up into a full inventory")
	}
}

func TestHealthAtFullPaysScore(t *testing.T) {
	c := newTestContext(t)
	a := spawn(t, c, kinds.KindHealthMolecule, 10, 18)

	touchHealth(c, a)
	if got := c.Player().Score; got != 10000 {
		t.Errorf("Score = %d, expected 10000", got)
	}

	c.Player().Health = 3
	b := spawn(t, c, kinds.KindHealthMolecule, 12, 18)
	touchHealth(c, b)
	if got := c.Player().Health; got != 4 {
		t.Errorf("Health = %d, expected 4", got)
	}
}
