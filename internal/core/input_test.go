package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Error("empty frame should not hold Fire")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("frame should hold Fire and Left")
	}
	if f.Has(ActionRight) {
		t.Error("frame should not hold Right")
	}

	f.Unset(ActionFire)
	if f.Has(ActionFire) {
		t.Error("Unset should release Fire")
	}

	f.Clear()
	if f.Bits() != 0 {
		t.Errorf("Clear() left bits %b", f.Bits())
	}
}

func TestInputFrameBitsRoundTrip(t *testing.T) {
	f := InputOf(ActionJump, ActionRight)
	if g := InputFromBits(f.Bits()); g != f {
		t.Errorf("InputFromBits(Bits()) = %v, expected %v", g, f)
	}
	if InputOf(ActionNone).Bits() != 0 {
		t.Error("ActionNone should not set any bit")
	}
}
