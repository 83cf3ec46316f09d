package collision

import "github.com/vovakirdan/dn2sim/internal/kinds"

// Touching reports whether two sprites overlap. On each axis one sprite
// touches the other when its near edge lies inside the other's span, tested
// both ways round. When the second sprite is the player its box is narrowed
// according to the player's frame; the first argument is never adjusted.
func Touching(k1 kinds.Kind, f1, x1, y1 int, k2 kinds.Kind, f2, x2, y2 int) bool {
	a := kinds.Frame(k1, f1)
	b := kinds.Frame(k2, f2)

	l1, b1, w1, h1 := x1+a.XOffset, y1+a.YOffset, a.Width, a.Height
	l2, b2, w2, h2 := x2+b.XOffset, y2+b.YOffset, b.Width, b.Height

	if k2.IsPlayer() {
		adj := kinds.PlayerHitbox(f2)
		l2 += adj.DX
		w2 += adj.DW
		h2 += adj.DH
	}

	horizontal := (l2 <= l1 && l2+w2 > l1) || (l2 >= l1 && l1+w1 > l2)
	vertical := (b2 >= b1 && b2-h2 < b1) || (b2 <= b1 && b1-h1 < b2)
	return horizontal && vertical
}
