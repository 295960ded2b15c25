package core

// Spike hitbox proportions relative to the spike's bounding box.
const (
	spikeTipWidth  = 0.32
	spikeTipHeight = 0.72
)

// Hitboxes returns the two regions that approximate the spike triangle:
// the wide half at the mounted end and the narrow box at the pointed end.
func (s Spike) Hitboxes() (base, tip Rect) {
	b := s.Base

	base = b
	base.H = b.H * 0.5
	if s.Up {
		base.Y = b.Y + b.H*0.5
	}

	tip.W = b.W * spikeTipWidth
	tip.H = b.H * spikeTipHeight
	tip.X = b.X + (b.W-tip.W)*0.5
	if s.Up {
		tip.Y = b.Y
	} else {
		tip.Y = b.Y + b.H - tip.H
	}
	return base, tip
}

// CollidesWithSpike reports whether the player touches either spike hitbox.
func CollidesWithSpike(player Rect, s Spike) bool {
	base, tip := s.Hitboxes()
	return player.Intersects(base) || player.Intersects(tip)
}

// NearSpike is the broad-phase filter: the player's horizontal extent must be
// within margin of the spike.
func NearSpike(player Rect, s Spike, margin float64) bool {
	return player.Right() > s.Base.X-margin && player.X < s.Base.Right()+margin
}
