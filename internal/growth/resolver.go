package growth

import (
	"github.com/talgya/cityforge/internal/geom"
	"github.com/talgya/cityforge/internal/piece"
)

// worldBounds computes the world bounding volume of an instance placed at
// pos with the given yaw: the union of all its collision parts, or a
// default-sized box centered on the instance when it exposes none.
func (s *Session) worldBounds(inst *piece.Instance, pos geom.Vec3, yaw float64) geom.AABB {
	if len(inst.Parts) == 0 {
		return geom.Box(pos, s.cfg.DefaultPartHalf)
	}
	out := inst.Parts[0].TransformYaw(pos, yaw)
	for _, part := range inst.Parts[1:] {
		out = out.Union(part.TransformYaw(pos, yaw))
	}
	return out
}

// collides tests the candidate volume, shrunk by the overlap margin,
// against every previously accepted volume and every externally
// registered one. Linear scan; n is bounded by the placement budget.
func (s *Session) collides(bounds geom.AABB) bool {
	shrunk := bounds.Shrink(s.cfg.OverlapMargin)
	for _, v := range s.external {
		if shrunk.Intersects(v) {
			return true
		}
	}
	for _, p := range s.placed {
		if shrunk.Intersects(p.Bounds) {
			return true
		}
	}
	return false
}
