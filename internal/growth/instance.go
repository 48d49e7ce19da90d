package growth

import (
	"github.com/google/uuid"

	"github.com/talgya/cityforge/internal/geom"
	"github.com/talgya/cityforge/internal/piece"
)

// Candidate is one pending growth site: a world position a new piece must
// attach to, facing the opposite of Direction.
type Candidate struct {
	Position  geom.Vec3
	Direction geom.Vec3 // Required outward direction of the growth front

	Types piece.TypeFlags // Required attachment type set
	Sizes piece.SizeFlags // Required attachment size set

	Depth int
	Biome int

	// Heading is the yaw fallback used when Direction is near-vertical
	// and no horizontal yaw can be derived from it.
	Heading float64

	// FromSeed marks candidates supplied externally by the layout system;
	// their failures are tallied per reason for diagnostics.
	FromSeed bool

	// parentIndex points into the session's placed-instance table, -1 for
	// seed-originated candidates. Diagnostics only, never traversed.
	parentIndex int
}

// PlacedInstance is one accepted placement: a template materialized at a
// world transform, with its computed bounds and per-attachment used bits.
type PlacedInstance struct {
	ID       uuid.UUID       `json:"id"`
	Template *piece.Template `json:"-"`

	Position geom.Vec3 `json:"position"`
	Yaw      float64   `json:"yaw"`
	Bounds   geom.AABB `json:"bounds"`

	Depth int `json:"depth"`

	// Used marks attachment points consumed as the anchor or already
	// branched from, indexed like Template.Attachments.
	Used []bool `json:"-"`

	// ParentIndex is the index of the spawning instance in the session's
	// placement order, or -1 for seed-rooted pieces. Kept strictly for
	// debugging output; no traversal logic depends on it.
	ParentIndex int `json:"parent_index"`
}

// AttachmentWorld returns attachment i's position and outward direction
// in world space.
func (p *PlacedInstance) AttachmentWorld(i int) (pos, dir geom.Vec3) {
	a := p.Template.Attachments[i]
	pos = p.Position.Add(geom.RotateYaw(a.Position, p.Yaw))
	dir = geom.RotateYaw(a.Direction, p.Yaw)
	return pos, dir
}
