package piece

import "github.com/talgya/cityforge/internal/geom"

// facingCos is the direction-check threshold: two attachments face each
// other when the cosine of the angle between their outward directions is
// below this value (roughly 154 degrees apart or more).
const facingCos = -0.9

// AttachmentPoint describes one mating surface on a piece, in the piece's
// local frame.
type AttachmentPoint struct {
	Position  geom.Vec3 `json:"position"`  // Local offset from the piece origin
	Direction geom.Vec3 `json:"direction"` // Local outward unit direction
	Types     TypeFlags `json:"types"`
	Sizes     SizeFlags `json:"sizes"`

	// Plug points may serve as the anchor a new piece attaches by;
	// socket points may spawn child candidates. Both may be set.
	Plug   bool `json:"plug"`
	Socket bool `json:"socket"`

	Rotation RotationMode `json:"rotation"`

	// SkipOverlap bypasses the overlap test for pieces anchored here.
	SkipOverlap bool `json:"skip_overlap"`
}

// Compatible reports whether a and b may mate: one side must plug and the
// other socket, their type and size sets must intersect, and their outward
// directions must face each other. Rotation mode is not consulted here —
// it constrains alignment, not pairing.
func Compatible(a, b AttachmentPoint) bool {
	if !(a.Plug && b.Socket || a.Socket && b.Plug) {
		return false
	}
	if a.Types&b.Types == 0 {
		return false
	}
	if a.Sizes&b.Sizes == 0 {
		return false
	}
	return geom.Dot(a.Direction, b.Direction) < facingCos
}
