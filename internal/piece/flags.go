// Package piece defines the prefabricated piece catalog: templates, their
// attachment points, and the compatibility predicate that decides which
// attachments may mate during growth.
package piece

// Category is the structural role of a template.
type Category uint8

const (
	CategoryStructural Category = iota // Load-bearing shell pieces
	CategoryFloor                      // Walkable surfaces occupants can use
	CategoryCap                        // Terminators placed near the depth limit
	CategoryJunction                   // Multi-way connectors
)

// CategoryName returns a human-readable name for a category.
func CategoryName(c Category) string {
	switch c {
	case CategoryStructural:
		return "Structural"
	case CategoryFloor:
		return "Floor"
	case CategoryCap:
		return "Cap"
	case CategoryJunction:
		return "Junction"
	default:
		return "Unknown"
	}
}

// TypeFlags is a bitset of attachment type classes. An attachment may
// advertise several at once.
type TypeFlags uint8

const (
	TypeSeed       TypeFlags = 1 << iota // Accepts externally supplied seeds
	TypeStructural                       // General structural joins
	TypeJunction                         // Junction joins
	TypeCap                              // Cap joins
)

// SizeFlags is a bitset of attachment size classes.
type SizeFlags uint8

const (
	SizeSmall SizeFlags = 1 << iota
	SizeMedium
	SizeLarge
)

// AllSizes covers every size class.
const AllSizes = SizeSmall | SizeMedium | SizeLarge

// Each returns the individual size flags set in s, in ascending order.
func (s SizeFlags) Each() []SizeFlags {
	var out []SizeFlags
	for _, f := range [...]SizeFlags{SizeSmall, SizeMedium, SizeLarge} {
		if s&f != 0 {
			out = append(out, f)
		}
	}
	return out
}

// RotationMode restricts which yaw offsets are legal when a piece attaches
// through a given attachment point.
type RotationMode uint8

const (
	RotationFree     RotationMode = iota // Any derived yaw, plus vertical variants
	RotationCardinal                     // Yaw snapped to 90-degree steps
	RotationFixed                        // Only the single derived yaw
)
