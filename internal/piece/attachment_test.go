package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/cityforge/internal/geom"
)

func TestCompatibleFacingPlugSocket(t *testing.T) {
	a := AttachmentPoint{
		Direction: geom.Vec3{Z: 1},
		Types:     TypeStructural,
		Sizes:     SizeMedium,
		Plug:      true,
	}
	b := AttachmentPoint{
		Direction: geom.Vec3{Z: -1},
		Types:     TypeStructural,
		Sizes:     SizeMedium,
		Socket:    true,
	}

	assert.True(t, Compatible(a, b))
	assert.True(t, Compatible(b, a), "predicate is symmetric")
}

func TestCompatibleRejections(t *testing.T) {
	base := AttachmentPoint{
		Direction: geom.Vec3{Z: 1},
		Types:     TypeStructural,
		Sizes:     SizeMedium,
		Plug:      true,
	}
	mate := AttachmentPoint{
		Direction: geom.Vec3{Z: -1},
		Types:     TypeStructural,
		Sizes:     SizeMedium,
		Socket:    true,
	}

	t.Run("disjoint sizes", func(t *testing.T) {
		m := mate
		m.Sizes = SizeLarge
		assert.False(t, Compatible(base, m))
	})

	t.Run("disjoint types", func(t *testing.T) {
		m := mate
		m.Types = TypeCap
		assert.False(t, Compatible(base, m))
	})

	t.Run("same-facing directions", func(t *testing.T) {
		m := mate
		m.Direction = geom.Vec3{Z: 1}
		assert.False(t, Compatible(base, m))
	})

	t.Run("two plugs", func(t *testing.T) {
		m := mate
		m.Socket = false
		m.Plug = true
		assert.False(t, Compatible(base, m))
	})

	t.Run("dual-role points may mate either way", func(t *testing.T) {
		a := base
		a.Socket = true
		m := mate
		m.Plug = true
		assert.True(t, Compatible(a, m))
	})
}

func TestCompatibleDirectionThreshold(t *testing.T) {
	a := AttachmentPoint{Direction: geom.Vec3{X: 1}, Types: TypeStructural, Sizes: SizeSmall, Plug: true}
	b := AttachmentPoint{Direction: geom.Vec3{X: -1}, Types: TypeStructural, Sizes: SizeSmall, Socket: true}
	assert.True(t, Compatible(a, b))

	// Perpendicular directions are not "facing each other".
	b.Direction = geom.Vec3{Y: 1}
	assert.False(t, Compatible(a, b))
}
