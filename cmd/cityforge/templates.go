package main

import (
	"github.com/talgya/cityforge/internal/geom"
	"github.com/talgya/cityforge/internal/piece"
)

// defaultTemplates is the built-in demo piece set used to bootstrap an
// empty template database. A production host ships its own tables.
func defaultTemplates() []piece.Instance {
	joinTypes := piece.TypeSeed | piece.TypeStructural

	return []piece.Instance{
		{
			ID:       "pieces/corridor_m",
			Category: piece.CategoryStructural,
			Weight:   3,
			BiomeMin: 0, BiomeMax: 9,
			Attachments: []piece.AttachmentPoint{
				{
					Position: geom.Vec3{X: -4}, Direction: geom.Vec3{X: -1},
					Types: joinTypes, Sizes: piece.SizeMedium | piece.SizeLarge,
					Plug: true,
				},
				{
					Position: geom.Vec3{X: 4}, Direction: geom.Vec3{X: 1},
					Types: piece.TypeStructural, Sizes: piece.SizeMedium,
					Socket: true,
				},
				{
					Position: geom.Vec3{Y: 2}, Direction: geom.Vec3{Y: 1},
					Types: piece.TypeStructural, Sizes: piece.SizeSmall,
					Socket: true,
				},
			},
			Parts: []geom.AABB{
				{Min: geom.Vec3{X: -4, Y: -2, Z: -2}, Max: geom.Vec3{X: 4, Y: 2, Z: 2}},
			},
		},
		{
			ID:       "pieces/junction_x",
			Category: piece.CategoryJunction,
			Weight:   1.5,
			BiomeMin: 0, BiomeMax: 9,
			Attachments: []piece.AttachmentPoint{
				{
					Position: geom.Vec3{X: -3}, Direction: geom.Vec3{X: -1},
					Types: joinTypes | piece.TypeJunction, Sizes: piece.AllSizes,
					Plug: true,
				},
				{
					Position: geom.Vec3{X: 3}, Direction: geom.Vec3{X: 1},
					Types: piece.TypeStructural | piece.TypeJunction, Sizes: piece.SizeMedium,
					Socket: true,
				},
				{
					Position: geom.Vec3{Y: 3}, Direction: geom.Vec3{Y: 1},
					Types: piece.TypeStructural, Sizes: piece.SizeMedium | piece.SizeSmall,
					Socket: true, Rotation: piece.RotationCardinal,
				},
				{
					Position: geom.Vec3{Y: -3}, Direction: geom.Vec3{Y: -1},
					Types: piece.TypeStructural, Sizes: piece.SizeMedium | piece.SizeSmall,
					Socket: true, Rotation: piece.RotationCardinal,
				},
				{
					Position: geom.Vec3{Z: 3}, Direction: geom.Vec3{Z: 1},
					Types: piece.TypeStructural, Sizes: piece.SizeMedium,
					Socket: true,
				},
			},
			Parts: []geom.AABB{
				{Min: geom.Vec3{X: -3, Y: -3, Z: -3}, Max: geom.Vec3{X: 3, Y: 3, Z: 3}},
			},
		},
		{
			ID:        "pieces/floor_plate",
			Category:  piece.CategoryFloor,
			Weight:    2,
			BiomeMin:  0,
			BiomeMax:  9,
			Occupants: true,
			Attachments: []piece.AttachmentPoint{
				{
					Position: geom.Vec3{X: -5}, Direction: geom.Vec3{X: -1},
					Types: joinTypes, Sizes: piece.SizeMedium | piece.SizeLarge,
					Plug: true,
				},
				{
					Position: geom.Vec3{X: 5}, Direction: geom.Vec3{X: 1},
					Types: piece.TypeStructural, Sizes: piece.SizeSmall,
					Socket: true,
				},
			},
			Parts: []geom.AABB{
				{Min: geom.Vec3{X: -5, Y: -5, Z: -1}, Max: geom.Vec3{X: 5, Y: 5, Z: 1}},
			},
		},
		{
			ID:       "pieces/riser",
			Category: piece.CategoryStructural,
			Weight:   1,
			BiomeMin: 0, BiomeMax: 9,
			Attachments: []piece.AttachmentPoint{
				{
					Position: geom.Vec3{Z: -3}, Direction: geom.Vec3{Z: -1},
					Types: piece.TypeStructural, Sizes: piece.SizeMedium,
					Plug: true,
				},
				{
					Position: geom.Vec3{Z: 3}, Direction: geom.Vec3{Z: 1},
					Types: piece.TypeStructural, Sizes: piece.SizeMedium,
					Socket: true,
				},
			},
			Parts: []geom.AABB{
				{Min: geom.Vec3{X: -2, Y: -2, Z: -3}, Max: geom.Vec3{X: 2, Y: 2, Z: 3}},
			},
		},
		{
			ID:       "pieces/cap_small",
			Category: piece.CategoryCap,
			Weight:   1,
			BiomeMin: 0, BiomeMax: 9,
			Attachments: []piece.AttachmentPoint{
				{
					Position: geom.Vec3{X: -1}, Direction: geom.Vec3{X: -1},
					Types: joinTypes | piece.TypeCap, Sizes: piece.AllSizes,
					Plug: true, Rotation: piece.RotationFixed,
				},
			},
			Parts: []geom.AABB{
				{Min: geom.Vec3{X: -1, Y: -1, Z: -1}, Max: geom.Vec3{X: 1, Y: 1, Z: 1}},
			},
		},
		{
			// Free-standing decorative pod: no attachments, placed
			// directly at the growth site when drawn.
			ID:        "pieces/balcony_pod",
			Category:  piece.CategoryFloor,
			Weight:    0.4,
			BiomeMin:  0,
			BiomeMax:  9,
			Occupants: true,
			Parts: []geom.AABB{
				{Min: geom.Vec3{X: -2, Y: -2, Z: -1}, Max: geom.Vec3{X: 2, Y: 2, Z: 1}},
			},
		},
	}
}
