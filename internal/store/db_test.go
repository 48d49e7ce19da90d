package store

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/cityforge/internal/geom"
	"github.com/talgya/cityforge/internal/growth"
	"github.com/talgya/cityforge/internal/piece"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleDefs() []piece.Instance {
	return []piece.Instance{
		{
			ID:        "pieces/slab",
			Category:  piece.CategoryFloor,
			Weight:    2.5,
			BiomeMin:  1,
			BiomeMax:  4,
			Occupants: true,
			Attachments: []piece.AttachmentPoint{
				{
					Position:    geom.Vec3{X: -3, Z: 0.5},
					Direction:   geom.Vec3{X: -1},
					Types:       piece.TypeSeed | piece.TypeStructural,
					Sizes:       piece.SizeMedium | piece.SizeLarge,
					Plug:        true,
					Rotation:    piece.RotationCardinal,
					SkipOverlap: true,
				},
				{
					Position:  geom.Vec3{X: 3},
					Direction: geom.Vec3{X: 1},
					Types:     piece.TypeStructural,
					Sizes:     piece.SizeSmall,
					Socket:    true,
				},
			},
			Parts: []geom.AABB{
				{Min: geom.Vec3{X: -3, Y: -3, Z: -1}, Max: geom.Vec3{X: 3, Y: 3, Z: 1}},
			},
		},
		{
			ID:       "pieces/spire",
			Category: piece.CategoryCap,
			Weight:   1,
			BiomeMax: 9,
			Parts: []geom.AABB{
				{Min: geom.Vec3{X: -1, Y: -1, Z: 0}, Max: geom.Vec3{X: 1, Y: 1, Z: 5}},
			},
		},
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveTemplates(sampleDefs()))

	src := db.TemplateSource()
	ids, err := src.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"pieces/slab", "pieces/spire"}, ids)

	inst, err := src.Instantiate("pieces/slab")
	require.NoError(t, err)

	want := sampleDefs()[0]
	assert.Equal(t, want.Category, inst.Category)
	assert.Equal(t, want.Weight, inst.Weight)
	assert.Equal(t, want.BiomeMin, inst.BiomeMin)
	assert.Equal(t, want.BiomeMax, inst.BiomeMax)
	assert.Equal(t, want.Occupants, inst.Occupants)
	assert.Equal(t, want.Attachments, inst.Attachments)
	assert.Equal(t, want.Parts, inst.Parts)

	_, err = src.Instantiate("pieces/missing")
	assert.Error(t, err)
}

func TestCatalogLoadsFromDatabase(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveTemplates(sampleDefs()))

	cat := piece.LoadCatalog(db.TemplateSource())
	require.Equal(t, 2, cat.Len())
	assert.NotNil(t, cat.ByID("pieces/slab"))

	// Biome band filtering survives the round trip.
	got := cat.Candidates(0, 0, 10)
	require.Len(t, got, 1)
	assert.Equal(t, "pieces/spire", got[0].ID)
}

func TestPlacementsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveTemplates(sampleDefs()))
	cat := piece.LoadCatalog(db.TemplateSource())

	cfg := growth.DefaultConfig()
	session := growth.NewSession(cat, cfg, rand.New(rand.NewSource(9)))
	session.QueueSeed(geom.Vec3{X: 5, Z: 2}, geom.Vec3{X: 1}, 2,
		piece.TypeSeed|piece.TypeStructural, piece.SizeMedium, 0)
	session.ProcessQueue()
	require.NotEmpty(t, session.Placed())

	require.NoError(t, db.SavePlacements(session.Placed()))
	rows, err := db.LoadPlacements()
	require.NoError(t, err)
	require.Len(t, rows, len(session.Placed()))

	first := session.Placed()[0]
	assert.Equal(t, first.ID.String(), rows[0].ID)
	assert.Equal(t, first.Template.ID, rows[0].TemplateID)
	assert.Equal(t, first.Position.X, rows[0].X)
	assert.Equal(t, first.Depth, rows[0].Depth)
	assert.Equal(t, -1, rows[0].ParentIndex)
}

func TestStatsRoundTrip(t *testing.T) {
	db := openTestDB(t)

	stats := growth.Stats{
		SeedsReceived:  8,
		SeedsSucceeded: 6,
		SeedsFailed:    map[growth.RejectReason]int{growth.RejectOverlapRejected: 2},
		BlocksPlaced:   41,
		Rejects:        map[growth.RejectReason]int{growth.RejectNoValidTemplates: 3},
		DepthCounts:    map[int]int{0: 6, 1: 14, 2: 21},
	}
	require.NoError(t, db.SaveStats(stats))

	got, err := db.LastStats()
	require.NoError(t, err)
	assert.Equal(t, stats.BlocksPlaced, got.BlocksPlaced)
	assert.Equal(t, stats.SeedsFailed, got.SeedsFailed)
	assert.Equal(t, stats.DepthCounts, got.DepthCounts)
}
