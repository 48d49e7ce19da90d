package layout

import (
	"testing"

	"github.com/talgya/cityforge/internal/piece"
)

func TestHexDistance(t *testing.T) {
	tests := []struct {
		a, b HexCoord
		want int
	}{
		{HexCoord{0, 0}, HexCoord{0, 0}, 0},
		{HexCoord{0, 0}, HexCoord{1, 0}, 1},
		{HexCoord{0, 0}, HexCoord{1, -1}, 1},
		{HexCoord{0, 0}, HexCoord{2, -1}, 2},
		{HexCoord{-2, 1}, HexCoord{2, -1}, 4},
	}
	for _, tc := range tests {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestHexNeighborsAreDistanceOne(t *testing.T) {
	origin := HexCoord{Q: 2, R: -1}
	for _, n := range origin.Neighbors() {
		if Distance(origin, n) != 1 {
			t.Errorf("neighbor %v of %v has distance %d", n, origin, Distance(origin, n))
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 77

	a := Generate(cfg)
	b := Generate(cfg)

	if len(a.Towers) != len(b.Towers) {
		t.Fatalf("tower counts differ: %d vs %d", len(a.Towers), len(b.Towers))
	}
	for i := range a.Towers {
		if a.Towers[i] != b.Towers[i] {
			t.Errorf("tower %d differs: %+v vs %+v", i, a.Towers[i], b.Towers[i])
		}
	}
	if len(a.Seeds) != len(b.Seeds) {
		t.Fatalf("seed counts differ: %d vs %d", len(a.Seeds), len(b.Seeds))
	}
	for i := range a.Seeds {
		if a.Seeds[i] != b.Seeds[i] {
			t.Errorf("seed %d differs: %+v vs %+v", i, a.Seeds[i], b.Seeds[i])
		}
	}
}

func TestGenerateRespectsMinTowerDistance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	cfg.MinTowerDist = 3

	l := Generate(cfg)
	if len(l.Towers) == 0 {
		t.Fatal("no towers generated")
	}
	if len(l.Towers) > cfg.MaxTowers {
		t.Fatalf("generated %d towers, max is %d", len(l.Towers), cfg.MaxTowers)
	}
	for i := range l.Towers {
		for j := i + 1; j < len(l.Towers); j++ {
			d := Distance(l.Towers[i].Coord, l.Towers[j].Coord)
			if d < cfg.MinTowerDist {
				t.Errorf("towers %d and %d are %d hexes apart, min is %d",
					i, j, d, cfg.MinTowerDist)
			}
		}
	}
}

func TestGenerateStaysInRadius(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 11

	l := Generate(cfg)
	for i, tw := range l.Towers {
		if !tw.Coord.InRadius(cfg.Radius) {
			t.Errorf("tower %d at %v is outside radius %d", i, tw.Coord, cfg.Radius)
		}
	}
	if len(l.Obstacles) != len(l.Towers) {
		t.Errorf("got %d obstacles for %d towers", len(l.Obstacles), len(l.Towers))
	}
}

func TestSeedsSitOnTowerFaces(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 23

	l := Generate(cfg)
	if len(l.Seeds) == 0 {
		t.Fatal("no seeds generated")
	}
	for i, s := range l.Seeds {
		if s.Direction.Z != 0 {
			t.Errorf("seed %d has non-horizontal direction %v", i, s.Direction)
		}
		if s.Types&piece.TypeSeed == 0 {
			t.Errorf("seed %d missing seed type flag", i)
		}
		if s.Sizes == 0 {
			t.Errorf("seed %d has no size flags", i)
		}
		if s.Position.Z <= 0 {
			t.Errorf("seed %d at ground level or below: z=%v", i, s.Position.Z)
		}
		if s.Biome < 0 || s.Biome >= l.BiomeCount(cfg) {
			t.Errorf("seed %d biome %d outside [0, %d)", i, s.Biome, l.BiomeCount(cfg))
		}
	}
}

func TestBandSizesDescendWithHeight(t *testing.T) {
	const bands = 6
	if s := bandSizes(0, bands); s&piece.SizeLarge == 0 {
		t.Errorf("bottom band sizes %v should include large", s)
	}
	if s := bandSizes(bands-1, bands); s != piece.SizeSmall {
		t.Errorf("top band sizes %v should be small only", s)
	}
	for band := 1; band < bands; band++ {
		if bandSizes(band, bands) > bandSizes(band-1, bands) {
			t.Errorf("band %d sizes grew over band %d", band, band-1)
		}
	}
}
