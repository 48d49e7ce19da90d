package layout

import (
	"math/rand"
	"sort"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/cityforge/internal/geom"
	"github.com/talgya/cityforge/internal/piece"
)

// Config holds connector-network layout parameters.
type Config struct {
	Radius       int     `toml:"radius"`         // Hex grid radius
	Seed         int64   `toml:"seed"`           // Random seed (0 = random)
	HexSize      float64 `toml:"hex_size"`       // World units per hex
	MinTowerDist int     `toml:"min_tower_dist"` // Minimum hex distance between towers
	MaxTowers    int     `toml:"max_towers"`
	TowerHalf    float64 `toml:"tower_half"`   // Tower footprint half-extent
	BaseHeight   float64 `toml:"base_height"`  // Minimum tower height
	HeightRange  float64 `toml:"height_range"` // Noise-driven extra height
	BandHeight   float64 `toml:"band_height"`  // Vertical size of one biome band
}

// DefaultConfig returns a reasonable starting layout.
func DefaultConfig() Config {
	return Config{
		Radius:       6,
		Seed:         0,
		HexSize:      28,
		MinTowerDist: 2,
		MaxTowers:    12,
		TowerHalf:    4,
		BaseHeight:   40,
		HeightRange:  60,
		BandHeight:   25,
	}
}

// Tower is one connector-network node: a vertical load-bearing column
// buildings grow outward from.
type Tower struct {
	Coord    HexCoord  `json:"coord"`
	Position geom.Vec3 `json:"position"` // Base center, Z = 0
	Height   float64   `json:"height"`
	Bounds   geom.AABB `json:"bounds"`
}

// Seed is one growth site on a tower face, ready to feed into a growth
// session's QueueSeed.
type Seed struct {
	Position  geom.Vec3
	Direction geom.Vec3
	Biome     int
	Types     piece.TypeFlags
	Sizes     piece.SizeFlags
	Heading   float64
}

// Layout is the generated connector network.
type Layout struct {
	Towers    []Tower
	Seeds     []Seed
	Obstacles []geom.AABB // Tower volumes growth must never intersect
}

// Generate places towers on the hex grid and derives seeds along their
// faces, one set per vertical biome band. Tower heights follow simplex
// noise so the skyline varies smoothly across the grid.
func Generate(cfg Config) *Layout {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed + 200))
	noise := opensimplex.NewNormalized(seed)

	// Score every hex by noise so tower sites cluster on the "ridges".
	type scored struct {
		coord HexCoord
		score float64
	}
	var candidates []scored
	for q := -cfg.Radius; q <= cfg.Radius; q++ {
		for r := -cfg.Radius; r <= cfg.Radius; r++ {
			coord := HexCoord{Q: q, R: r}
			if !coord.InRadius(cfg.Radius) {
				continue
			}
			x, y := coord.Cartesian(1)
			s := noise.Eval2(x*0.15, y*0.15)
			candidates = append(candidates, scored{coord, s})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	l := &Layout{}
	for _, c := range candidates {
		if len(l.Towers) >= cfg.MaxTowers {
			break
		}
		if tooClose(c.coord, l.Towers, cfg.MinTowerDist) {
			continue
		}
		x, y := c.coord.Cartesian(cfg.HexSize)
		height := cfg.BaseHeight + c.score*cfg.HeightRange
		pos := geom.Vec3{X: x, Y: y}
		tower := Tower{
			Coord:    c.coord,
			Position: pos,
			Height:   height,
			Bounds: geom.AABB{
				Min: geom.Vec3{X: x - cfg.TowerHalf, Y: y - cfg.TowerHalf, Z: 0},
				Max: geom.Vec3{X: x + cfg.TowerHalf, Y: y + cfg.TowerHalf, Z: height},
			},
		}
		l.Towers = append(l.Towers, tower)
		l.Obstacles = append(l.Obstacles, tower.Bounds)
	}

	for _, t := range l.Towers {
		l.Seeds = append(l.Seeds, towerSeeds(t, cfg, rng)...)
	}
	return l
}

var cardinalDirs = [4]geom.Vec3{
	{X: 1}, {Y: 1}, {X: -1}, {Y: -1},
}

// towerSeeds emits one outward seed per cardinal face per biome band of a
// tower. Lower bands carry large attachments, upper bands small ones.
func towerSeeds(t Tower, cfg Config, rng *rand.Rand) []Seed {
	var seeds []Seed
	bands := int(t.Height / cfg.BandHeight)
	if bands < 1 {
		bands = 1
	}
	for band := 0; band < bands; band++ {
		z := (float64(band) + 0.5) * cfg.BandHeight
		if z > t.Height {
			break
		}
		sizes := bandSizes(band, bands)
		// Skip one random face per band so towers are not foursquare.
		skip := rng.Intn(4)
		for di, dir := range cardinalDirs {
			if di == skip {
				continue
			}
			pos := t.Position.Add(dir.Scale(cfg.TowerHalf))
			pos.Z = z
			seeds = append(seeds, Seed{
				Position:  pos,
				Direction: dir,
				Biome:     band,
				Types:     piece.TypeSeed | piece.TypeStructural,
				Sizes:     sizes,
				Heading:   geom.Yaw(dir),
			})
		}
	}
	return seeds
}

// bandSizes maps a vertical band to the attachment sizes allowed there.
func bandSizes(band, bands int) piece.SizeFlags {
	third := float64(band) / float64(bands)
	switch {
	case third < 0.34:
		return piece.SizeLarge | piece.SizeMedium
	case third < 0.67:
		return piece.SizeMedium | piece.SizeSmall
	default:
		return piece.SizeSmall
	}
}

func tooClose(coord HexCoord, existing []Tower, minDist int) bool {
	for _, t := range existing {
		if Distance(coord, t.Coord) < minDist {
			return true
		}
	}
	return false
}

// BiomeCount returns the highest band index any tower reaches, plus one.
func (l *Layout) BiomeCount(cfg Config) int {
	maxBand := 0
	for _, t := range l.Towers {
		b := int(t.Height/cfg.BandHeight) - 1
		if b > maxBand {
			maxBand = b
		}
	}
	return maxBand + 1
}
