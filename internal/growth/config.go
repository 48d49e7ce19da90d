// Package growth implements the breadth-first building-growth engine:
// a session owns a queue of growth candidates, expands them layer by
// layer against the piece catalog, and rejects placements that collide
// with already-placed geometry or exceed the configured budgets.
package growth

// Config holds the tunables of one growth session. All limits are hard
// safety valves: a misconfigured branch probability or oversized seed set
// must never grow unboundedly.
type Config struct {
	// MaxGrowthDepth bounds attachment hops from any seed. Candidates
	// beyond this depth are discarded unprocessed.
	MaxGrowthDepth int `toml:"max_growth_depth"`

	// MaxTotalBlocks caps accepted placements per session.
	MaxTotalBlocks int `toml:"max_total_blocks"`

	// Optional sub-budgets. Zero disables the split; when either is set,
	// structural/junction pieces draw from MaxStructural and floor/cap
	// pieces from MaxDecorative, with MaxTotalBlocks still binding.
	MaxStructural int `toml:"max_structural"`
	MaxDecorative int `toml:"max_decorative"`

	// MaxBlockAttempts bounds how many distinct templates are tried for
	// one candidate before it is rejected.
	MaxBlockAttempts int `toml:"max_block_attempts"`

	// BranchProbability is the chance each unused socket of a newly
	// placed piece spawns a child candidate at depth > 0. Depth-0 pieces
	// always branch so seeds actually grow.
	BranchProbability float64 `toml:"branch_probability"`

	// FloorBias is the chance a candidate at depth > 0 is restricted to
	// floor templates when any are eligible, forcing occasional usable
	// surfaces.
	FloorBias float64 `toml:"floor_bias"`

	// OverlapMargin shrinks a candidate volume on all axes before the
	// intersection test, tolerating near-misses.
	OverlapMargin float64 `toml:"overlap_margin"`

	// DefaultPartHalf is the half-extent of the fallback collision box
	// used for instances that expose no sub-geometry.
	DefaultPartHalf float64 `toml:"default_part_half"`
}

// DefaultConfig returns a reasonable starting configuration.
func DefaultConfig() Config {
	return Config{
		MaxGrowthDepth:    6,
		MaxTotalBlocks:    400,
		MaxBlockAttempts:  4,
		BranchProbability: 0.65,
		FloorBias:         0.25,
		OverlapMargin:     0.05,
		DefaultPartHalf:   2.0,
	}
}

func (c Config) subBudgetsEnabled() bool {
	return c.MaxStructural > 0 || c.MaxDecorative > 0
}
