package growth

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/talgya/cityforge/internal/geom"
	"github.com/talgya/cityforge/internal/piece"
)

// Session owns one growth run: its candidate queue, RNG, placed
// instances, external volumes, and statistics. Sessions are
// single-threaded; the cooperative Step mode is a resumable state
// machine, not concurrency. Two sessions never share state.
type Session struct {
	cfg     Config
	catalog *piece.Catalog
	rng     *rand.Rand
	hooks   Hooks

	queue    []Candidate // Candidates deeper than the active layer
	layer    []Candidate // Active layer, shuffled, processed in order
	layerPos int

	placed   []*PlacedInstance
	external []geom.AABB

	structuralUsed int
	decorativeUsed int

	stats     Stats
	started   bool
	done      bool
	processed int
}

// NewSession creates a session over the catalog. A nil rng gets a
// time-seeded one; pass an explicitly seeded rand.Rand for reproducible
// runs.
func NewSession(catalog *piece.Catalog, cfg Config, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		cfg:     cfg,
		catalog: catalog,
		rng:     rng,
		hooks:   NoopHooks{},
		stats:   newStats(),
	}
}

// SetHooks registers progress hooks. Call before processing starts.
func (s *Session) SetHooks(h Hooks) {
	if h != nil {
		s.hooks = h
	}
}

// Reset clears the queue, placed instances, and statistics so the session
// can be reused. Externally registered volumes survive a reset: they
// describe the host's fixed geometry, not this run's output.
func (s *Session) Reset() {
	s.queue = nil
	s.layer = nil
	s.layerPos = 0
	s.placed = nil
	s.structuralUsed = 0
	s.decorativeUsed = 0
	s.stats = newStats()
	s.started = false
	s.done = false
	s.processed = 0
}

// QueueSeed enqueues one externally supplied growth candidate at depth 0.
func (s *Session) QueueSeed(pos, dir geom.Vec3, biome int, types piece.TypeFlags, sizes piece.SizeFlags, heading float64) {
	s.stats.SeedsReceived++
	s.queue = append(s.queue, Candidate{
		Position:    pos,
		Direction:   dir.Normalized(),
		Types:       types,
		Sizes:       sizes,
		Biome:       biome,
		Heading:     heading,
		FromSeed:    true,
		parentIndex: -1,
	})
}

// RegisterExternalAABBs pre-populates the occupied-space list so growth
// never intersects the host's load-bearing structures.
func (s *Session) RegisterExternalAABBs(vols []geom.AABB) {
	s.external = append(s.external, vols...)
}

// Placed returns the accepted instances in acceptance order. The slice is
// owned by the session; callers must not mutate it.
func (s *Session) Placed() []*PlacedInstance {
	return s.placed
}

// Statistics returns a snapshot view of the session counters. The maps
// are live; treat the result as read-only.
func (s *Session) Statistics() Stats {
	return s.stats
}

// ProcessQueue runs growth synchronously to completion.
func (s *Session) ProcessQueue() {
	for s.Step(64) {
	}
}

// Step processes up to workBudget candidates and reports whether work
// remains. Driving Step from a host loop yields identical accept/reject
// decisions to ProcessQueue for the same inputs and RNG sequence; only
// the scheduling of when work happens differs.
func (s *Session) Step(workBudget int) bool {
	if s.done {
		return false
	}
	if !s.started {
		s.started = true
		s.hooks.GenerationStarted(len(s.queue))
		slog.Info("growth started",
			"seeds", s.stats.SeedsReceived,
			"queued", len(s.queue),
			"max_depth", s.cfg.MaxGrowthDepth,
			"budget", s.cfg.MaxTotalBlocks,
		)
	}

	for work := 0; work < workBudget; work++ {
		if s.layerPos >= len(s.layer) {
			if !s.beginLayer() {
				s.finish()
				return false
			}
		}
		if s.budgetExhausted() {
			// Hard stop mid-layer: remaining candidates are dropped.
			s.discardPending()
			s.finish()
			return false
		}
		c := s.layer[s.layerPos]
		s.layerPos++
		s.processCandidate(c)
	}

	if s.layerPos >= len(s.layer) && len(s.queue) == 0 {
		s.finish()
		return false
	}
	return true
}

// beginLayer partitions the queue into the minimum-depth layer and the
// remainder, shuffling the layer for placement-order variety. Every layer
// drains fully before deeper candidates are touched: depth-first growth
// from one seed could exhaust the whole budget and starve the others.
func (s *Session) beginLayer() bool {
	if len(s.queue) == 0 {
		return false
	}

	minDepth := s.queue[0].Depth
	for _, c := range s.queue[1:] {
		if c.Depth < minDepth {
			minDepth = c.Depth
		}
	}
	if minDepth > s.cfg.MaxGrowthDepth {
		// Terminal: everything left is beyond the depth valve.
		s.discardPending()
		return false
	}

	layer := s.layer[:0]
	rest := s.queue[:0:0]
	for _, c := range s.queue {
		if c.Depth == minDepth {
			layer = append(layer, c)
		} else {
			rest = append(rest, c)
		}
	}
	s.queue = rest

	s.rng.Shuffle(len(layer), func(i, j int) {
		layer[i], layer[j] = layer[j], layer[i]
	})
	s.layer = layer
	s.layerPos = 0
	return true
}

// discardPending drops every unprocessed candidate, counting the
// seed-originated ones so a host can always reconcile SeedsReceived
// against succeeded + failed + discarded.
func (s *Session) discardPending() {
	for _, c := range s.layer[s.layerPos:] {
		if c.FromSeed {
			s.stats.SeedsDiscarded++
		}
	}
	for _, c := range s.queue {
		if c.FromSeed {
			s.stats.SeedsDiscarded++
		}
	}
	s.layer = nil
	s.layerPos = 0
	s.queue = nil
}

func (s *Session) budgetExhausted() bool {
	return s.cfg.MaxTotalBlocks > 0 && len(s.placed) >= s.cfg.MaxTotalBlocks
}

func (s *Session) finish() {
	if !s.started || s.done {
		return
	}
	s.done = true
	slog.Info("growth complete",
		"placed", s.stats.BlocksPlaced,
		"seeds_succeeded", s.stats.SeedsSucceeded,
		"seeds_failed", s.stats.SeedsFailedTotal(),
		"rotation_retries", s.stats.RotationRetries,
	)
	s.hooks.GenerationComplete(s.stats)
}
