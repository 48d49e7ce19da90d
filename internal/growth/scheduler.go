package growth

import (
	"math"

	"github.com/google/uuid"

	"github.com/talgya/cityforge/internal/geom"
	"github.com/talgya/cityforge/internal/piece"
)

// Extra yaw offsets tried when growing along a vertical direction, where
// a single derived yaw would make every stack identical.
var verticalYawOffsets = [4]float64{0, math.Pi / 2, -math.Pi / 2, math.Pi}

// processCandidate resolves one growth site: query the catalog, try up to
// MaxBlockAttempts templates with their legal yaw variants, accept the
// first placement that clears the overlap test, or record a reject.
func (s *Session) processCandidate(c Candidate) {
	index := s.processed
	s.processed++

	tpls := s.catalog.Candidates(c.Biome, c.Depth, s.cfg.MaxGrowthDepth)
	tpls = piece.FilterByRequiredSize(tpls, c.Sizes)
	if len(tpls) == 0 {
		s.reject(c, RejectNoValidTemplates)
		s.hooks.CandidateProcessed(index, "")
		return
	}

	// Occasionally force walkable surfaces deeper in the structure.
	if c.Depth > 0 && s.cfg.FloorBias > 0 && s.rng.Float64() < s.cfg.FloorBias {
		var floors []*piece.Template
		for _, t := range tpls {
			if t.Category == piece.CategoryFloor {
				floors = append(floors, t)
			}
		}
		if len(floors) > 0 {
			tpls = floors
		}
	}

	order := s.weightedOrder(tpls)
	if s.cfg.subBudgetsEnabled() {
		// Drop categories whose pool is full before the attempt slice is
		// taken, so skips never eat into MaxBlockAttempts.
		kept := order[:0]
		for _, t := range order {
			if s.subBudgetHasRoom(t.Category) {
				kept = append(kept, t)
			}
		}
		order = kept
	}
	attempts := len(order)
	if s.cfg.MaxBlockAttempts > 0 && attempts > s.cfg.MaxBlockAttempts {
		attempts = s.cfg.MaxBlockAttempts
	}

	// The candidate side of every pairing check: the growth front acts as
	// the socket the new piece's anchor must mate with.
	mate := piece.AttachmentPoint{
		Direction: c.Direction,
		Types:     c.Types,
		Sizes:     c.Sizes,
		Socket:    true,
	}

	attemptedPlacement := false
	materialized := false
	instFailed := false
	for _, tpl := range order[:attempts] {
		inst, err := s.catalog.Instantiate(tpl)
		if err != nil {
			s.stats.InstantiationFailures++
			instFailed = true
			continue
		}
		materialized = true

		if len(inst.Attachments) == 0 {
			// Free-standing piece: no anchor search, place at the site.
			attemptedPlacement = true
			bounds := s.worldBounds(inst, c.Position, c.Heading)
			if !s.collides(bounds) {
				s.accept(c, tpl, c.Position, c.Heading, bounds, -1)
				s.hooks.CandidateProcessed(index, tpl.ID)
				return
			}
			continue
		}

		anchorIdx := findAnchor(inst, c)
		if anchorIdx < 0 {
			continue
		}
		anchor := inst.Attachments[anchorIdx]

		for vi, yaw := range alignYaws(anchor, c) {
			worldAnchor := anchor
			worldAnchor.Direction = geom.RotateYaw(anchor.Direction, yaw)
			if !piece.Compatible(worldAnchor, mate) {
				continue
			}
			attemptedPlacement = true

			// The anchor must land exactly on the candidate position.
			pos := c.Position.Sub(geom.RotateYaw(anchor.Position, yaw))
			bounds := s.worldBounds(inst, pos, yaw)
			if anchor.SkipOverlap || !s.collides(bounds) {
				if vi > 0 {
					s.stats.RotationRetries++
				}
				s.accept(c, tpl, pos, yaw, bounds, anchorIdx)
				s.hooks.CandidateProcessed(index, tpl.ID)
				return
			}
		}
	}

	var reason RejectReason
	switch {
	case attemptedPlacement:
		reason = RejectOverlapRejected
	case materialized:
		reason = RejectNoCompatibleAnchor
	case instFailed:
		reason = RejectInstantiationFailed
	default:
		// Everything was skipped before an instance existed, e.g. by a
		// filled sub-budget.
		reason = RejectNoValidTemplates
	}
	s.reject(c, reason)
	s.hooks.CandidateProcessed(index, "")
}

// findAnchor returns the first attachment usable as the anchor for this
// candidate: a plug whose type and size sets intersect the requirement.
// Direction depends on the yaw variant, so the full pairing check runs
// later, through Compatible, once alignment fixes the world direction.
func findAnchor(inst *piece.Instance, c Candidate) int {
	for i, a := range inst.Attachments {
		if a.Plug && a.Types&c.Types != 0 && a.Sizes&c.Sizes != 0 {
			return i
		}
	}
	return -1
}

// alignYaws returns the yaw variants to try so the anchor's outward
// direction opposes the candidate's. Horizontal growth derives a single
// yaw; vertical growth falls back to the heading hint and fans out over
// the fixed offset set to diversify stacking. The anchor's rotation mode
// then restricts the variant set.
func alignYaws(anchor piece.AttachmentPoint, c Candidate) []float64 {
	candVert := geom.IsVertical(c.Direction)
	anchorVert := geom.IsVertical(anchor.Direction)
	if candVert != anchorVert {
		// No yaw about Z can turn a horizontal attachment vertical.
		return nil
	}

	var yaws []float64
	if candVert {
		if anchor.Direction.Z*c.Direction.Z > 0 {
			// Same-sign vertical pair: the anchor faces the same way as
			// the growth front, and no yaw about Z flips the sign.
			return nil
		}
		for _, off := range verticalYawOffsets {
			yaws = append(yaws, geom.NormalizeYaw(c.Heading+off))
		}
	} else {
		base := geom.Yaw(c.Direction.Neg()) - geom.Yaw(anchor.Direction)
		yaws = []float64{geom.NormalizeYaw(base)}
	}

	switch anchor.Rotation {
	case piece.RotationCardinal:
		seen := make(map[float64]bool, len(yaws))
		snapped := yaws[:0]
		for _, y := range yaws {
			y = geom.NormalizeYaw(geom.SnapYawCardinal(y))
			if !seen[y] {
				seen[y] = true
				snapped = append(snapped, y)
			}
		}
		yaws = snapped
	case piece.RotationFixed:
		yaws = yaws[:1]
	}
	return yaws
}

// weightedOrder returns the templates in weighted-random order, drawing
// without replacement proportional to spawn weight. Uniform weights
// degenerate to a plain shuffle.
func (s *Session) weightedOrder(tpls []*piece.Template) []*piece.Template {
	pool := append([]*piece.Template(nil), tpls...)
	out := make([]*piece.Template, 0, len(pool))

	total := 0.0
	for _, t := range pool {
		total += t.Weight
	}

	for len(pool) > 0 {
		r := s.rng.Float64() * total
		pick := len(pool) - 1
		for i, t := range pool {
			r -= t.Weight
			if r < 0 {
				pick = i
				break
			}
		}
		t := pool[pick]
		out = append(out, t)
		total -= t.Weight
		pool[pick] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return out
}

// accept records a placement, marks the consumed anchor, and enqueues
// child candidates for the remaining sockets.
func (s *Session) accept(c Candidate, tpl *piece.Template, pos geom.Vec3, yaw float64, bounds geom.AABB, anchorIdx int) {
	p := &PlacedInstance{
		ID:          uuid.New(),
		Template:    tpl,
		Position:    pos,
		Yaw:         yaw,
		Bounds:      bounds,
		Depth:       c.Depth,
		Used:        make([]bool, len(tpl.Attachments)),
		ParentIndex: c.parentIndex,
	}
	if anchorIdx >= 0 {
		p.Used[anchorIdx] = true
	}

	s.placed = append(s.placed, p)
	s.consumeSubBudget(tpl.Category)
	s.stats.BlocksPlaced++
	s.stats.DepthCounts[c.Depth]++
	if c.FromSeed {
		s.stats.SeedsSucceeded++
	}
	s.hooks.PiecePlaced(p)

	s.branch(p, c, len(s.placed)-1)
}

// branch enqueues one child candidate per unused socket on the new
// instance. Depth 0 always branches; deeper pieces branch with the
// configured probability. Children never exceed the depth valve.
func (s *Session) branch(p *PlacedInstance, c Candidate, selfIndex int) {
	nextDepth := c.Depth + 1
	if nextDepth > s.cfg.MaxGrowthDepth {
		return
	}

	for i, a := range p.Template.Attachments {
		if p.Used[i] || !a.Socket {
			continue
		}
		if c.Depth > 0 && s.rng.Float64() >= s.cfg.BranchProbability {
			continue
		}

		sizes := a.Sizes.Each()
		if len(sizes) == 0 {
			continue
		}
		required := sizes[s.rng.Intn(len(sizes))]

		pos, dir := p.AttachmentWorld(i)
		heading := p.Yaw
		if !geom.IsVertical(dir) {
			heading = geom.Yaw(dir)
		}

		p.Used[i] = true
		s.queue = append(s.queue, Candidate{
			Position:    pos,
			Direction:   dir,
			Types:       a.Types,
			Sizes:       required,
			Depth:       nextDepth,
			Biome:       c.Biome,
			Heading:     heading,
			parentIndex: selfIndex,
		})
	}
}

func (s *Session) reject(c Candidate, reason RejectReason) {
	s.stats.Rejects[reason]++
	if reason == RejectNoCompatibleAnchor {
		s.stats.NoAnchorRejects++
	}
	if c.FromSeed {
		s.stats.SeedsFailed[reason]++
	}
}

// Sub-budget accounting: structural and junction pieces draw from the
// structural pool, floors and caps from the decorative one.

func structuralCategory(cat piece.Category) bool {
	return cat == piece.CategoryStructural || cat == piece.CategoryJunction
}

func (s *Session) subBudgetHasRoom(cat piece.Category) bool {
	if structuralCategory(cat) {
		return s.cfg.MaxStructural <= 0 || s.structuralUsed < s.cfg.MaxStructural
	}
	return s.cfg.MaxDecorative <= 0 || s.decorativeUsed < s.cfg.MaxDecorative
}

func (s *Session) consumeSubBudget(cat piece.Category) {
	if structuralCategory(cat) {
		s.structuralUsed++
	} else {
		s.decorativeUsed++
	}
}
