package growth

// Stats aggregates everything a host needs to diagnose a growth session:
// how seeds fared, what was placed, and why candidates were dropped. An
// overwhelming overlap-reject rate, for instance, means seed density is
// too high for the available template sizes.
type Stats struct {
	SeedsReceived  int `json:"seeds_received"`
	SeedsSucceeded int `json:"seeds_succeeded"`

	// Seed failures keyed by the reason the originating candidate died.
	SeedsFailed map[RejectReason]int `json:"seeds_failed"`

	// SeedsDiscarded counts seed candidates dropped unprocessed when the
	// block budget or the depth valve halts growth. Succeeded + failed +
	// discarded always equals SeedsReceived.
	SeedsDiscarded int `json:"seeds_discarded"`

	BlocksPlaced int `json:"blocks_placed"`

	// All candidate rejections, seed-originated or not.
	Rejects map[RejectReason]int `json:"rejects"`

	// NoAnchorRejects counts candidates dropped because no attempted
	// template offered a usable plug.
	NoAnchorRejects int `json:"no_anchor_rejects"`

	// RotationRetries counts placements saved by an alternate yaw after
	// the first variant collided.
	RotationRetries int `json:"rotation_retries"`

	// InstantiationFailures counts template materialization errors during
	// placement attempts (distinct from whole-candidate rejects).
	InstantiationFailures int `json:"instantiation_failures"`

	// DepthCounts maps growth depth to accepted placements at that depth.
	DepthCounts map[int]int `json:"depth_counts"`
}

func newStats() Stats {
	return Stats{
		SeedsFailed: make(map[RejectReason]int),
		Rejects:     make(map[RejectReason]int),
		DepthCounts: make(map[int]int),
	}
}

// SeedsFailedTotal returns the number of failed seeds across all reasons.
func (s *Stats) SeedsFailedTotal() int {
	n := 0
	for _, c := range s.SeedsFailed {
		n += c
	}
	return n
}
