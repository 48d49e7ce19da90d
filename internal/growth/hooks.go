package growth

// Hooks receives progress events from a session, suitable for driving a
// loading screen or a render/LOD subsystem. Hooks are session-owned, not
// global: each session notifies only its own registered hooks, from the
// thread of control driving that session.
type Hooks interface {
	// GenerationStarted fires when processing begins, with the number of
	// queued seed candidates.
	GenerationStarted(seedCount int)

	// CandidateProcessed fires after each candidate is resolved, accepted
	// or not. templateID is the accepted template, or empty on a reject.
	CandidateProcessed(index int, templateID string)

	// PiecePlaced fires for every accepted placement, in acceptance
	// order. Downstream render/LOD systems consume these.
	PiecePlaced(inst *PlacedInstance)

	// GenerationComplete fires when the queue drains, the budget fills,
	// or the depth limit discards the remaining candidates.
	GenerationComplete(stats Stats)
}

// NoopHooks is the default Hooks implementation; every event is ignored.
type NoopHooks struct{}

func (NoopHooks) GenerationStarted(int)          {}
func (NoopHooks) CandidateProcessed(int, string) {}
func (NoopHooks) PiecePlaced(*PlacedInstance)    {}
func (NoopHooks) GenerationComplete(Stats)       {}
