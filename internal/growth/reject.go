package growth

// RejectReason classifies why a candidate was dropped. Every reason is
// non-fatal: rejects are recorded in statistics and growth continues.
type RejectReason uint8

const (
	RejectNoValidTemplates    RejectReason = iota // No catalog entry matched biome/depth/size
	RejectNoCompatibleAnchor                      // Templates found, none exposed a usable plug
	RejectOverlapRejected                         // Every template/rotation attempt collided
	RejectInstantiationFailed                     // Source failed to materialize an instance
)

// RejectReasonName returns a human-readable name for a reject reason.
func RejectReasonName(r RejectReason) string {
	switch r {
	case RejectNoValidTemplates:
		return "NoValidTemplates"
	case RejectNoCompatibleAnchor:
		return "NoCompatibleAnchor"
	case RejectOverlapRejected:
		return "OverlapRejected"
	case RejectInstantiationFailed:
		return "InstantiationFailed"
	default:
		return "Unknown"
	}
}
