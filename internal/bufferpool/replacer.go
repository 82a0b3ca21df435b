package bufferpool

// Replacer is the eviction policy consumed by the pool. It tracks which
// frames are eviction candidates: a frame becomes a candidate when its pin
// count drops to zero and leaves candidacy while pinned.
//
// Implementations are not safe for concurrent use on their own; the pool
// calls them only while holding its lock.
type Replacer interface {
	// Victim selects and removes an eviction candidate. ok is false when
	// every frame is pinned.
	Victim() (id FrameID, ok bool)

	// Pin removes the frame from candidacy. No-op if not a candidate.
	Pin(id FrameID)

	// Unpin makes the frame a candidate. No-op if it already is one.
	Unpin(id FrameID)

	// Size reports the number of current candidates.
	Size() int
}

// NewReplacer builds the policy named in the configuration. Unknown names
// fall back to LRU.
func NewReplacer(policy string, capacity int) Replacer {
	switch policy {
	case "clock":
		return NewClockReplacer(capacity)
	default:
		return NewLRUReplacer()
	}
}
