package clockx

// Clock implements CLOCK (second-chance) replacement for a fixed number of
// slots addressed by ids in [0, capacity). A slot joins the candidate set
// via Unpin and leaves it via Pin or eviction. Unpinning sets the slot's
// reference bit, so a fresh candidate survives one sweep of the hand.
type Clock struct {
	ref       []bool
	candidate []bool
	hand      int
	size      int // number of candidate slots
}

func New(capacity int) *Clock {
	if capacity <= 0 {
		capacity = 1
	}
	return &Clock{
		ref:       make([]bool, capacity),
		candidate: make([]bool, capacity),
	}
}

func (c *Clock) Capacity() int { return len(c.ref) }

// Size reports the number of slots currently eligible for eviction.
func (c *Clock) Size() int { return c.size }

// Unpin adds the slot to the candidate set with its reference bit set.
func (c *Clock) Unpin(id int) {
	if id < 0 || id >= len(c.ref) {
		return
	}
	if c.candidate[id] {
		return
	}
	c.candidate[id] = true
	c.ref[id] = true
	c.size++
}

// Pin removes the slot from the candidate set.
func (c *Clock) Pin(id int) {
	if id < 0 || id >= len(c.ref) {
		return
	}
	if !c.candidate[id] {
		return
	}
	c.candidate[id] = false
	c.ref[id] = false
	c.size--
}

// Victim sweeps the hand over the candidate set: a referenced candidate
// loses its bit and is skipped, an unreferenced one is evicted and removed
// from tracking. ok is false when there are no candidates.
func (c *Clock) Victim() (id int, ok bool) {
	if c.size == 0 {
		return -1, false
	}
	for {
		i := c.hand
		c.hand = (c.hand + 1) % len(c.ref)

		if !c.candidate[i] {
			continue
		}
		if c.ref[i] {
			c.ref[i] = false
			continue
		}
		c.candidate[i] = false
		c.size--
		return i, true
	}
}
