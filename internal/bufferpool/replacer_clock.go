package bufferpool

import "github.com/tuannm99/novapool/pkg/clockx"

// ClockReplacer adapts the generic CLOCK policy to frame ids.
type ClockReplacer struct {
	c *clockx.Clock
}

var _ Replacer = (*ClockReplacer)(nil)

func NewClockReplacer(capacity int) *ClockReplacer {
	return &ClockReplacer{c: clockx.New(capacity)}
}

func (r *ClockReplacer) Victim() (FrameID, bool) {
	id, ok := r.c.Victim()
	return FrameID(id), ok
}

func (r *ClockReplacer) Pin(id FrameID) {
	r.c.Pin(int(id))
}

func (r *ClockReplacer) Unpin(id FrameID) {
	r.c.Unpin(int(id))
}

func (r *ClockReplacer) Size() int {
	return r.c.Size()
}
