package bufferpool

import "container/list"

// LRUReplacer evicts the candidate that was unpinned least recently.
type LRUReplacer struct {
	order    *list.List // front = most recently unpinned
	elements map[FrameID]*list.Element
}

var _ Replacer = (*LRUReplacer)(nil)

func NewLRUReplacer() *LRUReplacer {
	return &LRUReplacer{
		order:    list.New(),
		elements: make(map[FrameID]*list.Element),
	}
}

func (r *LRUReplacer) Victim() (FrameID, bool) {
	back := r.order.Back()
	if back == nil {
		return 0, false
	}
	id := back.Value.(FrameID)
	r.order.Remove(back)
	delete(r.elements, id)
	return id, true
}

func (r *LRUReplacer) Pin(id FrameID) {
	if e, ok := r.elements[id]; ok {
		r.order.Remove(e)
		delete(r.elements, id)
	}
}

func (r *LRUReplacer) Unpin(id FrameID) {
	if _, ok := r.elements[id]; ok {
		return
	}
	r.elements[id] = r.order.PushFront(id)
}

func (r *LRUReplacer) Size() int {
	return len(r.elements)
}
