package bufferpool

// freeList queues frames that hold no page: every frame at construction,
// plus frames handed back by DeletePage. Disjoint from the page table.
type freeList struct {
	ids []FrameID
}

// newFreeList starts with every frame id in [0, capacity).
func newFreeList(capacity int) *freeList {
	l := &freeList{ids: make([]FrameID, capacity)}
	for i := range l.ids {
		l.ids[i] = FrameID(i)
	}
	return l
}

func (l *freeList) pop() (FrameID, bool) {
	if len(l.ids) == 0 {
		return 0, false
	}
	id := l.ids[0]
	l.ids = l.ids[1:]
	return id, true
}

func (l *freeList) push(id FrameID) {
	l.ids = append(l.ids, id)
}

func (l *freeList) len() int {
	return len(l.ids)
}
