package bufferpool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tuannm99/novapool/internal/storage"
)

var (
	DefaultCapacity = 128

	ErrNoFreeFrame     = errors.New("bufferpool: no free frame available (all pinned)")
	ErrPagePinned      = errors.New("bufferpool: page is pinned")
	ErrPageNotResident = errors.New("bufferpool: page not resident")
)

// Manager is the pool surface consumed by higher layers.
type Manager interface {
	FetchPage(pid PageID) (*Frame, error)
	NewPage(file storage.FileID) (*Frame, PageID, error)
	UnpinPage(pid PageID, dirty bool) bool
	FlushPage(pid PageID) error
	DeletePage(pid PageID) error
	FlushFile(file storage.FileID) error
	FlushAll() error
}

var _ Manager = (*Pool)(nil)

// Pool caches fixed-size disk pages in a bounded frame arena. A single
// mutex guards the arena, the page table, the free list, and the policy,
// and is held across disk I/O: every public operation is atomic with
// respect to pool state, at the cost of serializing I/O.
type Pool struct {
	disk     DiskAccess
	pageSize int

	mu        sync.Mutex
	frames    []Frame
	pageTable map[PageID]FrameID
	free      *freeList
	policy    Replacer
}

// NewPool builds a pool with a fixed frame count. capacity <= 0 falls back
// to DefaultCapacity, pageSize <= 0 to storage.DefaultPageSize, a nil
// policy to LRU.
func NewPool(disk DiskAccess, pageSize, capacity int, policy Replacer) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if pageSize <= 0 {
		pageSize = storage.DefaultPageSize
	}
	if policy == nil {
		policy = NewLRUReplacer()
	}
	p := &Pool{
		disk:      disk,
		pageSize:  pageSize,
		frames:    make([]Frame, capacity),
		pageTable: make(map[PageID]FrameID, capacity),
		free:      newFreeList(capacity),
		policy:    policy,
	}
	for i := range p.frames {
		p.frames[i] = Frame{
			id:   FrameID(i),
			buf:  make([]byte, pageSize),
			page: InvalidPageID,
		}
	}
	return p
}

// PageSize returns the size of every frame buffer.
func (p *Pool) PageSize() int { return p.pageSize }

// Capacity returns the number of frames.
func (p *Pool) Capacity() int { return len(p.frames) }

// acquireVictim hands out one reusable frame: free list first, otherwise a
// policy victim, whose stale page-table mapping is removed here. The
// frame's buffer may still hold the previous page's bytes; repurpose deals
// with flushing and zeroing. ok is false when every frame is pinned.
func (p *Pool) acquireVictim() (FrameID, bool) {
	if id, ok := p.free.pop(); ok {
		return id, ok
	}
	id, ok := p.policy.Victim()
	if !ok {
		return 0, false
	}
	delete(p.pageTable, p.frames[id].page)
	return id, true
}

// releaseVictim undoes acquireVictim after a failure between acquisition
// and installation, so the frame is not leaked.
func (p *Pool) releaseVictim(id FrameID) {
	f := &p.frames[id]
	if f.page.Valid() {
		p.pageTable[f.page] = id
		p.policy.Unpin(id)
		return
	}
	p.free.push(id)
}

// repurpose prepares a frame to host pid: write-back of dirty previous
// content under its old identity, metadata reset, page-table swap, and a
// buffer zero so no stale bytes survive into the new page.
func (p *Pool) repurpose(f *Frame, pid PageID) error {
	if f.dirty {
		if err := p.disk.WritePage(f.page.File, f.page.PageNo, f.buf); err != nil {
			return fmt.Errorf("flush victim page: %w", err)
		}
		f.dirty = false
	}
	delete(p.pageTable, f.page)
	p.pageTable[pid] = f.id
	f.reset()
	f.page = pid
	return nil
}

// FetchPage pins and returns the frame holding pid, reading it from disk
// on a miss. Returns ErrNoFreeFrame when the pool is exhausted; in that
// case no state was changed.
func (p *Pool) FetchPage(pid PageID) (*Frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if idx, ok := p.pageTable[pid]; ok {
		f := &p.frames[idx]
		f.pin++
		p.policy.Pin(idx)
		return f, nil
	}

	idx, ok := p.acquireVictim()
	if !ok {
		return nil, ErrNoFreeFrame
	}
	f := &p.frames[idx]

	if err := p.repurpose(f, pid); err != nil {
		p.releaseVictim(idx)
		return nil, err
	}
	if err := p.disk.ReadPage(pid.File, pid.PageNo, f.buf); err != nil {
		delete(p.pageTable, pid)
		f.reset()
		p.free.push(idx)
		return nil, fmt.Errorf("read page: %w", err)
	}

	f.pin = 1
	f.dirty = false
	p.policy.Pin(idx)
	return f, nil
}

// NewPage allocates a fresh page number in file and installs it, pinned,
// into a zeroed frame. Returns ErrNoFreeFrame when the pool is exhausted.
func (p *Pool) NewPage(file storage.FileID) (*Frame, PageID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx, ok := p.acquireVictim()
	if !ok {
		return nil, InvalidPageID, ErrNoFreeFrame
	}
	f := &p.frames[idx]

	pageNo, err := p.disk.AllocatePage(file)
	if err != nil {
		p.releaseVictim(idx)
		return nil, InvalidPageID, fmt.Errorf("allocate page: %w", err)
	}
	pid := PageID{File: file, PageNo: pageNo}

	if err := p.repurpose(f, pid); err != nil {
		p.releaseVictim(idx)
		return nil, InvalidPageID, err
	}

	f.pin = 1
	p.policy.Pin(idx)
	return f, pid, nil
}

// UnpinPage drops one pin of pid, marking the frame dirty when dirty is
// set (sticky until a write-through clears it). Returns false when the
// page is not resident or its pin count is already zero.
func (p *Pool) UnpinPage(pid PageID, dirty bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx, ok := p.pageTable[pid]
	if !ok {
		return false
	}
	f := &p.frames[idx]
	if f.pin == 0 {
		return false
	}

	f.pin--
	if dirty {
		f.dirty = true
	}
	if f.pin == 0 {
		p.policy.Unpin(idx)
	}
	return true
}

// FlushPage writes pid's frame to disk regardless of its dirty flag or pin
// count, then clears the flag. Returns ErrPageNotResident for absent or
// invalid identities.
func (p *Pool) FlushPage(pid PageID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flushLocked(pid)
}

func (p *Pool) flushLocked(pid PageID) error {
	idx, ok := p.pageTable[pid]
	if !ok || !pid.Valid() {
		return ErrPageNotResident
	}
	f := &p.frames[idx]
	if err := p.disk.WritePage(pid.File, pid.PageNo, f.buf); err != nil {
		return fmt.Errorf("flush page: %w", err)
	}
	f.dirty = false
	return nil
}

// DeletePage drops pid from the pool, flushing it first when dirty, and
// hands its frame back to the free list. Deleting an absent page is a
// no-op; deleting a pinned page returns ErrPagePinned with no state
// change.
func (p *Pool) DeletePage(pid PageID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx, ok := p.pageTable[pid]
	if !ok {
		return nil
	}
	f := &p.frames[idx]
	if f.pin != 0 {
		return ErrPagePinned
	}

	if f.dirty {
		if err := p.disk.WritePage(pid.File, pid.PageNo, f.buf); err != nil {
			return fmt.Errorf("flush deleted page: %w", err)
		}
		f.dirty = false
	}

	delete(p.pageTable, pid)
	f.reset()
	p.policy.Unpin(idx)
	p.free.push(idx)
	return nil
}

// FlushFile flushes every resident page belonging to file.
func (p *Pool) FlushFile(file storage.FileID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for pid := range p.pageTable {
		if pid.File != file {
			continue
		}
		if err := p.flushLocked(pid); err != nil {
			return err
		}
	}
	return nil
}

// FlushAll flushes every resident page of every file.
func (p *Pool) FlushAll() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for pid := range p.pageTable {
		if err := p.flushLocked(pid); err != nil {
			return err
		}
	}
	return nil
}
