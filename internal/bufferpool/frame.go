package bufferpool

import "github.com/tuannm99/novapool/internal/storage"

// FrameID indexes the pool's frame arena. Stable for the pool's lifetime.
type FrameID int

// InvalidPageNo marks "no page". Page files never grow this large.
const InvalidPageNo = ^uint32(0)

// PageID uniquely identifies a page across all files managed by one pool.
type PageID struct {
	File   storage.FileID
	PageNo uint32
}

// InvalidPageID is the identity of a frame that holds no page.
var InvalidPageID = PageID{File: storage.InvalidFileID, PageNo: InvalidPageNo}

func (p PageID) Valid() bool {
	return p.File != storage.InvalidFileID && p.PageNo != InvalidPageNo
}

// Frame is one fixed-size slot of the arena. Frames are allocated once at
// pool construction and repurposed for different pages over time; callers
// only ever borrow a *Frame, valid while they hold a pin on it.
type Frame struct {
	id    FrameID
	buf   []byte
	page  PageID
	dirty bool
	pin   int32
}

// Data returns the page buffer. The slice aliases pool-owned memory and
// must not be retained past the matching UnpinPage.
func (f *Frame) Data() []byte { return f.buf }

// PageID returns the identity of the page currently hosted by the frame.
func (f *Frame) PageID() PageID { return f.page }

func (f *Frame) IsDirty() bool { return f.dirty }

func (f *Frame) PinCount() int32 { return f.pin }

// reset returns the frame to its empty state and zeroes the buffer so a
// later occupant can never observe the previous page's bytes.
func (f *Frame) reset() {
	f.page = InvalidPageID
	f.dirty = false
	f.pin = 0
	for i := range f.buf {
		f.buf[i] = 0
	}
}
