package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// FileID is an opaque handle for a page file opened through a DiskManager.
type FileID uint32

// InvalidFileID is never returned by Open.
const InvalidFileID FileID = 0

// dbFile is one open page file plus its allocation cursor.
type dbFile struct {
	f          *os.File
	name       string
	nextPageNo uint32
}

// DiskManager provides synchronous page-granular I/O over a set of files in
// a single directory. Pages are addressed by (FileID, pageNo); the byte
// offset of a page is pageNo * pageSize.
type DiskManager struct {
	dir      string
	pageSize int

	mu     sync.Mutex
	files  map[FileID]*dbFile
	nextID FileID
	closed bool
}

// NewDiskManager creates the directory if needed. pageSize <= 0 falls back
// to DefaultPageSize.
func NewDiskManager(dir string, pageSize int) (*DiskManager, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if err := os.MkdirAll(dir, FileMode0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &DiskManager{
		dir:      dir,
		pageSize: pageSize,
		files:    make(map[FileID]*dbFile),
		nextID:   InvalidFileID + 1,
	}, nil
}

// Open opens or creates the named page file and returns its handle. The
// allocation cursor is seeded from the current file size, so page numbers
// keep growing across re-opens.
func (d *DiskManager) Open(name string) (FileID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return InvalidFileID, ErrManagerClosed
	}

	path := filepath.Join(d.dir, name)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, FileMode0644)
	if err != nil {
		return InvalidFileID, fmt.Errorf("open page file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return InvalidFileID, fmt.Errorf("stat page file: %w", err)
	}

	id := d.nextID
	d.nextID++
	d.files[id] = &dbFile{
		f:          f,
		name:       name,
		nextPageNo: uint32(info.Size() / int64(d.pageSize)),
	}
	return id, nil
}

// ReadPage reads exactly one page into dst. Reads past the end of the file
// are zero-filled, which lets higher layers treat never-written pages as
// empty instead of failing.
func (d *DiskManager) ReadPage(file FileID, pageNo uint32, dst []byte) error {
	if len(dst) != d.pageSize {
		return ErrWrongBufSize
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	df, ok := d.files[file]
	if !ok {
		return ErrUnknownFile
	}

	off := int64(pageNo) * int64(d.pageSize)
	n, err := df.f.ReadAt(dst, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("read page %d of %s: %w", pageNo, df.name, err)
	}
	for i := n; i < d.pageSize; i++ {
		dst[i] = 0
	}
	return nil
}

// WritePage writes exactly one page from src.
func (d *DiskManager) WritePage(file FileID, pageNo uint32, src []byte) error {
	if len(src) != d.pageSize {
		return ErrWrongBufSize
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	df, ok := d.files[file]
	if !ok {
		return ErrUnknownFile
	}

	off := int64(pageNo) * int64(d.pageSize)
	n, err := df.f.WriteAt(src, off)
	if err != nil {
		return fmt.Errorf("write page %d of %s: %w", pageNo, df.name, err)
	}
	if n != d.pageSize {
		return io.ErrShortWrite
	}
	if pageNo >= df.nextPageNo {
		df.nextPageNo = pageNo + 1
	}
	return nil
}

// AllocatePage hands out the next page number of the file. The page itself
// is not materialized on disk until first written; ReadPage zero-fills it
// until then.
func (d *DiskManager) AllocatePage(file FileID) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	df, ok := d.files[file]
	if !ok {
		return 0, ErrUnknownFile
	}
	pageNo := df.nextPageNo
	df.nextPageNo++
	return pageNo, nil
}

// Size returns the number of allocated pages in the file.
func (d *DiskManager) Size(file FileID) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	df, ok := d.files[file]
	if !ok {
		return 0, ErrUnknownFile
	}
	return df.nextPageNo, nil
}

// Sync forces the file's content to stable storage.
func (d *DiskManager) Sync(file FileID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	df, ok := d.files[file]
	if !ok {
		return ErrUnknownFile
	}
	return df.f.Sync()
}

// PageSize returns the configured page size.
func (d *DiskManager) PageSize() int {
	return d.pageSize
}

// Close closes every open file. The manager is unusable afterwards.
func (d *DiskManager) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	var firstErr error
	for _, df := range d.files {
		if err := df.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	d.files = nil
	return firstErr
}
