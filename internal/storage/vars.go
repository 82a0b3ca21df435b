package storage

import "errors"

const (
	OneKB = 1 << 10 // 1,024
	OneMB = 1 << 20 // 1,048,576

	// DefaultPageSize is the size of every page managed by a DiskManager
	// unless a different size is configured.
	DefaultPageSize = 1 << 13 // 8,192 (8 KiB)
)

const (
	FileMode0644 = 0o644
	FileMode0755 = 0o755
)

var (
	ErrUnknownFile   = errors.New("storage: unknown file handle")
	ErrWrongBufSize  = errors.New("storage: buffer size != page size")
	ErrManagerClosed = errors.New("storage: disk manager is closed")
)
