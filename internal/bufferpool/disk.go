package bufferpool

import "github.com/tuannm99/novapool/internal/storage"

// DiskAccess is the slice of the disk layer the pool needs: synchronous
// page I/O plus page-number allocation. Satisfied by *storage.DiskManager;
// tests substitute counting fakes.
type DiskAccess interface {
	ReadPage(file storage.FileID, pageNo uint32, dst []byte) error
	WritePage(file storage.FileID, pageNo uint32, src []byte) error
	AllocatePage(file storage.FileID) (uint32, error)
}

var _ DiskAccess = (*storage.DiskManager)(nil)
