// Package fs defines the filesystem abstraction used to read upload sources and TLS material.
// Implementations live in subpackages; fs/billy adapts go-billy filesystems.
package fs

import "io/fs"

// File represents an open file handle supporting basic I/O operations.
// Implementations should behave consistently with the standard library.
type File interface {
	Close() error
	Name() string
	Read(p []byte) (n int, err error)
	ReadAt(p []byte, off int64) (n int, err error)
	Seek(offset int64, whence int) (int64, error)
	Stat() (fs.FileInfo, error)
	Write(p []byte) (n int, err error)
}

// ReadFS is the read-only subset of Filesystem.
type ReadFS interface {
	// Open opens the named file for reading.
	Open(name string) (File, error)

	// Stat returns file info for the named file.
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the whole named file.
	ReadFile(path string) ([]byte, error)
}

// Filesystem is a minimal read/write filesystem.
type Filesystem interface {
	ReadFS

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string, perm fs.FileMode) error

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(filename string, data []byte, perm fs.FileMode) error
}
