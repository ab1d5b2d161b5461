package ports

import "io"

// FileSystem abstracts file system operations.
type FileSystem interface {
	// Create creates or truncates a file for streaming writes.
	Create(path string) (io.WriteCloser, error)

	// Open opens a file for streaming reads. The returned reader
	// also implements io.Seeker when the underlying storage allows it.
	Open(path string) (io.ReadCloser, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error
}
