// Package zstdfs decorates a filesystem so that paths ending in ".zst"
// are compressed on write and decompressed on read.
package zstdfs

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/user/y4mkit/pkg/ports"
)

// Extension marks compressed files.
const Extension = ".zst"

// FileSystem wraps another ports.FileSystem with transparent zstd streams.
// Decompressed streams are forward-only and do not implement io.Seeker.
type FileSystem struct {
	inner ports.FileSystem
	level zstd.EncoderLevel
}

// New wraps inner. level selects the compression speed/ratio trade-off.
func New(inner ports.FileSystem, level zstd.EncoderLevel) *FileSystem {
	return &FileSystem{inner: inner, level: level}
}

// ParseLevel maps a level name ("fastest", "default", "better", "best")
// to a zstd encoder level.
func ParseLevel(name string) (zstd.EncoderLevel, error) {
	if name == "" {
		return zstd.SpeedDefault, nil
	}
	ok, level := zstd.EncoderLevelFromString(name)
	if !ok {
		return 0, fmt.Errorf("zstdfs: unknown compression level %q", name)
	}
	return level, nil
}

// Compressed reports whether path is handled as a zstd stream.
func Compressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), Extension)
}

// Create creates path; writes are compressed when path ends in ".zst".
func (fs *FileSystem) Create(path string) (io.WriteCloser, error) {
	f, err := fs.inner.Create(path)
	if err != nil || !Compressed(path) {
		return f, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(fs.level), zstd.WithEncoderConcurrency(1))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("zstdfs: new encoder: %w", err)
	}
	return &writer{enc: enc, file: f}, nil
}

// Open opens path; reads are decompressed when path ends in ".zst".
func (fs *FileSystem) Open(path string) (io.ReadCloser, error) {
	f, err := fs.inner.Open(path)
	if err != nil || !Compressed(path) {
		return f, err
	}
	dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("zstdfs: new decoder: %w", err)
	}
	return &reader{dec: dec, file: f}, nil
}

// ReadFile reads a whole file, decompressing ".zst" files.
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	if !Compressed(path) {
		return fs.inner.ReadFile(path)
	}
	r, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// WriteFile writes a whole file, compressing ".zst" files.
func (fs *FileSystem) WriteFile(path string, data []byte) error {
	if !Compressed(path) {
		return fs.inner.WriteFile(path, data)
	}
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(fs.level))
	if err != nil {
		return fmt.Errorf("zstdfs: new encoder: %w", err)
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return fs.inner.WriteFile(path, buf.Bytes())
}

// MkdirAll creates a directory and all parent directories.
func (fs *FileSystem) MkdirAll(path string) error {
	return fs.inner.MkdirAll(path)
}

// Exists checks if a file or directory exists.
func (fs *FileSystem) Exists(path string) (bool, error) {
	return fs.inner.Exists(path)
}

// Remove deletes a file or empty directory.
func (fs *FileSystem) Remove(path string) error {
	return fs.inner.Remove(path)
}

type writer struct {
	enc  *zstd.Encoder
	file io.WriteCloser
}

func (w *writer) Write(p []byte) (int, error) {
	return w.enc.Write(p)
}

// Close flushes the final zstd frame and closes the file.
func (w *writer) Close() error {
	encErr := w.enc.Close()
	fileErr := w.file.Close()
	if encErr != nil {
		return encErr
	}
	return fileErr
}

type reader struct {
	dec  *zstd.Decoder
	file io.Closer
}

func (r *reader) Read(p []byte) (int, error) {
	return r.dec.Read(p)
}

func (r *reader) Close() error {
	r.dec.Close()
	return r.file.Close()
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
