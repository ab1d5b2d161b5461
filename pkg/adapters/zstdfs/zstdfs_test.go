package zstdfs

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/user/y4mkit/pkg/mocks"
)

func TestFileSystem_CreateOpenRoundTrip(t *testing.T) {
	inner := mocks.NewFileSystem()
	fs := New(inner, zstd.SpeedFastest)

	payload := bytes.Repeat([]byte("YUV4MPEG2 W2 H2 F1:1 Ip A1:1 C444\nFRAME\n"), 64)

	w, err := fs.Create("clip.y4m.zst")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	stored, ok := inner.GetFile("clip.y4m.zst")
	if !ok {
		t.Fatal("expected compressed file to be stored")
	}
	if len(stored) >= len(payload) {
		t.Errorf("expected compression, stored %d bytes for %d", len(stored), len(payload))
	}

	r, err := fs.Open("clip.y4m.zst")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()
	if _, ok := r.(io.Seeker); ok {
		t.Error("expected decompressed stream to be forward-only")
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("decompressed payload does not match")
	}
}

func TestFileSystem_PlainPathsPassThrough(t *testing.T) {
	inner := mocks.NewFileSystem()
	fs := New(inner, zstd.SpeedDefault)

	if err := fs.WriteFile("plain.y4m", []byte("abc")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	stored, _ := inner.GetFile("plain.y4m")
	if string(stored) != "abc" {
		t.Errorf("expected plain contents, got %q", stored)
	}

	r, err := fs.Open("plain.y4m")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, ok := r.(io.Seeker); !ok {
		t.Error("expected plain file to stay seekable")
	}
}

func TestFileSystem_WriteFileReadFile(t *testing.T) {
	fs := New(mocks.NewFileSystem(), zstd.SpeedBetterCompression)

	if err := fs.WriteFile("a.zst", []byte("hello")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := fs.ReadFile("a.zst")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("expected %q, got %q", "hello", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    zstd.EncoderLevel
		wantErr bool
	}{
		{"", zstd.SpeedDefault, false},
		{"fastest", zstd.SpeedFastest, false},
		{"default", zstd.SpeedDefault, false},
		{"better", zstd.SpeedBetterCompression, false},
		{"best", zstd.SpeedBestCompression, false},
		{"ultra", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestCompressed(t *testing.T) {
	if !Compressed("x.y4m.ZST") {
		t.Error("expected upper-case extension to be recognised")
	}
	if Compressed("x.y4m") {
		t.Error("expected plain path not to be compressed")
	}
}
