package imageseq

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/y4mkit/pkg/adapters/logger"
	"github.com/user/y4mkit/pkg/mocks"
	"github.com/user/y4mkit/pkg/ports"
)

func TestSource_DecodesInOrder(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFile("a.png", []byte("first"))
	fs.SetFile("b.jpg", []byte("second"))

	var decoded []string
	var formats []ports.ImageFormat
	r := &mocks.Renderer{
		DecodeImageFunc: func(data []byte, format ports.ImageFormat) (image.Image, error) {
			decoded = append(decoded, string(data))
			formats = append(formats, format)
			return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
		},
	}

	src := New(fs, r, []string{"a.png", "b.jpg"}, 4, 4, logger.NewNoop())
	if src.Len() != 2 {
		t.Fatalf("expected 2 frames, got %d", src.Len())
	}
	for i := 0; i < src.Len(); i++ {
		if _, err := src.Frame(i); err != nil {
			t.Fatalf("Frame(%d) failed: %v", i, err)
		}
	}

	if len(decoded) != 2 || decoded[0] != "first" || decoded[1] != "second" {
		t.Errorf("unexpected decode order %v", decoded)
	}
	if formats[0] != ports.FormatPNG || formats[1] != ports.FormatJPEG {
		t.Errorf("unexpected formats %v", formats)
	}
}

func TestSource_Resizes(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFile("a.png", []byte("x"))

	resized := false
	r := &mocks.Renderer{
		ResizeImageFunc: func(img image.Image, width, height int) image.Image {
			resized = true
			return image.NewRGBA(image.Rect(0, 0, width, height))
		},
	}

	log := mocks.NewLogger()
	img, err := New(fs, r, []string{"a.png"}, 16, 9, log).Frame(0)
	if err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	if !resized {
		t.Error("expected the 100x100 decode to be resized")
	}
	if img.Bounds() != image.Rect(0, 0, 16, 9) {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
	if !log.Contains(ports.LevelDebug, "100x100") {
		t.Error("expected a debug message naming the original size")
	}
}

func TestSource_NativeSize(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFile("a.png", []byte("x"))
	r := &mocks.Renderer{
		ResizeImageFunc: func(img image.Image, width, height int) image.Image {
			t.Error("unexpected resize")
			return img
		},
	}

	img, err := New(fs, r, []string{"a.png"}, 0, 0, logger.NewNoop()).Frame(0)
	if err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("expected native width 100, got %d", img.Bounds().Dx())
	}
}

func TestSource_Errors(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFile("bad.png", []byte("x"))
	bad := errors.New("bad image")
	r := &mocks.Renderer{
		DecodeImageFunc: func(data []byte, format ports.ImageFormat) (image.Image, error) {
			return nil, bad
		},
	}

	src := New(fs, r, []string{"missing.png", "bad.png"}, 0, 0, logger.NewNoop())
	if _, err := src.Frame(0); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := src.Frame(1); !errors.Is(err, bad) {
		t.Errorf("expected decode error, got %v", err)
	}
	if _, err := src.Frame(2); err == nil {
		t.Error("expected error for out-of-range frame")
	}
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"frame-0002.png", "frame-0000.png", "frame-0001.png", "notes.txt"} {
		os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644)
	}

	paths, err := Glob(filepath.Join(dir, "frame-*.png"))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 matches, got %v", paths)
	}
	for i, p := range paths {
		if want := filepath.Join(dir, "frame-000"+string(rune('0'+i))+".png"); p != want {
			t.Errorf("match %d: expected %s, got %s", i, want, p)
		}
	}

	if _, err := Glob("["); err == nil {
		t.Error("expected error for malformed pattern")
	}
}
