package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/y4mkit/pkg/mocks"
	"github.com/user/y4mkit/pkg/ports"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("frames")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, "", mocks.NewFileSystem(), &mocks.Renderer{})

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	var gotFormat ports.ImageFormat
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			gotFormat = format
			return []byte{0x89, 0x50, 0x4E, 0x47}, nil // PNG header
		},
	}
	sink := New(testBaseDir, "", fs, renderer)

	img := image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio444)
	if err := sink.SaveFrame(7, img); err != nil {
		t.Fatalf("SaveFrame failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "frame-0007.png")
	if _, ok := fs.GetFile(expectedPath); !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
	if gotFormat != ports.FormatPNG {
		t.Errorf("expected PNG format, got %d", gotFormat)
	}
}

func TestSink_CustomPatternSelectsJPEG(t *testing.T) {
	fs := mocks.NewFileSystem()
	var gotFormat ports.ImageFormat = -1
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			gotFormat = format
			return []byte{0xFF, 0xD8, 0xFF}, nil // JPEG header
		},
	}
	sink := New(testBaseDir, "shot_%d.jpg", fs, renderer)

	if err := sink.SaveFrame(3, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("SaveFrame failed: %v", err)
	}

	if _, ok := fs.GetFile(filepath.Join(testBaseDir, "shot_3.jpg")); !ok {
		t.Error("expected shot_3.jpg to be saved")
	}
	if gotFormat != ports.FormatJPEG {
		t.Errorf("expected JPEG format, got %d", gotFormat)
	}
}

func TestSink_EncodeError(t *testing.T) {
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, errors.New("boom")
		},
	}
	sink := New(testBaseDir, "", mocks.NewFileSystem(), renderer)

	if err := sink.SaveFrame(0, image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected encode error to be returned")
	}
}

func TestSink_MultipleFrames(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, "", fs, &mocks.Renderer{})

	for i := 0; i < 10; i++ {
		if err := sink.SaveFrame(i, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
			t.Fatalf("SaveFrame %d failed: %v", i, err)
		}
	}

	if got := len(fs.GetAllFiles()); got != 10 {
		t.Errorf("expected 10 files, got %d", got)
	}
}
