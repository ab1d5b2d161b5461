package y4m

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/user/y4mkit/pkg/mocks"
	"github.com/user/y4mkit/pkg/ports"
)

func solidPixels(n int, p uint32) []uint32 {
	pixels := make([]uint32, n)
	for i := range pixels {
		pixels[i] = p
	}
	return pixels
}

func TestWriter_WritesHeaderAndFrames(t *testing.T) {
	out := &nopWriteCloser{}
	w, err := NewWriter(out, Options{Width: 2, Height: 2, FPS: 60}, NewPlanes(2, 2), nil)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if w.State() != StateOpen {
		t.Fatalf("expected open state, got %s", w.State())
	}

	if err := w.WriteFrame(solidPixels(4, 0x00FF00), OrderRGB); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	if err := w.WriteFrame(solidPixels(4, 0x000000), OrderBGR); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var want bytes.Buffer
	want.WriteString("YUV4MPEG2 W2 H2 F60:1 Ip A1:1 C444\n")
	want.WriteString("FRAME\n")
	want.Write([]byte{149, 149, 149, 149, 43, 43, 43, 43, 21, 21, 21, 21})
	want.WriteString("FRAME\n")
	want.Write([]byte{0, 0, 0, 0, 128, 128, 128, 128, 128, 128, 128, 128})

	if !bytes.Equal(out.Bytes(), want.Bytes()) {
		t.Errorf("unexpected stream:\n got %q\nwant %q", out.Bytes(), want.Bytes())
	}
	if w.FramesWritten() != 2 {
		t.Errorf("expected 2 frames written, got %d", w.FramesWritten())
	}
}

func TestWriter_FillsCallerPlanes(t *testing.T) {
	planes := NewPlanes(1, 2)
	w, err := NewWriter(&nopWriteCloser{}, Options{Width: 1, Height: 2, FPS: 1}, planes, nil)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	if err := w.WriteFrame([]uint32{0xFF0000, 0x0000FF}, OrderRGB); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}

	if planes.Y[0] != 76 || planes.Y[1] != 29 {
		t.Errorf("unexpected Y plane %v", planes.Y)
	}
	if planes.U[0] != 84 || planes.U[1] != 255 {
		t.Errorf("unexpected U plane %v", planes.U)
	}
	if planes.V[0] != 255 || planes.V[1] != 107 {
		t.Errorf("unexpected V plane %v", planes.V)
	}
}

func TestNewWriter_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		planes Planes
	}{
		{"zero width", Options{Width: 0, Height: 2, FPS: 30}, NewPlanes(2, 2)},
		{"negative height", Options{Width: 2, Height: -1, FPS: 30}, NewPlanes(2, 2)},
		{"zero fps", Options{Width: 2, Height: 2, FPS: 0}, NewPlanes(2, 2)},
		{"frame size overflow", Options{Width: math.MaxInt / 2, Height: 2, FPS: 30}, NewPlanes(2, 2)},
		{"nil plane", Options{Width: 2, Height: 2, FPS: 30}, Planes{Y: make([]byte, 4), U: make([]byte, 4)}},
		{"small plane", Options{Width: 2, Height: 2, FPS: 30}, NewPlanes(1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &nopWriteCloser{}
			w, err := NewWriter(out, tt.opts, tt.planes, nil)
			if !errors.Is(err, ErrInvalidOptions) {
				t.Fatalf("expected ErrInvalidOptions, got %v", err)
			}
			if w != nil {
				t.Error("expected no writer on failure")
			}
			if out.Len() != 0 {
				t.Error("expected nothing written on failure")
			}
		})
	}
}

func TestNewWriter_HeaderWriteFailure(t *testing.T) {
	out := &limitedWriter{limit: 4, err: errDisk}
	_, err := NewWriter(out, Options{Width: 2, Height: 2, FPS: 30}, NewPlanes(2, 2), nil)
	if !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}

func TestCreate(t *testing.T) {
	fs := mocks.NewFileSystem()
	w, err := Create(fs, "out.y4m", Options{Width: 1, Height: 1, FPS: 30}, NewPlanes(1, 1), nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := w.WriteFrame([]uint32{0x00FF00}, OrderRGB); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, ok := fs.GetFile("out.y4m")
	if !ok {
		t.Fatal("expected out.y4m to be written")
	}
	want := "YUV4MPEG2 W1 H1 F30:1 Ip A1:1 C444\nFRAME\n\x95\x2b\x15"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, data)
	}
}

func TestCreate_IOError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.CreateFunc = func(path string) (io.WriteCloser, error) {
		return nil, errDisk
	}

	_, err := Create(fs, "out.y4m", Options{Width: 1, Height: 1, FPS: 30}, NewPlanes(1, 1), nil)
	if !errors.Is(err, ErrIO) || !errors.Is(err, errDisk) {
		t.Errorf("expected ErrIO wrapping the create error, got %v", err)
	}
}

func TestCreate_InvalidOptionsCreatesNothing(t *testing.T) {
	fs := mocks.NewFileSystem()
	_, err := Create(fs, "out.y4m", Options{Width: 1, Height: 1, FPS: 0}, NewPlanes(1, 1), nil)
	if !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions, got %v", err)
	}
	if _, ok := fs.GetFile("out.y4m"); ok {
		t.Error("expected no file to be created")
	}
}

func TestWriter_WriteFrameErrors(t *testing.T) {
	newWriter := func(t *testing.T) *Writer {
		w, err := NewWriter(&nopWriteCloser{}, Options{Width: 2, Height: 1, FPS: 30}, NewPlanes(2, 1), nil)
		if err != nil {
			t.Fatalf("NewWriter failed: %v", err)
		}
		return w
	}

	t.Run("unopened", func(t *testing.T) {
		var w Writer
		if err := w.WriteFrame([]uint32{0, 0}, OrderRGB); !errors.Is(err, ErrNotOpen) {
			t.Errorf("expected ErrNotOpen, got %v", err)
		}
	})

	t.Run("closed", func(t *testing.T) {
		w := newWriter(t)
		w.Close()
		if err := w.WriteFrame([]uint32{0, 0}, OrderRGB); !errors.Is(err, ErrNotOpen) {
			t.Errorf("expected ErrNotOpen, got %v", err)
		}
	})

	t.Run("nil pixels", func(t *testing.T) {
		if err := newWriter(t).WriteFrame(nil, OrderRGB); !errors.Is(err, ErrNullPixelBuffer) {
			t.Errorf("expected ErrNullPixelBuffer, got %v", err)
		}
	})

	t.Run("short pixels", func(t *testing.T) {
		if err := newWriter(t).WriteFrame([]uint32{0}, OrderRGB); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("expected ErrInvalidOptions, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		if err := newWriter(t).WriteFrame([]uint32{0, 0}, ChannelOrder(9)); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("expected ErrInvalidOptions, got %v", err)
		}
	})
}

func TestWriter_ShortWriteLeavesSessionOpen(t *testing.T) {
	header := len(NewHeader(2, 2, 30).String())
	out := &limitedWriter{limit: header + 10}
	w, err := NewWriter(out, Options{Width: 2, Height: 2, FPS: 30}, NewPlanes(2, 2), nil)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	err = w.WriteFrame(solidPixels(4, 0x123456), OrderRGB)
	if !errors.Is(err, ErrShortWrite) {
		t.Fatalf("expected ErrShortWrite, got %v", err)
	}
	if w.State() != StateOpen {
		t.Errorf("expected writer to stay open, got %s", w.State())
	}
	if w.FramesWritten() != 0 {
		t.Errorf("expected no frames counted, got %d", w.FramesWritten())
	}
	if err := w.Close(); err != nil {
		t.Errorf("expected Close to succeed, got %v", err)
	}
}

func TestWriter_CloseTwice(t *testing.T) {
	out := &nopWriteCloser{}
	log := mocks.NewLogger()
	w, err := NewWriter(out, Options{Width: 1, Height: 1, FPS: 30}, NewPlanes(1, 1), log)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}

	if out.closes != 1 {
		t.Errorf("expected underlying stream closed once, got %d", out.closes)
	}
	if w.State() != StateClosed {
		t.Errorf("expected closed state, got %s", w.State())
	}
	if !log.Contains(ports.LevelWarn, ErrAlreadyClosed.Error()) {
		t.Error("expected an already-closed warning on the second Close")
	}
	if len(log.Entries(ports.LevelError)) != 0 {
		t.Error("expected no error-level messages")
	}
}

func TestWriter_CloseFailureStillCloses(t *testing.T) {
	out := &nopWriteCloser{closeErr: errDisk}
	w, err := NewWriter(out, Options{Width: 1, Height: 1, FPS: 30}, NewPlanes(1, 1), nil)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	if err := w.Close(); !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
	if w.State() != StateClosed {
		t.Errorf("expected closed state after failed close, got %s", w.State())
	}
	if err := w.Close(); err != nil {
		t.Errorf("expected second Close to be a no-op, got %v", err)
	}
	if out.closes != 1 {
		t.Errorf("expected one close attempt, got %d", out.closes)
	}
}

func TestWriter_CloseUnopened(t *testing.T) {
	var w Writer
	if err := w.Close(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("expected ErrNotOpen, got %v", err)
	}
}
