package summarizer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/user/y4mkit/pkg/mocks"
	"github.com/user/y4mkit/pkg/y4m"
)

func testSummary() *Summary {
	h := y4m.NewHeader(1600, 900, 60)
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Source:      SourceInfo{Path: "out/clip.y4m"},
		Stream: y4m.StreamDescriptor{
			Header:        h,
			FrameCount:    120,
			PlaneSize:     h.PlaneSize(),
			FrameSize:     h.FrameSize(),
			TotalBytes:    int64(120 * h.FrameSize()),
			PayloadOffset: int64(len(h.String())),
		},
	}
}

func TestMarkdownFormatter_Format(t *testing.T) {
	result := NewMarkdownFormatter().Format(testSummary())

	checks := []string{
		"# Stream Summary",
		"`out/clip.y4m`",
		"2024-01-15T10:30:00Z",
		"| Size | 1600x900 |",
		"| Frame rate | 60:1 fps |",
		"| Interlace | progressive |",
		"| Pixel aspect | 1:1 |",
		"| Chroma | 444 |",
		"| Frames | 120 |",
		"| Duration | 2.00 s |",
		"| Plane size | 1.37 MB |",
		"| Frame size | 4.12 MB |",
		"| Payload | 494.38 MB |",
		"| Payload offset | 40 |",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q\n%s", check, result)
		}
	}
	if strings.Contains(result, "(zstd)") {
		t.Error("expected no compression marker for a plain file")
	}
}

func TestMarkdownFormatter_Compressed(t *testing.T) {
	s := testSummary()
	s.Source.Compressed = true

	if result := NewMarkdownFormatter().Format(s); !strings.Contains(result, "(zstd)") {
		t.Error("expected a compression marker")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(s *Summary) string { return "report" }), fs)

	if err := w.Write("reports/clip.md", testSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile("reports/clip.md")
	if !ok || string(data) != "report" {
		t.Errorf("expected report to be written, got %q", data)
	}
	if exists, _ := fs.Exists("reports"); !exists {
		t.Error("expected parent directory to be created")
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	boom := errors.New("read-only")
	fs.WriteFileFunc = func(path string, data []byte) error { return boom }

	err := NewWriter(NewMarkdownFormatter(), fs).Write("clip.md", testSummary())
	if !errors.Is(err, boom) {
		t.Errorf("expected write error, got %v", err)
	}
}
