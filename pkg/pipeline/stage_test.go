package pipeline

import (
	"context"
	"errors"
	"image"
	"testing"
)

func TestStageFunc(t *testing.T) {
	var s Stage[int, int] = StageFunc[int, int](func(ctx context.Context, in int) (int, error) {
		return in * 2, nil
	})

	out, err := s.Execute(context.Background(), 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != 42 {
		t.Errorf("expected 42, got %d", out)
	}
}

func TestStageFunc_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	s := StageFunc[string, string](func(ctx context.Context, in string) (string, error) {
		return "", boom
	})
	if _, err := s.Execute(context.Background(), "x"); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestImages(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewGray(image.Rect(0, 0, 1, 1))
	var src FrameSource = Images{a, b}

	if src.Len() != 2 {
		t.Fatalf("expected 2 frames, got %d", src.Len())
	}
	got, err := src.Frame(1)
	if err != nil || got != image.Image(b) {
		t.Errorf("expected second image, got %v (%v)", got, err)
	}
	if _, err := src.Frame(2); err == nil {
		t.Error("expected error for out-of-range frame")
	}
}
