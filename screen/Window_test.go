package screen

import (
	"math"
	"testing"

	"Pong2D/core"
)

func TestWindowKeysCoverBindings(t *testing.T) {
	for _, k := range core.AllKeys {
		if _, ok := windowKeys[k]; !ok {
			t.Errorf("key %v has no window mapping", k)
		}
	}
}

func TestWindowTextWidth(t *testing.T) {
	w, err := newWindowSurface()
	if err != nil {
		t.Fatalf("newWindowSurface() error = %v", err)
	}

	one := w.TextWidth(core.ScoreTextSize, "1")
	ten := w.TextWidth(core.ScoreTextSize, "10")
	if one <= 0 || ten <= one {
		t.Errorf("TextWidth: \"1\" = %v, \"10\" = %v; want 0 < \"1\" < \"10\"", one, ten)
	}
	if w.face(core.ScoreTextSize) != w.face(core.ScoreTextSize) {
		t.Error("faces are not cached per size")
	}
}

func TestSectorPoints(t *testing.T) {
	points := sectorPoints(100, 50, core.BallRadius, core.BallSectors)
	if len(points) != core.BallSectors {
		t.Fatalf("got %d points, want %d", len(points), core.BallSectors)
	}
	for i, p := range points {
		if d := math.Hypot(p.X-100, p.Y-50); math.Abs(d-core.BallRadius) > 1e-9 {
			t.Errorf("point %d at distance %v, want %v", i, d, core.BallRadius)
		}
	}
	if points[0] != (core.Vector2{X: 108, Y: 50}) {
		t.Errorf("first point = %+v, want (108, 50)", points[0])
	}
}
