package screen

import (
	"fmt"
	"math/rand"
	"testing"

	"Pong2D/core"
)

// recordSurface logs every draw call as a string.
type recordSurface struct {
	calls []string
}

func (r *recordSurface) Clear() {
	r.calls = append(r.calls, "clear")
}

func (r *recordSurface) FillRect(x, y, w, h float64) {
	r.calls = append(r.calls, fmt.Sprintf("rect %.2f %.2f %.2f %.2f", x, y, w, h))
}

func (r *recordSurface) FillCircle(cx, cy, radius float64, sectors int) {
	r.calls = append(r.calls, fmt.Sprintf("circle %.2f %.2f %.2f %d", cx, cy, radius, sectors))
}

func (r *recordSurface) Line(x1, y1, x2, y2, width float64) {
	r.calls = append(r.calls, fmt.Sprintf("line %.2f %.2f %.2f %.2f %.2f", x1, y1, x2, y2, width))
}

func (r *recordSurface) Text(x, y, size float64, s string) {
	r.calls = append(r.calls, fmt.Sprintf("text %.2f %.2f %.0f %s", x, y, size, s))
}

func (r *recordSurface) TextWidth(size float64, s string) float64 {
	return float64(len(s)) * 10
}

func TestRender(t *testing.T) {
	g := core.NewGame(rand.New(rand.NewSource(1)))
	g.Ball.Position.X = -1
	g.Scoreboard.CheckWinner(g.Ball)
	g.Ball.Position = core.Vector2{X: 100, Y: 120}

	s := &recordSurface{}
	Render(s, g)

	want := []string{
		"clear",
		"rect 35.00 150.00 15.00 75.00",
		fmt.Sprintf("rect %.2f 150.00 15.00 75.00", core.Width-50),
		"circle 100.00 120.00 8.00 20",
		fmt.Sprintf("line %.2f 0.00 %.2f 375.00 2.00", core.Width/2, core.Width/2),
		"text 10.00 5.00 25 0",
		fmt.Sprintf("text %.2f 5.00 25 1", core.Width-20),
	}
	if len(s.calls) != len(want) {
		t.Fatalf("got %d calls %q, want %d", len(s.calls), s.calls, len(want))
	}
	for i := range want {
		if s.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, s.calls[i], want[i])
		}
	}
}
