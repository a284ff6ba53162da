package screen

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"Pong2D/config"
	"Pong2D/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
)

var windowKeys = map[core.Key]ebiten.Key{
	core.KeyW:    ebiten.KeyW,
	core.KeyS:    ebiten.KeyS,
	core.KeyI:    ebiten.KeyI,
	core.KeyK:    ebiten.KeyK,
	core.KeyUp:   ebiten.KeyArrowUp,
	core.KeyDown: ebiten.KeyArrowDown,
}

type ebitenKeys struct{}

func (ebitenKeys) Held(key core.Key) bool {
	k, ok := windowKeys[key]
	return ok && ebiten.IsKeyPressed(k)
}

// windowSurface draws onto the ebiten frame handed to Draw.
type windowSurface struct {
	dst   *ebiten.Image
	font  *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
}

func newWindowSurface() (*windowSurface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load score font: %w", err)
	}
	return &windowSurface{font: src, faces: map[float64]*text.GoTextFace{}}, nil
}

func (w *windowSurface) face(size float64) *text.GoTextFace {
	f, ok := w.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: w.font, Size: size}
		w.faces[size] = f
	}
	return f
}

func (w *windowSurface) Clear() {
	w.dst.Fill(color.Black)
}

func (w *windowSurface) FillRect(x, y, width, height float64) {
	vector.FillRect(w.dst, float32(x), float32(y), float32(width), float32(height), color.White, false)
}

// sectorPoints returns the corners of a regular polygon with the given
// number of sectors inscribed in the circle.
func sectorPoints(cx, cy, r float64, sectors int) []core.Vector2 {
	points := make([]core.Vector2, sectors)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(sectors)
		points[i] = core.Vector2{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	return points
}

func (w *windowSurface) FillCircle(cx, cy, r float64, sectors int) {
	var path vector.Path
	for i, p := range sectorPoints(cx, cy, r, sectors) {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()

	op := &vector.DrawPathOptions{}
	op.ColorScale.ScaleWithColor(color.White)
	vector.FillPath(w.dst, &path, nil, op)
}

func (w *windowSurface) Line(x1, y1, x2, y2, width float64) {
	vector.StrokeLine(w.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), color.White, false)
}

func (w *windowSurface) Text(x, y, size float64, s string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(w.dst, s, w.face(size), op)
}

func (w *windowSurface) TextWidth(size float64, s string) float64 {
	return text.Advance(s, w.face(size))
}

// Window runs a game inside an ebiten window.
type Window struct {
	game    *core.Game
	keys    core.KeyState
	surface *windowSurface
}

func NewWindow(g *core.Game) (*Window, error) {
	surface, err := newWindowSurface()
	if err != nil {
		return nil, err
	}
	return &Window{game: g, keys: ebitenKeys{}, surface: surface}, nil
}

func (w *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	w.game.Tick(w.keys)
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.surface.dst = screen
	Render(w.surface, w.game)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.WindowWidth(), core.WindowHeight()
}

// RunWindow blocks until the window is closed or Escape is pressed.
func RunWindow(g *core.Game, s config.Settings) error {
	w, err := NewWindow(g)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(s.Title)
	ebiten.SetWindowSize(core.WindowWidth()*s.Scale, core.WindowHeight()*s.Scale)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
