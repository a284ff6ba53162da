package screen

import "Pong2D/core"

// Surface is anything the arena can be drawn on. Coordinates are arena
// pixels with the origin at the top-left corner.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64, sectors int)
	Line(x1, y1, x2, y2, width float64)
	Text(x, y, size float64, s string)
	TextWidth(size float64, s string) float64
}

// Render draws one frame of g onto s.
func Render(s Surface, g *core.Game) {
	s.Clear()

	//兩個球拍
	for _, p := range g.Paddles() {
		r := p.Rect()
		s.FillRect(r.X, r.Y, r.Width, r.Height)
	}

	//球
	b := g.Ball
	s.FillCircle(b.Position.X, b.Position.Y, b.Radius, core.BallSectors)

	//中線
	s.Line(core.Width/2, 0, core.Width/2, core.Height, core.DividerWidth)

	//分數
	left := g.Scoreboard.Label(core.Player1)
	right := g.Scoreboard.Label(core.Player2)
	s.Text(core.ScoreMargin, core.ScoreTop, core.ScoreTextSize, left)
	s.Text(core.Width-s.TextWidth(core.ScoreTextSize, right)-core.ScoreMargin, core.ScoreTop, core.ScoreTextSize, right)
}
