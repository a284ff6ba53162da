package core

type Paddle struct {
	Position Vector2 // 左上角
}

// NewPaddle places a paddle at x, vertically centered.
func NewPaddle(x float64) *Paddle {
	return &Paddle{
		Position: Vector2{X: x, Y: Height/2.0 - PaddleHeight/2.0},
	}
}

func NewLeftPaddle() *Paddle {
	return NewPaddle(Spacing)
}

func NewRightPaddle() *Paddle {
	return NewPaddle(Width - Spacing - PaddleWidth)
}

func (p *Paddle) MoveUp() {
	p.Position.Y = constraintY(p.Position.Y - PaddleSpeed)
}

func (p *Paddle) MoveDown() {
	p.Position.Y = constraintY(p.Position.Y + PaddleSpeed)
}

func (p *Paddle) Rect() Rect {
	return Rect{X: p.Position.X, Y: p.Position.Y, Width: PaddleWidth, Height: PaddleHeight}
}

// 球拍不能超出上下邊界
func constraintY(y float64) float64 {
	return Clamp(y, 0, Height-PaddleHeight)
}
