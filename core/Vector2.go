package core

// Vector2 is a position or a direction on the arena.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Negate() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// NegateX flips only the horizontal component.
func (v Vector2) NegateX() Vector2 {
	return Vector2{X: -v.X, Y: v.Y}
}

// NegateY flips only the vertical component.
func (v Vector2) NegateY() Vector2 {
	return Vector2{X: v.X, Y: -v.Y}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}
