package core

import (
	"math"
	"math/rand"
)

type Ball struct {
	Position  Vector2
	Radius    float64
	Origin    Vector2 // 發球點
	Direction Vector2 // 每個軸都是 -1 或 +1

	rng *rand.Rand
}

// NewBall creates a ball at the arena center. It does not pick a direction;
// call Spawn before the first Advance.
func NewBall(rng *rand.Rand) *Ball {
	origin := Vector2{X: Width / 2, Y: Height / 2.0} // 不取整，187.5
	return &Ball{
		Position: origin,
		Radius:   BallRadius,
		Origin:   origin,
		rng:      rng,
	}
}

// Spawn resets the ball to its origin with one of the four diagonal directions.
func (b *Ball) Spawn() {
	b.Direction = Vector2{X: b.sign(), Y: b.sign()}
	b.Position = b.Origin
}

func (b *Ball) sign() float64 {
	if b.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func (b *Ball) BounceX() {
	b.Direction = b.Direction.NegateX()
}

func (b *Ball) BounceY() {
	b.Direction = b.Direction.NegateY()
}

// Advance moves the ball one frame. Top and bottom walls reflect the ball
// without moving it that frame; the left and right edges are goal lines and
// are left to the scoreboard. A paddle overlap flips the horizontal direction
// on every frame the overlap lasts.
func (b *Ball) Advance(paddles []*Paddle) {
	step := b.Direction.Scale(BallSpeed)
	b.Position.X += step.X

	nextY := b.Position.Y + step.Y
	clampedY := Clamp(nextY, b.Radius, Height-b.Radius)
	if nextY == clampedY {
		b.Position.Y = nextY
	} else {
		//撞到上下牆壁
		b.BounceY()
	}

	//檢查是否有碰到球拍
	for _, paddle := range paddles {
		if CircleIntersectsRect(b.Position, b.Radius, paddle.Rect()) {
			b.BounceX()
		}
	}
}

// CircleIntersectsRect reports whether the circle overlaps the rectangle.
// Touching exactly at the radius is not an overlap.
func CircleIntersectsRect(center Vector2, radius float64, r Rect) bool {
	closestX := Clamp(center.X, r.X, r.Right())
	closestY := Clamp(center.Y, r.Y, r.Bottom())

	dx := center.X - closestX
	dy := center.Y - closestY

	return math.Sqrt(dx*dx+dy*dy) < radius
}
