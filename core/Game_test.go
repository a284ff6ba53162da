package core

import (
	"math/rand"
	"testing"
)

type heldSet map[Key]bool

func (h heldSet) Held(k Key) bool {
	return h[k]
}

func newTestGame() *Game {
	return NewGame(rand.New(rand.NewSource(11)))
}

func TestHoldLeftUp(t *testing.T) {
	const centeredY = 150

	for _, frames := range []int{1, 10, 30, 31, 100} {
		g := newTestGame()
		for i := 0; i < frames; i++ {
			g.Tick(heldSet{KeyW: true})
		}

		moved := centeredY - g.Left.Position.Y
		want := float64(min(frames*PaddleSpeed, centeredY))
		if moved != want {
			t.Errorf("%d frames: moved %v, want %v", frames, moved, want)
		}
		if g.Right.Position.Y != centeredY {
			t.Errorf("%d frames: right paddle moved to %v", frames, g.Right.Position.Y)
		}
	}
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		name      string
		keys      heldSet
		wantLeft  float64
		wantRight float64
	}{
		{"nothing held", heldSet{}, 150, 150},
		{"w", heldSet{KeyW: true}, 145, 150},
		{"s", heldSet{KeyS: true}, 155, 150},
		{"i", heldSet{KeyI: true}, 150, 145},
		{"up", heldSet{KeyUp: true}, 150, 145},
		{"i and up both move", heldSet{KeyI: true, KeyUp: true}, 150, 140},
		{"k", heldSet{KeyK: true}, 150, 155},
		{"down", heldSet{KeyDown: true}, 150, 155},
		{"k and down both move", heldSet{KeyK: true, KeyDown: true}, 150, 160},
		{"i and down cancel", heldSet{KeyI: true, KeyDown: true}, 150, 150},
		{"w and s cancel", heldSet{KeyW: true, KeyS: true}, 150, 150},
		{"both players", heldSet{KeyS: true, KeyUp: true}, 155, 145},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame()
			g.Tick(tt.keys)
			if g.Left.Position.Y != tt.wantLeft {
				t.Errorf("left y = %v, want %v", g.Left.Position.Y, tt.wantLeft)
			}
			if g.Right.Position.Y != tt.wantRight {
				t.Errorf("right y = %v, want %v", g.Right.Position.Y, tt.wantRight)
			}
		})
	}
}

func TestTickAdvancesBall(t *testing.T) {
	g := newTestGame()
	start := g.Ball.Position
	dir := g.Ball.Direction

	g.Tick(nil)

	want := Vector2{X: start.X + dir.X*BallSpeed, Y: start.Y + dir.Y*BallSpeed}
	if g.Ball.Position != want {
		t.Errorf("ball at %+v, want %+v", g.Ball.Position, want)
	}
}

func TestTickScores(t *testing.T) {
	g := newTestGame()
	g.Ball.Position = Vector2{X: Width + 2, Y: 20}
	g.Ball.Direction = Vector2{X: 1, Y: 1}

	if side := g.Tick(nil); side != Player1 {
		t.Fatalf("Tick() = %v, want %v", side, Player1)
	}
	if g.Scoreboard.Score(Player1) != 1 {
		t.Errorf("player1 score = %d, want 1", g.Scoreboard.Score(Player1))
	}
	if g.Ball.Position != g.Ball.Origin {
		t.Errorf("ball at %+v, want origin", g.Ball.Position)
	}
}

func TestUnattendedMatchScores(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 10000; i++ {
		g.Tick(nil)
	}
	if g.Scoreboard.Score(Player1)+g.Scoreboard.Score(Player2) == 0 {
		t.Error("no points scored in 10000 unattended frames")
	}
}

func TestKeyString(t *testing.T) {
	want := []string{"w", "s", "i", "k", "up", "down"}
	for i, k := range AllKeys {
		if k.String() != want[i] {
			t.Errorf("AllKeys[%d].String() = %q, want %q", i, k.String(), want[i])
		}
	}
}
