package core

import "math/rand"

type Key int

const (
	KeyW Key = iota
	KeyS
	KeyI
	KeyK
	KeyUp
	KeyDown
)

// AllKeys lists every key the game listens to.
var AllKeys = []Key{KeyW, KeyS, KeyI, KeyK, KeyUp, KeyDown}

func (k Key) String() string {
	switch k {
	case KeyW:
		return "w"
	case KeyS:
		return "s"
	case KeyI:
		return "i"
	case KeyK:
		return "k"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	}
	return "unknown"
}

// KeyState reports whether a key is currently held down.
type KeyState interface {
	Held(key Key) bool
}

type binding struct {
	paddle *Paddle
	keys   []Key
	move   func(*Paddle)
}

// Game is the whole mutable state of one match. The loop that owns it
// calls Tick once per frame and renders afterwards.
type Game struct {
	Left       *Paddle
	Right      *Paddle
	Ball       *Ball
	Scoreboard *Scoreboard

	paddles  []*Paddle
	bindings []binding
}

func NewGame(rng *rand.Rand) *Game {
	g := &Game{
		Left:       NewLeftPaddle(),
		Right:      NewRightPaddle(),
		Ball:       NewBall(rng),
		Scoreboard: NewScoreboard(),
	}
	g.paddles = []*Paddle{g.Left, g.Right}

	up := (*Paddle).MoveUp
	down := (*Paddle).MoveDown
	g.bindings = []binding{
		{g.Left, []Key{KeyW}, up},
		{g.Left, []Key{KeyS}, down},
		{g.Right, []Key{KeyI, KeyUp}, up},
		{g.Right, []Key{KeyK, KeyDown}, down},
	}

	g.Ball.Spawn()
	return g
}

func (g *Game) Paddles() []*Paddle {
	return g.paddles
}

// Tick runs one frame: paddle input, ball movement, then the goal check.
// It returns the side that scored this frame, if any.
func (g *Game) Tick(keys KeyState) Side {
	g.handleInput(keys)
	g.Ball.Advance(g.paddles)
	return g.Scoreboard.CheckWinner(g.Ball)
}

func (g *Game) handleInput(keys KeyState) {
	if keys == nil {
		return
	}
	// 每個按住的鍵都會移動一次，i 跟 up 同時按住就移動兩次
	for _, b := range g.bindings {
		for _, k := range b.keys {
			if keys.Held(k) {
				b.move(b.paddle)
			}
		}
	}
}
