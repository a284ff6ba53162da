package core

import (
	"strconv"

	"Pong2D/logger"
)

type Side int

const (
	NoSide Side = iota
	Player1
	Player2
)

func (s Side) String() string {
	switch s {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "none"
}

// Scoreboard keeps both players' points and the text shown for them.
type Scoreboard struct {
	scores [2]int
	labels [2]string
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{labels: [2]string{"0", "0"}}
}

func (s *Scoreboard) Score(side Side) int {
	if side == NoSide {
		return 0
	}
	return s.scores[side-1]
}

func (s *Scoreboard) Label(side Side) string {
	if side == NoSide {
		return ""
	}
	return s.labels[side-1]
}

// CheckWinner awards a point when the ball has crossed a goal line and
// respawns the ball. It returns the side that scored, or NoSide.
func (s *Scoreboard) CheckWinner(ball *Ball) Side {
	var scorer Side
	if ball.Position.X < 0 {
		scorer = Player2
	} else if ball.Position.X > Width {
		scorer = Player1
	} else {
		return NoSide
	}

	s.scores[scorer-1] += 1
	s.labels[scorer-1] = strconv.Itoa(s.scores[scorer-1])
	ball.Spawn()

	logger.Log.WithFields(map[string]interface{}{
		"side":   scorer.String(),
		"score1": s.scores[0],
		"score2": s.scores[1],
	}).Info(logger.PlayerScoredMsg)

	return scorer
}
