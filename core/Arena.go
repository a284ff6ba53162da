package core

import "math"

const GoldenRatio = 1.6180339887

// 場地設定
const (
	Height = 375
	Width  = GoldenRatio * Height

	PaddleSpeed  = 5
	PaddleWidth  = 15
	PaddleHeight = 75

	BallSpeed   = 3
	BallRadius  = 8
	BallSectors = 20 // 球的多邊形邊數

	Spacing = 35 // 球拍與左右邊界的距離

	ScoreTextSize = 25
	ScoreMargin   = 10
	ScoreTop      = 5
	DividerWidth  = 2
)

// WindowWidth is the arena width rounded to whole pixels.
func WindowWidth() int {
	return int(math.Round(Width))
}

// WindowHeight is the arena height in whole pixels.
func WindowHeight() int {
	return Height
}
