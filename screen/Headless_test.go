package screen

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"Pong2D/config"
	"Pong2D/core"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	g := core.NewGame(rand.New(rand.NewSource(1)))
	start := g.Ball.Position

	s := config.Settings{FPS: 1000, Ticks: 50}
	if err := RunHeadless(context.Background(), g, s); err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}

	if moved := g.Ball.Position.X - start.X; math.Abs(math.Abs(moved)-150) > 1e-9 {
		t.Errorf("ball moved %v px horizontally in 50 ticks, want ±150", moved)
	}
}

func TestRunHeadlessHonoursContext(t *testing.T) {
	g := core.NewGame(rand.New(rand.NewSource(1)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunHeadless(ctx, g, config.Settings{FPS: 60})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RunHeadless() error = %v, want context.Canceled", err)
	}
}
