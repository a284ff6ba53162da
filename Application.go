package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"Pong2D/config"
	"Pong2D/core"
	"Pong2D/logger"
	"Pong2D/screen"

	"github.com/spf13/pflag"
)

func run(game *core.Game, settings config.Settings) error {
	switch settings.Renderer {
	case config.RendererTerminal:
		return screen.RunTerminal(game, settings)
	case config.RendererHeadless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := screen.RunHeadless(ctx, game, settings)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	default:
		return screen.RunWindow(game, settings)
	}
}

func main() {
	settings, err := config.Load("./", os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, logger.ConfigLoadFailMsg+"\n", err)
		os.Exit(2)
	}

	if err := logger.Log.Init("./"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logger.Log.Close()

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := core.NewGame(rand.New(rand.NewSource(seed)))
	logger.Log.Info(fmt.Sprintf(logger.GameStartMsg, settings.Renderer, seed))

	if err := run(game, settings); err != nil {
		logger.Log.Error(fmt.Sprintf(logger.RunFailMsg, err))
		logger.Log.Close()
		os.Exit(1)
	}

	logger.Log.Info(fmt.Sprintf(logger.GameOverMsg,
		game.Scoreboard.Score(core.Player1), game.Scoreboard.Score(core.Player2)))
}
