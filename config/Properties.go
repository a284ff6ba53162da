package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	RendererWindow   = "window"
	RendererTerminal = "terminal"
	RendererHeadless = "headless"
)

const DefaultEnv = "local"

var ErrUnknownRenderer = errors.New("unknown renderer")

// Settings describe how a match is presented. The rules themselves are fixed
// in core and cannot be configured.
type Settings struct {
	Env       string
	Renderer  string
	Title     string
	Scale     int
	FPS       int
	HoldTicks int
	Ticks     int
	Seed      int64
}

// TickInterval is the wall-clock time between two ticks of the terminal and
// headless loops.
func (s Settings) TickInterval() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("env", "", "properties file under properties/ (default $PONG_ENV or local)")
	fs.String("renderer", RendererWindow, "window, terminal or headless")
	fs.String("title", "Pong", "window title")
	fs.Int("scale", 1, "window size multiplier")
	fs.Int("fps", 60, "terminal and headless tick rate")
	fs.Int("hold-ticks", 8, "ticks a terminal key press counts as held")
	fs.Int("ticks", 0, "stop a headless run after N ticks (0 = forever)")
	fs.Int64("seed", 0, "random seed (0 = time based)")
	return fs
}

// Load resolves settings from defaults, properties/<env>.properties under
// dir, and command line args, in increasing precedence.
func Load(dir string, args []string) (Settings, error) {
	fs := newFlagSet("pong")
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	v := viper.New()
	v.SetDefault("renderer", RendererWindow)
	v.SetDefault("title", "Pong")
	v.SetDefault("scale", 1)
	v.SetDefault("fps", 60)
	v.SetDefault("hold_ticks", 8)
	v.SetDefault("ticks", 0)
	v.SetDefault("seed", 0)

	env, _ := fs.GetString("env")
	if env == "" {
		env = os.Getenv("PONG_ENV")
	}
	if env == "" {
		env = DefaultEnv
	}

	if err := ReadProperties(v, dir, env); err != nil {
		return Settings{}, err
	}

	if err := bindFlags(v, fs, map[string]string{
		"renderer":   "renderer",
		"title":      "title",
		"scale":      "scale",
		"fps":        "fps",
		"hold-ticks": "hold_ticks",
		"ticks":      "ticks",
		"seed":       "seed",
	}); err != nil {
		return Settings{}, err
	}

	s := Settings{
		Env:       env,
		Renderer:  cast.ToString(v.Get("renderer")),
		Title:     cast.ToString(v.Get("title")),
		Scale:     cast.ToInt(v.Get("scale")),
		FPS:       cast.ToInt(v.Get("fps")),
		HoldTicks: cast.ToInt(v.Get("hold_ticks")),
		Ticks:     cast.ToInt(v.Get("ticks")),
		Seed:      cast.ToInt64(v.Get("seed")),
	}
	return s, s.Validate()
}

// ReadProperties merges properties/<env>.properties into v. A missing file
// leaves v untouched.
func ReadProperties(v *viper.Viper, dir, env string) error {
	file := filepath.Join(dir, "properties", env+".properties")
	if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(file)
	v.SetConfigType("properties")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	return nil
}

// 只有使用者有下的參數才會蓋過設定檔
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for flagName, key := range keys {
		if err := v.BindPFlag(key, fs.Lookup(flagName)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flagName, err)
		}
	}
	return nil
}

func (s Settings) Validate() error {
	switch s.Renderer {
	case RendererWindow, RendererTerminal, RendererHeadless:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, s.Renderer)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", s.Scale)
	}
	if s.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", s.FPS)
	}
	if s.HoldTicks <= 0 {
		return fmt.Errorf("hold_ticks must be positive, got %d", s.HoldTicks)
	}
	if s.Ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", s.Ticks)
	}
	return nil
}
