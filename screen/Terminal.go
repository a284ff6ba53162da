package screen

import (
	"fmt"
	"math"
	"time"

	"Pong2D/config"
	"Pong2D/core"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF    // 球符號
const PaddleSymbol = 0x2588  // 球拍符號
const DividerSymbol = 0x2590 // 中線符號

var terminalRunes = map[rune]core.Key{
	'w': core.KeyW, 'W': core.KeyW,
	's': core.KeyS, 'S': core.KeyS,
	'i': core.KeyI, 'I': core.KeyI,
	'k': core.KeyK, 'K': core.KeyK,
}

// heldKeys turns terminal key presses into held keys. A terminal only
// reports presses (and auto-repeats), so a press counts as held for a
// fixed number of ticks.
type heldKeys struct {
	holdTicks int
	remaining map[core.Key]int
}

func newHeldKeys(holdTicks int) *heldKeys {
	return &heldKeys{holdTicks: holdTicks, remaining: map[core.Key]int{}}
}

func (h *heldKeys) press(key core.Key) {
	h.remaining[key] = h.holdTicks
}

func (h *heldKeys) Held(key core.Key) bool {
	return h.remaining[key] > 0
}

func (h *heldKeys) decay() {
	for k, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, k)
		} else {
			h.remaining[k] = n - 1
		}
	}
}

// terminalSurface maps arena pixels onto the terminal's character grid.
type terminalSurface struct {
	scr   tcell.Screen
	style tcell.Style
}

func (t *terminalSurface) cell(x, y float64) (int, int) {
	w, h := t.scr.Size()
	col := int(math.Floor(x * float64(w) / core.Width))
	row := int(math.Floor(y * float64(h) / core.Height))
	return col, row
}

func (t *terminalSurface) set(col, row int, ch rune) {
	w, h := t.scr.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	t.scr.SetContent(col, row, ch, nil, t.style)
}

func (t *terminalSurface) Clear() {
	t.scr.Clear()
}

func (t *terminalSurface) FillRect(x, y, w, h float64) {
	c0, r0 := t.cell(x, y)
	c1, r1 := t.cell(x+w, y+h)
	for r := r0; r < max(r1, r0+1); r++ {
		for c := c0; c < max(c1, c0+1); c++ {
			t.set(c, r, PaddleSymbol)
		}
	}
}

func (t *terminalSurface) FillCircle(cx, cy, r float64, sectors int) {
	w, h := t.scr.Size()
	cellW := core.Width / float64(w)
	cellH := core.Height / float64(h)

	c0, r0 := t.cell(cx-r, cy-r)
	c1, r1 := t.cell(cx+r, cy+r)
	filled := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			mx := (float64(col) + 0.5) * cellW
			my := (float64(row) + 0.5) * cellH
			if math.Hypot(mx-cx, my-cy) < r {
				t.set(col, row, BallSymbol)
				filled = true
			}
		}
	}
	//球比一格還小時至少畫一格
	if !filled {
		col, row := t.cell(cx, cy)
		t.set(col, row, BallSymbol)
	}
}

func (t *terminalSurface) Line(x1, y1, x2, y2, width float64) {
	c0, r0 := t.cell(x1, y1)
	c1, r1 := t.cell(x2, y2)
	steps := max(abs(c1-c0), abs(r1-r0))
	for i := 0; i <= steps; i++ {
		f := 0.0
		if steps > 0 {
			f = float64(i) / float64(steps)
		}
		c := c0 + int(math.Round(f*float64(c1-c0)))
		r := r0 + int(math.Round(f*float64(r1-r0)))
		t.set(c, r, DividerSymbol)
	}
}

// Text draws s as block letters; runes without a glyph are written as-is.
func (t *terminalSurface) Text(x, y, size float64, s string) {
	col, row := t.cell(x, y)
	t.drawLetters(col, row, s)
}

func (t *terminalSurface) drawLetters(col, row int, word string) {
	for i, letter := range []rune(word) {
		offsetX := col + i*(glyphWidth+1)

		letterCells := getCellsFromChar(letter)
		if letterCells == nil {
			t.set(offsetX, row, letter)
			continue
		}
		for _, cell := range letterCells {
			t.set(offsetX+cell[0], row+cell[1], BallSymbol)
		}
	}
}

func (t *terminalSurface) TextWidth(size float64, s string) float64 {
	w, _ := t.scr.Size()
	return float64(lettersWidth(s)) * core.Width / float64(w)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Terminal runs a game on a tcell screen.
type Terminal struct {
	scr     tcell.Screen
	game    *core.Game
	keys    *heldKeys
	surface *terminalSurface
}

func NewTerminal(scr tcell.Screen, g *core.Game, holdTicks int) *Terminal {
	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	scr.SetStyle(defaultStyle)

	return &Terminal{
		scr:     scr,
		game:    g,
		keys:    newHeldKeys(holdTicks),
		surface: &terminalSurface{scr: scr, style: defaultStyle},
	}
}

// HandleEvent applies one tcell event. It returns false when the player
// asked to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.scr.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			t.keys.press(core.KeyUp)
		case tcell.KeyDown:
			t.keys.press(core.KeyDown)
		case tcell.KeyRune:
			if k, ok := terminalRunes[ev.Rune()]; ok {
				t.keys.press(k)
			}
		}
	}
	return true
}

// Step advances the game one tick and redraws the screen.
func (t *Terminal) Step() core.Side {
	side := t.game.Tick(t.keys)
	t.keys.decay()

	Render(t.surface, t.game)
	t.scr.Show()
	return side
}

func (t *Terminal) initUserInput() chan tcell.Event {
	//初始化channel，去接另一個goroutine丟回來的資料
	inputChan := make(chan tcell.Event, 16)

	//建立一個goroutine去監聽鍵盤的事件，畫面關閉後 PollEvent 回傳 nil
	go func() {
		defer close(inputChan)
		for {
			ev := t.scr.PollEvent()
			if ev == nil {
				return
			}
			inputChan <- ev
		}
	}()

	return inputChan
}

// readInput drains pending events without blocking.
func (t *Terminal) readInput(inputChan chan tcell.Event) bool {
	for {
		select {
		case ev, ok := <-inputChan:
			if !ok {
				return false
			}
			if !t.HandleEvent(ev) {
				return false
			}
		default:
			return true
		}
	}
}

func (t *Terminal) startGameLoop(interval time.Duration) {
	inputChan := t.initUserInput()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if !t.readInput(inputChan) {
			return
		}
		t.Step()
	}
}

// RunTerminal takes over the terminal until Escape or Ctrl-C.
func RunTerminal(g *core.Game, s config.Settings) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer scr.Fini()

	NewTerminal(scr, g, s.HoldTicks).startGameLoop(s.TickInterval())
	return nil
}
