// Package window hosts a game in a desktop window using ebiten. The
// presentation is deliberately plain: solid rectangles on a light gray
// background and two lines of text.
package window

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hsmto25519/block-game/internal/core"
	"github.com/hsmto25519/block-game/internal/games/dodger"
	"github.com/hsmto25519/block-game/internal/registry"
)

// Window size in pixels.
const (
	Width  = 640
	Height = 480
)

var (
	colorBackground = color.RGBA{199, 199, 199, 255}
	colorBlock      = color.RGBA{0, 0, 0, 255}
	colorPlayer     = color.RGBA{0, 121, 241, 255}
	colorHUD        = color.RGBA{80, 80, 80, 255}
	colorGameOver   = color.RGBA{230, 41, 55, 255}
)

// Options customize the window host.
type Options struct {
	Title      string
	FrameRate  int   // updates per second, 60 when zero
	Seed       int64 // 0 picks a time based seed
	OnGameOver func(game registry.Game)
}

// Window implements ebiten.Game around a dodger game.
type Window struct {
	game       *dodger.Game
	config     core.RuntimeConfig
	onGameOver func(registry.Game)
	reported   bool
	hudFace    text.Face
	alertFace  text.Face
}

// New creates a window host and starts the first session.
func New(game *dodger.Game, opts Options) (*Window, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = Width, Height
	if opts.FrameRate > 0 {
		cfg.FrameRate = opts.FrameRate
	}
	cfg.Seed = opts.Seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	w := &Window{
		game:       game,
		config:     cfg,
		onGameOver: opts.OnGameOver,
		hudFace:    &text.GoTextFace{Source: src, Size: 22},
		alertFace:  &text.GoTextFace{Source: src, Size: 30},
	}
	w.game.Reset(w.config)
	return w, nil
}

// Update reads this frame's key presses and steps the game.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if w.game.State().GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			w.restart()
		}
		return nil
	}

	in := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}

	if res := w.game.Step(in); res.State.GameOver && !w.reported {
		w.reported = true
		if w.onGameOver != nil {
			w.onGameOver(w.game)
		}
	}
	return nil
}

func (w *Window) restart() {
	w.config.Seed = time.Now().UnixNano()
	w.game.Reset(w.config)
	w.reported = false
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := w.game.Snapshot()
	bounds := screen.Bounds()
	blocks, player := scene(snap, bounds.Dx(), bounds.Dy())

	for _, r := range blocks {
		vector.FillRect(screen, r.X, r.Y, r.W, r.H, colorBlock, false)
	}
	vector.FillRect(screen, player.X, player.Y, player.W, player.H, colorPlayer, false)

	hud := fmt.Sprintf("Score: %d | Level: %d", snap.Score, snap.Level+1)
	drawText(screen, hud, w.hudFace, 10, 4, colorHUD)

	if snap.GameOver() {
		msg := fmt.Sprintf("Game Over! Final Score: %d", snap.Score)
		tw, th := text.Measure(msg, w.alertFace, 0)
		x := (float64(bounds.Dx()) - tw) / 2
		y := (float64(bounds.Dy()) - th) / 2
		drawText(screen, msg, w.alertFace, x, y, colorGameOver)
	}
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// Layout fixes the logical screen size.
func (w *Window) Layout(_, _ int) (int, int) {
	return Width, Height
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *dodger.Game, opts Options) error {
	w, err := New(game, opts)
	if err != nil {
		return err
	}

	title := opts.Title
	if title == "" {
		title = game.Title()
	}

	ebiten.SetWindowSize(Width, Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(w.config.FrameRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
