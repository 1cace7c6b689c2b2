package gui

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/circlefun/internal/config"
	"github.com/san-kum/circlefun/internal/engine"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	hudInterval = 0.5
	hudFontSize = 20
	hudPad      = 8
	title       = "circlefun"
)

var (
	ColBg    = rl.NewColor(0, 0, 0, 255)
	ColHUDBg = rl.NewColor(0, 0, 0, 160)
	ColText  = rl.NewColor(230, 230, 230, 255)
)

type App struct {
	cfg     *config.Config
	eng     *engine.Engine
	clock   *engine.Clock
	log     *log.Logger
	in      controls
	showHUD bool
	hud     string
	hudAge  float64
}

// initWindow opens a window of the configured size, or a fullscreen one
// at monitor resolution when either dimension is zero.
func initWindow(cfg *config.Config) r2.Vec {
	if cfg.Width == 0 || cfg.Height == 0 {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(0, 0, title)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable)
		rl.InitWindow(int32(cfg.Width), int32(cfg.Height), title)
	}
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetMouseCursor(rl.MouseCursorCrosshair)
	return screenDims()
}

func screenDims() r2.Vec {
	return r2.Vec{X: float64(rl.GetScreenWidth()), Y: float64(rl.GetScreenHeight())}
}

func NewApp(cfg *config.Config, dims r2.Vec, logger *log.Logger) (*App, error) {
	opts, err := engine.OptionsFromConfig(cfg, dims)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	return &App{
		cfg:     cfg,
		eng:     engine.New(opts, cfg.Circles, rng, logger),
		clock:   engine.NewClock(cfg.StartTime),
		log:     logger,
		in:      raylibControls{},
		showHUD: cfg.ShowHUD,
		hudAge:  hudInterval,
	}, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, logger *log.Logger) error {
	dims := initWindow(cfg)
	defer rl.CloseWindow()

	app, err := NewApp(cfg, dims, logger)
	if err != nil {
		return err
	}
	logger.Info("window open", "width", dims.X, "height", dims.Y, "circles", cfg.Circles)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		f := a.Update(float64(rl.GetFrameTime()))
		a.Draw(f)
	}
}

// Update reads input and ticks the engine once.
func (a *App) Update(dt float64) engine.Frame {
	if rl.IsWindowResized() {
		a.eng.Reshape(screenDims())
	}
	if rl.IsKeyPressed(rl.KeyF) {
		a.showHUD = !a.showHUD
	}

	in := readInput(a.in, a.cfg.ResizeStep)
	in.Dt = dt
	in.Time = a.clock.Advance(dt)
	f := a.eng.Tick(in)

	a.hudAge += dt
	if a.hudAge >= hudInterval {
		a.hud = fmt.Sprintf("FPS: %d | circles: %d", rl.GetFPS(), f.Count)
		if f.Paused {
			a.hud += " | paused"
		}
		a.hudAge = 0
	}
	return f
}

func (a *App) Draw(f engine.Frame) {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	for _, d := range f.Circles {
		c := d.Center()
		col := rl.NewColor(d.Color.R, d.Color.G, d.Color.B, 255)
		rl.DrawCircleV(rl.NewVector2(float32(c.X), float32(c.Y)), float32(d.Radius), col)
	}

	if a.showHUD && a.hud != "" {
		w := rl.MeasureText(a.hud, hudFontSize)
		rl.DrawRectangle(0, 0, w+2*hudPad, hudFontSize+2*hudPad, ColHUDBg)
		rl.DrawText(a.hud, hudPad, hudPad, hudFontSize, ColText)
	}

	rl.EndDrawing()
}
