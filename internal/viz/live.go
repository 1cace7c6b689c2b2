package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/san-kum/circlefun/internal/config"
	"github.com/san-kum/circlefun/internal/engine"
	"github.com/san-kum/circlefun/internal/export"
	"github.com/san-kum/circlefun/internal/logging"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	defaultCols     = 80
	defaultRows     = 24
	historyCapacity = 120
	fpsInterval     = 500 * time.Millisecond
	maxFrameDt      = 0.1
	gifScale        = 4
)

type TickMsg time.Time

type Options struct {
	Config  *config.Config
	Theme   string
	Logger  *log.Logger
	GIFPath string
}

// Model runs the engine inside a terminal, one Braille sub-pixel per
// surface unit.
type Model struct {
	cfg    *config.Config
	eng    *engine.Engine
	clock  *engine.Clock
	canvas *Canvas
	log    *log.Logger

	cols, rows int
	mouse      *r2.Vec
	attract    bool
	repel      bool
	pending    []engine.Command

	showHUD bool
	theme   Theme
	frame   engine.Frame
	history []float64

	last    time.Time
	fpsAt   time.Time
	frames  int
	fps     int
	gifPath string
	rec     *export.GIFRecorder
}

func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	cols, rows := defaultCols, defaultRows-1
	eopts, err := engine.OptionsFromConfig(opts.Config, surfaceDims(cols, rows))
	if err != nil {
		return Model{}, err
	}
	gifPath := opts.GIFPath
	if gifPath == "" {
		gifPath = "circlefun.gif"
	}

	rng := rand.New(rand.NewSource(opts.Config.Seed))
	return Model{
		cfg:     opts.Config,
		eng:     engine.New(eopts, opts.Config.Circles, rng, logger),
		clock:   engine.NewClock(opts.Config.StartTime),
		canvas:  NewCanvas(cols, rows),
		log:     logger,
		cols:    cols,
		rows:    rows,
		showHUD: opts.Config.ShowHUD,
		theme:   GetTheme(opts.Theme),
		history: make([]float64, 0, historyCapacity),
		gifPath: gifPath,
	}, nil
}

func surfaceDims(cols, rows int) r2.Vec {
	return r2.Vec{X: float64(cols * 2), Y: float64(rows * 4)}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.step(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.cfg.ResizeStep
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.stopRecording()
		return m, tea.Quit
	case " ":
		m.queue(engine.TogglePause, 0)
	case "enter":
		m.queue(engine.Recenter, 0)
	case "up", "k":
		m.queue(engine.Grow, step)
	case "down", "j":
		m.queue(engine.Shrink, step)
	case "right", "l":
		m.queue(engine.Grow, 1)
	case "left", "h":
		m.queue(engine.Shrink, 1)
	case "c":
		m.queue(engine.CyclePalette, 0)
	case "p":
		m.queue(engine.DumpPositions, 0)
	case "f":
		m.showHUD = !m.showHUD
	case "t":
		m.theme = NextTheme(m.theme)
	case "g":
		if m.rec != nil {
			m.stopRecording()
		} else {
			m.rec = export.NewGIFRecorder(m.eng.Surface().Dims(), gifScale, max(1, 100/m.cfg.FPS))
			m.log.Info("recording", "path", m.gifPath)
		}
	}
	return m, nil
}

func (m *Model) queue(kind engine.CommandKind, n int) {
	m.pending = append(m.pending, engine.Command{Kind: kind, N: n})
}

// handleMouse maps the left button to repel and the right to attract.
// A left press while the right button is held cycles the palette.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := r2.Vec{X: float64(msg.X*2) + 1, Y: float64(msg.Y*4) + 2}
	if msg.Y >= m.rows {
		m.mouse = nil
	} else {
		m.mouse = &pos
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if m.attract {
				m.queue(engine.CyclePalette, 0)
			} else {
				m.repel = true
			}
		case tea.MouseButtonRight:
			m.attract = true
		}
	case tea.MouseActionRelease:
		m.attract, m.repel = false, false
	}
}

func (m *Model) resize(w, h int) {
	cols, rows := max(1, w), max(1, h-1)
	if cols == m.cols && rows == m.rows {
		return
	}
	m.cols, m.rows = cols, rows
	m.canvas = NewCanvas(cols, rows)
	m.eng.Reshape(surfaceDims(cols, rows))
	if m.rec != nil {
		m.stopRecording()
	}
}

// step advances the engine by the wall time since the previous tick.
func (m *Model) step(now time.Time) {
	dt := 1 / float64(m.cfg.FPS)
	if !m.last.IsZero() {
		dt = min(maxFrameDt, now.Sub(m.last).Seconds())
	}
	m.last = now

	m.frame = m.eng.Tick(engine.Input{
		Dt:       dt,
		Time:     m.clock.Advance(dt),
		Mouse:    m.mouse,
		Attract:  m.attract,
		Repel:    m.repel,
		Commands: m.pending,
	})
	m.pending = nil

	m.history = append(m.history, m.frame.MeanStep)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
	if m.rec != nil {
		m.rec.Add(m.frame)
	}

	m.frames++
	if m.fpsAt.IsZero() {
		m.fpsAt = now
	} else if elapsed := now.Sub(m.fpsAt); elapsed >= fpsInterval {
		m.fps = int(float64(m.frames) / elapsed.Seconds())
		m.frames = 0
		m.fpsAt = now
	}
	m.draw()
}

func (m *Model) draw() {
	m.canvas.Clear()
	for _, d := range m.frame.Circles {
		c := d.Center()
		m.canvas.FillCircle(c.X, c.Y, d.Radius, d.Color)
	}
}

func (m *Model) stopRecording() {
	if m.rec == nil {
		return
	}
	if err := m.rec.Save(m.gifPath); err != nil {
		m.log.Error("save recording", "path", m.gifPath, "err", err)
	} else {
		m.log.Info("saved recording", "path", m.gifPath, "frames", m.rec.Len())
	}
	m.rec = nil
}

// View renders the canvas and, when enabled, a one-line HUD beneath it.
func (m Model) View() string {
	if !m.showHUD {
		return m.canvas.Render() + "\n"
	}
	return m.canvas.Render() + "\n" + m.hud()
}

func (m Model) hud() string {
	st := newStyles(m.theme)

	status := StatusRunning.Render("RUNNING")
	if m.frame.Paused {
		status = StatusPaused.Render("PAUSED")
	}
	if m.rec != nil {
		status += " " + StatusRecording.Render("REC")
	}

	parts := []string{
		st.label.Render("FPS: ") + st.value.Render(fmt.Sprint(m.fps)),
		st.label.Render("circles: ") + st.value.Render(fmt.Sprint(m.frame.Count)),
		st.label.Render("palette: ") + st.title.Render(m.frame.Palette),
		status,
		st.spark.Render(SparklineChart(m.history, 20)),
		st.hint.Render("spc pause ↑↓←→ size c palette g gif f hud q quit"),
	}
	line := strings.Join(parts, st.label.Render(" | "))
	return lipgloss.NewStyle().MaxWidth(m.cols).Render(line)
}

// Run starts the terminal host with mouse motion reporting enabled.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
