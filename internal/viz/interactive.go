package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/circlefun/internal/config"
	"github.com/san-kum/circlefun/internal/palette"
)

var presetInfo = map[string]string{
	"default": "fifty circles, heat",
	"swarm":   "hundreds of small dots",
	"calm":    "slow drift, eased pause",
	"single":  "one circle",
	"frantic": "short periods, fast",
	"dusk":    "gabby palette, eased pause",
}

const (
	stateMenu = iota
	statePalette
	stateSim
)

// menu picks a preset and a palette, then hands over to the live Model.
type menu struct {
	state   int
	cursor  int
	preset  string
	presets []string
	tables  []palette.Table
	cfg     *config.Config
	opts    Options
	err     error
	live    Model
}

func newMenu(opts Options) menu {
	return menu{
		state:   stateMenu,
		presets: config.ListPresets(),
		opts:    opts,
	}
}

func (m menu) Init() tea.Cmd { return nil }

func (m menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateSim {
		live, cmd := m.live.Update(msg)
		m.live = live.(Model)
		return m, cmd
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(key)
	case statePalette:
		return m.paletteKey(key)
	}
	return m, nil
}

func (m menu) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		cfg, err := m.presetConfig(m.presets[m.cursor])
		if err != nil {
			m.err = err
			return m, nil
		}
		tables, err := cfg.Tables()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.cfg, m.tables, m.err = cfg, tables, nil
		m.preset = m.presets[m.cursor]
		m.cursor, _ = cfg.PaletteIndex()
		m.state = statePalette
	}
	return m, nil
}

// presetConfig applies the preset on top of the caller's config so custom
// palettes and window settings survive.
func (m menu) presetConfig(name string) (*config.Config, error) {
	apply, ok := config.Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownPreset, name)
	}
	cfg := m.opts.Config.Clone()
	apply(cfg)
	return cfg, nil
}

func (m menu) paletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state, m.cursor = stateMenu, 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tables)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.cfg.Palette = m.tables[m.cursor].Name
		opts := m.opts
		opts.Config = m.cfg
		live, err := NewModel(opts)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.live, m.state = live, stateSim
		return m, tea.Batch(m.live.Init(), tea.WindowSize())
	}
	return m, nil
}

func (m menu) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case statePalette:
		return m.viewPalette()
	case stateSim:
		return m.live.View()
	}
	return ""
}

func (m menu) header(title, sub string) string {
	theme := GetTheme(m.opts.Theme)
	st := newStyles(theme)
	return "\n\n    " + GradientText(title, theme.Primary, theme.Accent) +
		"\n    " + st.label.Render(sub) +
		"\n    " + st.label.Render("─────────────────────────") + "\n\n"
}

func (m menu) viewMenu() string {
	st := newStyles(GetTheme(m.opts.Theme))
	var b strings.Builder
	b.WriteString(m.header("CIRCLEFUN", "pick a preset"))
	for i, name := range m.presets {
		desc := presetInfo[name]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", st.key.Render("▸"), st.value.Render(fmt.Sprintf("%-10s", name)), st.title.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", st.label.Render(fmt.Sprintf("%-10s", name)), st.hint.Render(desc)))
		}
	}
	b.WriteString(m.footer(st, "j/k", "navigate", "enter", "select", "q", "quit"))
	return b.String()
}

func (m menu) viewPalette() string {
	st := newStyles(GetTheme(m.opts.Theme))
	var b strings.Builder
	b.WriteString(m.header(strings.ToUpper(m.preset), "pick a palette"))
	for i, t := range m.tables {
		sw := Swatch(palette.Build(t.Anchors, 28), 28)
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", st.key.Render("▸"), st.value.Render(fmt.Sprintf("%-10s", t.Name)), sw))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", st.label.Render(fmt.Sprintf("%-10s", t.Name)), sw))
		}
	}
	b.WriteString(m.footer(st, "j/k", "navigate", "enter", "start", "esc", "back"))
	return b.String()
}

func (m menu) footer(st styles, pairs ...string) string {
	var b strings.Builder
	b.WriteString("\n    ")
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(st.key.Render(pairs[i]) + st.hint.Render(" "+pairs[i+1]+"  "))
	}
	if m.err != nil {
		b.WriteString("\n    " + StatusRecording.UnsetBlink().Render(m.err.Error()))
	}
	b.WriteString("\n")
	return b.String()
}

// RunMenu starts the terminal host behind the preset and palette picker.
func RunMenu(opts Options) error {
	_, err := tea.NewProgram(newMenu(opts), tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
