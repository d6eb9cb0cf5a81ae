// Package dashboard is the interactive terminal front end. Every edit
// re-evaluates the whole design so the three tabs always agree.
package dashboard

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/tanklab/internal/config"
	"github.com/san-kum/tanklab/internal/tank"
	"github.com/san-kum/tanklab/internal/viz"
)

type tab int

const (
	tabOptimization tab = iota
	tabMass
	tabThermal
)

var tabNames = []string{"Optimization", "Mass & Volume", "Thermal"}

func (t tab) String() string { return tabNames[t] }

// paramOrder is the sidebar order; sides is hidden for cylinders.
var paramOrder = []string{
	"volume", "base_cost", "side_cost", "sides",
	"base_density", "top_density",
	"ambient", "initial", "critical", "horizon", "k",
}

var paramSteps = map[string]float64{
	"volume":       50,
	"base_cost":    1,
	"side_cost":    1,
	"sides":        1,
	"base_density": 100,
	"top_density":  100,
	"ambient":      1,
	"initial":      1,
	"critical":     1,
	"horizon":      1,
	"k":            0.01,
}

type preset struct {
	shape, name string
}

type Model struct {
	cfg    *config.Config
	design *tank.Design
	err    error

	tab     tab
	cursor  int
	editing bool
	editBuf string

	presets   []preset
	presetIdx int

	cam           *viz.Camera
	savePath      string
	status        string
	width, height int
}

// New builds the dashboard around a copy of cfg. savePath, when set, is
// where the w key writes the current parameters.
func New(cfg *config.Config, savePath string) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := Model{
		cfg:       cfg.Clone(),
		cam:       viz.NewCamera(),
		savePath:  savePath,
		presetIdx: -1,
		width:     120,
		height:    40,
	}
	for _, shape := range config.Shapes() {
		for _, name := range config.ListPresets(shape) {
			m.presets = append(m.presets, preset{shape, name})
		}
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Config() *config.Config { return m.cfg.Clone() }
func (m Model) Design() *tank.Design   { return m.design }

func (m *Model) recompute() {
	p, err := m.cfg.Params()
	if err != nil {
		m.design, m.err = nil, err
		return
	}
	m.design, _ = tank.Evaluate(p)
	m.err = nil
}

func (m Model) visibleParams() []string {
	if m.cfg.Geometry.Shape == "prism" {
		return paramOrder
	}
	out := make([]string, 0, len(paramOrder)-1)
	for _, name := range paramOrder {
		if name != "sides" {
			out = append(out, name)
		}
	}
	return out
}

func (m Model) selectedParam() string {
	params := m.visibleParams()
	return params[min(m.cursor, len(params)-1)]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg), nil
	}
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % tab(len(tabNames))
	case "shift+tab":
		m.tab = (m.tab + tab(len(tabNames)) - 1) % tab(len(tabNames))
	case "1", "2", "3":
		m.tab = tab(msg.String()[0] - '1')
	case "j":
		if m.cursor < len(m.visibleParams())-1 {
			m.cursor++
		}
	case "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "h":
		m.adjust(-1)
	case "l":
		m.adjust(1)
	case "enter":
		m.editing = true
		m.editBuf = strconv.FormatFloat(m.cfg.GetParams()[m.selectedParam()], 'g', -1, 64)
	case "s":
		m.toggleShape()
	case "p":
		m.nextPreset()
	case "r":
		m.cfg = config.DefaultConfig()
		m.presetIdx, m.cursor = -1, 0
		m.recompute()
	case "t":
		m.status = "theme: " + viz.NextTheme().Name
	case "w":
		m.save()
	case "left":
		m.cam.RotateY(-0.15)
	case "right":
		m.cam.RotateY(0.15)
	case "up":
		m.cam.RotateX(-0.15)
	case "down":
		m.cam.RotateX(0.15)
	case "+", "=":
		m.cam.ZoomIn()
	case "-":
		m.cam.ZoomOut()
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter":
		v, err := strconv.ParseFloat(m.editBuf, 64)
		if err != nil {
			m.status = fmt.Sprintf("not a number: %q", m.editBuf)
		} else {
			m.set(m.selectedParam(), v)
		}
		m.editing, m.editBuf = false, ""
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if s := msg.String(); len(s) == 1 {
			c := s[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
				m.editBuf += s
			}
		}
	}
	return m
}

func (m *Model) adjust(dir float64) {
	name := m.selectedParam()
	m.set(name, m.cfg.GetParams()[name]+dir*paramSteps[name])
}

func (m *Model) set(name string, v float64) {
	if err := m.cfg.SetParam(name, v); err != nil {
		m.status = err.Error()
		return
	}
	m.cfg.Name = ""
	m.recompute()
}

func (m *Model) toggleShape() {
	if m.cfg.Geometry.Shape == "prism" {
		m.cfg.Geometry.Shape = "cylinder"
	} else {
		m.cfg.Geometry.Shape = "prism"
		if m.cfg.Geometry.Sides < 3 {
			m.cfg.Geometry.Sides = config.DefaultSides
		}
	}
	m.cfg.Name = ""
	m.cursor = min(m.cursor, len(m.visibleParams())-1)
	m.recompute()
}

func (m *Model) nextPreset() {
	if len(m.presets) == 0 {
		return
	}
	m.presetIdx = (m.presetIdx + 1) % len(m.presets)
	p := m.presets[m.presetIdx]
	m.cfg = config.GetPreset(p.shape, p.name)
	m.cursor = min(m.cursor, len(m.visibleParams())-1)
	m.status = "preset: " + p.shape + "/" + p.name
	m.recompute()
}

func (m *Model) save() {
	if m.savePath == "" {
		m.status = "no config path; start with --config to enable saving"
		return
	}
	if err := config.Save(m.savePath, m.cfg); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "saved " + m.savePath
}

// Run blocks until the user quits.
func Run(cfg *config.Config, savePath string) error {
	_, err := tea.NewProgram(New(cfg, savePath), tea.WithAltScreen()).Run()
	return err
}
