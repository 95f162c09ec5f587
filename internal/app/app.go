package app

import (
	"log"
	"time"

	"delta-robot.klederson.com/internal/config"
	"delta-robot.klederson.com/internal/kinematics"
	"delta-robot.klederson.com/internal/render"
	"delta-robot.klederson.com/internal/scene"
	"delta-robot.klederson.com/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	animator *scene.Animator
	clock    *scene.Clock
	history  *SampleRing
	glide    *glide
	reloader *Reloader

	// Last rendered frame
	frame    scene.Scene
	hasFrame bool
}

// AppModel is the root Bubble Tea model for the delta robot.
type AppModel struct {
	width  int
	height int

	source    string
	paused    bool
	showGrid  bool
	showTrail bool
	selected  int
	lastErr   string

	vp     render.Viewport
	shared *shared
}

// New creates a new AppModel animating with p. source names where p came
// from and is shown in the menu bar.
func New(p config.Params, source string) AppModel {
	opts := render.DefaultOptions()
	m := AppModel{
		source:    source,
		showGrid:  opts.Grid,
		showTrail: opts.Trail,
		shared: &shared{
			animator: scene.NewAnimator(p),
			clock:    scene.NewClock(time.Now()),
			history:  NewSampleRing(config.TelemetryLen),
			glide:    newGlide(p.FPS),
		},
	}
	m.checkReach()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.params().FPS)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if !m.paused {
			m.step(time.Time(msg))
		}
		return m, tickCmd(m.params().FPS)

	case ConfigReloadedMsg:
		m.shared.animator = scene.NewAnimator(msg.Params)
		m.shared.glide = newGlide(msg.Params.FPS)
		m.shared.history.Reset()
		m.lastErr = ""
		m.resize()
		m.checkReach()
		return m, nil

	case ConfigErrorMsg:
		if msg.Err != nil {
			m.lastErr = msg.Err.Error()
		}
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "p", "P", " ":
		m.paused = !m.paused
		if m.paused {
			m.shared.clock.Pause(time.Now())
		} else {
			m.shared.clock.Resume(time.Now())
		}

	case "g", "G":
		m.showGrid = !m.showGrid

	case "t", "T":
		m.showTrail = !m.showTrail

	case "r", "R":
		m.shared.animator.Reset()
		m.shared.history.Reset()

	case "tab", "down", "j":
		m.selected = (m.selected + 1) % kinematics.ArmCount
		m.shared.history.Reset()

	case "shift+tab", "up", "k":
		m.selected = (m.selected + kinematics.ArmCount - 1) % kinematics.ArmCount
		m.shared.history.Reset()
	}

	return m, nil
}

// step advances the animation to the tick timestamp.
func (m *AppModel) step(now time.Time) {
	s := m.shared
	p := s.animator.Params()
	if p.ResizeGlide && s.glide.ready {
		s.animator.Resize(s.glide.Step())
	}

	s.frame = s.animator.Step(s.clock.Elapsed(now))
	s.hasFrame = true
	s.history.Push(render.Degrees(s.frame.Arms[m.selected].Solution.Bend))
}

// resize fits the scene panel and tells the animator about the new logical
// size, either at once or through the glide spring.
func (m *AppModel) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	l := m.layout()
	m.vp = render.FitViewport(l.sceneInnerW, l.sceneInnerH, config.DesignWidth, config.DesignHeight)
	w, h := m.vp.Logical()

	if m.params().ResizeGlide {
		m.shared.glide.Target(w, h)
	} else {
		m.shared.animator.Resize(w, h)
	}
	log.Printf("resize: %dx%d cells, logical %.0fx%.0f (scale %.2f)", m.width, m.height, w, h, m.vp.Scale)
}

type layout struct {
	bodyH       int
	sceneW      int
	sideW       int
	sceneInnerW int
	sceneInnerH int
}

func (m AppModel) layout() layout {
	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	sceneW := m.width * 3 / 4
	if sceneW < 30 {
		sceneW = 30
	}
	sideW := m.width - sceneW
	if sideW < 30 {
		sideW = 30
		sceneW = m.width - sideW
	}

	// Border plus one legend row
	innerW := sceneW - 4
	innerH := bodyH - 3
	if innerW < 5 {
		innerW = 5
	}
	if innerH < 3 {
		innerH = 3
	}
	return layout{
		bodyH:       bodyH,
		sceneW:      sceneW,
		sideW:       sideW,
		sceneInnerW: innerW,
		sceneInnerH: innerH,
	}
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing Delta Robot..."
	}

	l := m.layout()
	s := m.shared
	p := s.animator.Params()

	menuBar := ui.RenderMenuBar(m.width, m.source, m.paused)

	content := ""
	if s.hasFrame {
		content = render.Render(s.frame, m.vp, p, render.Options{Grid: m.showGrid, Trail: m.showTrail})
	}
	legend := ui.RenderLegend(l.sceneInnerW, m.showGrid, m.showTrail)
	scenePanel := ui.RenderScenePanel(l.sceneW, l.bodyH, content, legend)

	rows := ui.ArmRows(s.frame, p.L1, p.L2)
	armList := ui.RenderArmList(rows, l.sideW, m.selected)
	detailH := l.bodyH - ui.ArmListHeight()
	side := armList
	if detailH >= 5 && s.hasFrame {
		side = ui.StackPanels(armList, ui.RenderArmDetail(rows[m.selected], s.history.Values(), l.sideW, detailH))
	}

	statusBar := ui.RenderStatusBar(m.width, ui.StatusInfo{
		Time:     s.frame.Time,
		Target:   s.frame.Target,
		TrailLen: len(s.frame.Trail),
		TrailCap: s.frame.TrailCap,
		FPS:      p.FPS,
		Paused:   m.paused,
		Err:      m.lastErr,
	})

	return ui.ComposeLayout(menuBar, scenePanel, side, statusBar)
}

// StartWatcher reloads parameters from path whenever the file changes. Must
// be called before p.Run().
func (m *AppModel) StartWatcher(p *tea.Program, path string) error {
	r := NewReloader(path)
	if err := r.Start(p); err != nil {
		return err
	}
	m.shared.reloader = r
	return nil
}

// StopWatcher stops a watcher started by StartWatcher. Call it after p.Run()
// returns; the reloader may be blocked sending to the program until then.
func (m *AppModel) StopWatcher() {
	if m.shared.reloader != nil {
		m.shared.reloader.Stop()
	}
}

// checkReach logs when the path may leave an arm's reach. The solver clamps
// such targets and the arm list marks them.
func (m AppModel) checkReach() {
	if m.shared.animator.MayClamp() {
		log.Printf("params from %s: path may leave the arms' reach, clamped arms are marked with !", m.source)
	}
}

func (m AppModel) params() config.Params {
	return m.shared.animator.Params()
}

func tickCmd(fps int) tea.Cmd {
	if fps < config.MinFPS {
		fps = config.TargetFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
