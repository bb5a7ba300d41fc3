package app

import (
	"log/slog"
	"time"

	"dish-wheel.klederson.com/internal/carousel"
	"dish-wheel.klederson.com/internal/config"
	"dish-wheel.klederson.com/internal/ui"
	"dish-wheel.klederson.com/internal/wheel"
	tea "github.com/charmbracelet/bubbletea"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	ctl    *carousel.Controller
	sub    *carousel.Subscription
	logger *slog.Logger

	// Pointer angle on the wheel at the last drag event.
	dragAngle float64

	// A TickMsg is pending. Ticks only run while something moves.
	ticking bool
}

// AppModel is the root Bubble Tea model for the dish wheel.
type AppModel struct {
	width  int
	height int

	shared *shared
}

// New creates a new AppModel around a controller.
func New(ctl *carousel.Controller, logger *slog.Logger) AppModel {
	s := &shared{ctl: ctl, logger: logger}
	s.sub = ctl.Subscribe(func(ev carousel.Event) {
		switch ev.Kind {
		case carousel.EventActiveChanged:
			logger.Info("active dish", "index", ev.Index, "name", ev.Item.Name,
				"color", ev.Item.Color, "source", ev.Source)
		case carousel.EventEnterPlay, carousel.EventEnterStop:
			logger.Debug("plate animation", "event", ev.Kind, "index", ev.Index)
		}
	})
	return AppModel{shared: s}
}

func (m AppModel) Init() tea.Cmd {
	return m.kick()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.shared.ctl.Attach()
		return m, m.kick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickMsg:
		m.shared.ticking = false
		if !m.shared.ctl.Tick() {
			return m, nil
		}
		m.shared.ticking = true
		return m, tickCmd()
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c", "esc":
		m.Close()
		return m, tea.Quit

	case "left", "h", ",", "<":
		m.shared.ctl.Prev()

	case "right", "l", ".", ">":
		m.shared.ctl.Next()
	}

	return m, m.kick()
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.width == 0 || m.height == 0 {
		return m, nil
	}
	r := computeRegions(m.width, m.height)
	ctl := m.shared.ctl

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if !r.narrow {
				ctl.Wheel(-1)
			}
		case tea.MouseButtonWheelDown:
			if !r.narrow {
				ctl.Wheel(1)
			}
		case tea.MouseButtonLeft:
			if dir := r.spoon(msg.X, msg.Y); dir != 0 {
				if dir < 0 {
					ctl.Prev()
				} else {
					ctl.Next()
				}
				return m, m.kick()
			}
			if r.inWheel(msg.X, msg.Y) {
				col, row := r.wheelCell(msg.X, msg.Y)
				m.shared.dragAngle = r.wheel.Angle(col, row)
				ctl.DragStart()
			}
		}

	case tea.MouseActionMotion:
		if !ctl.Dragging() || r.narrow {
			return m, nil
		}
		col, row := r.wheelCell(msg.X, msg.Y)
		if col == r.wheel.CX && row == r.wheel.CY {
			return m, nil
		}
		angle := r.wheel.Angle(col, row)
		ctl.DragMove(carousel.ShortestDelta(m.shared.dragAngle, angle))
		m.shared.dragAngle = angle

	case tea.MouseActionRelease:
		if ctl.Dragging() {
			ctl.DragEnd()
		}
	}

	return m, m.kick()
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Setting the table..."
	}

	ctl := m.shared.ctl
	item, ok := ctl.Active()
	if !ok {
		return "Nothing on the menu. Press q to quit."
	}
	r := computeRegions(m.width, m.height)

	menuBar := ui.RenderMenuBar(m.width, item.Color)
	statusBar := ui.RenderStatusBar(m.width, ui.StatusView{
		Index:    ctl.ActiveIndex(),
		Count:    ctl.Len(),
		Rotation: ctl.VisualRotation(),
		Locked:   ctl.Gate().State() == carousel.GateLocked,
		Dragging: ctl.Dragging(),
		Narrow:   r.narrow,
	})
	detail := ui.RenderDetailPanel(ui.DetailView{
		Item:   item,
		Index:  ctl.ActiveIndex(),
		Count:  ctl.Len(),
		Plate:  ctl.Plate(),
		Glyph:  wheel.Glyph(item),
		Narrow: r.narrow,
	}, r.detailW, r.detailH)

	if r.narrow {
		return ui.ComposeNarrow(menuBar, detail, statusBar)
	}

	wheelContent := wheel.Render(r.wheel, wheel.View{
		Items:      ctl.Items(),
		Placements: ctl.Placements(r.wheel.Path(), carousel.LayoutOptions{Start: config.PathStart, AutoRotate: true}),
		Rotation:   ctl.VisualRotation(),
		Active:     ctl.ActiveIndex(),
		Accent:     item.Color,
	})
	wheelPanel := ui.RenderWheelPanel(r.wheelW, r.bodyH, wheelContent, item.Color)
	list := ui.RenderDishList(ctl.Items(), ctl.ActiveIndex(), r.detailW, r.listH)
	side := ui.ComposeSide(detail, list)

	return ui.ComposeLayout(menuBar, wheelPanel, side, statusBar)
}

// Close releases the controller subscription. Safe to call more than once.
func (m AppModel) Close() {
	m.shared.sub.Close()
}

// kick starts the frame loop when something has begun to move and no tick
// is pending.
func (m AppModel) kick() tea.Cmd {
	if m.shared.ticking || !m.shared.ctl.Animating() {
		return nil
	}
	m.shared.ticking = true
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
