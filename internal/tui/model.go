// Package tui renders the screenshots carousel in the terminal.
package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/piper-lan/piper-site/pkg/carousel"
)

const (
	fps         = 60
	slideWidth  = 44
	slideHeight = 7
	// maxShift is how many cells a slide travels over the full distance.
	maxShift = 6
	// settled is the offset below which the spring counts as at rest.
	settled = 0.5
)

type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model is the bubbletea model of the preview.
type Model struct {
	carousel *carousel.Carousel
	loader   carousel.Loader
	root     string

	keys   KeyMap
	help   help.Model
	styles Styles

	// The spring chases the entering layer's offset from the core frame.
	spring    harmonica.Spring
	offset    float64
	velocity  float64
	animating bool

	slide    carousel.Slide
	quitting bool
}

// New creates a preview over c. root is the directory named in placeholder
// hints.
func New(c *carousel.Carousel, loader carousel.Loader, root string) Model {
	m := Model{
		carousel: c,
		loader:   loader,
		root:     root,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   DefaultStyles(),
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 8.0, 0.9),
	}
	m.slide = c.Slide(context.Background(), loader, root)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.carousel.Prev()
			return m.moved()
		case key.Matches(msg, m.keys.Next):
			m.carousel.Next()
			return m.moved()
		case key.Matches(msg, m.keys.Select):
			m.carousel.Select(int(msg.Runes[0] - '1'))
			return m.moved()
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		return m.step()
	}

	return m, nil
}

// moved resolves the new slide and starts the frame loop. The spring is
// not reset: a retarget mid-flight continues from where the slide is.
func (m Model) moved() (tea.Model, tea.Cmd) {
	m.slide = m.carousel.Slide(context.Background(), m.loader, m.root)

	frame := m.carousel.Frame()
	if frame.Phase == carousel.Transitioning && !m.animating {
		m.offset = frame.Layers[len(frame.Layers)-1].Offset
		m.velocity = 0
	}

	if m.animating {
		return m, nil
	}
	m.animating = true
	return m, tick()
}

// step advances the spring one frame toward the core frame's entering
// offset, stopping once the transition is over and the slide has settled.
func (m Model) step() (tea.Model, tea.Cmd) {
	frame := m.carousel.Frame()

	target := 0.0
	if frame.Phase == carousel.Transitioning {
		target = frame.Layers[len(frame.Layers)-1].Offset
	}
	m.offset, m.velocity = m.spring.Update(m.offset, m.velocity, target)

	if frame.Phase == carousel.Idle && math.Abs(m.offset) < settled && math.Abs(m.velocity) < settled {
		m.offset, m.velocity = 0, 0
		m.animating = false
		return m, nil
	}
	return m, tick()
}

// Shift is the current horizontal displacement of the slide in cells.
func (m Model) Shift() int {
	d := m.carousel.Distance()
	if d == 0 {
		return 0
	}
	s := int(math.Round(m.offset / d * maxShift))
	return max(-maxShift, min(maxShift, s))
}

// Animating reports whether the frame loop is running.
func (m Model) Animating() bool {
	return m.animating
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.carousel.State()
	items := m.carousel.Items()

	tabs := make([]string, 0, len(items))
	dots := make([]string, 0, len(items))
	for i, item := range items {
		if i == st.Active {
			tabs = append(tabs, m.styles.ActiveTab.Render(item.Label))
			dots = append(dots, m.styles.ActiveDot.Render("━━"))
			continue
		}
		tabs = append(tabs, m.styles.Tab.Render(item.Label))
		dots = append(dots, m.styles.Dot.Render("•"))
	}

	box := m.styles.Slide.Render(m.slideBody())
	shifted := lipgloss.NewStyle().
		MarginLeft(maxShift + m.Shift()).
		MarginRight(maxShift - m.Shift()).
		Render(box)

	stage := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Arrow.Render("‹"),
		shifted,
		m.styles.Arrow.Render("›"),
	)

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Screenshots"))
	b.WriteString("\n")
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")
	b.WriteString(stage)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(lipgloss.Width(stage), lipgloss.Center, strings.Join(dots, " ")))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) slideBody() string {
	s := m.slide
	if s.Failed() {
		return m.styles.Placeholder.Render("[" + s.Placeholder.Icon + "]\n\n" + s.Placeholder.Hint)
	}
	a := s.Asset
	return fmt.Sprintf("%s\n\n%s\n%s %d×%d · %s", s.Item.Label, a.Source, a.Format, a.Width, a.Height, humanSize(a.Size))
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMG"[exp])
}

// Run starts the preview and blocks until the user quits or ctx ends.
func Run(ctx context.Context, c *carousel.Carousel, loader carousel.Loader, root string, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(c, loader, root), opts...).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
