package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/tracecov/internal/model"
)

type navigatorKeyMap struct {
	Forward   key.Binding
	Backward  key.Binding
	PrevFrame key.Binding
	NextFrame key.Binding
	Quit      key.Binding
}

func defaultNavigatorKeys() navigatorKeyMap {
	return navigatorKeyMap{
		Forward: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "forward"),
		),
		Backward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "backward"),
		),
		PrevFrame: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev frame"),
		),
		NextFrame: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next frame"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k navigatorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Backward, k.PrevFrame, k.NextFrame, k.Quit}
}

func (k navigatorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	currentStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	adjacentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	categoryStyle = map[m.Category]lipgloss.Style{
		m.CategoryAll:                 lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		m.CategoryExecutedMaybe:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		m.CategoryExecutedNotExecuted: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		m.CategoryNotExecutedMaybe:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		m.CategoryExecuted:            lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		m.CategoryNotExecuted:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		m.CategoryMaybe:               lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}
)

// navigatorModel is the Bubble Tea model stepping through the frames of a trace.
type navigatorModel struct {
	frames      []*m.FrameEntity
	annotations []m.Annotation
	nav         Navigator
	frameIndex  int
	keys        navigatorKeyMap
	help        help.Model
	err         error
}

func newNavigatorModel(result *m.AnalysisResult, annotations []m.Annotation, nav Navigator, startFrame int) (navigatorModel, error) {
	frames := result.Root().Frames()
	if startFrame < 0 || startFrame >= len(frames) {
		return navigatorModel{}, fmt.Errorf("frame %d out of range", startFrame)
	}

	model := navigatorModel{
		frames:      frames,
		annotations: annotations,
		nav:         nav,
		keys:        defaultNavigatorKeys(),
		help:        help.New(),
	}
	model.selectFrame(startFrame)

	return model, model.err
}

// selectFrame moves to the first step of frame i, or clears the position when
// the frame has no traced path.
func (n *navigatorModel) selectFrame(i int) {
	n.frameIndex = i
	frame := n.frames[i]

	if len(frame.Steps()) == 0 {
		n.err = n.nav.SetPosition(nil, -1)
		return
	}

	n.err = n.nav.SetPosition(frame, 0)
}

func (n navigatorModel) Init() tea.Cmd {
	return nil
}

func (n navigatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		n.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, n.keys.Quit):
			return n, tea.Quit
		case key.Matches(msg, n.keys.Forward):
			n.nav.StepForward()
		case key.Matches(msg, n.keys.Backward):
			n.nav.StepBackward()
		case key.Matches(msg, n.keys.PrevFrame):
			if n.frameIndex > 0 {
				n.selectFrame(n.frameIndex - 1)
			}
		case key.Matches(msg, n.keys.NextFrame):
			if n.frameIndex < len(n.frames)-1 {
				n.selectFrame(n.frameIndex + 1)
			}
		}
	}

	return n, nil
}

func (n navigatorModel) View() string {
	var b strings.Builder

	frame := n.frames[n.frameIndex]
	b.WriteString(titleStyle.Render(fmt.Sprintf("Frame %d/%d  %s (%s)",
		n.frameIndex+1, len(n.frames), frame.Label(), frame.File())))
	b.WriteString("\n\n")

	_, current := n.nav.Position()
	annotation := annotationAt(n.annotations, n.frameIndex)

	if len(frame.Steps()) == 0 {
		b.WriteString(dimStyle.Render("no traced path"))
		b.WriteString("\n")
	}

	for i, step := range frame.Steps() {
		label := categoryLabel(annotation, step.Line())
		if c, ok := annotation.CategoryOf(step.Line()); ok {
			label = categoryStyle[c].Render(label)
		}

		row := fmt.Sprintf("%3d  line %-6d", i, step.Line())
		switch {
		case i == current:
			row = currentStyle.Render("> " + row)
		case current >= 0 && (i == current-1 || i == current+1):
			row = adjacentStyle.Render("~ " + row)
		default:
			row = "  " + row
		}

		b.WriteString(row + " " + label + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(n.status()))
	b.WriteString("\n")

	if n.err != nil {
		b.WriteString(errorStyle.Render(n.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(n.help.View(n.keys))

	return b.String()
}

func (n navigatorModel) status() string {
	_, current := n.nav.Position()
	total := len(n.frames[n.frameIndex].Steps())

	if current < 0 {
		return "step -/0"
	}

	var moves []string
	if n.nav.CanStepForward() {
		moves = append(moves, "forward")
	}

	if n.nav.CanStepBackward() {
		moves = append(moves, "backward")
	}

	if len(moves) == 0 {
		moves = append(moves, "none")
	}

	return fmt.Sprintf("step %d/%d  can step: %s", current+1, total, strings.Join(moves, ", "))
}
