package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"skstress.dev/pkg/skstress/internal/domain"
	m "skstress.dev/pkg/skstress/internal/model"
)

var (
	tuiTitleStyle  = lipgloss.NewStyle().Bold(true)
	tuiStatusStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display. Plans and
// summaries fall back to simple printing; reports get an interactive pager.
type TUI struct {
	simple *SimpleUI
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(simple *SimpleUI, output io.Writer) *TUI {
	return &TUI{simple: simple, output: output}
}

// DisplayPlans delegates to the simple renderer.
func (t *TUI) DisplayPlans(ctx context.Context, plans []domain.Plan, detailed bool) error {
	return t.simple.DisplayPlans(ctx, plans, detailed)
}

// DisplaySummary delegates to the simple renderer.
func (t *TUI) DisplaySummary(ctx context.Context, failures []m.Message) error {
	return t.simple.DisplaySummary(ctx, failures)
}

// DisplayReports pages through the rendered reports interactively.
func (t *TUI) DisplayReports(ctx context.Context, reports []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		_, err := fmt.Fprintln(t.output, "no failures to display")
		return err
	}

	model := newReportPager(reports)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.resize(width, height)
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// reportPager pages through rendered failure reports one at a time.
type reportPager struct {
	reports  []string
	index    int
	viewport viewport.Model
	width    int
	height   int
}

func newReportPager(reports []string) *reportPager {
	vp := viewport.New(80, 24)

	p := &reportPager{reports: reports, viewport: vp, width: 80, height: 24}
	p.setContent()

	return p
}

const pagerChromeLines = 2 // title + status line

func (p *reportPager) resize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = width

	if height > pagerChromeLines {
		p.viewport.Height = height - pagerChromeLines
	}

	p.setContent()
}

func (p *reportPager) setContent() {
	p.viewport.SetContent(p.reports[p.index])
	p.viewport.GotoTop()
}

// Init implements tea.Model.
func (p *reportPager) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p *reportPager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.resize(msg.Width, msg.Height)
		return p, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		case "right", "n", "l":
			if p.index < len(p.reports)-1 {
				p.index++
				p.setContent()
			}

			return p, nil
		case "left", "p", "h":
			if p.index > 0 {
				p.index--
				p.setContent()
			}

			return p, nil
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

// View implements tea.Model.
func (p *reportPager) View() string {
	var b strings.Builder

	title := fmt.Sprintf("failure %d of %d", p.index+1, len(p.reports))
	b.WriteString(tuiTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(p.viewport.View())
	b.WriteString("\n")
	b.WriteString(tuiStatusStyle.Render("←/→ switch failure · ↑/↓ scroll · q quit"))

	return b.String()
}
