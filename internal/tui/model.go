// Package tui is the terminal browser for the guide. It renders the same
// timeline and method sections as the web page and shares its toggle state.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"validation-guide/internal/capture"
	"validation-guide/internal/presentation"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 4
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4F46E5"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7B801"))
	itemStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// Model is the bubbletea model for `validation-guide browse`
type Model struct {
	toggles  *presentation.ToggleState
	keys     keyMap
	viewport viewport.Model

	// order of focusable ids as rendered
	items  []string
	cursor int
	// first content line of each item, filled by render
	offsets []int
}

// New creates a browser over toggles. A nil toggles starts from the catalog defaults.
func New(toggles *presentation.ToggleState) *Model {
	if toggles == nil {
		toggles = presentation.NewCatalogToggles()
	}
	m := &Model{
		toggles:  toggles,
		keys:     defaultKeys,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		items:    presentation.ItemIDs(),
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeHeight)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if _, err := m.toggles.Toggle(m.Focused()); err != nil {
				return m, nil
			}
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	header := titleStyle.Render(presentation.PageTitle)
	footer := helpStyle.Render(m.keys.help())
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View(), footer)
}

// Focused returns the id of the item under the cursor
func (m *Model) Focused() string {
	if len(m.items) == 0 {
		return ""
	}
	return m.items[m.cursor]
}

// Toggles returns the shared toggle state
func (m *Model) Toggles() *presentation.ToggleState {
	return m.toggles
}

// refresh re-renders the content and scrolls so the cursor stays visible
func (m *Model) refresh() {
	m.viewport.SetContent(m.render())

	if m.cursor >= len(m.offsets) {
		return
	}
	line := m.offsets[m.cursor]
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m *Model) render() string {
	page := presentation.BuildPage(m.toggles, capture.View{})
	focused := m.Focused()

	var lines []string
	var ids []string
	m.offsets = m.offsets[:0]
	mark := func(id, title string, expanded bool) {
		ids = append(ids, id)
		m.offsets = append(m.offsets, len(lines))
		arrow := "▸"
		if expanded {
			arrow = "▾"
		}
		label := fmt.Sprintf("%s %s", arrow, title)
		if id == focused {
			lines = append(lines, cursorStyle.Render("> "+label))
			return
		}
		lines = append(lines, "  "+itemStyle.Render(label))
	}

	lines = append(lines, sectionStyle.Render(page.TimelineTitle))
	for _, p := range page.Phases {
		mark(p.ID, fmt.Sprintf("%s (%s)", p.Title, p.Duration), p.Expanded)
		if !p.Expanded {
			continue
		}
		lines = append(lines, "    "+mutedStyle.Render(p.Description))
		for _, item := range p.Items {
			lines = append(lines, "    "+item.Title)
			for _, point := range item.Points {
				lines = append(lines, "      • "+point)
			}
			lines = append(lines, "      "+mutedStyle.Render("Deliverable: "+item.Deliverable))
		}
	}

	for _, s := range page.Sections {
		lines = append(lines, "", sectionStyle.Render(s.Title))
		for _, method := range s.Methods {
			mark(method.ID, method.Title, method.Expanded)
			lines = append(lines, "    "+mutedStyle.Render(method.Description))
			if method.Expanded {
				for _, d := range method.Details {
					lines = append(lines, "      • "+d)
				}
			}
		}
	}

	m.items = ids
	return strings.Join(lines, "\n")
}

func joinHelp(parts []string) string {
	return strings.Join(parts, " • ")
}
