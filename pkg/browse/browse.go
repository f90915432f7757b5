// Package browse shows rendered output in a scrollable full-screen view.
package browse

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// chrome is the number of lines used by the title and footer.
const chrome = 2

// Run displays content until the user quits with q, esc, or ctrl+c, or ctx
// is cancelled. A nil in reads keys from the controlling terminal, so stdin
// may already have been consumed as data.
func Run(ctx context.Context, title, content string, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	} else {
		opts = append(opts, tea.WithInputTTY())
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	if _, err := tea.NewProgram(newModel(title, content), opts...).Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}

type model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newModel(title, content string) model {
	return model{title: title, content: content}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := msg.Height - chrome
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}
	footer := fmt.Sprintf("%3.0f%%  ↑/↓ scroll · q quit", m.viewport.ScrollPercent()*100)
	return strings.Join([]string{
		titleStyle.Render(m.title),
		m.viewport.View(),
		footerStyle.Render(footer),
	}, "\n")
}
