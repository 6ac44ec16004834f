package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var pickerTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// pickerModel wraps the bubbles filepicker for a single file selection.
type pickerModel struct {
	title    string
	picker   filepicker.Model
	selected string
	aborted  bool
}

func (m pickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.picker.Height = msg.Height - 4
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.selected = path
		return m, tea.Quit
	}
	return m, cmd
}

func (m pickerModel) View() string {
	if m.selected != "" || m.aborted {
		return ""
	}
	return pickerTitleStyle.Render(m.title) + "\n\n" + m.picker.View()
}

// pickFile runs a terminal file picker and returns the chosen path.
func pickFile(title string) (string, error) {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".csv", ".xlsx", ".xls"}
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}

	p := tea.NewProgram(pickerModel{title: title, picker: fp})
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running file picker: %w", err)
	}

	m, ok := final.(pickerModel)
	if !ok || m.selected == "" {
		return "", fmt.Errorf("no file selected for %q", title)
	}
	return m.selected, nil
}
