// Package tui provides terminal user interface components for plastic-ctl
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codice-tools/plastic-ctl/internal/workspace"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionRemove
	ActionShowSelector
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action    Action
	Workspace *workspace.Workspace
}

// workspaceItem implements list.Item for workspace display
type workspaceItem struct {
	workspace workspace.Workspace
}

func (i workspaceItem) Title() string {
	return i.workspace.Name
}

func (i workspaceItem) Description() string {
	machine := i.workspace.Machine
	if machine == "" {
		machine = "local"
	}
	return fmt.Sprintf("%s | %s", machine, truncatePath(i.workspace.Path, 50))
}

func (i workspaceItem) FilterValue() string {
	return i.workspace.Name + " " + i.workspace.Path
}

func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the workspace picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new workspace picker
func NewPicker(workspaces []workspace.Workspace) Model {
	items := make([]list.Item, len(workspaces))
	for i, wk := range workspaces {
		items[i] = workspaceItem{workspace: wk}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "plastic-ctl - Select Workspace"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(workspaceItem); ok {
				m.result = PickerResult{
					Action:    ActionShowSelector,
					Workspace: &item.workspace,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "d":
			if item, ok := m.list.SelectedItem().(workspaceItem); ok {
				m.result = PickerResult{
					Action:    ActionRemove,
					Workspace: &item.workspace,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Show selector  [d] Remove  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive workspace picker
func RunPicker(workspaces []workspace.Workspace) (PickerResult, error) {
	if len(workspaces) == 0 {
		return PickerResult{Action: ActionQuit}, nil
	}

	m := NewPicker(workspaces)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// ListView is a non-interactive rendering of the workspace table
func ListView(workspaces []workspace.Workspace) string {
	var sb strings.Builder

	sb.WriteString("plastic-ctl - Workspaces\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(workspaces) == 0 {
		sb.WriteString("No workspaces found.\n")
		sb.WriteString("Create one with: plastic-ctl checkout <path> --selector <spec>\n")
		return sb.String()
	}

	for i, wk := range workspaces {
		machine := wk.Machine
		if machine == "" {
			machine = "local"
		}
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, wk.Name, machine))
		sb.WriteString(fmt.Sprintf("   Path: %s\n\n", truncatePath(wk.Path, 50)))
	}

	return sb.String()
}
