package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codice-tools/plastic-ctl/internal/workspace"
)

func testWorkspaces() []workspace.Workspace {
	return []workspace.Workspace{
		{Name: "plasticctl_ab12", Path: "/build/main", Machine: "ci01"},
		{Name: "plasticctl_cd34", Path: "/build/release", Machine: "ci02"},
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		path   string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"/home/user/workspace", 20, "/home/user/workspace"},
		{"/home/user/very/long/path/to/workspace", 20, "...path/to/workspace"},
		{"", 10, ""},
		{"exactly10!", 10, "exactly10!"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := truncatePath(tt.path, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncatePath(%q, %d) = %q, want %q", tt.path, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestWorkspaceItemMethods(t *testing.T) {
	item := workspaceItem{workspace: workspace.Workspace{
		Name:    "plasticctl_ab12",
		Path:    "/build/main",
		Machine: "ci01",
	}}

	if got := item.Title(); got != "plasticctl_ab12" {
		t.Errorf("Title() = %q", got)
	}
	if got := item.FilterValue(); !strings.Contains(got, "/build/main") {
		t.Errorf("FilterValue() = %q, should include path", got)
	}
	if got := item.Description(); !strings.Contains(got, "ci01") {
		t.Errorf("Description() = %q, should include machine", got)
	}
}

func TestPicker_SelectWithEnter(t *testing.T) {
	m := NewPicker(testWorkspaces())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result := updated.(Model).Result()

	if result.Action != ActionShowSelector {
		t.Errorf("Action = %v, want ActionShowSelector", result.Action)
	}
	if result.Workspace == nil || result.Workspace.Name != "plasticctl_ab12" {
		t.Errorf("Workspace = %+v", result.Workspace)
	}
}

func TestPicker_RemoveWithD(t *testing.T) {
	m := NewPicker(testWorkspaces())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	result := updated.(Model).Result()

	if result.Action != ActionRemove {
		t.Errorf("Action = %v, want ActionRemove", result.Action)
	}
}

func TestPicker_QuitWithQ(t *testing.T) {
	m := NewPicker(testWorkspaces())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	result := updated.(Model).Result()

	if result.Action != ActionQuit {
		t.Errorf("Action = %v, want ActionQuit", result.Action)
	}
}

func TestListView(t *testing.T) {
	out := ListView(testWorkspaces())

	if !strings.Contains(out, "plasticctl_ab12") || !strings.Contains(out, "/build/main") {
		t.Errorf("ListView missing workspace details:\n%s", out)
	}
}

func TestListView_Empty(t *testing.T) {
	out := ListView(nil)

	if !strings.Contains(out, "No workspaces found") {
		t.Errorf("ListView empty output:\n%s", out)
	}
}
