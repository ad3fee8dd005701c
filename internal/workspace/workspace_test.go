package workspace

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGenerateUniqueName(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := GenerateUniqueName()
		if !strings.HasPrefix(name, uniqueNamePrefix) {
			t.Fatalf("name %q missing prefix", name)
		}
		if seen[name] {
			t.Fatalf("duplicate name generated: %q", name)
		}
		seen[name] = true
	}
}

func TestLoadRegistry(t *testing.T) {
	mgr, exec, _ := newMockManager()
	exec.AddResponse("cm lwk", []byte("wk1#/build/main#ci01\nwk2#C:/work/job#win-agent\n"), nil)

	reg, err := mgr.LoadRegistry(context.Background())
	if err != nil {
		t.Fatalf("LoadRegistry error: %v", err)
	}

	all := reg.All()
	if len(all) != 2 {
		t.Fatalf("registry has %d entries, want 2", len(all))
	}
	if all[0].Name != "wk1" || all[0].Path != "/build/main" || all[0].Machine != "ci01" {
		t.Errorf("entry 0 = %+v", all[0])
	}
}

func TestLoadRegistry_ToolFailure(t *testing.T) {
	mgr, exec, _ := newMockManager()
	exec.AddResponse("cm lwk", []byte("no server"), errors.New("exit status 1"))

	if _, err := mgr.LoadRegistry(context.Background()); err == nil {
		t.Error("LoadRegistry should propagate tool failure")
	}
}

func TestCreateWorkspace(t *testing.T) {
	mgr, exec, fs := newMockManager()

	wk, err := mgr.CreateWorkspace(context.Background(), "plasticctl_ab12", "/build/main", "rep:default br:/main")
	if err != nil {
		t.Fatalf("CreateWorkspace error: %v", err)
	}
	if wk.Name != "plasticctl_ab12" || wk.Path != "/build/main" {
		t.Errorf("workspace = %+v", wk)
	}

	last, _ := exec.LastCommand()
	if last.Args[0] != "mkwk" || last.Args[1] != "plasticctl_ab12" || last.Args[2] != "/build/main" {
		t.Errorf("mkwk invocation = %v", last.Args)
	}
	if !strings.HasPrefix(last.Args[3], "--selector=") {
		t.Errorf("mkwk should pass the selector by file, got %v", last.Args)
	}

	// Selector temp file is cleaned up afterwards
	file := strings.TrimPrefix(last.Args[3], "--selector=")
	if fs.Exists(file) {
		t.Errorf("selector temp file %s should be removed", file)
	}
}

func TestSetSelector(t *testing.T) {
	mgr, exec, _ := newMockManager()

	if err := mgr.SetSelector(context.Background(), "/build/main", "rep:default br:/task42"); err != nil {
		t.Fatalf("SetSelector error: %v", err)
	}

	last, _ := exec.LastCommand()
	if last.Args[0] != "sts" || !strings.HasPrefix(last.Args[1], "--file=") || last.Args[2] != "/build/main" {
		t.Errorf("sts invocation = %v", last.Args)
	}
}

func TestLoadSelector(t *testing.T) {
	mgr, exec, _ := newMockManager()
	exec.AddResponse("cm showselector wk:wk1", []byte("rep:default br:/main\r\n"), nil)

	selector, err := mgr.LoadSelector(context.Background(), "wk1")
	if err != nil {
		t.Fatalf("LoadSelector error: %v", err)
	}
	if NormalizeSelector(selector) != "rep:default br:/main" {
		t.Errorf("selector = %q", selector)
	}
}

func TestDestroy_ErasesContentsAndUpdatesRegistry(t *testing.T) {
	mgr, exec, fs := newMockManager()
	fs.AddDir("/build/main")
	fs.AddFile("/build/main/old.txt", []byte("stale"), 0644)

	reg := &Registry{workspaces: []Workspace{{Name: "wk1", Path: "/build/main"}}}

	if err := mgr.Destroy(context.Background(), reg, reg.All()[0]); err != nil {
		t.Fatalf("Destroy error: %v", err)
	}

	if got := exec.CommandsMatching("rmwk"); len(got) != 1 || got[0].Args[1] != "/build/main" {
		t.Errorf("rmwk invocations = %+v", got)
	}
	if fs.Exists("/build/main/old.txt") {
		t.Error("directory contents should be erased")
	}
	if !fs.Exists("/build/main") {
		t.Error("the directory itself is kept, only contents are erased")
	}
	if len(reg.All()) != 0 {
		t.Errorf("registry still holds %+v", reg.All())
	}
}

func TestDestroy_DeleteFailureIsFatal(t *testing.T) {
	mgr, exec, _ := newMockManager()
	exec.AddResponse("cm rmwk", []byte("locked"), errors.New("exit status 1"))

	reg := &Registry{workspaces: []Workspace{{Name: "wk1", Path: "/build/main"}}}
	err := mgr.Destroy(context.Background(), reg, reg.All()[0])
	if err == nil {
		t.Fatal("Destroy should propagate rmwk failure")
	}
	if len(reg.All()) != 1 {
		t.Error("registry must not be mutated when the delete fails")
	}
}

func TestDestroy_MissingDirectoryIsFine(t *testing.T) {
	mgr, _, _ := newMockManager()

	reg := &Registry{workspaces: []Workspace{{Name: "wk1", Path: "/gone"}}}
	if err := mgr.Destroy(context.Background(), reg, reg.All()[0]); err != nil {
		t.Errorf("Destroy error on missing directory: %v", err)
	}
}
