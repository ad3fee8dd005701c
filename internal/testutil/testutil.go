// Package testutil provides shared test fixtures for plastic-ctl tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/codice-tools/plastic-ctl/internal/config"
	"github.com/codice-tools/plastic-ctl/internal/plastic"
	"github.com/codice-tools/plastic-ctl/internal/system"
	"github.com/codice-tools/plastic-ctl/internal/workspace"
)

// Env bundles the mocks behind a Manager under test.
type Env struct {
	T       *testing.T
	Exec    *system.MockExecutor
	FS      *system.MockFS
	Tool    *plastic.Tool
	Manager *workspace.Manager
}

// NewEnv builds a Manager wired to fresh mocks.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	exec := system.NewMockExecutor()
	fs := system.NewMockFS()
	tool := plastic.NewTool(config.Default(), exec)

	return &Env{
		T:       t,
		Exec:    exec,
		FS:      fs,
		Tool:    tool,
		Manager: workspace.NewManager(tool, fs),
	}
}

// RegistryRow is a workspace entry the mocked cm client will report.
type RegistryRow struct {
	Name     string
	Path     string
	Machine  string
	Selector string
}

// SeedRegistry makes the mocked client answer lwk with the given rows and
// showselector with each row's selector.
func (e *Env) SeedRegistry(rows ...RegistryRow) {
	var b strings.Builder
	for _, row := range rows {
		machine := row.Machine
		if machine == "" {
			machine = "ci01"
		}
		fmt.Fprintf(&b, "%s#%s#%s\n", row.Name, row.Path, machine)
		e.Exec.AddResponse("cm showselector wk:"+row.Name, []byte(row.Selector), nil)
	}
	e.Exec.AddResponse("cm lwk", []byte(b.String()), nil)
}

// BranchSpec is a gss response classifying the selector as branch-based.
func BranchSpec(branch string) []byte {
	return []byte(fmt.Sprintf("repository: default\nbranch: %s\n", branch))
}

// LabelSpec is a gss response classifying the selector as a fixed label.
func LabelSpec(label string) []byte {
	return []byte(fmt.Sprintf("repository: default\nlabel: %s\n", label))
}

// InvalidSpec is a gss response for a selector the client cannot parse.
func InvalidSpec() []byte {
	return []byte("The selector is not valid.\n")
}
