package workspace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/codice-tools/plastic-ctl/internal/errors"
	"github.com/codice-tools/plastic-ctl/internal/logging"
	"github.com/codice-tools/plastic-ctl/internal/plastic"
	"github.com/codice-tools/plastic-ctl/internal/system"
)

// Workspace is a named working copy the cm client has bound to a path.
type Workspace struct {
	Name    string
	Path    string
	Machine string
}

// Registry is the per-call view of all workspaces known to the client.
// It is loaded fresh at the start of each reconciliation, owned by that
// call alone, and mutated only through Remove.
type Registry struct {
	workspaces []Workspace
}

// All returns the current registry contents.
func (r *Registry) All() []Workspace {
	return r.workspaces
}

// Remove drops the workspace with the given name from the registry.
func (r *Registry) Remove(wk Workspace) {
	for i, w := range r.workspaces {
		if w.Name == wk.Name {
			r.workspaces = append(r.workspaces[:i], r.workspaces[i+1:]...)
			return
		}
	}
}

// FindByPath returns the workspace bound exactly to target, or nil.
func (r *Registry) FindByPath(target string) *Workspace {
	return FindByPath(r.workspaces, target)
}

// FindInsidePath returns the workspaces nested directly inside target.
func (r *Registry) FindInsidePath(target string) []Workspace {
	return FindInsidePath(r.workspaces, target)
}

const uniqueNamePrefix = "plasticctl_"

// GenerateUniqueName returns a collision-resistant workspace name.
func GenerateUniqueName() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("workspace: reading random bytes: %v", err))
	}
	return uniqueNamePrefix + hex.EncodeToString(b[:])
}

// Manager performs workspace-table operations against the cm client.
type Manager struct {
	tool *plastic.Tool
	fs   system.FileSystem
}

// NewManager returns a Manager using the given tool handle and filesystem.
func NewManager(tool *plastic.Tool, fs system.FileSystem) *Manager {
	return &Manager{tool: tool, fs: fs}
}

// LoadRegistry fetches the full workspace table from the client.
func (m *Manager) LoadRegistry(ctx context.Context) (*Registry, error) {
	output, err := m.tool.Run(ctx, "lwk", plastic.ListFormat)
	if err != nil {
		return nil, err
	}

	rows := plastic.ParseWorkspaceList(output)
	reg := &Registry{workspaces: make([]Workspace, 0, len(rows))}
	for _, row := range rows {
		reg.workspaces = append(reg.workspaces, Workspace{
			Name:    row.Name,
			Path:    row.Path,
			Machine: row.Machine,
		})
	}
	return reg, nil
}

// CreateWorkspace registers a new workspace at path with the given selector.
func (m *Manager) CreateWorkspace(ctx context.Context, name, path, selector string) (*Workspace, error) {
	err := m.withSelectorFile(selector, func(file string) error {
		_, err := m.tool.Run(ctx, "mkwk", name, path, "--selector="+file)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &Workspace{Name: name, Path: path}, nil
}

// DeleteWorkspace removes the workspace binding at path from the client.
func (m *Manager) DeleteWorkspace(ctx context.Context, path string) error {
	_, err := m.tool.Run(ctx, "rmwk", path)
	return err
}

// UpdateWorkspace syncs the workspace at path to the latest content its
// selector allows.
func (m *Manager) UpdateWorkspace(ctx context.Context, path string) error {
	_, err := m.tool.Run(ctx, "update", path, "--last", "--dontmerge")
	return err
}

// CleanWorkspace undoes stray local changes in the workspace at path.
func (m *Manager) CleanWorkspace(ctx context.Context, path string) error {
	_, err := m.tool.Run(ctx, "undochanges", path, "--all")
	return err
}

// SetSelector applies a new selector to the workspace at path. Applying a
// selector synchronizes content as a side effect, so callers do not issue
// a separate update afterwards.
func (m *Manager) SetSelector(ctx context.Context, path, selector string) error {
	return m.withSelectorFile(selector, func(file string) error {
		_, err := m.tool.Run(ctx, "sts", "--file="+file, path)
		return err
	})
}

// LoadSelector fetches the selector currently applied to the named workspace.
func (m *Manager) LoadSelector(ctx context.Context, name string) (string, error) {
	output, err := m.tool.Run(ctx, "showselector", "wk:"+name)
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// withSelectorFile writes selector to a fresh temp file, runs fn with its
// path, and removes the file on every exit path. Deletion failures are
// logged, never propagated.
func (m *Manager) withSelectorFile(selector string, fn func(file string) error) error {
	file, err := m.fs.TempFile("", "selector_")
	if err != nil {
		return errors.FilesystemError("create", "selector temp file", err)
	}
	defer func() {
		if err := m.fs.Remove(file); err != nil {
			logging.Warn("selector temp file cleanup failed", "path", file, "error", err)
		}
	}()

	if err := m.fs.WriteFile(file, []byte(selector), 0600); err != nil {
		return errors.FilesystemError("write", file, err)
	}

	return fn(file)
}

// NormalizeSelector trims surrounding whitespace and strips all CR/LF
// characters. Two selectors are considered equal for reconciliation when
// their normalized forms match, which absorbs line-ending differences
// between what the caller supplies and what the client reports.
func NormalizeSelector(selector string) string {
	selector = strings.TrimSpace(selector)
	selector = strings.ReplaceAll(selector, "\r", "")
	return strings.ReplaceAll(selector, "\n", "")
}
