package workspace

import (
	"context"
	"io/fs"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/codice-tools/plastic-ctl/internal/errors"
	"github.com/codice-tools/plastic-ctl/internal/logging"
)

// Checkout converges the machine onto exactly one usable workspace bound
// to targetPath with the requested selector.
//
// Conflicting workspaces (one bound to the parent directory, any nested
// directly inside the target) are destroyed first so the exact-match
// lookup never observes overlapping bindings. With useUpdate false the
// target's own workspace is destroyed too and its directory contents
// erased, forcing a from-scratch checkout.
//
// An existing workspace is reused in place: stray local changes are
// undone, a changed selector is reapplied (which synchronizes content by
// itself, so no update follows), and an unchanged branch selector gets an
// incremental update. Fixed and unclassifiable selectors skip the update.
//
// Not safe for concurrent calls against the same path; the caller
// serializes builds per target.
func (m *Manager) Checkout(ctx context.Context, targetPath, selector string, useUpdate bool) (*Workspace, error) {
	if targetPath == "" {
		return nil, errors.ValidationError("checkout target path cannot be empty")
	}

	reg, err := m.LoadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	if err := m.cleanConflicting(ctx, reg, targetPath, useUpdate); err != nil {
		return nil, err
	}

	if !useUpdate && m.fs.Exists(targetPath) {
		if err := m.eraseContents(targetPath); err != nil {
			return nil, err
		}
	}

	return m.checkoutWorkspace(ctx, reg, targetPath, selector)
}

func (m *Manager) checkoutWorkspace(ctx context.Context, reg *Registry, targetPath, selector string) (*Workspace, error) {
	if wk := reg.FindByPath(targetPath); wk != nil {
		logging.Debug("reusing existing workspace", "name", wk.Name, "path", wk.Path)

		if err := m.CleanWorkspace(ctx, wk.Path); err != nil {
			return nil, err
		}

		changed, err := m.selectorChanged(ctx, wk.Name, selector)
		if err != nil {
			return nil, err
		}
		if changed {
			// Applying the selector already materializes the new content;
			// a follow-up update could mix stale intermediate state.
			if err := m.SetSelector(ctx, targetPath, selector); err != nil {
				return nil, err
			}
			return wk, nil
		}

		if cls, _ := m.ClassifySelector(ctx, selector); cls.IsBranch() {
			if err := m.UpdateWorkspace(ctx, wk.Path); err != nil {
				return nil, err
			}
		}
		return wk, nil
	}

	logging.Debug("creating new workspace", "path", targetPath)

	wk, err := m.CreateWorkspace(ctx, GenerateUniqueName(), targetPath, selector)
	if err != nil {
		return nil, err
	}
	if err := m.CleanWorkspace(ctx, wk.Path); err != nil {
		return nil, err
	}
	if err := m.UpdateWorkspace(ctx, wk.Path); err != nil {
		return nil, err
	}
	return wk, nil
}

// selectorChanged compares the workspace's applied selector against the
// requested one, both in normalized form.
func (m *Manager) selectorChanged(ctx context.Context, name, selector string) (bool, error) {
	applied, err := m.LoadSelector(ctx, name)
	if err != nil {
		return false, err
	}
	return NormalizeSelector(applied) != NormalizeSelector(selector), nil
}

// cleanConflicting restores the non-overlap invariant around targetPath:
// no workspace may remain bound to its parent directory or nested
// directly inside it. With useUpdate false the exact binding goes too.
func (m *Manager) cleanConflicting(ctx context.Context, reg *Registry, targetPath string, useUpdate bool) error {
	if parent := reg.FindByPath(ParentPath(targetPath)); parent != nil {
		if err := m.Destroy(ctx, reg, *parent); err != nil {
			return err
		}
	}

	for _, nested := range reg.FindInsidePath(targetPath) {
		if err := m.Destroy(ctx, reg, nested); err != nil {
			return err
		}
	}

	if useUpdate {
		return nil
	}

	if wk := reg.FindByPath(targetPath); wk != nil {
		return m.Destroy(ctx, reg, *wk)
	}
	return nil
}

// Destroy removes the workspace binding from the client, erases the bound
// directory's contents, and drops the entry from the registry so later
// steps see a consistent view.
func (m *Manager) Destroy(ctx context.Context, reg *Registry, wk Workspace) error {
	logging.Debug("destroying workspace", "name", wk.Name, "path", wk.Path)

	if err := m.DeleteWorkspace(ctx, wk.Path); err != nil {
		return err
	}
	if err := m.eraseContents(wk.Path); err != nil {
		return err
	}
	if reg != nil {
		reg.Remove(wk)
	}
	return nil
}

// eraseContents removes everything inside dir, keeping dir itself. Entry
// names come from the filesystem but are still joined with SecureJoin so
// a symlinked or traversal name can never reach outside dir.
func (m *Manager) eraseContents(dir string) error {
	entries, err := m.fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.FilesystemError("read", dir, err)
	}

	for _, entry := range entries {
		target, err := securejoin.SecureJoin(dir, entry.Name())
		if err != nil {
			return errors.FilesystemError("resolve", entry.Name(), err)
		}
		if err := m.fs.RemoveAll(target); err != nil {
			return errors.FilesystemError("erase", target, err)
		}
	}
	return nil
}
