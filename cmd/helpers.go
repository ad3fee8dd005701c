package cmd

import (
	"context"

	"github.com/codice-tools/plastic-ctl/internal/config"
	"github.com/codice-tools/plastic-ctl/internal/errors"
	"github.com/codice-tools/plastic-ctl/internal/plastic"
	"github.com/codice-tools/plastic-ctl/internal/system"
	"github.com/codice-tools/plastic-ctl/internal/workspace"
)

var cfg = config.Default()

// loadConfig reads the configuration for the current invocation.
func loadConfig() error {
	loaded, err := config.Load(system.DefaultFS(), configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// getTool returns a cm handle built from the current configuration.
func getTool() *plastic.Tool {
	return plastic.NewTool(cfg, system.DefaultExecutor())
}

// getManager returns a workspace manager over the default executor and filesystem.
func getManager() *workspace.Manager {
	return workspace.NewManager(getTool(), system.DefaultFS())
}

// findWorkspace loads the registry and resolves path to a workspace,
// or returns a WorkspaceNotFound error.
func findWorkspace(ctx context.Context, mgr *workspace.Manager, path string) (*workspace.Registry, *workspace.Workspace, error) {
	reg, err := mgr.LoadRegistry(ctx)
	if err != nil {
		return nil, nil, err
	}
	wk := reg.FindByPath(path)
	if wk == nil {
		return nil, nil, errors.WorkspaceNotFound(path)
	}
	return reg, wk, nil
}
