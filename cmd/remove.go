package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/codice-tools/plastic-ctl/internal/tui"
	"github.com/codice-tools/plastic-ctl/internal/workspace"
)

var removeCmd = &cobra.Command{
	Use:     "remove [path]",
	Aliases: []string{"rm"},
	Short:   "Destroy the workspace bound to a path",
	Long: `Removes the workspace binding from the cm client and erases the
bound directory's contents. With no argument, opens an interactive picker.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	mgr := getManager()

	if len(args) == 1 {
		reg, wk, err := findWorkspace(ctx, mgr, args[0])
		if err != nil {
			return err
		}
		return removeWorkspace(ctx, mgr, reg, *wk)
	}

	reg, err := mgr.LoadRegistry(ctx)
	if err != nil {
		return err
	}
	result, err := tui.RunPicker(reg.All())
	if err != nil {
		return err
	}
	if result.Action != tui.ActionRemove && result.Action != tui.ActionShowSelector {
		return nil
	}
	return removeWorkspace(ctx, mgr, reg, *result.Workspace)
}

func removeWorkspace(ctx context.Context, mgr *workspace.Manager, reg *workspace.Registry, wk workspace.Workspace) error {
	if err := mgr.Destroy(ctx, reg, wk); err != nil {
		logError("Failed to remove workspace %s: %v", wk.Name, err)
		return err
	}
	logSuccess("Removed workspace %s (%s)", wk.Name, wk.Path)
	return nil
}
