package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codice-tools/plastic-ctl/internal/tui"
	"github.com/codice-tools/plastic-ctl/internal/workspace"
)

var workspacesPick bool

var workspacesCmd = &cobra.Command{
	Use:     "workspaces",
	Aliases: []string{"ls"},
	Short:   "List workspaces known to the cm client",
	RunE:    runWorkspaces,
}

func init() {
	workspacesCmd.Flags().BoolVar(&workspacesPick, "pick", false, "Pick a workspace interactively")
	rootCmd.AddCommand(workspacesCmd)
}

func runWorkspaces(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	mgr := getManager()

	reg, err := mgr.LoadRegistry(ctx)
	if err != nil {
		return err
	}

	if !workspacesPick {
		fmt.Print(tui.ListView(reg.All()))
		return nil
	}

	result, err := tui.RunPicker(reg.All())
	if err != nil {
		return err
	}

	switch result.Action {
	case tui.ActionRemove:
		return removeWorkspace(ctx, mgr, reg, *result.Workspace)
	case tui.ActionShowSelector:
		selector, err := mgr.LoadSelector(ctx, result.Workspace.Name)
		if err != nil {
			return err
		}
		fmt.Println(workspace.NormalizeSelector(selector))
	}
	return nil
}
