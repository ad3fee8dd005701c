package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codice-tools/plastic-ctl/internal/workspace"
)

var selectorClassify bool

var selectorCmd = &cobra.Command{
	Use:   "selector <path>",
	Short: "Show the selector applied to the workspace at a path",
	Args:  cobra.ExactArgs(1),
	RunE:  runSelector,
}

func init() {
	selectorCmd.Flags().BoolVar(&selectorClassify, "classify", false, "Also report whether the selector tracks a branch")
	rootCmd.AddCommand(selectorCmd)
}

func runSelector(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	mgr := getManager()

	_, wk, err := findWorkspace(ctx, mgr, args[0])
	if err != nil {
		return err
	}

	selector, err := mgr.LoadSelector(ctx, wk.Name)
	if err != nil {
		return err
	}
	fmt.Println(workspace.NormalizeSelector(selector))

	if selectorClassify {
		cls, branch := mgr.ClassifySelector(ctx, selector)
		if cls == workspace.ClassBranch {
			logInfo("Classification: %s (%s)", cls, branch)
		} else {
			logInfo("Classification: %s", cls)
		}
		if cls == workspace.ClassUnknown {
			logWarning("The cm client could not parse this selector")
		}
	}
	return nil
}
