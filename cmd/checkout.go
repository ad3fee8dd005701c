package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/codice-tools/plastic-ctl/internal/errors"
	"github.com/codice-tools/plastic-ctl/internal/system"
	"github.com/codice-tools/plastic-ctl/internal/workspace"
)

var (
	checkoutSelector     string
	checkoutSelectorFile string
	checkoutUpdate       bool
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout <path>",
	Short: "Reconcile a workspace at a path with a selector",
	Long: `Converges the machine onto one usable workspace bound to the given path.

Workspaces overlapping the path (bound to its parent directory, or
nested directly inside it) are destroyed first. An existing workspace
at the path is reused: a changed selector is reapplied, an unchanged
branch selector gets an incremental update, and a fixed selector is
left as-is. With --update=false the existing workspace is destroyed
and checked out from scratch.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckout,
}

func init() {
	checkoutCmd.Flags().StringVarP(&checkoutSelector, "selector", "s", "", "Selector to apply")
	checkoutCmd.Flags().StringVar(&checkoutSelectorFile, "selector-file", "", "Read the selector from a file")
	checkoutCmd.Flags().BoolVar(&checkoutUpdate, "update", true, "Reuse and update an existing workspace (false forces a clean checkout)")
	rootCmd.AddCommand(checkoutCmd)
}

// resolveSelector picks the requested selector: file, then flag, then
// the configured default.
func resolveSelector() (string, error) {
	if checkoutSelectorFile != "" {
		data, err := system.DefaultFS().ReadFile(checkoutSelectorFile)
		if err != nil {
			return "", errors.SelectorError("read selector file "+checkoutSelectorFile, err)
		}
		return string(data), nil
	}
	if checkoutSelector != "" {
		return checkoutSelector, nil
	}
	if cfg.DefaultSelector != "" {
		return cfg.DefaultSelector, nil
	}
	return "", errors.ValidationError("no selector given: use --selector, --selector-file, or default_selector in config")
}

func runCheckout(cmd *cobra.Command, args []string) error {
	targetPath := args[0]
	if !workspace.IsAbsolutePath(targetPath) {
		return errors.ValidationError("checkout path must be absolute")
	}

	selector, err := resolveSelector()
	if err != nil {
		return err
	}

	mgr := getManager()
	logInfo("Reconciling workspace at %s...", targetPath)

	wk, err := mgr.Checkout(context.Background(), targetPath, selector, checkoutUpdate)
	if err != nil {
		logError("Checkout failed: %v", err)
		return err
	}

	logSuccess("Workspace %s ready at %s", wk.Name, wk.Path)
	return nil
}
