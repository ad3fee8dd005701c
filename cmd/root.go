package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/codice-tools/plastic-ctl/internal/config"
	"github.com/codice-tools/plastic-ctl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "plastic-ctl",
	Short: "Plastic SCM build workspace reconciliation CLI",
	Long: `plastic-ctl converges build machines onto Plastic SCM workspaces.

Given a target path and a version selector, it reuses, updates,
reselects, or recreates the workspace bound to that path, destroying
any workspace that overlaps it (parent directory or nested inside).
All version control operations go through the external cm client.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, os.Stderr)
		return loadConfig()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to config file")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
