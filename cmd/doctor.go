package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the cm client is reachable",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	tool := getTool()

	version, err := tool.Version(context.Background())
	if err != nil {
		logError("cm client at %q is not responding", tool.Exe())
		return err
	}

	logSuccess("cm client %s (%s)", version, tool.Exe())
	return nil
}
