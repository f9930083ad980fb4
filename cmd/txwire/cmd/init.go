package cmd

import (
	"txwire/cli"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes the home directory and default config file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cli.InitHomeDir(cmd)
		if err != nil {
			return err
		}
		logger.Info("initialized home directory", "path", cli.GetHomeDir(cmd))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
