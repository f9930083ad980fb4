package cmd

import (
	"fmt"
	"os"

	"txwire/cli"
	"txwire/cmd/txwire/cmd/tx"
	"txwire/config"
	"txwire/log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	homeDir string
	cfg     *config.Config
	logger  = log.WithModule("cmd")
)

var rootCmd = &cobra.Command{
	Use:   "txwire",
	Short: "Encodes, decodes and stores Bitcoin legacy transactions.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.CalledAs() == "init" || cmd.CalledAs() == "version" {
			return nil
		}
		homeDir = cli.GetHomeDir(cmd)
		if err := config.EnsureHomeDir(homeDir); err != nil {
			return errors.Wrap(err, "error ensuring home directory")
		}
		var err error
		cfg, err = config.ReadConfigFile(homeDir)
		if err != nil {
			return err
		}
		logLevel, err := log.NewLevel(cfg.LogLevel)
		if err != nil {
			return errors.Wrap(err, "error parsing log level")
		}
		log.SetLevel(logLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.txwire", "Home directory for the tool's config and database.")
	tx.AddCmd(rootCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
