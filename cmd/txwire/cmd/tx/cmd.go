package tx

import (
	"txwire/cli"
	"txwire/config"
	"txwire/store"

	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

var cmd = &cobra.Command{
	Use:   "tx",
	Short: "Manages the local transaction store.",
}

func AddCmd(root *cobra.Command) {
	root.AddCommand(cmd)
}

func openStore(c *cobra.Command) (*leveldb.DB, error) {
	homeDir := cli.GetHomeDir(c)
	return store.Open(config.ExpandDBPath(homeDir))
}
