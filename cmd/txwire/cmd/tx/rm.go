package tx

import (
	"txwire/store"
	"txwire/wire"

	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

var rmCmd = &cobra.Command{
	Use:   "rm <txid>",
	Short: "Removes a stored transaction.",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		txid, err := wire.NewTxidFromHex(args[0])
		if err != nil {
			return err
		}

		db, err := openStore(c)
		if err != nil {
			return err
		}
		defer db.Close()

		return store.WithTx(db, func(ltx *leveldb.Transaction) error {
			return store.DeleteTransactionTx(ltx, txid)
		})
	},
}

func init() {
	cmd.AddCommand(rmCmd)
}
