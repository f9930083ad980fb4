package tx

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"txwire/store"
	"txwire/wire"

	"github.com/spf13/cobra"
)

var getRaw bool

var getCmd = &cobra.Command{
	Use:   "get <txid>",
	Short: "Prints a stored transaction.",
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

		record, err := store.GetTransaction(db, txid)
		if err != nil {
			return err
		}
		if getRaw {
			fmt.Println(hex.EncodeToString(record.Raw))
			return nil
		}
		out, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	getCmd.Flags().BoolVar(&getRaw, "raw", false, "Print the raw wire hex instead of JSON metadata")
	cmd.AddCommand(getCmd)
}
