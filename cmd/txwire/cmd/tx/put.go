package tx

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"txwire/store"
	"txwire/wire"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

var putCmd = &cobra.Command{
	Use:   "put <hex|file>",
	Short: "Stores a hex-encoded transaction keyed by its txid.",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		in := args[0]
		if data, err := ioutil.ReadFile(in); err == nil {
			in = strings.TrimSpace(string(data))
		}
		raw, err := hex.DecodeString(in)
		if err != nil {
			return errors.Wrap(err, "input is not valid hex")
		}
		decoded, consumed, err := wire.DecodeTransaction(raw)
		if err != nil {
			return err
		}
		if consumed < len(raw) {
			return errors.Errorf("input has %d trailing bytes", len(raw)-consumed)
		}

		db, err := openStore(c)
		if err != nil {
			return err
		}
		defer db.Close()

		var txid wire.Txid
		err = store.WithTx(db, func(ltx *leveldb.Transaction) error {
			txid, err = store.PutTransactionTx(ltx, decoded, time.Now())
			return err
		})
		if err != nil {
			return err
		}
		fmt.Println(txid)
		return nil
	},
}

func init() {
	cmd.AddCommand(putCmd)
}
