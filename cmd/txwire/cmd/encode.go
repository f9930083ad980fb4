package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"txwire/wire"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encodes a JSON transaction to its wire hex.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = ioutil.ReadFile(args[0])
		} else {
			data, err = ioutil.ReadAll(os.Stdin)
		}
		if err != nil {
			return errors.Wrap(err, "error reading input")
		}

		var tx wire.Transaction
		if err := json.Unmarshal(data, &tx); err != nil {
			return errors.Wrap(err, "error parsing transaction")
		}
		fmt.Println(hex.EncodeToString(tx.Bytes()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
