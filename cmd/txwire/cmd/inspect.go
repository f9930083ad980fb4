package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"txwire/wire"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [hex]",
	Short: "Renders a transaction's inputs as a table.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in string
		var err error
		if len(args) == 1 {
			in = args[0]
		} else {
			in, err = readHexInput()
			if err != nil {
				return err
			}
		}

		raw, err := hex.DecodeString(in)
		if err != nil {
			return errors.Wrap(err, "input is not valid hex")
		}
		tx, _, err := wire.DecodeTransaction(raw)
		if err != nil {
			return err
		}

		fmt.Printf("Txid: %s\n", tx.TxID())
		fmt.Printf("Version: %d\n", tx.Version)
		fmt.Printf("Lock Time: %d\n", tx.LockTime)

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{
			"#",
			"Prevout Txid",
			"Prevout Index",
			"Script Len",
			"Script",
			"Sequence",
		})
		for i, txIn := range tx.Inputs {
			table.Append([]string{
				strconv.Itoa(i),
				txIn.PreviousOutPoint.Txid.String(),
				strconv.Itoa(int(txIn.PreviousOutPoint.Index)),
				strconv.Itoa(len(txIn.SignatureScript)),
				truncateScript(txIn.SignatureScript.String()),
				strconv.FormatUint(uint64(txIn.Sequence), 10),
			})
		}
		table.Render()
		return nil
	},
}

func truncateScript(in string) string {
	max := cfg.Display.MaxScriptChars
	if max <= 0 || len(in) <= max {
		return in
	}
	return in[:max] + "..."
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
