package tx

import (
	"fmt"
	"os"
	"strconv"

	"txwire/store"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Lists all stored transactions.",
	RunE: func(c *cobra.Command, args []string) error {
		db, err := openStore(c)
		if err != nil {
			return err
		}
		defer db.Close()

		count, err := store.GetTransactionCount(db)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{
			"Txid",
			"Version",
			"Inputs",
			"Lock Time",
			"Size",
			"Stored At",
		})

		stream := store.StreamTransactions(db)
		defer stream.Close()
		for {
			record, err := stream.Next()
			if err != nil {
				return err
			}
			if record == nil {
				break
			}
			table.Append([]string{
				record.Txid.String(),
				strconv.Itoa(int(record.Version)),
				strconv.Itoa(record.NumInputs),
				strconv.FormatUint(uint64(record.LockTime), 10),
				strconv.Itoa(len(record.Raw)),
				record.StoredAt.String(),
			})
		}
		table.Render()
		fmt.Printf("%d transaction(s)\n", count)
		return nil
	},
}

func init() {
	cmd.AddCommand(lsCmd)
}
