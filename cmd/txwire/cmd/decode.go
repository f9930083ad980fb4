package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strings"

	"txwire/cli"
	"txwire/wire"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [files]",
	Short: "Decodes hex-encoded transactions into a readable form.",
	Long: "Decodes hex-encoded transactions into a readable form. With no " +
		"arguments the hex is read from stdin; otherwise each file is decoded " +
		"in turn.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			in, err := readHexInput()
			if err != nil {
				return err
			}
			out, err := renderTransactionHex(in, format)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}

		results := make([]string, len(args))
		var eg errgroup.Group
		for i, p := range args {
			i, p := i, p
			eg.Go(func() error {
				data, err := ioutil.ReadFile(p)
				if err != nil {
					return errors.Wrap(err, fmt.Sprintf("error reading %s", p))
				}
				out, err := renderTransactionHex(strings.TrimSpace(string(data)), format)
				if err != nil {
					return errors.Wrap(err, fmt.Sprintf("error decoding %s", p))
				}
				results[i] = out
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		for _, out := range results {
			fmt.Println(out)
		}
		return nil
	},
}

func renderTransactionHex(in string, format string) (string, error) {
	raw, err := hex.DecodeString(in)
	if err != nil {
		return "", errors.Wrap(err, "input is not valid hex")
	}
	tx, consumed, err := wire.DecodeTransaction(raw)
	if err != nil {
		return "", err
	}
	if consumed < len(raw) {
		logger.Warn("input has trailing bytes", "consumed", consumed, "total", len(raw))
	}

	switch format {
	case "text":
		return tx.String(), nil
	case "json":
		out, err := json.MarshalIndent(tx, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return "", errors.Errorf("unknown output format %s", format)
	}
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString(cli.FlagFormat)
	if err != nil {
		return "", err
	}
	if format == "" {
		format = cfg.Display.Format
	}
	return format, nil
}

func init() {
	decodeCmd.Flags().String(cli.FlagFormat, "", "Output format, text or json. Defaults to the configured format.")
	rootCmd.AddCommand(decodeCmd)
}
