package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netrobust/sheet"
)

func newSheetsCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <workbook>",
		Short: "List the tables of a workbook or csv file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := sheet.Open(args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			names, err := src.Tables(ctx)
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}

			return nil
		},
	}
}
