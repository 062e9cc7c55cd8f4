package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCommand(params *globalParams) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the names of persisted runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, logger, err := openStore(cmd, params)
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer e.Close()

			names, err := e.Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func showCommand(params *globalParams) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Prints a persisted run in the output file format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, logger, err := openStore(cmd, params)
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer e.Close()

			rep, err := e.LoadReport(args[0])
			if err != nil {
				return err
			}
			return rep.Encode(cmd.OutOrStdout())
		},
	}
}
