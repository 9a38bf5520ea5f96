package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var recurCmd = &cobra.Command{
	Use:   "recur",
	Short: "Create due occurrences of recurring transactions and tasks, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), conf)
		if err != nil {
			return err
		}
		defer a.Close()

		report, err := a.recurrence.Materialize(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %d transactions and %d tasks\n", report.Transactions, report.Tasks)
		return nil
	},
}
