package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symgraph/store"
)

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	var (
		dbPath string
		limit  int
		drift  bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded verification runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbPath == "" {
				return errors.New("--db is required")
			}
			format, err := flags.outputFormat(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if drift {
				p, err := flags.loadProfile()
				if err != nil {
					return err
				}
				d, err := st.Drift(cmd.Context(), p.Name)
				if err != nil {
					return err
				}
				return renderDrift(cmd.OutOrStdout(), format, d)
			}

			runs, err := st.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			return renderHistory(cmd.OutOrStdout(), format, runs)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database written by verify --record")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list (0 = all)")
	cmd.Flags().BoolVar(&drift, "drift", false, "compare edge digests of the profile's runs")

	return cmd
}
