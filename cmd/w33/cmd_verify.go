package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symgraph/store"
	"github.com/katalvlaran/symgraph/telemetry"
	"github.com/katalvlaran/symgraph/verify"
)

var errChecksFailed = errors.New("verification failed")

func newVerifyCmd(flags *rootFlags) *cobra.Command {
	var (
		recordPath string
		metricsOut string
		strict     bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Build the profile's graph and report every invariant check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := flags.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			format, err := flags.outputFormat(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			p, err := flags.loadProfile()
			if err != nil {
				return err
			}
			g, err := buildGraph(p)
			if err != nil {
				return err
			}
			expect, err := p.Expectations()
			if err != nil {
				return err
			}
			opts, err := p.VerifyOptions()
			if err != nil {
				return err
			}

			metrics := telemetry.New()
			opts = append(opts, verify.WithLogger(log), verify.WithStageHook(metrics.StageHook()))
			rep, err := verify.Run(cmd.Context(), g, expect, opts...)
			if err != nil {
				return err
			}
			metrics.ObserveReport(rep)

			if recordPath != "" {
				st, err := store.Open(recordPath)
				if err != nil {
					return err
				}
				defer st.Close()
				id, err := st.Record(cmd.Context(), rep, store.EdgeDigest(g))
				if err != nil {
					return err
				}
				log.Info("run recorded", "id", id, "db", recordPath)
			}
			if metricsOut != "" {
				if err := metrics.WriteTextfile(metricsOut); err != nil {
					return err
				}
			}

			if err := renderReport(cmd.OutOrStdout(), format, rep); err != nil {
				return err
			}
			if strict && !rep.Passed() {
				return fmt.Errorf("%w: %d checks", errChecksFailed, len(rep.Failed()))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&recordPath, "record", "", "record the run in this SQLite database")
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "write Prometheus metrics to this file")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any check fails")

	return cmd
}
