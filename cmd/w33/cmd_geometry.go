package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symgraph/projective"
	"github.com/katalvlaran/symgraph/verify"
)

func newPointsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "points",
		Short: "List the projective points with their vertex IDs and degrees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			pts, err := projective.Points()
			if err != nil {
				return err
			}

			rows := make([]pointRow, len(pts))
			for i, pt := range pts {
				id, err := g.VertexAt(i)
				if err != nil {
					return err
				}
				deg, err := g.Degree(id)
				if err != nil {
					return err
				}
				rows[i] = pointRow{Index: i, ID: id, Coordinates: pt.String(), Degree: deg}
			}

			return renderPoints(cmd.OutOrStdout(), format, rows)
		},
	}
}

func newLinesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "List the totally isotropic lines of the profile's form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := flags.outputFormat(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			p, err := flags.loadProfile()
			if err != nil {
				return err
			}
			f, err := p.SymplecticForm()
			if err != nil {
				return err
			}
			pts, err := projective.Points()
			if err != nil {
				return err
			}
			lines, err := projective.Lines(f, pts)
			if err != nil {
				return err
			}

			rows := make([][]string, len(lines))
			for i, ln := range lines {
				row := make([]string, 0, len(ln))
				for _, pos := range ln {
					row = append(row, pts[pos].String())
				}
				rows[i] = row
			}

			return renderLines(cmd.OutOrStdout(), format, f.String(), rows)
		},
	}
}

func newSpectrumCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "spectrum",
		Short: "Print the adjacency spectrum and the closed-form SRG prediction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			numeric, err := verify.Spectrum(g)
			if err != nil {
				return err
			}
			out := spectrumView{Numeric: numeric}
			if srg, ok := verify.IsStronglyRegular(g); ok {
				out.SRG = &srg
				if closed, ok := verify.SRGSpectrum(srg); ok {
					out.ClosedForm = closed
				}
			}

			return renderSpectrum(cmd.OutOrStdout(), format, out)
		},
	}
}

func newProfileCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Print the resolved profile as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := flags.loadProfile()
			if err != nil {
				return err
			}
			raw, err := p.YAML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(raw))

			return err
		},
	}
}
