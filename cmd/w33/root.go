package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/symgraph/builder"
	"github.com/katalvlaran/symgraph/config"
	"github.com/katalvlaran/symgraph/core"
)

const (
	formatAuto  = "auto"
	formatJSON  = "json"
	formatTable = "table"
)

// rootFlags are shared by all subcommands.
type rootFlags struct {
	profile  string
	format   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "w33",
		Short:         "Build and verify the symplectic graph W(3,3)",
		Long:          `w33 enumerates the 40 points of PG(3,3), joins them under an alternating form over GF(3) and checks the strongly-regular parameters, spectrum and automorphism group of the result.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flags.profile, "profile", "", "profile YAML file (default: embedded w33)")
	pf.StringVar(&flags.format, "format", formatAuto, "output format: auto, json or table")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newVerifyCmd(flags),
		newPointsCmd(flags),
		newLinesCmd(flags),
		newSpectrumCmd(flags),
		newHistoryCmd(flags),
		newProfileCmd(flags),
	)

	return root
}

func (f *rootFlags) logger(w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(f.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", f.logLevel, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func (f *rootFlags) loadProfile() (*config.Profile, error) {
	return config.Load(f.profile)
}

// outputFormat resolves "auto" to table on a terminal and JSON otherwise.
func (f *rootFlags) outputFormat(w io.Writer) (string, error) {
	switch strings.ToLower(f.format) {
	case formatJSON:
		return formatJSON, nil
	case formatTable:
		return formatTable, nil
	case formatAuto, "":
		if file, ok := w.(*os.File); ok && (isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())) {
			return formatTable, nil
		}
		return formatJSON, nil
	default:
		return "", fmt.Errorf("--format %q: want auto, json or table", f.format)
	}
}

// buildGraph constructs the profile's graph.
func buildGraph(p *config.Profile) (*core.Graph, error) {
	cons, err := p.Constructor()
	if err != nil {
		return nil, err
	}

	return builder.BuildGraph(p.BuilderOptions(), cons)
}
