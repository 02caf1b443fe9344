// SPDX-License-Identifier: MIT
package telemetry_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgraph/builder"
	"github.com/katalvlaran/symgraph/telemetry"
	"github.com/katalvlaran/symgraph/verify"
)

func TestObserveRun(t *testing.T) {
	m := telemetry.New()
	g, err := builder.BuildGraph(nil, builder.W33())
	require.NoError(t, err)

	rep, err := verify.Run(context.Background(), g, verify.W33(),
		verify.WithProfile("w33"),
		verify.WithStageHook(m.StageHook()),
	)
	require.NoError(t, err)
	m.ObserveReport(rep)

	expected := `
# HELP symgraph_runs_total Verification runs by profile and result
# TYPE symgraph_runs_total counter
symgraph_runs_total{profile="w33",result="pass"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "symgraph_runs_total"))

	expected = `
# HELP symgraph_automorphism_group_order Order of the automorphism group from the last run
# TYPE symgraph_automorphism_group_order gauge
symgraph_automorphism_group_order{profile="w33"} 51840
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "symgraph_automorphism_group_order"))

	// One histogram series per stage that ran.
	n, err := testutil.GatherAndCount(m.Registry(), "symgraph_stage_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 5, n)
	n, err = testutil.GatherAndCount(m.Registry(), "symgraph_checks_total")
	require.NoError(t, err)
	require.Equal(t, len(rep.Checks), n)
}

func TestWriteTextfile(t *testing.T) {
	m := telemetry.New()
	m.StageHook()("spectrum", 0)

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, m.WriteTextfile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `symgraph_stage_duration_seconds_count{stage="spectrum"} 1`)

	require.Error(t, m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "metrics.prom")))
}
