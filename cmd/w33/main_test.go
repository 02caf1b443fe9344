package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestVerifyJSON(t *testing.T) {
	out, err := run(t, "verify", "--format", "json")
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	require.EqualValues(t, 40, m["vertex_count"])
	require.EqualValues(t, 12, m["degree"])
	require.EqualValues(t, 2, m["lambda"])
	require.EqualValues(t, 4, m["mu"])
	require.EqualValues(t, 51840, m["automorphism_group_order"])
	require.Equal(t, true, m["is_strongly_regular"])
	require.Equal(t, "w33", m["profile"])
}

func TestVerifyTableRecordAndHistory(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "runs.db")
	metrics := filepath.Join(dir, "metrics.prom")

	out, err := run(t, "verify", "--format", "table", "--record", db, "--metrics-out", metrics)
	require.NoError(t, err)
	require.Contains(t, out, "PASS")
	require.Contains(t, out, "automorphism_group_order")

	raw, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(raw), `symgraph_runs_total{profile="w33",result="pass"} 1`)

	out, err = run(t, "history", "--db", db, "--format", "json")
	require.NoError(t, err)
	var runs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 1)
	require.Equal(t, true, runs[0]["passed"])

	out, err = run(t, "history", "--db", db, "--drift", "--format", "table")
	require.NoError(t, err)
	require.Contains(t, out, "w33: 1 runs, 1 distinct graphs")

	_, err = run(t, "history")
	require.Error(t, err)
}

func TestStrictFailsOnMismatch(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "complement.yaml")
	src := `
name: complement
form:
  pairs: [[0, 2], [1, 3]]
rule: non-orthogonal
expect:
  vertex_count: 40
  degree: 12
  lambda: 2
  mu: 4
search:
  skip_automorphisms: true
`
	require.NoError(t, os.WriteFile(profile, []byte(src), 0o644))

	out, err := run(t, "verify", "--profile", profile, "--format", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"degree": 27`)

	_, err = run(t, "verify", "--profile", profile, "--format", "json", "--strict")
	require.ErrorIs(t, err, errChecksFailed)
}

func TestGeometryCommands(t *testing.T) {
	out, err := run(t, "points", "--format", "json")
	require.NoError(t, err)
	var pts []pointRow
	require.NoError(t, json.Unmarshal([]byte(out), &pts))
	require.Len(t, pts, 40)
	require.Equal(t, "0001", pts[0].Coordinates)
	require.Equal(t, 12, pts[0].Degree)

	out, err = run(t, "lines", "--format", "json")
	require.NoError(t, err)
	var lines struct {
		Form  string     `json:"form"`
		Lines [][]string `json:"lines"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &lines))
	require.Len(t, lines.Lines, 40)
	require.Equal(t, "x0y2-x2y0+x1y3-x3y1", lines.Form)

	out, err = run(t, "spectrum", "--format", "table")
	require.NoError(t, err)
	require.Contains(t, out, "12^1 2^24 -4^15")
	require.Contains(t, out, "SRG(40,12,2,4)")

	out, err = run(t, "profile")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "name: w33"))
}

func TestBadFlags(t *testing.T) {
	_, err := run(t, "verify", "--format", "xml")
	require.Error(t, err)
	_, err = run(t, "verify", "--log-level", "loud")
	require.Error(t, err)
	_, err = run(t, "verify", "--profile", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
