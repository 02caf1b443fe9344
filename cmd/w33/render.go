package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/symgraph/store"
	"github.com/katalvlaran/symgraph/verify"
)

var (
	colorPass   = lipgloss.Color("#2CD7C7")
	colorFail   = lipgloss.Color("#E74C3C")
	colorWarn   = lipgloss.Color("#F4D03F")
	colorBorder = lipgloss.Color("#16858E")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorPass)
	styleHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

type pointRow struct {
	Index       int    `json:"index"`
	ID          string `json:"id"`
	Coordinates string `json:"coordinates"`
	Degree      int    `json:"degree"`
}

type spectrumView struct {
	SRG        *verify.SRG         `json:"srg,omitempty"`
	Numeric    []verify.Eigenvalue `json:"eigenvalues"`
	ClosedForm []verify.Eigenvalue `json:"closed_form,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		})
}

func outcomeStyle(o verify.Outcome) lipgloss.Style {
	switch o {
	case verify.OutcomePass:
		return lipgloss.NewStyle().Foreground(colorPass)
	case verify.OutcomeSkipped:
		return lipgloss.NewStyle().Foreground(colorWarn)
	default:
		return lipgloss.NewStyle().Foreground(colorFail)
	}
}

func show(v any) string {
	if v == nil {
		return "-"
	}
	switch x := v.(type) {
	case []verify.Eigenvalue:
		return formatSpectrum(x)
	case []int:
		parts := make([]string, len(x))
		for i, n := range x {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(x)
	}
}

func formatSpectrum(s []verify.Eigenvalue) string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = fmt.Sprintf("%s^%d", strconv.FormatFloat(e.Value, 'g', -1, 64), e.Multiplicity)
	}

	return strings.Join(parts, " ")
}

func renderReport(w io.Writer, format string, r *verify.Report) error {
	if format == formatJSON {
		return writeJSON(w, r)
	}

	title := "W(3,3) verification"
	if r.Profile != "" {
		title = "profile " + r.Profile
	}
	verdict := lipgloss.NewStyle().Foreground(colorPass).Render("PASS")
	if !r.Passed() {
		verdict = lipgloss.NewStyle().Foreground(colorFail).Render(fmt.Sprintf("FAIL (%d)", len(r.Failed())))
	}
	fmt.Fprintf(w, "%s  %s\n", styleTitle.Render(title), verdict)
	fmt.Fprintf(w, "vertices %d, edges %d, strongly regular %t\n", r.VertexCount, r.EdgeCount, r.IsStronglyRegular)

	t := newTable("check", "outcome", "expected", "observed", "detail")
	for _, c := range r.Checks {
		t.Row(c.Name, outcomeStyle(c.Outcome).Render(string(c.Outcome)), show(c.Expected), show(c.Observed), c.Detail)
	}
	_, err := fmt.Fprintln(w, t)

	return err
}

func renderPoints(w io.Writer, format string, rows []pointRow) error {
	if format == formatJSON {
		return writeJSON(w, rows)
	}
	t := newTable("#", "id", "coordinates", "degree")
	for _, r := range rows {
		t.Row(strconv.Itoa(r.Index), r.ID, r.Coordinates, strconv.Itoa(r.Degree))
	}
	_, err := fmt.Fprintln(w, t)

	return err
}

func renderLines(w io.Writer, format, form string, lines [][]string) error {
	if format == formatJSON {
		return writeJSON(w, struct {
			Form  string     `json:"form"`
			Lines [][]string `json:"lines"`
		}{form, lines})
	}
	fmt.Fprintf(w, "%s  %d lines of ω = %s\n", styleTitle.Render("isotropic lines"), len(lines), form)
	t := newTable("#", "points")
	for i, ln := range lines {
		t.Row(strconv.Itoa(i), strings.Join(ln, " "))
	}
	_, err := fmt.Fprintln(w, t)

	return err
}

func renderSpectrum(w io.Writer, format string, s spectrumView) error {
	if format == formatJSON {
		return writeJSON(w, s)
	}
	t := newTable("source", "spectrum")
	t.Row("numeric", formatSpectrum(s.Numeric))
	if s.SRG != nil {
		t.Row(fmt.Sprintf("SRG(%d,%d,%d,%d)", s.SRG.V, s.SRG.K, s.SRG.Lambda, s.SRG.Mu), formatSpectrum(s.ClosedForm))
	}
	_, err := fmt.Fprintln(w, t)

	return err
}

type runView struct {
	ID         string `json:"id"`
	Profile    string `json:"profile"`
	CreatedAt  string `json:"created_at"`
	Passed     bool   `json:"passed"`
	EdgeDigest string `json:"edge_digest"`
}

func renderHistory(w io.Writer, format string, runs []store.Run) error {
	views := make([]runView, len(runs))
	for i, r := range runs {
		views[i] = runView{
			ID:         r.ID,
			Profile:    r.Profile,
			CreatedAt:  r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			Passed:     r.Passed,
			EdgeDigest: r.EdgeDigest,
		}
	}
	if format == formatJSON {
		return writeJSON(w, views)
	}
	t := newTable("id", "profile", "created", "result", "digest")
	for _, v := range views {
		result := outcomeStyle(verify.OutcomePass).Render("pass")
		if !v.Passed {
			result = outcomeStyle(verify.OutcomeMismatch).Render("fail")
		}
		t.Row(v.ID, v.Profile, v.CreatedAt, result, shortDigest(v.EdgeDigest))
	}
	_, err := fmt.Fprintln(w, t)

	return err
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}

	return d
}

func renderDrift(w io.Writer, format string, d store.Drift) error {
	if format == formatJSON {
		return writeJSON(w, struct {
			Profile string   `json:"profile"`
			Runs    int      `json:"runs"`
			Digests []string `json:"digests"`
			Drifted bool     `json:"drifted"`
		}{d.Profile, d.Runs, d.Digests, d.Drifted()})
	}
	state := outcomeStyle(verify.OutcomePass).Render("stable")
	if d.Drifted() {
		state = outcomeStyle(verify.OutcomeMismatch).Render("drifted")
	}
	_, err := fmt.Fprintf(w, "%s: %d runs, %d distinct graphs, %s\n", d.Profile, d.Runs, len(d.Digests), state)

	return err
}
