// SPDX-License-Identifier: MIT

// Package render draws a matching Result as a text report.
//
// Every call owns its own lipgloss.Renderer bound to the destination writer,
// so concurrent renders to different writers never share color-profile or
// background detection state.
package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/flowmatch/matching"
	"github.com/katalvlaran/flowmatch/network"
)

// ErrNilResult indicates Render was called without a result.
var ErrNilResult = errors.New("render: nil result")

// styles is the per-call palette derived from one renderer.
type styles struct {
	title, header, used, idle, source, sink lipgloss.Style
	border                                  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF00FF")),
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF")).Padding(0, 1),
		used:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00")).Padding(0, 1),
		idle:   r.NewStyle().Foreground(lipgloss.Color("#888888")).Padding(0, 1),
		source: r.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
		sink:   r.NewStyle().Foreground(lipgloss.Color("#00FFFF")),
		border: r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

// Render writes a report of res to w:
//
//   - a title line with label, then the flow moved and the mean cost;
//   - a table of every arc in costs, sorted by (From, To), with its cost and
//     the amount sent along it; arcs that carry flow are highlighted;
//   - the source and sink partitions.
//
// costs should be the table the request was solved with; arcs of
// res.Solution missing from it are still listed.
func Render(w io.Writer, res *matching.Result, costs network.Costs, label string) error {
	if res == nil {
		return ErrNilResult
	}
	r := lipgloss.NewRenderer(w)
	st := newStyles(r)

	var b strings.Builder
	if label != "" {
		b.WriteString(st.title.Render(label))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "flow moved: %d, mean cost: %s\n",
		res.TotalMoved, strconv.FormatFloat(res.AvgCost, 'f', -1, 64))
	if res.SlackUnits > 0 {
		fmt.Fprintf(&b, "unmatched units: %d\n", res.SlackUnits)
	}
	b.WriteByte('\n')

	arcs := sortedArcs(costs, res.Solution)
	rows := make([][]string, len(arcs))
	for i, a := range arcs {
		sent := "-"
		if amount, ok := res.Solution[a]; ok {
			sent = strconv.FormatInt(amount, 10)
		}
		cost := "?"
		if c, ok := costs[a]; ok {
			cost = strconv.FormatInt(c, 10)
		}
		rows[i] = []string{a.From, a.To, cost, sent}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers("FROM", "TO", "COST", "SENT").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.header
			case row >= 0 && row < len(arcs) && res.Solution[arcs[row]] > 0:
				return st.used
			default:
				return st.idle
			}
		})
	b.WriteString(t.String())
	b.WriteString("\n\n")

	sources, sinks := partition(res.Roles)
	fmt.Fprintf(&b, "%s %s\n", st.source.Render("sources:"), strings.Join(sources, ", "))
	fmt.Fprintf(&b, "%s %s\n", st.sink.Render("sinks:  "), strings.Join(sinks, ", "))

	_, err := io.WriteString(w, b.String())

	return err
}

// sortedArcs returns the union of the keys of costs and sol, sorted.
func sortedArcs(costs network.Costs, sol matching.Solution) []network.Arc {
	arcs := make([]network.Arc, 0, len(costs))
	for a := range costs {
		arcs = append(arcs, a)
	}
	for a := range sol {
		if _, ok := costs[a]; !ok {
			arcs = append(arcs, a)
		}
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].From != arcs[j].From {
			return arcs[i].From < arcs[j].From
		}

		return arcs[i].To < arcs[j].To
	})

	return arcs
}

func partition(roles map[string]network.Role) (sources, sinks []string) {
	for id, role := range roles {
		switch role {
		case network.RoleSource:
			sources = append(sources, id)
		case network.RoleSink:
			sinks = append(sinks, id)
		}
	}
	sort.Strings(sources)
	sort.Strings(sinks)

	return sources, sinks
}
