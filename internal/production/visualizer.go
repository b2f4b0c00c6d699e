package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/comalice/headless"
)

// DOTVisualizer renders widget charts as Graphviz DOT.
type DOTVisualizer struct{}

// ExportDOT generates DOT source for chart with the current mode highlighted.
// Transitions sharing both ends are merged into one edge.
func (v *DOTVisualizer) ExportDOT(chart headless.Chart, current string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", chart.Widget)
	buf.WriteString(`  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	if chart.Initial != "" {
		buf.WriteString("  \"__start\" [shape=point];\n")
		fmt.Fprintf(&buf, "  \"__start\" -> %q;\n", chart.Initial)
	}

	for _, mode := range chart.Modes {
		style := ""
		if mode == current {
			style = ` style="rounded,filled" fillcolor=lightgreen`
		}
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", mode, mode, style)
	}

	for _, e := range collectEdges(chart) {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the chart.
func (v *DOTVisualizer) ExportJSON(chart headless.Chart) ([]byte, error) {
	return json.MarshalIndent(chart, "", "  ")
}

// Edge is a rendered transition.
type Edge struct {
	From  string
	To    string
	Label string
}

func collectEdges(chart headless.Chart) []Edge {
	type key struct{ from, to string }
	ops := map[key][]string{}
	var order []key
	for _, t := range chart.Transitions {
		k := key{t.From, t.To}
		if _, seen := ops[k]; !seen {
			order = append(order, k)
		}
		ops[k] = append(ops[k], t.Op)
	}
	edges := make([]Edge, 0, len(order))
	for _, k := range order {
		labels := ops[k]
		sort.Strings(labels)
		edges = append(edges, Edge{From: k.from, To: k.to, Label: strings.Join(labels, ", ")})
	}
	return edges
}
