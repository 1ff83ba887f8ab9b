package expr

import (
	"fmt"

	"github.com/cs-au-dk/zeroinf/interval"
	"github.com/cs-au-dk/zeroinf/utils"
	"github.com/cs-au-dk/zeroinf/utils/dot"
)

var opts = utils.Opts()

func newDotGraph(title string) *dot.DotGraph {
	return &dot.DotGraph{
		Name:  "Expression",
		Title: title,
		Options: map[string]string{
			"minlen":  fmt.Sprint(opts.Minlen()),
			"nodesep": fmt.Sprint(opts.Nodesep()),
			"rankdir": "TB",
		},
	}
}

// layout evaluates n, creating one dot node per expression node. Node IDs are
// prefixed with prefix and numbered in evaluation order.
func layout(n Node, prefix string) (interval.Interval, []*dot.DotNode, []*dot.DotEdge) {
	var (
		nodes []*dot.DotNode
		edges []*dot.DotEdge
		// Dot nodes of evaluated subtrees not yet attached to a parent.
		pending []*dot.DotNode
	)

	res := n.eval(func(n Node, val interval.Interval, _ []interval.Interval) {
		dNode := &dot.DotNode{
			ID: fmt.Sprintf("%sn%d", prefix, len(nodes)),
			Attrs: dot.DotAttrs{
				"label":     n.label() + "\n" + val.Text(),
				"fillcolor": fillColor(val),
			},
		}
		nodes = append(nodes, dNode)

		arity := len(n.children())
		for _, kid := range pending[len(pending)-arity:] {
			edges = append(edges, &dot.DotEdge{From: dNode, To: kid, Attrs: dot.DotAttrs{}})
		}
		pending = append(pending[:len(pending)-arity], dNode)
	})

	return res, nodes, edges
}

// ToDotGraph evaluates n and lays it out as a dot graph, with every node
// labelled by its operator and value.
func ToDotGraph(n Node, title string) *dot.DotGraph {
	dg := newDotGraph(title)
	_, dg.Nodes, dg.Edges = layout(n, "")
	return dg
}

// AssocDotGraph lays out both groupings of an association report side by
// side, each in its own cluster.
func AssocDotGraph(r AssocReport) *dot.DotGraph {
	dg := newDotGraph("associative: " + fmt.Sprint(r.Agree()))

	for _, g := range []struct {
		id string
		n  Node
	}{
		{"right", r.Right},
		{"left", r.Left},
	} {
		val, nodes, edges := layout(g.n, g.id+"_")

		cluster := dot.NewDotCluster(g.id)
		cluster.Nodes = nodes
		cluster.Attrs = dot.DotAttrs{
			"label": g.n.String() + " = " + val.Text(),
			"style": "rounded",
		}
		dg.Clusters = append(dg.Clusters, cluster)
		dg.Edges = append(dg.Edges, edges...)
	}

	return dg
}

func fillColor(i interval.Interval) string {
	switch {
	case i.IsUndefined():
		return "mistyrose"
	case i.Width() == 0:
		return "honeydew"
	}
	return "lightyellow"
}
