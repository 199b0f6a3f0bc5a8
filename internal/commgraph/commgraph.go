// Package commgraph measures stakeholder dependency as mean degree
// centrality over the sender/recipient communication graph.
package commgraph

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/stat"

	"autoready/internal/domain"
)

// MeanDegreeCentrality builds an undirected simple graph with one edge per
// event from the sender to the first recipient only (broader fan-out is
// deliberately ignored) and returns the mean of degree(n)/(nodes-1) over
// all nodes. Graphs with fewer than two nodes score 0.0.
//
// A fresh graph is constructed per call, so concurrent department
// extractions never share state.
func MeanDegreeCentrality(comms domain.CommunicationBundle) float64 {
	g := simple.NewUndirectedGraph()
	ids := make(map[string]int64)

	node := func(name string) simple.Node {
		id, ok := ids[name]
		if !ok {
			id = int64(len(ids))
			ids[name] = id
			g.AddNode(simple.Node(id))
		}
		return simple.Node(id)
	}
	addEdge := func(ev domain.CommunicationEvent) {
		if len(ev.Recipients) == 0 {
			return
		}
		from := node(ev.Sender)
		to := node(ev.Recipients[0])
		if from == to {
			return // simple graph: self-messages add the node but no edge
		}
		g.SetEdge(simple.Edge{F: from, T: to})
	}

	for _, ev := range comms.Emails {
		addEdge(ev)
	}
	for _, ev := range comms.Chats {
		addEdge(ev)
	}

	n := g.Nodes().Len()
	if n < 2 {
		return 0.0
	}

	centralities := make([]float64, 0, n)
	it := g.Nodes()
	for it.Next() {
		degree := g.From(it.Node().ID()).Len()
		centralities = append(centralities, float64(degree)/float64(n-1))
	}
	return stat.Mean(centralities, nil)
}
