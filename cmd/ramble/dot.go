package main

import (
	"fmt"
	"strings"

	"github.com/asrivast28/ramble-go/bnet"
)

// writeDOT renders g as Graphviz DOT per spec §6: undirected edges as
// `u -- v`, directed edges as `u -> v`, vertex order matching names' order.
func writeDOT(g *bnet.Graph, names []string) string {
	var b strings.Builder
	b.WriteString("digraph ramble {\n")
	for v := 0; v < g.N(); v++ {
		for _, u := range g.OutNeighbors(v) {
			if g.IsUndirected(v, u) {
				if u <= v {
					continue // emit each undirected edge once
				}
				fmt.Fprintf(&b, "  %s -- %s;\n", names[v], names[u])
				continue
			}
			fmt.Fprintf(&b, "  %s -> %s;\n", names[v], names[u])
		}
	}
	b.WriteString("}\n")
	return b.String()
}
