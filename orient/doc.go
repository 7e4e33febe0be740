// Package orient implements the Graph Orienter (component F): turning an
// undirected skeleton into a partially directed network. It runs in three
// phases — v-structure detection, directed-cycle breaking, and iterative
// application of Meek's rules — grounded on
// original_source/detail/BayesianNetwork.hpp, reworked from boost::graph's
// filtered_graph/tiernan_all_cycles onto bnet.Graph/bnet.DirectedView.
package orient
