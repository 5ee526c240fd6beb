// Package spanning walks a landmark road network depth-first from one start
// landmark and reports whether every landmark can be reached.
//
// A connected network of M landmarks always needs M-1 moves along the walk's
// tree, however many roads it has. Neighbors are tried in ascending label
// order, so the visit order is fully determined by the graph and the start.
// Pass ReferenceStart to reproduce the reference output.
package spanning
