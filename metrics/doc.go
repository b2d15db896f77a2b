// Package metrics records per-search statistics.
//
// A Collector wraps one search invocation: Start before the first
// expansion, Visit per expanded cell, Explore per frontier insertion, and
// Finish once the path is known. It never influences the search itself.
//
// Report prints a Summary as the stats panel:
//
//	Algorithm: A*
//	Path Length: 9
//	Nodes Visited: 25
//	Nodes Explored: 25
//	Algorithm Time: 0.000041s
//	Optimal: Yes
package metrics
