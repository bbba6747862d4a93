// Package triroute finds optimal routes in a road network where every road
// carries three weights: distance, travel time and cost.
//
// What does it do?
//
//	For a (source, destination) pair it returns three routes, each optimal
//	under one criterion, and then one compromise route chosen among them by a
//	caller-supplied priority such as (Cost, Time, Distance).
//
// Packages:
//
//	core/        Node, Weights, Route, Criterion, Priority; Builder and immutable Graph
//	dijkstra/    single-criterion PathFinder and interleaved MultiPathFinder
//	compromise/  lexicographic selection among the per-criterion optima
//	solver/      request/result contract, batch solving, optional route cache
//	roadfile/    sectioned text input ([CITIES]/[ROADS]/[REQUESTS]) and output
//	builder/     deterministic network fixtures (Path, Grid, RandomSparse, ...)
//	config/      TOML run configuration
//	logging/     zap logger with optional lumberjack rotation
//	cmd/triroute  command-line front end
//
// Quick example:
//
//	    A ──────── B        A–B: distance 100, time 60, cost 500
//	     \        /
//	      \      /         A–C, C–B: distance 70, time 45, cost 100 each
//	       \    /
//	         C
//
//	DISTANCE:   A -> B       (100 < 140)
//	TIME:       A -> B       (60 < 90)
//	COST:       A -> C -> B  (200 < 500)
//	COMPROMISE (Distance, Time, Cost): A -> B
//	COMPROMISE (Cost, Time, Distance): A -> C -> B
//
//	go install github.com/katalvlaran/triroute/cmd/triroute@latest
package triroute
