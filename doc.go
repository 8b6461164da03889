// Package acr decomposes a tile map into a tree of convex, obstruction-free
// rectangles (Adaptive Convex Regioning), so a pathfinder can plan over a
// handful of regions instead of every cell.
//
// What is in the box?
//
//	A small, deterministic pipeline:
//		• Grid: classified cells (water, land, unseen, claimed) with atomic claims
//		• Feelers: four cardinal probes that sketch a region around a seed
//		• Shrink: edge recession that clears the sketch and hugs the coastline
//		• Child seeds: openings along a finished region's border
//		• Region tree: depth-first growth from the home hill, with budgets
//		• Region graph: waypoints on region borders joined by Manhattan edges
//
// Layout:
//
//	grid/        Grid, Cell, Point, Rect, Claim/TryClaim, free components
//	region/      Feel, Shrink, ChildSeeds, Build, Tree queries and metrics
//	regiongraph/ Assemble a weighted undirected graph from a Tree
//	converters/  export a region graph to gonum/graph
//	mapfile/     load Ants .map files
//	cmd/acr/     command line: map in, JSON summary out
//
// Quick ASCII example:
//
//	. . . . . . . . . .     1 1 1 1 1 1 1 1 1 1
//	. . H . . . . . . .     1 1 1 1 1 1 1 1 1 1
//	. . . . . . . . . .     1 1 1 1 1 1 1 1 1 1
//	% % % % . . % % % %     % % % % 2 2 % % % %
//	. . . . . . . . . .     3 3 3 3 2 2 4 4 4 4
//	. . . . . . . . . .     3 3 3 3 2 2 4 4 4 4
//
//	a hill H in an upper room yields four regions: the room, the doorway
//	corridor and the two halves of the lower room.
//
//	go run ./cmd/acr -map mapfile/testdata/tworooms.map -graph
package acr
