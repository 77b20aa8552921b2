// Package lagoon measures the area enclosed by very large rectilinear loops
// without ever materialising their bounding box.
//
// What is inside:
//
//	compressed/  run-length Axis[T] and Grid[T] with range and rectangle writes
//	trench/      Paint a loop of (direction, length) edges into a Grid, Scan it for area
//	digplan/     parse "<D> <L> (#rrggbb)" dig plans, plain and hex readings
//	gridgraph/   dense grid-as-graph utilities, used as a brute-force reference
//	cmd/lagoon   command line front end (area, render)
//
// Quick ASCII example, plan R 2, D 2, L 2, U 2:
//
//	F-7
//	|.|
//	L-J
//
// encloses 9 cells, trench included.
//
//	go install github.com/katalvlaran/lagoon/cmd/lagoon@latest
//	lagoon area plan.txt
package lagoon
