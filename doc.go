// Package lvlgrid is a small toolkit of grid simulations and searches built
// around one shared 2-D grid model.
//
// What is inside?
//
//	grid/    generic row-major Grid[T], Vec/Position coordinates, the
//	          four-direction ring, text parsing
//	guard/   step-by-step patrol simulator with loop detection and a
//	          parallel search for loop-inducing obstacles
//	region/  connected-region labeling (union-find, relabel, flood fill)
//	          with area, perimeter and straight-side counts
//	maze/    minimum-cost routes under a step/turn cost model, every
//	          optimal tile reported; wavefront search plus a Dijkstra reference
//	puzzle/  shared command-line harness for the cmd/ binaries
//
// Each cmd/dayNN binary embeds an example input and solves it with
//
//	go run ./cmd/day16 -example
//
// Libraries take functional options, return sentinel errors wrapped with
// context and log through a logrus.FieldLogger that is silent by default.
package lvlgrid
