// Package puzzle is the shared command-line harness for the per-day solver
// binaries under cmd/.
//
// A Day bundles a name, an embedded file system holding inputs/example.txt
// (and optionally inputs/input.txt), and a Solve function. Main parses the
// single -example flag, picks the matching input, runs Solve and prints
//
//	part 1: <answer>
//	part 2: <answer>
//
// on stdout. Diagnostics go to stderr through logrus; any error is fatal.
package puzzle
