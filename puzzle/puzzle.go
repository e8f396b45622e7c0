package puzzle

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for the harness.
var (
	// ErrMissingInput indicates the selected input file is not embedded.
	ErrMissingInput = errors.New("puzzle: input file not found")

	// ErrNoSolver indicates a Day without a Solve function.
	ErrNoSolver = errors.New("puzzle: day has no solver")
)

// Input file names inside a Day's file system.
const (
	ExampleFile = "inputs/example.txt"
	InputFile   = "inputs/input.txt"
)

// Answer holds both parts of a day's result.
type Answer struct {
	Part1 int
	Part2 int
}

// SolveFunc computes both answers from the raw puzzle text.
type SolveFunc func(ctx context.Context, input string, log logrus.FieldLogger) (Answer, error)

// Day describes one solver binary.
type Day struct {
	Name   string
	Inputs fs.FS
	Solve  SolveFunc
}

// ReadInput returns the example or the full input from fsys.
func ReadInput(fsys fs.FS, example bool) (string, error) {
	name := InputFile
	if example {
		name = ExampleFile
	}
	b, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrMissingInput, name)
	}
	if err != nil {
		return "", fmt.Errorf("puzzle: read %s: %w", name, err)
	}
	return string(b), nil
}

// Run parses args, solves the selected input and writes the answers to stdout.
func Run(ctx context.Context, day Day, args []string, stdout io.Writer, log logrus.FieldLogger) error {
	if day.Solve == nil {
		return fmt.Errorf("%w: %s", ErrNoSolver, day.Name)
	}

	fset := flag.NewFlagSet(day.Name, flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	example := fset.Bool("example", false, "solve the embedded example instead of the full input")
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("puzzle: %w", err)
	}

	input, err := ReadInput(day.Inputs, *example)
	if err != nil {
		return err
	}
	input = strings.TrimRight(input, "\r\n")

	log = log.WithFields(logrus.Fields{"day": day.Name, "example": *example})
	log.Debug("solving")

	ans, err := day.Solve(ctx, input, log)
	if err != nil {
		return fmt.Errorf("%s: %w", day.Name, err)
	}

	_, err = fmt.Fprintf(stdout, "part 1: %d\npart 2: %d\n", ans.Part1, ans.Part2)
	return err
}

// NewLogger returns the stderr text logger used by the binaries.
func NewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Main runs day with the process arguments and exits non-zero on error.
func Main(day Day) {
	log := NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := Run(ctx, day, os.Args[1:], os.Stdout, log); err != nil {
		log.Fatal(err)
	}
}
