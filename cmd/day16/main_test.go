package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/puzzle"
)

func TestExample(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	var out bytes.Buffer
	require.NoError(t, puzzle.Run(context.Background(), day, []string{"-example"}, &out, log))
	assert.Equal(t, "part 1: 11048\npart 2: 64\n", out.String())
}
