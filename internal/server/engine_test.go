package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/QubitScope/circuit"
)

func TestStubEngineCounts(t *testing.T) {
	c := circuit.New(2, 2)
	require.NoError(t, c.H(0))
	require.NoError(t, c.MeasureAll())

	engine := &StubEngine{}
	counts, err := engine.Execute(context.Background(), &ExecRequest{Circuit: c, Shots: 1024})
	require.NoError(t, err)

	assert.Equal(t, 512, counts["00"])
	assert.Equal(t, 512, counts["11"])

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 1024, total)
}

func TestStubEngineOddShots(t *testing.T) {
	c := circuit.New(1, 1)
	require.NoError(t, c.X(0))
	require.NoError(t, c.MeasureAll())

	engine := &StubEngine{}
	counts, err := engine.Execute(context.Background(), &ExecRequest{Circuit: c, Shots: 101})
	require.NoError(t, err)

	assert.Equal(t, 50, counts["0"])
	assert.Equal(t, 51, counts["1"])
}

func TestStubEngineHonorsCancellation(t *testing.T) {
	c := circuit.New(1, 1)
	require.NoError(t, c.X(0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := &StubEngine{PerOpDelay: time.Second}
	_, err := engine.Execute(ctx, &ExecRequest{Circuit: c, Shots: 8})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueueScoreOrdering(t *testing.T) {
	now := time.Now()

	// higher priority always outranks lower
	assert.Greater(t, Score(2, now), Score(1, now))

	// within a priority, earlier submissions pop first
	earlier := Score(1, now.Add(-time.Minute))
	later := Score(1, now)
	assert.Greater(t, earlier, later)
}
