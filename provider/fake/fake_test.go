package fake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/QubitScope/backend"
	"github.com/perclft/QubitScope/provider"
)

func TestProviderEnumeratesLibrary(t *testing.T) {
	p := NewProvider()
	backends := p.Backends()
	require.Len(t, backends, 4)

	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.Name()
	}
	assert.Equal(t, []string{"fake_armonk", "fake_manila", "fake_melbourne", "fake_nairobi"}, names)
}

func TestSearchMelbourne(t *testing.T) {
	b := provider.Search(NewProvider(), "fake_melbourne")
	require.NotNil(t, b)

	assert.Equal(t, 14, b.NumQubits())
	assert.Equal(t, 75, b.MaxCircuits())
	assert.False(t, b.IsSimulator())
	assert.Contains(t, b.OperationNames(), "cx")
	assert.Contains(t, b.OperationNames(), "u2")
}

func TestCouplingMatchesTarget(t *testing.T) {
	b := provider.Search(NewProvider(), "fake_nairobi")
	require.NotNil(t, b)

	cm := b.CouplingMap()
	target := b.Target()
	require.Contains(t, target, "cx")

	// every coupling edge has a characterized cx entry, both directions
	assert.True(t, cm.Contains(0, 1))
	assert.True(t, cm.Contains(1, 0))
	for _, e := range cm.Edges {
		props, ok := target.Lookup("cx", e[0], e[1])
		require.True(t, ok, "missing cx entry for edge %v", e)
		require.NotNil(t, props)
		assert.Greater(t, props.Error, 0.0)
		assert.Greater(t, props.Duration, 0.0)
	}
}

func TestArmonkSingleQubit(t *testing.T) {
	b := provider.Search(NewProvider(), "fake_armonk")
	require.NotNil(t, b)

	assert.Equal(t, 1, b.NumQubits())
	assert.Empty(t, b.CouplingMap().Edges)
	assert.NotContains(t, b.OperationNames(), "cx")

	props, ok := b.Target().Lookup("measure", 0)
	require.True(t, ok)
	require.NotNil(t, props)
	assert.InDelta(t, 2.38e-2, props.Error, 1e-9)
}

func TestUncharacterizedReset(t *testing.T) {
	b := provider.Search(NewProvider(), "fake_manila")
	require.NotNil(t, b)

	props, ok := b.Target().Lookup("reset", 0)
	assert.True(t, ok)
	assert.Nil(t, props)

	errs := backend.GateErrors(b)
	require.Contains(t, errs, "reset")
	assert.Nil(t, errs["reset"]["0"])
}

func TestCalibrationExposed(t *testing.T) {
	b := provider.Search(NewProvider(), "fake_manila")
	c, ok := b.(backend.Calibrated)
	require.True(t, ok)

	cal := c.Calibration()
	require.NotNil(t, cal)
	assert.Len(t, cal.T1, 5)
	assert.InDelta(t, 122.4, cal.T1[0], 1e-9)
	assert.InDelta(t, 2.26e-2, cal.ReadoutError[0], 1e-9)
}
