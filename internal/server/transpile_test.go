package server

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/QubitScope/backend"
	"github.com/perclft/QubitScope/circuit"
	"github.com/perclft/QubitScope/provider"
	"github.com/perclft/QubitScope/provider/fake"
)

func bellish(t *testing.T) *circuit.Circuit {
	t.Helper()
	c := circuit.New(2, 2)
	require.NoError(t, c.H(0))
	require.NoError(t, c.X(1))
	require.NoError(t, c.CX(0, 1))
	require.NoError(t, c.MeasureAll())
	return c
}

func TestTranspileModernBasis(t *testing.T) {
	b := provider.Search(fake.NewProvider(), "fake_nairobi")
	require.NotNil(t, b)

	out, err := Transpile(b, bellish(t))
	require.NoError(t, err)

	// h expands to rz, sx, rz; x, cx, and the measures pass through
	require.Equal(t, 8, out.NumOps())
	assert.Equal(t, "rz", out.Ops[0].Name)
	assert.Equal(t, "sx", out.Ops[1].Name)
	assert.Equal(t, "rz", out.Ops[2].Name)
	assert.InDelta(t, math.Pi/2, out.Ops[0].Params[0], 1e-12)
	assert.Equal(t, "x", out.Ops[3].Name)
	assert.Equal(t, "cx", out.Ops[4].Name)
	assert.Equal(t, "measure", out.Ops[5].Name)
}

func TestTranspileLegacyBasis(t *testing.T) {
	b := provider.Search(fake.NewProvider(), "fake_melbourne")
	require.NotNil(t, b)

	out, err := Transpile(b, bellish(t))
	require.NoError(t, err)

	assert.Equal(t, "u2", out.Ops[0].Name)
	assert.Equal(t, []float64{0, math.Pi}, out.Ops[0].Params)
	assert.Equal(t, "u3", out.Ops[1].Name)
	assert.Equal(t, "cx", out.Ops[2].Name)
}

func TestTranspileRejectsUncoupledPair(t *testing.T) {
	b := provider.Search(fake.NewProvider(), "fake_nairobi")
	require.NotNil(t, b)

	c := circuit.New(7, 0)
	require.NoError(t, c.CX(0, 6))

	_, err := Transpile(b, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not coupled")
}

func TestTranspileSimulatorIsFullyConnected(t *testing.T) {
	snap := &backend.Snapshot{
		Name:           "sim",
		NumQubits:      32,
		Simulator:      true,
		OperationNames: []string{"h", "x", "cx", "measure"},
	}

	out, err := Transpile(snap.Backend(), bellish(t))
	require.NoError(t, err)
	assert.Equal(t, 5, out.NumOps())
}

func TestTranspileRejectsUnknownGate(t *testing.T) {
	b := provider.Search(fake.NewProvider(), "fake_nairobi")
	require.NotNil(t, b)

	c := circuit.New(2, 0)
	require.NoError(t, c.SWAP(0, 1))

	_, err := Transpile(b, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be expressed")
}
