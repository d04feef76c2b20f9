package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/QubitScope/backend"
	"github.com/perclft/QubitScope/provider"
	"github.com/perclft/QubitScope/provider/fake"
)

func TestFromBackend(t *testing.T) {
	b := provider.Search(fake.NewProvider(), "fake_melbourne")
	require.NotNil(t, b)

	m := FromBackend(b)

	assert.Equal(t, b.OperationNames(), m.BasisGates)
	assert.Equal(t, b.CouplingMap().Edges, m.Connectivity)

	require.Contains(t, m.GateErrors, "cx")
	props, ok := b.Target().Lookup("cx", 1, 0)
	require.True(t, ok)
	require.NotNil(t, props)
	assert.InDelta(t, props.Error, m.GateErrors["cx"][backend.QargKey(1, 0)], 1e-12)

	// uncharacterized instructions do not contribute entries
	assert.NotContains(t, m.GateErrors, "reset")

	require.Len(t, m.ReadoutErrors, 14)
	require.Len(t, m.T1, 14)
	require.Len(t, m.T2, 14)
}

func TestFromBackendWithoutCalibration(t *testing.T) {
	snap := &backend.Snapshot{
		Name:           "bare",
		NumQubits:      1,
		OperationNames: []string{"x", "measure"},
		Target: backend.Target{
			"x": {"0": &backend.InstructionProperties{Error: 1e-3}},
		},
	}
	m := FromBackend(snap.Backend())

	assert.Equal(t, []string{"x", "measure"}, m.BasisGates)
	assert.InDelta(t, 1e-3, m.GateErrors["x"]["0"], 1e-12)
	assert.Empty(t, m.Connectivity)
	assert.Nil(t, m.ReadoutErrors)
}
