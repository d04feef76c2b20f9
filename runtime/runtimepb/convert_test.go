package runtimepb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/QubitScope/backend"
	"github.com/perclft/QubitScope/circuit"
)

func TestSnapshotRoundTrip(t *testing.T) {
	snap := &backend.Snapshot{
		Name:           "fake_test",
		Version:        "1.0.2",
		OnlineDate:     time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC),
		NumQubits:      2,
		MaxCircuits:    75,
		DT:             2.2222222222222221e-10,
		DTM:            2.2222222222222221e-10,
		OperationNames: []string{"sx", "cx", "measure", "reset"},
		CouplingEdges:  [][2]int{{0, 1}, {1, 0}},
		Target: backend.Target{
			"sx": {
				"0": &backend.InstructionProperties{Duration: 3.5e-8, Error: 2e-4},
				"1": &backend.InstructionProperties{Duration: 3.5e-8, Error: 3e-4},
			},
			"cx": {
				"0,1": &backend.InstructionProperties{Duration: 4.1e-7, Error: 1.2e-2},
			},
			"reset": {
				"0": nil,
			},
		},
		Calibration: &backend.Calibration{
			LastUpdate:   time.Date(2021, 3, 16, 8, 0, 0, 0, time.UTC),
			T1:           map[int]float64{0: 8.2e-5, 1: 7.4e-5},
			T2:           map[int]float64{0: 6.1e-5, 1: 5.9e-5},
			ReadoutError: map[int]float64{0: 0.02, 1: 0.03},
		},
	}

	got := SnapshotFromProto(SnapshotToProto(snap))
	require.NotNil(t, got)

	assert.Equal(t, snap.Name, got.Name)
	assert.Equal(t, snap.Version, got.Version)
	assert.True(t, snap.OnlineDate.Equal(got.OnlineDate))
	assert.Equal(t, snap.NumQubits, got.NumQubits)
	assert.Equal(t, snap.MaxCircuits, got.MaxCircuits)
	assert.Equal(t, snap.DT, got.DT)
	assert.Equal(t, snap.OperationNames, got.OperationNames)
	assert.Equal(t, snap.CouplingEdges, got.CouplingEdges)
	assert.Equal(t, snap.Target, got.Target)

	require.NotNil(t, got.Calibration)
	assert.True(t, snap.Calibration.LastUpdate.Equal(got.Calibration.LastUpdate))
	assert.Equal(t, snap.Calibration.T1, got.Calibration.T1)
	assert.Equal(t, snap.Calibration.ReadoutError, got.Calibration.ReadoutError)
}

func TestSnapshotUncharacterizedEntrySurvives(t *testing.T) {
	snap := &backend.Snapshot{
		Name:      "bare",
		NumQubits: 1,
		Target: backend.Target{
			"reset": {"0": nil},
		},
	}

	got := SnapshotFromProto(SnapshotToProto(snap))
	props, ok := got.Target.Lookup("reset", 0)
	assert.True(t, ok)
	assert.Nil(t, props)
}

func TestCircuitRoundTrip(t *testing.T) {
	c := circuit.New(2, 2)
	require.NoError(t, c.H(0))
	require.NoError(t, c.X(1))
	require.NoError(t, c.CX(0, 1))
	require.NoError(t, c.MeasureAll())

	pb := CircuitToProto(c)
	require.NotNil(t, pb)
	assert.Contains(t, pb.Qasm, "cx q[0], q[1];")

	got := CircuitFromProto(pb)
	assert.Equal(t, c.NumQubits, got.NumQubits)
	assert.Equal(t, c.NumClbits, got.NumClbits)
	assert.Equal(t, c.Ops, got.Ops)
	assert.Equal(t, c.Hash(), got.Hash())
}

func TestNilConversions(t *testing.T) {
	assert.Nil(t, SnapshotToProto(nil))
	assert.Nil(t, SnapshotFromProto(nil))
	assert.Nil(t, CircuitToProto(nil))
	assert.Nil(t, CircuitFromProto(nil))
}
