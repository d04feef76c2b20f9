package backend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Name:           "fake_testville",
		Version:        "1.0.2",
		OnlineDate:     time.Date(2019, 7, 4, 0, 0, 0, 0, time.UTC),
		NumQubits:      2,
		MaxCircuits:    75,
		DT:             2.2222222222222221e-10,
		DTM:            2.2222222222222221e-10,
		OperationNames: []string{"x", "cx", "measure", "reset"},
		CouplingEdges:  [][2]int{{0, 1}, {1, 0}},
		Target: Target{
			"x": {
				"0": &InstructionProperties{Duration: 3.55e-8, Error: 2.1e-4},
				"1": &InstructionProperties{Duration: 3.55e-8, Error: 3.4e-4},
			},
			"cx": {
				"0,1": &InstructionProperties{Duration: 4.97e-7, Error: 1.2e-2},
				"1,0": &InstructionProperties{Duration: 5.33e-7, Error: 1.2e-2},
			},
			"measure": {
				"0": &InstructionProperties{Duration: 5.3e-6, Error: 2.5e-2},
				"1": &InstructionProperties{Duration: 5.3e-6, Error: 3.1e-2},
			},
			"reset": {
				"0": nil,
				"1": nil,
			},
		},
		Calibration: &Calibration{
			T1:           map[int]float64{0: 85.3, 1: 92.1},
			T2:           map[int]float64{0: 60.7, 1: 71.4},
			ReadoutError: map[int]float64{0: 2.5e-2, 1: 3.1e-2},
		},
	}
}

func TestCollectInfo(t *testing.T) {
	b := testSnapshot().Backend()
	info := CollectInfo(b)

	assert.Equal(t, "fake_testville", info.Name)
	assert.Equal(t, "1.0.2", info.Version)
	assert.Equal(t, 2, info.NumQubits)
	assert.Equal(t, 75, info.MaxCircuits)
	assert.InDelta(t, 2.2222222222222221e-10, info.DT, 1e-20)
	assert.Equal(t, []string{"x", "cx", "measure", "reset"}, info.OperationNames)
	require.NotNil(t, info.CouplingMap)
	assert.True(t, info.CouplingMap.Contains(0, 1))
	assert.Equal(t, 8, info.Target.NumInstructions())
}

func TestInfoPrint(t *testing.T) {
	info := CollectInfo(testSnapshot().Backend())
	out := info.String()

	assert.Contains(t, out, "Name: fake_testville")
	assert.Contains(t, out, "Version: 1.0.2")
	assert.Contains(t, out, "Max circuits per job: 75")
	assert.Contains(t, out, "Number of qubits: 2")
	assert.Contains(t, out, "Input signals: 2.2222222222222221e-10")
	assert.Contains(t, out, "0 -> 1")
	assert.Contains(t, out, "Operations names: x, cx, measure, reset")
	assert.Contains(t, out, "Qubit(s) 0,1: duration=4.97e-07, error=0.012")
	// uncharacterized instructions keep the None rendering
	assert.Contains(t, out, "Qubit(s) 0: duration=None, error=None")
}

func TestGateErrors(t *testing.T) {
	b := testSnapshot().Backend()
	errs := GateErrors(b)

	require.Contains(t, errs, "cx")
	require.NotNil(t, errs["cx"]["0,1"])
	assert.InDelta(t, 1.2e-2, *errs["cx"]["0,1"], 1e-9)

	require.Contains(t, errs, "reset")
	var nilErr *float64
	assert.Equal(t, nilErr, errs["reset"]["0"])
}

func TestSnapshotOfRoundTrip(t *testing.T) {
	snap := testSnapshot()
	again := SnapshotOf(snap.Backend())

	assert.Equal(t, snap.Name, again.Name)
	assert.Equal(t, snap.NumQubits, again.NumQubits)
	assert.Equal(t, snap.OperationNames, again.OperationNames)
	assert.Equal(t, snap.CouplingEdges, again.CouplingEdges)
	assert.Equal(t, snap.Target, again.Target)
	require.NotNil(t, again.Calibration)
	assert.Equal(t, snap.Calibration.T1, again.Calibration.T1)
}
