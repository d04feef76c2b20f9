package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQargKeyRoundTrip(t *testing.T) {
	key := QargKey(0, 13)
	assert.Equal(t, "0,13", key)

	qubits, err := ParseQargKey(key)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 13}, qubits)
}

func TestParseQargKeyInvalid(t *testing.T) {
	_, err := ParseQargKey("")
	assert.Error(t, err)

	_, err = ParseQargKey("0,x")
	assert.Error(t, err)
}

func TestTargetGatesSorted(t *testing.T) {
	target := Target{
		"x":       {"0": &InstructionProperties{}},
		"cx":      {"0,1": &InstructionProperties{}},
		"measure": {"0": &InstructionProperties{}},
	}
	assert.Equal(t, []string{"cx", "measure", "x"}, target.Gates())
}

func TestTargetQargsNumericOrder(t *testing.T) {
	target := Target{
		"x": {
			"10": &InstructionProperties{},
			"2":  &InstructionProperties{},
			"0":  &InstructionProperties{},
		},
		"cx": {
			"1,10": &InstructionProperties{},
			"1,2":  &InstructionProperties{},
			"0,1":  &InstructionProperties{},
		},
	}
	assert.Equal(t, []string{"0", "2", "10"}, target.Qargs("x"))
	assert.Equal(t, []string{"0,1", "1,2", "1,10"}, target.Qargs("cx"))
}

func TestTargetLookup(t *testing.T) {
	props := &InstructionProperties{Duration: 3.5e-8, Error: 2e-4}
	target := Target{
		"x":     {"0": props},
		"reset": {"0": nil},
	}

	got, ok := target.Lookup("x", 0)
	require.True(t, ok)
	assert.Equal(t, props, got)

	// present but uncharacterized
	got, ok = target.Lookup("reset", 0)
	assert.True(t, ok)
	assert.Nil(t, got)

	_, ok = target.Lookup("cx", 0, 1)
	assert.False(t, ok)
}

func TestTargetNumInstructions(t *testing.T) {
	target := Target{
		"x":  {"0": nil, "1": nil},
		"cx": {"0,1": nil},
	}
	assert.Equal(t, 3, target.NumInstructions())
}
