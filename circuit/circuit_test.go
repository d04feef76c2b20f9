package circuit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bellish(t *testing.T) *Circuit {
	t.Helper()
	c := New(2, 2)
	require.NoError(t, c.H(0))
	require.NoError(t, c.X(1))
	require.NoError(t, c.CX(0, 1))
	require.NoError(t, c.MeasureAll())
	return c
}

func TestBuilder(t *testing.T) {
	c := bellish(t)
	assert.Equal(t, 5, c.NumOps()) // h, x, cx, two measures
	assert.Equal(t, "h", c.Ops[0].Name)
	assert.Equal(t, []int{0, 1}, c.Ops[2].Qubits)
	assert.Equal(t, []int{1}, c.Ops[4].Clbits)
}

func TestQubitRangeChecked(t *testing.T) {
	c := New(2, 2)
	assert.Error(t, c.H(2))
	assert.Error(t, c.CX(0, -1))
	assert.Error(t, c.Measure(0, 5))
	assert.Equal(t, 0, c.NumOps())
}

func TestMeasureAllGrowsClassicalRegister(t *testing.T) {
	c := New(3, 0)
	require.NoError(t, c.MeasureAll())
	assert.Equal(t, 3, c.NumClbits)
	assert.Equal(t, 3, c.NumOps())
}

func TestQASM(t *testing.T) {
	c := bellish(t)
	require.NoError(t, c.RZ(math.Pi/2, 0))

	qasm := c.QASM()
	assert.Contains(t, qasm, "OPENQASM 3.0;")
	assert.Contains(t, qasm, "qubit[2] q;")
	assert.Contains(t, qasm, "bit[2] c;")
	assert.Contains(t, qasm, "h q[0];")
	assert.Contains(t, qasm, "cx q[0], q[1];")
	assert.Contains(t, qasm, "c[1] = measure q[1];")
	assert.Contains(t, qasm, "rz(1.5707963267948966) q[0];")
}

func TestHashStableAndDistinct(t *testing.T) {
	a := bellish(t)
	b := bellish(t)
	assert.Equal(t, a.Hash(), b.Hash())

	require.NoError(t, b.Z(0))
	assert.NotEqual(t, a.Hash(), b.Hash())
}
