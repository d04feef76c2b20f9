package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/QubitScope/provider"
	"github.com/perclft/QubitScope/provider/fake"
	"github.com/perclft/QubitScope/runtime"
)

func TestRunKeyDeterministic(t *testing.T) {
	c := bellish(t)
	opts := runtime.NewOptions(1024, nil)

	a, err := RunKey("ibmq_qasm_simulator", c, opts)
	require.NoError(t, err)
	b, err := RunKey("ibmq_qasm_simulator", bellish(t), runtime.NewOptions(1024, nil))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestRunKeySeparatesIdealFromNoisy(t *testing.T) {
	noisy := provider.Search(fake.NewProvider(), "fake_melbourne")
	require.NotNil(t, noisy)

	c := bellish(t)
	ideal, err := RunKey("ibmq_qasm_simulator", c, runtime.NewOptions(1024, nil))
	require.NoError(t, err)
	withNoise, err := RunKey("ibmq_qasm_simulator", c, runtime.NewOptions(1024, noisy))
	require.NoError(t, err)

	assert.NotEqual(t, ideal, withNoise)
}

func TestRunKeyVariesWithInputs(t *testing.T) {
	c := bellish(t)
	base, err := RunKey("ibmq_qasm_simulator", c, runtime.NewOptions(1024, nil))
	require.NoError(t, err)

	otherBackend, err := RunKey("fake_melbourne", c, runtime.NewOptions(1024, nil))
	require.NoError(t, err)
	assert.NotEqual(t, base, otherBackend)

	otherShots, err := RunKey("ibmq_qasm_simulator", c, runtime.NewOptions(512, nil))
	require.NoError(t, err)
	assert.NotEqual(t, base, otherShots)
}
