package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/QubitScope/backend"
)

type sliceProvider struct {
	backends []backend.Backend
}

func (p *sliceProvider) Name() string                { return "test" }
func (p *sliceProvider) Backends() []backend.Backend { return p.backends }

func namedBackend(name, version string) backend.Backend {
	return (&backend.Snapshot{Name: name, Version: version, NumQubits: 1}).Backend()
}

func TestSearchFindsBackend(t *testing.T) {
	p := &sliceProvider{backends: []backend.Backend{
		namedBackend("fake_armonk", "1"),
		namedBackend("fake_melbourne", "1"),
	}}

	b := Search(p, "fake_melbourne")
	require.NotNil(t, b)
	assert.Equal(t, "fake_melbourne", b.Name())
}

func TestSearchMissingReturnsNil(t *testing.T) {
	p := &sliceProvider{backends: []backend.Backend{namedBackend("fake_armonk", "1")}}
	assert.Nil(t, Search(p, "fake_osaka"))
}

func TestSearchLastMatchWins(t *testing.T) {
	p := &sliceProvider{backends: []backend.Backend{
		namedBackend("fake_manila", "old"),
		namedBackend("fake_manila", "new"),
	}}

	b := Search(p, "fake_manila")
	require.NotNil(t, b)
	assert.Equal(t, "new", b.Version())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(namedBackend("fake_nairobi", "1"))
	r.Register(namedBackend("ibmq_qasm_simulator", "1"))

	b, ok := r.Get("fake_nairobi")
	require.True(t, ok)
	assert.Equal(t, "fake_nairobi", b.Name())

	_, ok = r.Get("unknown")
	assert.False(t, ok)

	assert.Len(t, r.List(), 2)
}
