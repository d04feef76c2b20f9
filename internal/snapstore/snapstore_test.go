package snapstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/QubitScope/backend"
	"github.com/perclft/QubitScope/provider"
	"github.com/perclft/QubitScope/provider/fake"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openStore(t)

	b := provider.Search(fake.NewProvider(), "fake_manila")
	require.NotNil(t, b)
	snap := backend.SnapshotOf(b)

	require.NoError(t, s.Put(snap))

	got, err := s.Get("fake_manila")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap.Name, got.Name)
	assert.Equal(t, snap.NumQubits, got.NumQubits)
	assert.Equal(t, snap.Target, got.Target)
	assert.Equal(t, snap.CouplingEdges, got.CouplingEdges)
}

func TestGetMissing(t *testing.T) {
	s := openStore(t)

	got, err := s.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListAndDelete(t *testing.T) {
	s := openStore(t)

	for _, b := range fake.NewProvider().Backends() {
		require.NoError(t, s.Put(backend.SnapshotOf(b)))
	}

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"fake_armonk", "fake_manila", "fake_melbourne", "fake_nairobi"}, names)

	found, err := s.Delete("fake_armonk")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.Delete("fake_armonk")
	require.NoError(t, err)
	assert.False(t, found)

	names, err = s.List()
	require.NoError(t, err)
	assert.Len(t, names, 3)
}

func TestProviderSearch(t *testing.T) {
	s := openStore(t)
	for _, b := range fake.NewProvider().Backends() {
		require.NoError(t, s.Put(backend.SnapshotOf(b)))
	}

	b := provider.Search(s.Provider(), "fake_nairobi")
	require.NotNil(t, b)
	assert.Equal(t, 7, b.NumQubits())
}
