package backend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCouplingMapSize(t *testing.T) {
	m := NewCouplingMap([][2]int{{0, 1}, {1, 2}, {2, 1}})
	assert.Equal(t, 3, m.Size())

	empty := NewCouplingMap(nil)
	assert.Equal(t, 0, empty.Size())
}

func TestCouplingMapContains(t *testing.T) {
	m := NewCouplingMap([][2]int{{0, 1}, {1, 0}, {1, 2}})
	assert.True(t, m.Contains(0, 1))
	assert.True(t, m.Contains(1, 2))
	assert.False(t, m.Contains(2, 1))
}

func TestCouplingMapNeighbors(t *testing.T) {
	m := NewCouplingMap([][2]int{{1, 2}, {1, 0}, {1, 2}, {0, 1}})
	assert.Equal(t, []int{0, 2}, m.Neighbors(1))
	assert.Equal(t, []int{1}, m.Neighbors(0))
	assert.Empty(t, m.Neighbors(2))
}

func TestCouplingMapDraw(t *testing.T) {
	m := NewCouplingMap([][2]int{{0, 1}, {1, 0}, {1, 2}})
	out := m.String()
	assert.Contains(t, out, "0 -> 1")
	assert.Contains(t, out, "1 -> 0 2")

	var sb strings.Builder
	NewCouplingMap(nil).Draw(&sb)
	assert.Contains(t, sb.String(), "(no couplings)")
}
