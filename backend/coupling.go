package backend

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// CouplingMap is the directed qubit connectivity graph of a device. An edge
// [a, b] means a two-qubit gate may use a as control and b as target.
type CouplingMap struct {
	Edges [][2]int `json:"edges"`
}

func NewCouplingMap(edges [][2]int) *CouplingMap {
	m := &CouplingMap{Edges: make([][2]int, len(edges))}
	copy(m.Edges, edges)
	return m
}

// Size returns the number of qubits spanned by the map (highest index + 1).
func (m *CouplingMap) Size() int {
	max := -1
	for _, e := range m.Edges {
		if e[0] > max {
			max = e[0]
		}
		if e[1] > max {
			max = e[1]
		}
	}
	return max + 1
}

// Contains reports whether the directed edge a->b is present.
func (m *CouplingMap) Contains(a, b int) bool {
	for _, e := range m.Edges {
		if e[0] == a && e[1] == b {
			return true
		}
	}
	return false
}

// Neighbors returns the qubits reachable from q, sorted.
func (m *CouplingMap) Neighbors(q int) []int {
	seen := map[int]bool{}
	for _, e := range m.Edges {
		if e[0] == q {
			seen[e[1]] = true
		}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Draw writes a text rendering of the connectivity graph, one qubit per line.
func (m *CouplingMap) Draw(w io.Writer) {
	if m == nil || len(m.Edges) == 0 {
		fmt.Fprintln(w, "\t(no couplings)")
		return
	}
	for q := 0; q < m.Size(); q++ {
		neighbors := m.Neighbors(q)
		if len(neighbors) == 0 {
			continue
		}
		parts := make([]string, len(neighbors))
		for i, n := range neighbors {
			parts[i] = fmt.Sprintf("%d", n)
		}
		fmt.Fprintf(w, "\t%d -> %s\n", q, strings.Join(parts, " "))
	}
}

func (m *CouplingMap) String() string {
	var sb strings.Builder
	m.Draw(&sb)
	return sb.String()
}
