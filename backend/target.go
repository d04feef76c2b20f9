package backend

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// InstructionProperties holds the calibrated duration and error rate of a
// single instruction on a specific qubit tuple.
type InstructionProperties struct {
	Duration float64 `json:"duration"` // seconds
	Error    float64 `json:"error"`    // error rate in [0, 1]
}

// Target maps gate name -> qubit tuple key -> properties. A nil properties
// pointer means the device reports the instruction but no characterization
// for it (printed as duration=None, error=None).
type Target map[string]map[string]*InstructionProperties

// QargKey encodes a qubit tuple as a canonical map key, e.g. "0" or "0,1".
func QargKey(qubits ...int) string {
	parts := make([]string, len(qubits))
	for i, q := range qubits {
		parts[i] = strconv.Itoa(q)
	}
	return strings.Join(parts, ",")
}

// ParseQargKey decodes a key produced by QargKey.
func ParseQargKey(key string) ([]int, error) {
	if key == "" {
		return nil, fmt.Errorf("empty qubit tuple key")
	}
	parts := strings.Split(key, ",")
	qubits := make([]int, len(parts))
	for i, p := range parts {
		q, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid qubit tuple key %q: %w", key, err)
		}
		qubits[i] = q
	}
	return qubits, nil
}

// Gates returns the gate names of the target in sorted order.
func (t Target) Gates() []string {
	gates := make([]string, 0, len(t))
	for g := range t {
		gates = append(gates, g)
	}
	sort.Strings(gates)
	return gates
}

// Qargs returns the qubit tuple keys for a gate, sorted numerically so that
// "2" precedes "10" and "1,2" precedes "1,10".
func (t Target) Qargs(gate string) []string {
	entries := t[gate]
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return lessQargKey(keys[i], keys[j])
	})
	return keys
}

// Lookup returns the properties for a gate on a qubit tuple. The bool
// reports whether the target contains the instruction at all; the pointer
// may still be nil for uncharacterized entries.
func (t Target) Lookup(gate string, qubits ...int) (*InstructionProperties, bool) {
	entries, ok := t[gate]
	if !ok {
		return nil, false
	}
	props, ok := entries[QargKey(qubits...)]
	return props, ok
}

// NumInstructions counts the instruction entries across all gates.
func (t Target) NumInstructions() int {
	n := 0
	for _, entries := range t {
		n += len(entries)
	}
	return n
}

func lessQargKey(a, b string) bool {
	qa, errA := ParseQargKey(a)
	qb, errB := ParseQargKey(b)
	if errA != nil || errB != nil {
		return a < b
	}
	for i := 0; i < len(qa) && i < len(qb); i++ {
		if qa[i] != qb[i] {
			return qa[i] < qb[i]
		}
	}
	return len(qa) < len(qb)
}
