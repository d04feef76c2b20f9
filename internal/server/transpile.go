// Level-0 transpilation
// Rewrites gates into the backend's basis and checks connectivity. Nothing
// is optimized away: the circuit structure survives as written.

package server

import (
	"fmt"
	"math"

	"github.com/perclft/QubitScope/backend"
	"github.com/perclft/QubitScope/circuit"
)

// directives pass through untouched on any backend.
var directives = map[string]bool{
	"measure": true,
	"barrier": true,
	"reset":   true,
	"delay":   true,
}

// Transpile rewrites a circuit for a backend. Gates already in the basis
// pass through; known single-gate identities rewrite the rest. On hardware,
// two-qubit gates must land on a coupled pair; simulators are treated as
// fully connected.
func Transpile(b backend.Backend, c *circuit.Circuit) (*circuit.Circuit, error) {
	basis := make(map[string]bool, len(b.OperationNames()))
	for _, name := range b.OperationNames() {
		basis[name] = true
	}
	cm := b.CouplingMap()
	checkCoupling := !b.IsSimulator()

	out := circuit.New(c.NumQubits, c.NumClbits)
	for _, op := range c.Ops {
		rewritten, err := rewrite(op, basis)
		if err != nil {
			return nil, err
		}
		for _, r := range rewritten {
			if checkCoupling && len(r.Qubits) == 2 && !directives[r.Name] {
				if cm == nil || len(cm.Edges) == 0 {
					return nil, fmt.Errorf("%s has no two-qubit connectivity", b.Name())
				}
				if !cm.Contains(r.Qubits[0], r.Qubits[1]) {
					return nil, fmt.Errorf("qubits %d and %d are not coupled on %s",
						r.Qubits[0], r.Qubits[1], b.Name())
				}
			}
			out.Ops = append(out.Ops, r)
		}
	}
	return out, nil
}

// rewrite maps one gate into the basis. The table covers the identities the
// snapshot devices need; anything else is rejected rather than approximated.
func rewrite(op circuit.GateOp, basis map[string]bool) ([]circuit.GateOp, error) {
	if directives[op.Name] || basis[op.Name] {
		return []circuit.GateOp{op}, nil
	}

	q := op.Qubits

	// modern basis: rz, sx, x
	if basis["rz"] && basis["sx"] {
		switch op.Name {
		case "h":
			return []circuit.GateOp{
				{Name: "rz", Qubits: q, Params: []float64{math.Pi / 2}},
				{Name: "sx", Qubits: q},
				{Name: "rz", Qubits: q, Params: []float64{math.Pi / 2}},
			}, nil
		case "z":
			return []circuit.GateOp{{Name: "rz", Qubits: q, Params: []float64{math.Pi}}}, nil
		case "s":
			return []circuit.GateOp{{Name: "rz", Qubits: q, Params: []float64{math.Pi / 2}}}, nil
		case "t":
			return []circuit.GateOp{{Name: "rz", Qubits: q, Params: []float64{math.Pi / 4}}}, nil
		case "y":
			if basis["x"] {
				return []circuit.GateOp{
					{Name: "rz", Qubits: q, Params: []float64{math.Pi}},
					{Name: "x", Qubits: q},
				}, nil
			}
		}
	}

	// legacy basis: u1, u2, u3
	if basis["u1"] && basis["u2"] {
		switch op.Name {
		case "h":
			return []circuit.GateOp{{Name: "u2", Qubits: q, Params: []float64{0, math.Pi}}}, nil
		case "x":
			return []circuit.GateOp{{Name: "u3", Qubits: q, Params: []float64{math.Pi, 0, math.Pi}}}, nil
		case "y":
			return []circuit.GateOp{{Name: "u3", Qubits: q, Params: []float64{math.Pi, math.Pi / 2, math.Pi / 2}}}, nil
		case "z":
			return []circuit.GateOp{{Name: "u1", Qubits: q, Params: []float64{math.Pi}}}, nil
		case "s":
			return []circuit.GateOp{{Name: "u1", Qubits: q, Params: []float64{math.Pi / 2}}}, nil
		case "t":
			return []circuit.GateOp{{Name: "u1", Qubits: q, Params: []float64{math.Pi / 4}}}, nil
		case "rz":
			return []circuit.GateOp{{Name: "u1", Qubits: q, Params: op.Params}}, nil
		case "sx":
			return []circuit.GateOp{{Name: "u3", Qubits: q, Params: []float64{math.Pi / 2, -math.Pi / 2, math.Pi / 2}}}, nil
		}
	}

	return nil, fmt.Errorf("gate %q cannot be expressed in the backend basis", op.Name)
}
