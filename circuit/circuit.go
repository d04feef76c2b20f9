// Circuit construction
// Gate-list circuits with OpenQASM 3 rendering and content hashing

package circuit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GateOp is a single instruction: a named gate applied to qubits, with
// optional rotation parameters. Measurements carry the classical bit they
// write to.
type GateOp struct {
	Name   string    `json:"name"`
	Qubits []int     `json:"qubits"`
	Params []float64 `json:"params,omitempty"`
	Clbits []int     `json:"clbits,omitempty"`
}

// Circuit is an ordered list of gate operations over a qubit register and a
// classical register.
type Circuit struct {
	NumQubits int            `json:"num_qubits"`
	NumClbits int            `json:"num_clbits"`
	Ops       []GateOp       `json:"ops"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// New creates an empty circuit with the given register sizes.
func New(numQubits, numClbits int) *Circuit {
	return &Circuit{NumQubits: numQubits, NumClbits: numClbits}
}

func (c *Circuit) H(q int) error         { return c.apply("h", nil, q) }
func (c *Circuit) X(q int) error         { return c.apply("x", nil, q) }
func (c *Circuit) Y(q int) error         { return c.apply("y", nil, q) }
func (c *Circuit) Z(q int) error         { return c.apply("z", nil, q) }
func (c *Circuit) S(q int) error         { return c.apply("s", nil, q) }
func (c *Circuit) T(q int) error         { return c.apply("t", nil, q) }
func (c *Circuit) CX(ctl, tgt int) error { return c.apply("cx", nil, ctl, tgt) }
func (c *Circuit) CZ(ctl, tgt int) error { return c.apply("cz", nil, ctl, tgt) }
func (c *Circuit) SWAP(a, b int) error   { return c.apply("swap", nil, a, b) }

func (c *Circuit) RX(theta float64, q int) error { return c.apply("rx", []float64{theta}, q) }
func (c *Circuit) RY(theta float64, q int) error { return c.apply("ry", []float64{theta}, q) }
func (c *Circuit) RZ(theta float64, q int) error { return c.apply("rz", []float64{theta}, q) }

// Measure records qubit q into classical bit cl.
func (c *Circuit) Measure(q, cl int) error {
	if err := c.checkQubits(q); err != nil {
		return err
	}
	if cl < 0 || cl >= c.NumClbits {
		return fmt.Errorf("classical bit %d out of range [0, %d)", cl, c.NumClbits)
	}
	c.Ops = append(c.Ops, GateOp{Name: "measure", Qubits: []int{q}, Clbits: []int{cl}})
	return nil
}

// MeasureAll measures every qubit into the classical bit of the same index,
// growing the classical register if it is too small.
func (c *Circuit) MeasureAll() error {
	if c.NumClbits < c.NumQubits {
		c.NumClbits = c.NumQubits
	}
	for q := 0; q < c.NumQubits; q++ {
		if err := c.Measure(q, q); err != nil {
			return err
		}
	}
	return nil
}

// NumOps returns the number of recorded operations.
func (c *Circuit) NumOps() int { return len(c.Ops) }

// Hash returns a stable content hash of the circuit, used as the result
// cache key together with the execution options.
func (c *Circuit) Hash() string {
	h := sha256.New()
	fmt.Fprintf(h, "q%d c%d;", c.NumQubits, c.NumClbits)
	for _, op := range c.Ops {
		fmt.Fprintf(h, "%s %v %v %v;", op.Name, op.Qubits, op.Params, op.Clbits)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Circuit) apply(name string, params []float64, qubits ...int) error {
	if err := c.checkQubits(qubits...); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	c.Ops = append(c.Ops, GateOp{Name: name, Qubits: qubits, Params: params})
	return nil
}

func (c *Circuit) checkQubits(qubits ...int) error {
	for _, q := range qubits {
		if q < 0 || q >= c.NumQubits {
			return fmt.Errorf("qubit %d out of range [0, %d)", q, c.NumQubits)
		}
	}
	return nil
}
