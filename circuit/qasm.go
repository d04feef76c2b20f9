package circuit

import (
	"fmt"
	"strings"
)

// QASM renders the circuit as OpenQASM 3.0 source.
func (c *Circuit) QASM() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "OPENQASM 3.0;\ninclude \"stdgates.inc\";\nqubit[%d] q;\nbit[%d] c;\n\n",
		c.NumQubits, c.NumClbits)

	for _, op := range c.Ops {
		if op.Name == "measure" {
			for i, q := range op.Qubits {
				cl := q
				if i < len(op.Clbits) {
					cl = op.Clbits[i]
				}
				fmt.Fprintf(&sb, "c[%d] = measure q[%d];\n", cl, q)
			}
			continue
		}

		sb.WriteString(op.Name)
		if len(op.Params) > 0 {
			sb.WriteString("(")
			for i, p := range op.Params {
				if i > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprintf(&sb, "%g", p)
			}
			sb.WriteString(")")
		}
		sb.WriteString(" ")
		for i, q := range op.Qubits {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "q[%d]", q)
		}
		sb.WriteString(";\n")
	}

	return sb.String()
}
