// Noise description derived from backend calibration
// A data object handed to the execution engine, not a simulator

package noise

import "github.com/perclft/QubitScope/backend"

// Model captures everything an engine needs to mimic a device: the basis
// gate set, per-instruction error rates, readout errors, relaxation times,
// and connectivity. Entries the device does not characterize are absent.
type Model struct {
	BasisGates    []string                      `json:"basis_gates"`
	GateErrors    map[string]map[string]float64 `json:"gate_errors"`
	ReadoutErrors map[int]float64               `json:"readout_errors,omitempty"`
	T1            map[int]float64               `json:"t1,omitempty"`
	T2            map[int]float64               `json:"t2,omitempty"`
	Connectivity  [][2]int                      `json:"connectivity,omitempty"`
}

// FromBackend builds a noise model from the calibration data of a backend.
func FromBackend(b backend.Backend) *Model {
	m := &Model{
		BasisGates: append([]string(nil), b.OperationNames()...),
		GateErrors: make(map[string]map[string]float64),
	}

	for gate, entries := range b.Target() {
		for qargs, props := range entries {
			if props == nil {
				continue
			}
			if m.GateErrors[gate] == nil {
				m.GateErrors[gate] = make(map[string]float64, len(entries))
			}
			m.GateErrors[gate][qargs] = props.Error
		}
	}

	if cm := b.CouplingMap(); cm != nil && len(cm.Edges) > 0 {
		m.Connectivity = append([][2]int(nil), cm.Edges...)
	}

	if c, ok := b.(backend.Calibrated); ok {
		if cal := c.Calibration(); cal != nil {
			m.ReadoutErrors = cal.ReadoutError
			m.T1 = cal.T1
			m.T2 = cal.T2
		}
	}

	return m
}
