// Fake provider
// Serves calibration snapshots of retired devices for offline exploration

package fake

import (
	"sort"

	"github.com/perclft/QubitScope/backend"
)

const (
	// Hardware sample resolution shared by all snapshot devices (seconds).
	dt = 2.2222222222222221e-10

	dur1Q     = 3.5555555555555554e-8
	dur2Q     = 4.1e-7
	durMeas   = 5.3e-6
	durErrRef = 1e-8 // per-qubit-index spread applied to two-qubit durations
)

// Provider enumerates the snapshot devices of the library.
type Provider struct {
	backends []backend.Backend
}

// NewProvider builds the provider, materializing every snapshot in the
// device library. Backends are enumerated in name order.
func NewProvider() *Provider {
	names := make([]string, 0, len(deviceLibrary))
	for name := range deviceLibrary {
		names = append(names, name)
	}
	sort.Strings(names)

	backends := make([]backend.Backend, 0, len(names))
	for _, name := range names {
		backends = append(backends, buildSnapshot(deviceLibrary[name]).Backend())
	}
	return &Provider{backends: backends}
}

func (p *Provider) Name() string { return "fake_provider" }

func (p *Provider) Backends() []backend.Backend {
	return append([]backend.Backend(nil), p.backends...)
}

// buildSnapshot expands a compact device spec into a full snapshot with a
// per-instruction target.
func buildSnapshot(spec *deviceSpec) *backend.Snapshot {
	n := len(spec.Err1Q)
	target := backend.Target{}

	for _, gate := range spec.Gates1Q {
		entries := make(map[string]*backend.InstructionProperties, n)
		for q := 0; q < n; q++ {
			entries[backend.QargKey(q)] = &backend.InstructionProperties{
				Duration: dur1Q,
				Error:    spec.Err1Q[q],
			}
		}
		target[gate] = entries
	}

	for _, gate := range spec.Virtual1Q {
		entries := make(map[string]*backend.InstructionProperties, n)
		for q := 0; q < n; q++ {
			entries[backend.QargKey(q)] = &backend.InstructionProperties{}
		}
		target[gate] = entries
	}

	for _, gate := range spec.Extra {
		entries := make(map[string]*backend.InstructionProperties, n)
		for q := 0; q < n; q++ {
			entries[backend.QargKey(q)] = nil
		}
		target[gate] = entries
	}

	var edges [][2]int
	if spec.TwoQ != "" {
		entries := make(map[string]*backend.InstructionProperties, 2*len(spec.Edges))
		for _, e := range spec.Edges {
			a, b := e[0], e[1]
			edges = append(edges, [2]int{a, b}, [2]int{b, a})
			props := &backend.InstructionProperties{
				Duration: dur2Q + durErrRef*float64(a+b),
				Error:    spec.ErrCX * (1 + 0.02*float64(a+b)),
			}
			entries[backend.QargKey(a, b)] = props
			// the mirrored direction needs an extra frame change
			entries[backend.QargKey(b, a)] = &backend.InstructionProperties{
				Duration: props.Duration + dur1Q,
				Error:    props.Error,
			}
		}
		target[spec.TwoQ] = entries
	}

	measure := make(map[string]*backend.InstructionProperties, n)
	for q := 0; q < n; q++ {
		measure[backend.QargKey(q)] = &backend.InstructionProperties{
			Duration: durMeas,
			Error:    spec.ErrRO[q],
		}
	}
	target["measure"] = measure

	ops := make([]string, 0, len(target))
	ops = append(ops, spec.Gates1Q...)
	ops = append(ops, spec.Virtual1Q...)
	if spec.TwoQ != "" {
		ops = append(ops, spec.TwoQ)
	}
	ops = append(ops, "measure")
	ops = append(ops, spec.Extra...)

	t1 := make(map[int]float64, n)
	t2 := make(map[int]float64, n)
	readout := make(map[int]float64, n)
	for q := 0; q < n; q++ {
		t1[q] = spec.T1[q]
		t2[q] = spec.T2[q]
		readout[q] = spec.ErrRO[q]
	}

	return &backend.Snapshot{
		Name:           spec.Name,
		Version:        spec.Version,
		OnlineDate:     spec.Online,
		NumQubits:      n,
		MaxCircuits:    spec.MaxCircuits,
		DT:             dt,
		DTM:            dt,
		OperationNames: ops,
		CouplingEdges:  edges,
		Target:         target,
		Calibration: &backend.Calibration{
			LastUpdate:   spec.Online,
			T1:           t1,
			T2:           t2,
			ReadoutError: readout,
		},
	}
}
