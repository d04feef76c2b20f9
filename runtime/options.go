// Execution options
// Mirrors the sampler option block: shot count, fixed passthrough levels,
// and an optional simulator section carrying a device noise profile

package runtime

import (
	"encoding/json"
	"fmt"

	"github.com/perclft/QubitScope/backend"
	"github.com/perclft/QubitScope/noise"
	"github.com/perclft/QubitScope/runtime/runtimepb"
)

// SimulatorOptions asks a simulator backend to mimic a real device: its
// noise profile, basis gate set, and connectivity.
type SimulatorOptions struct {
	NoiseModel  *noise.Model         `json:"noise_model,omitempty"`
	BasisGates  []string             `json:"basis_gates,omitempty"`
	CouplingMap *backend.CouplingMap `json:"coupling_map,omitempty"`
}

// Options control a sampler run. Optimization and resilience are pinned to 0
// so results reflect the circuit as written, with no error mitigation.
type Options struct {
	Shots             int               `json:"shots"`
	OptimizationLevel int               `json:"optimization_level"`
	ResilienceLevel   int               `json:"resilience_level"`
	Simulator         *SimulatorOptions `json:"simulator,omitempty"`
}

// DefaultShots is used when a non-positive shot count is requested.
const DefaultShots = 1024

// NewOptions builds run options for the given shot count; zero or negative
// counts fall back to DefaultShots. When noisy is non-nil, the simulator
// section is filled in from that backend's calibration so a simulator
// reproduces its behavior; nil means an ideal run.
func NewOptions(shots int, noisy backend.Backend) *Options {
	if shots <= 0 {
		shots = DefaultShots
	}
	opts := &Options{
		Shots:             shots,
		OptimizationLevel: 0,
		ResilienceLevel:   0,
	}
	if noisy != nil {
		opts.Simulator = &SimulatorOptions{
			NoiseModel:  noise.FromBackend(noisy),
			BasisGates:  noisy.OperationNames(),
			CouplingMap: noisy.CouplingMap(),
		}
	}
	return opts
}

// ToProto converts the options to their wire form. The noise model travels
// as JSON inside the message so engines can consume it without knowing the
// native type.
func (o *Options) ToProto() (*runtimepb.OptionsMsg, error) {
	if o == nil {
		return nil, nil
	}
	pb := &runtimepb.OptionsMsg{
		Shots:             int32(o.Shots),
		OptimizationLevel: int32(o.OptimizationLevel),
		ResilienceLevel:   int32(o.ResilienceLevel),
	}
	if o.Simulator != nil {
		sim := &runtimepb.SimulatorOptionsMsg{
			BasisGates: append([]string(nil), o.Simulator.BasisGates...),
		}
		if o.Simulator.NoiseModel != nil {
			raw, err := json.Marshal(o.Simulator.NoiseModel)
			if err != nil {
				return nil, fmt.Errorf("encode noise model: %w", err)
			}
			sim.NoiseModelJson = raw
		}
		if cm := o.Simulator.CouplingMap; cm != nil {
			for _, e := range cm.Edges {
				sim.CouplingEdges = append(sim.CouplingEdges, &runtimepb.CouplingEdge{A: int32(e[0]), B: int32(e[1])})
			}
		}
		pb.Simulator = sim
	}
	return pb, nil
}

// OptionsFromProto converts wire options back to the native form.
func OptionsFromProto(pb *runtimepb.OptionsMsg) (*Options, error) {
	if pb == nil {
		return nil, nil
	}
	o := &Options{
		Shots:             int(pb.Shots),
		OptimizationLevel: int(pb.OptimizationLevel),
		ResilienceLevel:   int(pb.ResilienceLevel),
	}
	if pb.Simulator != nil {
		sim := &SimulatorOptions{
			BasisGates: append([]string(nil), pb.Simulator.BasisGates...),
		}
		if len(pb.Simulator.NoiseModelJson) > 0 {
			var m noise.Model
			if err := json.Unmarshal(pb.Simulator.NoiseModelJson, &m); err != nil {
				return nil, fmt.Errorf("decode noise model: %w", err)
			}
			sim.NoiseModel = &m
		}
		if len(pb.Simulator.CouplingEdges) > 0 {
			edges := make([][2]int, 0, len(pb.Simulator.CouplingEdges))
			for _, e := range pb.Simulator.CouplingEdges {
				edges = append(edges, [2]int{int(e.A), int(e.B)})
			}
			sim.CouplingMap = backend.NewCouplingMap(edges)
		}
		o.Simulator = sim
	}
	return o, nil
}
