package runtimepb

import (
	"sort"
	"time"

	"github.com/perclft/QubitScope/backend"
	"github.com/perclft/QubitScope/circuit"
)

// SnapshotToProto converts a backend snapshot to its wire form. Target
// entries are emitted in sorted order so equal snapshots encode equally.
func SnapshotToProto(s *backend.Snapshot) *BackendSnapshot {
	if s == nil {
		return nil
	}
	pb := &BackendSnapshot{
		Name:           s.Name,
		Version:        s.Version,
		NumQubits:      int32(s.NumQubits),
		MaxCircuits:    int32(s.MaxCircuits),
		Dt:             s.DT,
		Dtm:            s.DTM,
		Simulator:      s.Simulator,
		OperationNames: append([]string(nil), s.OperationNames...),
	}
	if !s.OnlineDate.IsZero() {
		pb.OnlineDateUnix = s.OnlineDate.Unix()
	}
	for _, e := range s.CouplingEdges {
		pb.CouplingEdges = append(pb.CouplingEdges, &CouplingEdge{A: int32(e[0]), B: int32(e[1])})
	}
	for _, gate := range s.Target.Gates() {
		for _, key := range s.Target.Qargs(gate) {
			qubits, err := backend.ParseQargKey(key)
			if err != nil {
				continue
			}
			entry := &TargetEntry{Gate: gate, Qubits: toInt32s(qubits)}
			if props := s.Target[gate][key]; props != nil {
				entry.HasProps = true
				entry.DurationSec = props.Duration
				entry.Error = props.Error
			}
			pb.Target = append(pb.Target, entry)
		}
	}
	if cal := s.Calibration; cal != nil {
		if !cal.LastUpdate.IsZero() {
			pb.CalibratedAtUnix = cal.LastUpdate.Unix()
		}
		pb.T1 = qubitValues(cal.T1)
		pb.T2 = qubitValues(cal.T2)
		pb.ReadoutError = qubitValues(cal.ReadoutError)
	}
	return pb
}

// SnapshotFromProto converts a wire snapshot back to the native form.
func SnapshotFromProto(pb *BackendSnapshot) *backend.Snapshot {
	if pb == nil {
		return nil
	}
	s := &backend.Snapshot{
		Name:           pb.Name,
		Version:        pb.Version,
		NumQubits:      int(pb.NumQubits),
		MaxCircuits:    int(pb.MaxCircuits),
		DT:             pb.Dt,
		DTM:            pb.Dtm,
		Simulator:      pb.Simulator,
		OperationNames: append([]string(nil), pb.OperationNames...),
	}
	if pb.OnlineDateUnix != 0 {
		s.OnlineDate = time.Unix(pb.OnlineDateUnix, 0).UTC()
	}
	for _, e := range pb.CouplingEdges {
		s.CouplingEdges = append(s.CouplingEdges, [2]int{int(e.A), int(e.B)})
	}
	if len(pb.Target) > 0 {
		s.Target = make(backend.Target)
		for _, entry := range pb.Target {
			if s.Target[entry.Gate] == nil {
				s.Target[entry.Gate] = make(map[string]*backend.InstructionProperties)
			}
			key := backend.QargKey(toInts(entry.Qubits)...)
			var props *backend.InstructionProperties
			if entry.HasProps {
				props = &backend.InstructionProperties{Duration: entry.DurationSec, Error: entry.Error}
			}
			s.Target[entry.Gate][key] = props
		}
	}
	if len(pb.T1) > 0 || len(pb.T2) > 0 || len(pb.ReadoutError) > 0 || pb.CalibratedAtUnix != 0 {
		cal := &backend.Calibration{
			T1:           qubitMap(pb.T1),
			T2:           qubitMap(pb.T2),
			ReadoutError: qubitMap(pb.ReadoutError),
		}
		if pb.CalibratedAtUnix != 0 {
			cal.LastUpdate = time.Unix(pb.CalibratedAtUnix, 0).UTC()
		}
		s.Calibration = cal
	}
	return s
}

// CircuitToProto converts a circuit to its wire form, including the rendered
// OpenQASM source for engines that consume text.
func CircuitToProto(c *circuit.Circuit) *CircuitMsg {
	if c == nil {
		return nil
	}
	pb := &CircuitMsg{
		NumQubits: int32(c.NumQubits),
		NumClbits: int32(c.NumClbits),
		Qasm:      c.QASM(),
	}
	for _, op := range c.Ops {
		pb.Ops = append(pb.Ops, &GateOpMsg{
			Name:   op.Name,
			Qubits: toInt32s(op.Qubits),
			Params: append([]float64(nil), op.Params...),
			Clbits: toInt32s(op.Clbits),
		})
	}
	return pb
}

// CircuitFromProto converts a wire circuit back to the native form.
func CircuitFromProto(pb *CircuitMsg) *circuit.Circuit {
	if pb == nil {
		return nil
	}
	c := circuit.New(int(pb.NumQubits), int(pb.NumClbits))
	for _, op := range pb.Ops {
		c.Ops = append(c.Ops, circuit.GateOp{
			Name:   op.Name,
			Qubits: toInts(op.Qubits),
			Params: append([]float64(nil), op.Params...),
			Clbits: toInts(op.Clbits),
		})
	}
	return c
}

func toInt32s(xs []int) []int32 {
	if xs == nil {
		return nil
	}
	out := make([]int32, len(xs))
	for i, x := range xs {
		out[i] = int32(x)
	}
	return out
}

func toInts(xs []int32) []int {
	if xs == nil {
		return nil
	}
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = int(x)
	}
	return out
}

func qubitValues(m map[int]float64) []*QubitValue {
	if len(m) == 0 {
		return nil
	}
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]*QubitValue, len(keys))
	for i, k := range keys {
		out[i] = &QubitValue{Qubit: int32(k), Value: m[k]}
	}
	return out
}

func qubitMap(vs []*QubitValue) map[int]float64 {
	if len(vs) == 0 {
		return nil
	}
	m := make(map[int]float64, len(vs))
	for _, v := range vs {
		m[int(v.Qubit)] = v.Value
	}
	return m
}
