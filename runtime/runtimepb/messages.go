// Wire messages for the runtime service.
//
// Messages are maintained by hand with protobuf struct tags instead of
// generated code; the protobuf runtime derives descriptors from the tags.
// Field numbers are part of the wire contract and must not be reused.

package runtimepb

import (
	oldproto "github.com/golang/protobuf/proto"
)

// ------------------------------------------------------------------
// Catalog
// ------------------------------------------------------------------

type ListBackendsRequest struct{}

func (m *ListBackendsRequest) Reset()         { *m = ListBackendsRequest{} }
func (m *ListBackendsRequest) String() string { return oldproto.CompactTextString(m) }
func (*ListBackendsRequest) ProtoMessage()    {}

type BackendList struct {
	Backends []*BackendSnapshot `protobuf:"bytes,1,rep,name=backends,proto3" json:"backends,omitempty"`
}

func (m *BackendList) Reset()         { *m = BackendList{} }
func (m *BackendList) String() string { return oldproto.CompactTextString(m) }
func (*BackendList) ProtoMessage()    {}

type GetBackendRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *GetBackendRequest) Reset()         { *m = GetBackendRequest{} }
func (m *GetBackendRequest) String() string { return oldproto.CompactTextString(m) }
func (*GetBackendRequest) ProtoMessage()    {}

type BackendSnapshot struct {
	Name             string          `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Version          string          `protobuf:"bytes,2,opt,name=version,proto3" json:"version,omitempty"`
	OnlineDateUnix   int64           `protobuf:"varint,3,opt,name=online_date_unix,json=onlineDateUnix,proto3" json:"online_date_unix,omitempty"`
	NumQubits        int32           `protobuf:"varint,4,opt,name=num_qubits,json=numQubits,proto3" json:"num_qubits,omitempty"`
	MaxCircuits      int32           `protobuf:"varint,5,opt,name=max_circuits,json=maxCircuits,proto3" json:"max_circuits,omitempty"`
	Dt               float64         `protobuf:"fixed64,6,opt,name=dt,proto3" json:"dt,omitempty"`
	Dtm              float64         `protobuf:"fixed64,7,opt,name=dtm,proto3" json:"dtm,omitempty"`
	Simulator        bool            `protobuf:"varint,8,opt,name=simulator,proto3" json:"simulator,omitempty"`
	OperationNames   []string        `protobuf:"bytes,9,rep,name=operation_names,json=operationNames,proto3" json:"operation_names,omitempty"`
	CouplingEdges    []*CouplingEdge `protobuf:"bytes,10,rep,name=coupling_edges,json=couplingEdges,proto3" json:"coupling_edges,omitempty"`
	Target           []*TargetEntry  `protobuf:"bytes,11,rep,name=target,proto3" json:"target,omitempty"`
	T1               []*QubitValue   `protobuf:"bytes,12,rep,name=t1,proto3" json:"t1,omitempty"`
	T2               []*QubitValue   `protobuf:"bytes,13,rep,name=t2,proto3" json:"t2,omitempty"`
	ReadoutError     []*QubitValue   `protobuf:"bytes,14,rep,name=readout_error,json=readoutError,proto3" json:"readout_error,omitempty"`
	CalibratedAtUnix int64           `protobuf:"varint,15,opt,name=calibrated_at_unix,json=calibratedAtUnix,proto3" json:"calibrated_at_unix,omitempty"`
}

func (m *BackendSnapshot) Reset()         { *m = BackendSnapshot{} }
func (m *BackendSnapshot) String() string { return oldproto.CompactTextString(m) }
func (*BackendSnapshot) ProtoMessage()    {}

type CouplingEdge struct {
	A int32 `protobuf:"varint,1,opt,name=a,proto3" json:"a,omitempty"`
	B int32 `protobuf:"varint,2,opt,name=b,proto3" json:"b,omitempty"`
}

func (m *CouplingEdge) Reset()         { *m = CouplingEdge{} }
func (m *CouplingEdge) String() string { return oldproto.CompactTextString(m) }
func (*CouplingEdge) ProtoMessage()    {}

type TargetEntry struct {
	Gate        string  `protobuf:"bytes,1,opt,name=gate,proto3" json:"gate,omitempty"`
	Qubits      []int32 `protobuf:"varint,2,rep,packed,name=qubits,proto3" json:"qubits,omitempty"`
	HasProps    bool    `protobuf:"varint,3,opt,name=has_props,json=hasProps,proto3" json:"has_props,omitempty"`
	DurationSec float64 `protobuf:"fixed64,4,opt,name=duration_sec,json=durationSec,proto3" json:"duration_sec,omitempty"`
	Error       float64 `protobuf:"fixed64,5,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *TargetEntry) Reset()         { *m = TargetEntry{} }
func (m *TargetEntry) String() string { return oldproto.CompactTextString(m) }
func (*TargetEntry) ProtoMessage()    {}

type QubitValue struct {
	Qubit int32   `protobuf:"varint,1,opt,name=qubit,proto3" json:"qubit,omitempty"`
	Value float64 `protobuf:"fixed64,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *QubitValue) Reset()         { *m = QubitValue{} }
func (m *QubitValue) String() string { return oldproto.CompactTextString(m) }
func (*QubitValue) ProtoMessage()    {}

// ------------------------------------------------------------------
// Sessions
// ------------------------------------------------------------------

type OpenSessionRequest struct {
	BackendName   string `protobuf:"bytes,1,opt,name=backend_name,json=backendName,proto3" json:"backend_name,omitempty"`
	Instance      string `protobuf:"bytes,2,opt,name=instance,proto3" json:"instance,omitempty"`
	Channel       string `protobuf:"bytes,3,opt,name=channel,proto3" json:"channel,omitempty"`
	MaxTtlSeconds int32  `protobuf:"varint,4,opt,name=max_ttl_seconds,json=maxTtlSeconds,proto3" json:"max_ttl_seconds,omitempty"`
}

func (m *OpenSessionRequest) Reset()         { *m = OpenSessionRequest{} }
func (m *OpenSessionRequest) String() string { return oldproto.CompactTextString(m) }
func (*OpenSessionRequest) ProtoMessage()    {}

type SessionHandle struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
}

func (m *SessionHandle) Reset()         { *m = SessionHandle{} }
func (m *SessionHandle) String() string { return oldproto.CompactTextString(m) }
func (*SessionHandle) ProtoMessage()    {}

type Ack struct {
	Ok      bool   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *Ack) Reset()         { *m = Ack{} }
func (m *Ack) String() string { return oldproto.CompactTextString(m) }
func (*Ack) ProtoMessage()    {}

// ------------------------------------------------------------------
// Circuits and options
// ------------------------------------------------------------------

type GateOpMsg struct {
	Name   string    `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Qubits []int32   `protobuf:"varint,2,rep,packed,name=qubits,proto3" json:"qubits,omitempty"`
	Params []float64 `protobuf:"fixed64,3,rep,packed,name=params,proto3" json:"params,omitempty"`
	Clbits []int32   `protobuf:"varint,4,rep,packed,name=clbits,proto3" json:"clbits,omitempty"`
}

func (m *GateOpMsg) Reset()         { *m = GateOpMsg{} }
func (m *GateOpMsg) String() string { return oldproto.CompactTextString(m) }
func (*GateOpMsg) ProtoMessage()    {}

type CircuitMsg struct {
	NumQubits int32        `protobuf:"varint,1,opt,name=num_qubits,json=numQubits,proto3" json:"num_qubits,omitempty"`
	NumClbits int32        `protobuf:"varint,2,opt,name=num_clbits,json=numClbits,proto3" json:"num_clbits,omitempty"`
	Ops       []*GateOpMsg `protobuf:"bytes,3,rep,name=ops,proto3" json:"ops,omitempty"`
	Qasm      string       `protobuf:"bytes,4,opt,name=qasm,proto3" json:"qasm,omitempty"`
}

func (m *CircuitMsg) Reset()         { *m = CircuitMsg{} }
func (m *CircuitMsg) String() string { return oldproto.CompactTextString(m) }
func (*CircuitMsg) ProtoMessage()    {}

type SimulatorOptionsMsg struct {
	NoiseModelJson []byte          `protobuf:"bytes,1,opt,name=noise_model_json,json=noiseModelJson,proto3" json:"noise_model_json,omitempty"`
	BasisGates     []string        `protobuf:"bytes,2,rep,name=basis_gates,json=basisGates,proto3" json:"basis_gates,omitempty"`
	CouplingEdges  []*CouplingEdge `protobuf:"bytes,3,rep,name=coupling_edges,json=couplingEdges,proto3" json:"coupling_edges,omitempty"`
}

func (m *SimulatorOptionsMsg) Reset()         { *m = SimulatorOptionsMsg{} }
func (m *SimulatorOptionsMsg) String() string { return oldproto.CompactTextString(m) }
func (*SimulatorOptionsMsg) ProtoMessage()    {}

type OptionsMsg struct {
	Shots             int32                `protobuf:"varint,1,opt,name=shots,proto3" json:"shots,omitempty"`
	OptimizationLevel int32                `protobuf:"varint,2,opt,name=optimization_level,json=optimizationLevel,proto3" json:"optimization_level,omitempty"`
	ResilienceLevel   int32                `protobuf:"varint,3,opt,name=resilience_level,json=resilienceLevel,proto3" json:"resilience_level,omitempty"`
	Simulator         *SimulatorOptionsMsg `protobuf:"bytes,4,opt,name=simulator,proto3" json:"simulator,omitempty"`
}

func (m *OptionsMsg) Reset()         { *m = OptionsMsg{} }
func (m *OptionsMsg) String() string { return oldproto.CompactTextString(m) }
func (*OptionsMsg) ProtoMessage()    {}

// ------------------------------------------------------------------
// Transpilation and jobs
// ------------------------------------------------------------------

type TranspileRequest struct {
	BackendName string      `protobuf:"bytes,1,opt,name=backend_name,json=backendName,proto3" json:"backend_name,omitempty"`
	Circuit     *CircuitMsg `protobuf:"bytes,2,opt,name=circuit,proto3" json:"circuit,omitempty"`
}

func (m *TranspileRequest) Reset()         { *m = TranspileRequest{} }
func (m *TranspileRequest) String() string { return oldproto.CompactTextString(m) }
func (*TranspileRequest) ProtoMessage()    {}

type TranspileReply struct {
	Circuit *CircuitMsg `protobuf:"bytes,1,opt,name=circuit,proto3" json:"circuit,omitempty"`
}

func (m *TranspileReply) Reset()         { *m = TranspileReply{} }
func (m *TranspileReply) String() string { return oldproto.CompactTextString(m) }
func (*TranspileReply) ProtoMessage()    {}

type SamplerRunRequest struct {
	SessionId string      `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Circuit   *CircuitMsg `protobuf:"bytes,2,opt,name=circuit,proto3" json:"circuit,omitempty"`
	Options   *OptionsMsg `protobuf:"bytes,3,opt,name=options,proto3" json:"options,omitempty"`
	Priority  int32       `protobuf:"varint,4,opt,name=priority,proto3" json:"priority,omitempty"`
}

func (m *SamplerRunRequest) Reset()         { *m = SamplerRunRequest{} }
func (m *SamplerRunRequest) String() string { return oldproto.CompactTextString(m) }
func (*SamplerRunRequest) ProtoMessage()    {}

type JobHandle struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *JobHandle) Reset()         { *m = JobHandle{} }
func (m *JobHandle) String() string { return oldproto.CompactTextString(m) }
func (*JobHandle) ProtoMessage()    {}

type JobStatusReply struct {
	JobId           string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	State           string `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`
	Position        int32  `protobuf:"varint,3,opt,name=position,proto3" json:"position,omitempty"`
	SubmittedAtUnix int64  `protobuf:"varint,4,opt,name=submitted_at_unix,json=submittedAtUnix,proto3" json:"submitted_at_unix,omitempty"`
	StartedAtUnix   int64  `protobuf:"varint,5,opt,name=started_at_unix,json=startedAtUnix,proto3" json:"started_at_unix,omitempty"`
	CompletedAtUnix int64  `protobuf:"varint,6,opt,name=completed_at_unix,json=completedAtUnix,proto3" json:"completed_at_unix,omitempty"`
	Error           string `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *JobStatusReply) Reset()         { *m = JobStatusReply{} }
func (m *JobStatusReply) String() string { return oldproto.CompactTextString(m) }
func (*JobStatusReply) ProtoMessage()    {}

type CountEntry struct {
	Bitstring string `protobuf:"bytes,1,opt,name=bitstring,proto3" json:"bitstring,omitempty"`
	Count     int32  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *CountEntry) Reset()         { *m = CountEntry{} }
func (m *CountEntry) String() string { return oldproto.CompactTextString(m) }
func (*CountEntry) ProtoMessage()    {}

type QuasiEntry struct {
	Bitstring   string  `protobuf:"bytes,1,opt,name=bitstring,proto3" json:"bitstring,omitempty"`
	Probability float64 `protobuf:"fixed64,2,opt,name=probability,proto3" json:"probability,omitempty"`
}

func (m *QuasiEntry) Reset()         { *m = QuasiEntry{} }
func (m *QuasiEntry) String() string { return oldproto.CompactTextString(m) }
func (*QuasiEntry) ProtoMessage()    {}

type ListJobsRequest struct {
	BackendName string `protobuf:"bytes,1,opt,name=backend_name,json=backendName,proto3" json:"backend_name,omitempty"`
	Limit       int32  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *ListJobsRequest) Reset()         { *m = ListJobsRequest{} }
func (m *ListJobsRequest) String() string { return oldproto.CompactTextString(m) }
func (*ListJobsRequest) ProtoMessage()    {}

type JobSummary struct {
	JobId           string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	BackendName     string `protobuf:"bytes,2,opt,name=backend_name,json=backendName,proto3" json:"backend_name,omitempty"`
	State           string `protobuf:"bytes,3,opt,name=state,proto3" json:"state,omitempty"`
	Shots           int32  `protobuf:"varint,4,opt,name=shots,proto3" json:"shots,omitempty"`
	Noisy           bool   `protobuf:"varint,5,opt,name=noisy,proto3" json:"noisy,omitempty"`
	SubmittedAtUnix int64  `protobuf:"varint,6,opt,name=submitted_at_unix,json=submittedAtUnix,proto3" json:"submitted_at_unix,omitempty"`
	CompletedAtUnix int64  `protobuf:"varint,7,opt,name=completed_at_unix,json=completedAtUnix,proto3" json:"completed_at_unix,omitempty"`
	Error           string `protobuf:"bytes,8,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *JobSummary) Reset()         { *m = JobSummary{} }
func (m *JobSummary) String() string { return oldproto.CompactTextString(m) }
func (*JobSummary) ProtoMessage()    {}

type JobList struct {
	Jobs []*JobSummary `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
}

func (m *JobList) Reset()         { *m = JobList{} }
func (m *JobList) String() string { return oldproto.CompactTextString(m) }
func (*JobList) ProtoMessage()    {}

type SamplerResult struct {
	JobId       string        `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	BackendName string        `protobuf:"bytes,2,opt,name=backend_name,json=backendName,proto3" json:"backend_name,omitempty"`
	Shots       int32         `protobuf:"varint,3,opt,name=shots,proto3" json:"shots,omitempty"`
	Counts      []*CountEntry `protobuf:"bytes,4,rep,name=counts,proto3" json:"counts,omitempty"`
	QuasiDists  []*QuasiEntry `protobuf:"bytes,5,rep,name=quasi_dists,json=quasiDists,proto3" json:"quasi_dists,omitempty"`
	FromCache   bool          `protobuf:"varint,6,opt,name=from_cache,json=fromCache,proto3" json:"from_cache,omitempty"`
	ElapsedMs   int64         `protobuf:"varint,7,opt,name=elapsed_ms,json=elapsedMs,proto3" json:"elapsed_ms,omitempty"`
}

func (m *SamplerResult) Reset()         { *m = SamplerResult{} }
func (m *SamplerResult) String() string { return oldproto.CompactTextString(m) }
func (*SamplerResult) ProtoMessage()    {}
