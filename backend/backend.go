// Backend metadata model
// Unified view of quantum processors and simulators across providers

package backend

import "time"

// Backend describes a named quantum processor or simulator endpoint.
// Implementations are snapshot-backed (fake providers, offline stores)
// or remote (runtime service catalog).
type Backend interface {
	Name() string
	Version() string
	OnlineDate() time.Time

	NumQubits() int
	MaxCircuits() int

	// System time resolution, in seconds.
	DT() float64  // input signals
	DTM() float64 // output signals

	OperationNames() []string
	CouplingMap() *CouplingMap
	Target() Target

	IsSimulator() bool
}

// Calibrated is implemented by backends that expose device calibration
// beyond the instruction target.
type Calibrated interface {
	Calibration() *Calibration
}

// Calibration holds per-qubit device characterization data.
type Calibration struct {
	LastUpdate   time.Time       `json:"last_update"`
	T1           map[int]float64 `json:"t1"`            // T1 times per qubit (μs)
	T2           map[int]float64 `json:"t2"`            // T2 times per qubit (μs)
	ReadoutError map[int]float64 `json:"readout_error"` // per-qubit readout error
}
