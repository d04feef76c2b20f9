package backend

import "time"

// Snapshot is the serializable form of a backend's metadata. Fake providers
// are built from snapshots, the runtime service ships them over the wire,
// and the offline store persists them as JSON.
type Snapshot struct {
	Name           string       `json:"name"`
	Version        string       `json:"version"`
	OnlineDate     time.Time    `json:"online_date"`
	NumQubits      int          `json:"num_qubits"`
	MaxCircuits    int          `json:"max_circuits"`
	DT             float64      `json:"dt"`
	DTM            float64      `json:"dtm"`
	Simulator      bool         `json:"simulator"`
	OperationNames []string     `json:"operation_names"`
	CouplingEdges  [][2]int     `json:"coupling_edges"`
	Target         Target       `json:"target"`
	Calibration    *Calibration `json:"calibration,omitempty"`
}

// Backend wraps the snapshot as a Backend. The returned value also
// implements Calibrated when calibration data is present.
func (s *Snapshot) Backend() Backend {
	return &snapshotBackend{snap: s}
}

// SnapshotOf captures the metadata of any backend as a snapshot.
func SnapshotOf(b Backend) *Snapshot {
	s := &Snapshot{
		Name:           b.Name(),
		Version:        b.Version(),
		OnlineDate:     b.OnlineDate(),
		NumQubits:      b.NumQubits(),
		MaxCircuits:    b.MaxCircuits(),
		DT:             b.DT(),
		DTM:            b.DTM(),
		Simulator:      b.IsSimulator(),
		OperationNames: append([]string(nil), b.OperationNames()...),
		Target:         b.Target(),
	}
	if cm := b.CouplingMap(); cm != nil {
		s.CouplingEdges = append([][2]int(nil), cm.Edges...)
	}
	if c, ok := b.(Calibrated); ok {
		s.Calibration = c.Calibration()
	}
	return s
}

type snapshotBackend struct {
	snap *Snapshot
}

func (b *snapshotBackend) Name() string           { return b.snap.Name }
func (b *snapshotBackend) Version() string        { return b.snap.Version }
func (b *snapshotBackend) OnlineDate() time.Time  { return b.snap.OnlineDate }
func (b *snapshotBackend) NumQubits() int         { return b.snap.NumQubits }
func (b *snapshotBackend) MaxCircuits() int       { return b.snap.MaxCircuits }
func (b *snapshotBackend) DT() float64            { return b.snap.DT }
func (b *snapshotBackend) DTM() float64           { return b.snap.DTM }
func (b *snapshotBackend) IsSimulator() bool      { return b.snap.Simulator }
func (b *snapshotBackend) Target() Target         { return b.snap.Target }

func (b *snapshotBackend) OperationNames() []string {
	return append([]string(nil), b.snap.OperationNames...)
}

func (b *snapshotBackend) CouplingMap() *CouplingMap {
	return NewCouplingMap(b.snap.CouplingEdges)
}

func (b *snapshotBackend) Calibration() *Calibration {
	return b.snap.Calibration
}
