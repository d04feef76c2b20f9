package fake

import "time"

// ------------------------------------------------------------------
// Device Library - calibration snapshots of retired IBM devices
// ------------------------------------------------------------------

// deviceSpec is the compact form of a device snapshot. Per-qubit arrays are
// indexed by qubit; edges are listed once and mirrored when the target is
// built.
type deviceSpec struct {
	Name        string
	Version     string
	Online      time.Time
	MaxCircuits int
	Gates1Q     []string  // characterized single-qubit gates
	Virtual1Q   []string  // software gates, zero duration and error
	Extra       []string  // instructions present without characterization
	TwoQ        string    // two-qubit gate name, "" for single-qubit devices
	Edges       [][2]int  // undirected couplings
	Err1Q       []float64 // per-qubit single-qubit gate error
	ErrRO       []float64 // per-qubit readout error
	ErrCX       float64   // base two-qubit gate error
	T1          []float64 // μs
	T2          []float64 // μs
}

var deviceLibrary = map[string]*deviceSpec{
	"fake_armonk": {
		Name:        "fake_armonk",
		Version:     "2.4.3",
		Online:      time.Date(2019, 10, 16, 4, 0, 0, 0, time.UTC),
		MaxCircuits: 75,
		Gates1Q:     []string{"id", "sx", "x"},
		Virtual1Q:   []string{"rz"},
		Edges:       nil,
		Err1Q:       []float64{1.95e-4},
		ErrRO:       []float64{2.38e-2},
		T1:          []float64{140.4},
		T2:          []float64{204.9},
	},
	"fake_manila": {
		Name:        "fake_manila",
		Version:     "1.1.3",
		Online:      time.Date(2021, 4, 28, 4, 0, 0, 0, time.UTC),
		MaxCircuits: 100,
		Gates1Q:     []string{"id", "sx", "x"},
		Virtual1Q:   []string{"rz"},
		Extra:       []string{"reset"},
		TwoQ:        "cx",
		Edges:       [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
		Err1Q:       []float64{2.1e-4, 2.8e-4, 2.4e-4, 1.9e-4, 3.6e-4},
		ErrRO:       []float64{2.26e-2, 2.48e-2, 2.18e-2, 2.12e-2, 3.16e-2},
		ErrCX:       6.9e-3,
		T1:          []float64{122.4, 171.6, 141.2, 172.0, 120.7},
		T2:          []float64{67.7, 62.7, 24.4, 66.6, 38.1},
	},
	"fake_melbourne": {
		Name:        "fake_melbourne",
		Version:     "2.4.21",
		Online:      time.Date(2018, 11, 6, 5, 0, 0, 0, time.UTC),
		MaxCircuits: 75,
		Gates1Q:     []string{"id", "u2", "u3"},
		Virtual1Q:   []string{"u1"},
		Extra:       []string{"reset"},
		TwoQ:        "cx",
		Edges: [][2]int{
			{1, 0}, {1, 2}, {2, 3}, {4, 3}, {4, 10}, {5, 4},
			{5, 6}, {5, 9}, {6, 8}, {7, 8}, {9, 8}, {9, 10},
			{11, 3}, {11, 10}, {11, 12}, {12, 2}, {13, 1}, {13, 12},
		},
		Err1Q: []float64{
			5.8e-4, 1.4e-3, 8.8e-4, 4.4e-4, 1.1e-3, 1.5e-3, 9.6e-4,
			1.3e-3, 6.2e-4, 1.7e-3, 1.2e-3, 8.1e-4, 7.3e-4, 2.4e-3,
		},
		ErrRO: []float64{
			2.3e-2, 4.7e-2, 3.4e-2, 3.9e-2, 4.3e-2, 4.5e-2, 8.6e-2,
			3.2e-2, 4.6e-2, 4.4e-2, 3.8e-2, 3.5e-2, 5.5e-2, 4.9e-2,
		},
		ErrCX: 2.6e-2,
		T1: []float64{
			74.7, 61.8, 66.3, 79.0, 54.2, 20.0, 67.6,
			38.9, 72.2, 41.4, 64.8, 58.7, 91.9, 23.5,
		},
		T2: []float64{
			22.0, 65.8, 85.3, 70.1, 35.5, 33.9, 92.9,
			65.3, 82.3, 58.6, 54.6, 93.6, 81.3, 41.9,
		},
	},
	"fake_nairobi": {
		Name:        "fake_nairobi",
		Version:     "1.3.4",
		Online:      time.Date(2021, 5, 24, 4, 0, 0, 0, time.UTC),
		MaxCircuits: 100,
		Gates1Q:     []string{"id", "sx", "x"},
		Virtual1Q:   []string{"rz"},
		Extra:       []string{"reset"},
		TwoQ:        "cx",
		Edges:       [][2]int{{0, 1}, {1, 2}, {1, 3}, {3, 5}, {4, 5}, {5, 6}},
		Err1Q:       []float64{2.6e-4, 2.3e-4, 2.5e-4, 2.2e-4, 4.0e-4, 2.8e-4, 2.4e-4},
		ErrRO:       []float64{2.1e-2, 2.5e-2, 1.8e-2, 2.4e-2, 3.3e-2, 2.2e-2, 1.9e-2},
		ErrCX:       9.3e-3,
		T1:          []float64{117.8, 132.7, 109.4, 128.5, 88.2, 104.0, 136.1},
		T2:          []float64{37.9, 64.5, 90.9, 62.3, 60.8, 78.7, 122.4},
	},
}
