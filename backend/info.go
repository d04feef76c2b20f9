package backend

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Info is the collected characterization of a backend: identity, capacity,
// timing resolution, connectivity, and the full instruction target.
type Info struct {
	Name           string       `json:"name"`
	Version        string       `json:"version"`
	OnlineDate     time.Time    `json:"online_date"`
	DT             float64      `json:"syst_time_resolution_input_signals"`
	DTM            float64      `json:"syst_time_resolution_output_signals"`
	MaxCircuits    int          `json:"max_circuits_per_job"`
	NumQubits      int          `json:"num_qubits"`
	CouplingMap    *CouplingMap `json:"coupling_map"`
	OperationNames []string     `json:"operation_names"`
	Target         Target       `json:"target"`
}

// CollectInfo fetches the characteristics of a backend.
func CollectInfo(b Backend) *Info {
	return &Info{
		Name:           b.Name(),
		Version:        b.Version(),
		OnlineDate:     b.OnlineDate(),
		DT:             b.DT(),
		DTM:            b.DTM(),
		MaxCircuits:    b.MaxCircuits(),
		NumQubits:      b.NumQubits(),
		CouplingMap:    b.CouplingMap(),
		OperationNames: b.OperationNames(),
		Target:         b.Target(),
	}
}

// Print writes the backend information in report form: identity and capacity
// first, then timing resolution, connectivity, and finally the target walked
// gate by gate with per-tuple duration and error. Instructions without
// reported properties print as duration=None, error=None.
func (i *Info) Print(w io.Writer) {
	fmt.Fprintf(w, "Name: %s\n", i.Name)
	fmt.Fprintf(w, "Version: %s\n", i.Version)
	fmt.Fprintf(w, "Online date: %s\n", i.OnlineDate.Format(time.RFC3339))
	fmt.Fprintf(w, "Max circuits per job: %d\n", i.MaxCircuits)
	fmt.Fprintf(w, "Number of qubits: %d\n", i.NumQubits)

	fmt.Fprintln(w, "System time resolution:")
	fmt.Fprintf(w, "\tInput signals: %g\n", i.DT)
	fmt.Fprintf(w, "\tOutput signals: %g\n", i.DTM)

	fmt.Fprintln(w, "Coupling map:")
	i.CouplingMap.Draw(w)

	fmt.Fprintf(w, "Operations names: %s\n", strings.Join(i.OperationNames, ", "))

	fmt.Fprintln(w, "Target:")
	for _, gate := range i.Target.Gates() {
		fmt.Fprintf(w, "\t%s\n", gate)
		for _, qargs := range i.Target.Qargs(gate) {
			props := i.Target[gate][qargs]
			if props != nil {
				fmt.Fprintf(w, "\t\tQubit(s) %s: duration=%g, error=%g\n", qargs, props.Duration, props.Error)
			} else {
				fmt.Fprintf(w, "\t\tQubit(s) %s: duration=None, error=None\n", qargs)
			}
		}
	}
}

func (i *Info) String() string {
	var sb strings.Builder
	i.Print(&sb)
	return sb.String()
}
