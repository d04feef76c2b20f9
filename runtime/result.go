package runtime

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/perclft/QubitScope/runtime/runtimepb"
)

// Result holds the measurement outcome of a sampler run.
type Result struct {
	JobID       string
	BackendName string
	Shots       int
	Counts      map[string]int
	Quasi       map[string]float64
	FromCache   bool
	Elapsed     time.Duration
}

// ResultFromProto converts a wire result to the native form.
func ResultFromProto(pb *runtimepb.SamplerResult) *Result {
	if pb == nil {
		return nil
	}
	r := &Result{
		JobID:       pb.JobId,
		BackendName: pb.BackendName,
		Shots:       int(pb.Shots),
		FromCache:   pb.FromCache,
		Elapsed:     time.Duration(pb.ElapsedMs) * time.Millisecond,
	}
	if len(pb.Counts) > 0 {
		r.Counts = make(map[string]int, len(pb.Counts))
		for _, e := range pb.Counts {
			r.Counts[e.Bitstring] = int(e.Count)
		}
	}
	if len(pb.QuasiDists) > 0 {
		r.Quasi = make(map[string]float64, len(pb.QuasiDists))
		for _, e := range pb.QuasiDists {
			r.Quasi[e.Bitstring] = e.Probability
		}
	}
	return r
}

// String renders counts sorted by bitstring, most significant first in the
// usual little-endian measurement convention.
func (r *Result) String() string {
	keys := make([]string, 0, len(r.Counts))
	for k := range r.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "job %s on %s (%d shots)", r.JobID, r.BackendName, r.Shots)
	if r.FromCache {
		sb.WriteString(" [cached]")
	}
	sb.WriteString("\n")
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %s: %d\n", k, r.Counts[k])
	}
	return sb.String()
}
