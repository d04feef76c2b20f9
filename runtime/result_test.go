package runtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/QubitScope/runtime/runtimepb"
)

func TestResultFromProto(t *testing.T) {
	pb := &runtimepb.SamplerResult{
		JobId:       "job-1",
		BackendName: "ibmq_qasm_simulator",
		Shots:       1024,
		Counts: []*runtimepb.CountEntry{
			{Bitstring: "11", Count: 520},
			{Bitstring: "01", Count: 504},
		},
		QuasiDists: []*runtimepb.QuasiEntry{
			{Bitstring: "11", Probability: 0.5078125},
			{Bitstring: "01", Probability: 0.4921875},
		},
		FromCache: true,
		ElapsedMs: 42,
	}

	r := ResultFromProto(pb)
	require.NotNil(t, r)
	assert.Equal(t, 1024, r.Shots)
	assert.Equal(t, 520, r.Counts["11"])
	assert.InDelta(t, 0.4921875, r.Quasi["01"], 1e-12)
	assert.Equal(t, 42*time.Millisecond, r.Elapsed)

	s := r.String()
	assert.Contains(t, s, "job job-1 on ibmq_qasm_simulator (1024 shots) [cached]")
	assert.Contains(t, s, "  01: 504")
	assert.Contains(t, s, "  11: 520")
}
