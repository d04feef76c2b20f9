// Sampler primitive
// Submits circuits inside a session and exposes job handles for polling

package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/perclft/QubitScope/circuit"
	"github.com/perclft/QubitScope/runtime/runtimepb"
)

// Job states as reported by the service.
const (
	JobQueued    = "QUEUED"
	JobRunning   = "RUNNING"
	JobCompleted = "COMPLETED"
	JobFailed    = "FAILED"
	JobCancelled = "CANCELLED"
)

// Sampler runs circuits within a session and returns measurement counts.
type Sampler struct {
	session *Session
}

// NewSampler binds a sampler to a session.
func NewSampler(session *Session) *Sampler {
	return &Sampler{session: session}
}

// Run submits a circuit with the given options and returns a job handle.
func (sm *Sampler) Run(ctx context.Context, c *circuit.Circuit, opts *Options) (*Job, error) {
	pbOpts, err := opts.ToProto()
	if err != nil {
		return nil, err
	}
	handle, err := sm.session.svc.client.RunSampler(ctx, &runtimepb.SamplerRunRequest{
		SessionId: sm.session.id,
		Circuit:   runtimepb.CircuitToProto(c),
		Options:   pbOpts,
	})
	if err != nil {
		return nil, fmt.Errorf("run sampler: %w", err)
	}
	return &Job{svc: sm.session.svc, id: handle.JobId}, nil
}

// Job is a handle to a submitted sampler run.
type Job struct {
	svc *Service
	id  string
}

// ID returns the service-assigned job identifier.
func (j *Job) ID() string { return j.id }

// Status returns the current job status.
type JobStatus struct {
	State     string
	Position  int
	Submitted time.Time
	Started   time.Time
	Completed time.Time
	Err       string
}

func (j *Job) Status(ctx context.Context) (*JobStatus, error) {
	reply, err := j.svc.client.GetJobStatus(ctx, &runtimepb.JobHandle{JobId: j.id})
	if err != nil {
		return nil, fmt.Errorf("job %s status: %w", j.id, err)
	}
	st := &JobStatus{
		State:    reply.State,
		Position: int(reply.Position),
		Err:      reply.Error,
	}
	if reply.SubmittedAtUnix != 0 {
		st.Submitted = time.Unix(reply.SubmittedAtUnix, 0)
	}
	if reply.StartedAtUnix != 0 {
		st.Started = time.Unix(reply.StartedAtUnix, 0)
	}
	if reply.CompletedAtUnix != 0 {
		st.Completed = time.Unix(reply.CompletedAtUnix, 0)
	}
	return st, nil
}

// Result blocks until the job reaches a terminal state and returns the
// sampler result. Polling stops when the context is done.
func (j *Job) Result(ctx context.Context) (*Result, error) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		st, err := j.Status(ctx)
		if err != nil {
			return nil, err
		}
		switch st.State {
		case JobCompleted:
			pb, err := j.svc.client.GetJobResult(ctx, &runtimepb.JobHandle{JobId: j.id})
			if err != nil {
				return nil, fmt.Errorf("job %s result: %w", j.id, err)
			}
			return ResultFromProto(pb), nil
		case JobFailed:
			return nil, fmt.Errorf("job %s failed: %s", j.id, st.Err)
		case JobCancelled:
			return nil, fmt.Errorf("job %s was cancelled", j.id)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Cancel asks the service to cancel the job.
func (j *Job) Cancel(ctx context.Context) error {
	ack, err := j.svc.client.CancelJob(ctx, &runtimepb.JobHandle{JobId: j.id})
	if err != nil {
		return fmt.Errorf("cancel job %s: %w", j.id, err)
	}
	if !ack.Ok {
		return fmt.Errorf("cancel job %s: %s", j.id, ack.Message)
	}
	return nil
}
