// Runtime service
// Backend catalog, sessions, level-0 transpilation, and sampler jobs backed
// by a Redis queue, a Redis result cache, and a PostgreSQL audit trail

package server

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/perclft/QubitScope/backend"
	"github.com/perclft/QubitScope/circuit"
	"github.com/perclft/QubitScope/noise"
	"github.com/perclft/QubitScope/provider"
	"github.com/perclft/QubitScope/runtime"
	"github.com/perclft/QubitScope/runtime/runtimepb"
)

const (
	jobTTL = 24 * time.Hour

	defaultSessionTTL = 8 * time.Hour
	maxSessionTTL     = 24 * time.Hour
)

// ------------------------------------------------------------------
// Job representation
// ------------------------------------------------------------------

type jobRecord struct {
	ID          string         `json:"id"`
	SessionID   string         `json:"session_id"`
	Backend     string         `json:"backend"`
	State       string         `json:"state"`
	Shots       int            `json:"shots"`
	CircuitJSON string         `json:"circuit_json"`
	OptionsJSON string         `json:"options_json"`
	Counts      map[string]int `json:"counts,omitempty"`
	FromCache   bool           `json:"from_cache"`
	ElapsedMs   int64          `json:"elapsed_ms"`
	SubmittedAt int64          `json:"submitted_at"`
	StartedAt   int64          `json:"started_at"`
	CompletedAt int64          `json:"completed_at"`
	Error       string         `json:"error,omitempty"`
}

type sessionState struct {
	id        string
	backend   string
	instance  string
	openedAt  time.Time
	expiresAt time.Time
	closed    bool
}

func (s *sessionState) expired(now time.Time) bool {
	return now.After(s.expiresAt)
}

// ------------------------------------------------------------------
// Server
// ------------------------------------------------------------------

// Config carries the server's tunables.
type Config struct {
	Token    string        // empty disables authentication
	CacheTTL time.Duration // result cache lifetime
}

// Server implements the Runtime gRPC service.
type Server struct {
	runtimepb.UnimplementedRuntimeServer

	log     *zap.Logger
	catalog *provider.Registry
	queue   *Queue
	cache   *Cache
	store   *Store // nil disables the audit trail
	engine  Engine
	rdb     *redis.Client
	token   string

	mu       sync.RWMutex
	sessions map[string]*sessionState
	cancels  map[string]context.CancelFunc
}

// New assembles the server. The catalog must already hold every backend the
// service exposes.
func New(log *zap.Logger, rdb *redis.Client, store *Store, catalog *provider.Registry, engine Engine, cfg Config) *Server {
	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = time.Hour
	}
	return &Server{
		log:      log,
		catalog:  catalog,
		queue:    NewQueue(rdb),
		cache:    NewCache(rdb, ttl),
		store:    store,
		engine:   engine,
		rdb:      rdb,
		token:    cfg.Token,
		sessions: make(map[string]*sessionState),
		cancels:  make(map[string]context.CancelFunc),
	}
}

func (s *Server) authenticate(ctx context.Context) error {
	if s.token == "" {
		return nil
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "missing metadata")
	}
	for _, v := range md.Get("authorization") {
		if strings.TrimPrefix(v, "Bearer ") == s.token {
			return nil
		}
	}
	return status.Error(codes.Unauthenticated, "invalid token")
}

// ------------------------------------------------------------------
// Catalog
// ------------------------------------------------------------------

func (s *Server) ListBackends(ctx context.Context, _ *runtimepb.ListBackendsRequest) (*runtimepb.BackendList, error) {
	if err := s.authenticate(ctx); err != nil {
		return nil, err
	}
	list := &runtimepb.BackendList{}
	for _, b := range s.catalog.List() {
		list.Backends = append(list.Backends, runtimepb.SnapshotToProto(backend.SnapshotOf(b)))
	}
	return list, nil
}

func (s *Server) GetBackend(ctx context.Context, req *runtimepb.GetBackendRequest) (*runtimepb.BackendSnapshot, error) {
	if err := s.authenticate(ctx); err != nil {
		return nil, err
	}
	b, ok := s.catalog.Get(req.Name)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "backend not found: %s", req.Name)
	}
	return runtimepb.SnapshotToProto(backend.SnapshotOf(b)), nil
}

// ------------------------------------------------------------------
// Sessions
// ------------------------------------------------------------------

func (s *Server) OpenSession(ctx context.Context, req *runtimepb.OpenSessionRequest) (*runtimepb.SessionHandle, error) {
	if err := s.authenticate(ctx); err != nil {
		return nil, err
	}
	if _, ok := s.catalog.Get(req.BackendName); !ok {
		return nil, status.Errorf(codes.NotFound, "backend not found: %s", req.BackendName)
	}

	ttl := defaultSessionTTL
	if req.MaxTtlSeconds > 0 {
		ttl = time.Duration(req.MaxTtlSeconds) * time.Second
		if ttl > maxSessionTTL {
			ttl = maxSessionTTL
		}
	}

	id := uuid.New().String()
	now := time.Now()
	s.mu.Lock()
	s.sessions[id] = &sessionState{
		id:        id,
		backend:   req.BackendName,
		instance:  req.Instance,
		openedAt:  now,
		expiresAt: now.Add(ttl),
	}
	s.mu.Unlock()

	s.log.Info("session opened",
		zap.String("session_id", id),
		zap.String("backend", req.BackendName),
		zap.String("instance", req.Instance),
		zap.Duration("ttl", ttl))
	return &runtimepb.SessionHandle{SessionId: id}, nil
}

func (s *Server) CloseSession(ctx context.Context, handle *runtimepb.SessionHandle) (*runtimepb.Ack, error) {
	if err := s.authenticate(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	sess, ok := s.sessions[handle.SessionId]
	if ok {
		sess.closed = true
	}
	s.mu.Unlock()

	if !ok {
		return &runtimepb.Ack{Ok: false, Message: "session not found"}, nil
	}
	s.log.Info("session closed",
		zap.String("session_id", sess.id),
		zap.Duration("open_for", time.Since(sess.openedAt)))
	return &runtimepb.Ack{Ok: true}, nil
}

func (s *Server) session(id string) *sessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// ------------------------------------------------------------------
// Transpilation
// ------------------------------------------------------------------

func (s *Server) Transpile(ctx context.Context, req *runtimepb.TranspileRequest) (*runtimepb.TranspileReply, error) {
	if err := s.authenticate(ctx); err != nil {
		return nil, err
	}
	b, ok := s.catalog.Get(req.BackendName)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "backend not found: %s", req.BackendName)
	}
	c := runtimepb.CircuitFromProto(req.Circuit)
	if c == nil || c.NumOps() == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty circuit")
	}
	if c.NumQubits > b.NumQubits() {
		return nil, status.Errorf(codes.InvalidArgument,
			"circuit needs %d qubits, %s has %d", c.NumQubits, b.Name(), b.NumQubits())
	}

	out, err := Transpile(b, c)
	if err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	return &runtimepb.TranspileReply{Circuit: runtimepb.CircuitToProto(out)}, nil
}

// ------------------------------------------------------------------
// Sampler jobs
// ------------------------------------------------------------------

func (s *Server) RunSampler(ctx context.Context, req *runtimepb.SamplerRunRequest) (*runtimepb.JobHandle, error) {
	if err := s.authenticate(ctx); err != nil {
		return nil, err
	}
	sess := s.session(req.SessionId)
	if sess == nil || sess.closed {
		return nil, status.Errorf(codes.NotFound, "session not found: %s", req.SessionId)
	}
	if sess.expired(time.Now()) {
		return nil, status.Errorf(codes.FailedPrecondition, "session expired: %s", req.SessionId)
	}

	c := runtimepb.CircuitFromProto(req.Circuit)
	if c == nil || c.NumOps() == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty circuit")
	}
	opts, err := runtime.OptionsFromProto(req.Options)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad options: %v", err)
	}
	if opts == nil || opts.Shots <= 0 {
		return nil, status.Error(codes.InvalidArgument, "shots must be positive")
	}

	jobID := uuid.New().String()
	now := time.Now()

	circuitJSON, _ := json.Marshal(c)
	optionsJSON, _ := json.Marshal(opts)

	job := &jobRecord{
		ID:          jobID,
		SessionID:   req.SessionId,
		Backend:     sess.backend,
		State:       runtime.JobQueued,
		Shots:       opts.Shots,
		CircuitJSON: string(circuitJSON),
		OptionsJSON: string(optionsJSON),
		SubmittedAt: now.Unix(),
	}

	// Serve identical runs from cache without queueing.
	key, err := RunKey(sess.backend, c, opts)
	if err == nil {
		if hit, _ := s.cache.Get(ctx, key); hit != nil {
			job.State = runtime.JobCompleted
			job.Counts = hit.Counts
			job.FromCache = true
			job.CompletedAt = now.Unix()
			if err := s.saveJob(ctx, job); err != nil {
				return nil, status.Errorf(codes.Internal, "store job: %v", err)
			}
			s.log.Info("job served from cache",
				zap.String("job_id", jobID), zap.String("key", key[:16]))
			return &runtimepb.JobHandle{JobId: jobID}, nil
		}
	}

	if err := s.saveJob(ctx, job); err != nil {
		return nil, status.Errorf(codes.Internal, "store job: %v", err)
	}
	if err := s.queue.Push(ctx, jobID, req.Priority, now); err != nil {
		return nil, status.Errorf(codes.Internal, "queue job: %v", err)
	}
	if s.store != nil {
		rec := &JobRecord{
			ID:          jobID,
			SessionID:   req.SessionId,
			Backend:     sess.backend,
			Shots:       int32(opts.Shots),
			CircuitHash: c.Hash(),
			NumQubits:   int32(c.NumQubits),
			NumOps:      int32(c.NumOps()),
			Noisy:       opts.Simulator != nil && opts.Simulator.NoiseModel != nil,
			State:       runtime.JobQueued,
			SubmittedAt: now,
		}
		if err := s.store.InsertJob(ctx, rec); err != nil {
			s.log.Warn("audit insert failed", zap.String("job_id", jobID), zap.Error(err))
		}
	}

	s.log.Info("job submitted",
		zap.String("job_id", jobID),
		zap.String("backend", sess.backend),
		zap.Int("qubits", c.NumQubits),
		zap.Int("ops", c.NumOps()),
		zap.Int("shots", opts.Shots))

	go s.processNextJob()

	return &runtimepb.JobHandle{JobId: jobID}, nil
}

func (s *Server) GetJobStatus(ctx context.Context, handle *runtimepb.JobHandle) (*runtimepb.JobStatusReply, error) {
	if err := s.authenticate(ctx); err != nil {
		return nil, err
	}
	job, err := s.loadJob(ctx, handle.JobId)
	if err != nil {
		return nil, err
	}

	position := 0
	if job.State == runtime.JobQueued {
		position, _ = s.queue.Position(ctx, job.ID)
	}

	return &runtimepb.JobStatusReply{
		JobId:           job.ID,
		State:           job.State,
		Position:        int32(position),
		SubmittedAtUnix: job.SubmittedAt,
		StartedAtUnix:   job.StartedAt,
		CompletedAtUnix: job.CompletedAt,
		Error:           job.Error,
	}, nil
}

func (s *Server) GetJobResult(ctx context.Context, handle *runtimepb.JobHandle) (*runtimepb.SamplerResult, error) {
	if err := s.authenticate(ctx); err != nil {
		return nil, err
	}
	job, err := s.loadJob(ctx, handle.JobId)
	if err != nil {
		return nil, err
	}
	if job.State != runtime.JobCompleted {
		return nil, status.Errorf(codes.FailedPrecondition, "job %s is %s", job.ID, job.State)
	}

	result := &runtimepb.SamplerResult{
		JobId:       job.ID,
		BackendName: job.Backend,
		Shots:       int32(job.Shots),
		FromCache:   job.FromCache,
		ElapsedMs:   job.ElapsedMs,
	}
	total := 0
	for _, n := range job.Counts {
		total += n
	}
	for bitstring, n := range job.Counts {
		result.Counts = append(result.Counts, &runtimepb.CountEntry{Bitstring: bitstring, Count: int32(n)})
		if total > 0 {
			result.QuasiDists = append(result.QuasiDists, &runtimepb.QuasiEntry{
				Bitstring:   bitstring,
				Probability: float64(n) / float64(total),
			})
		}
	}
	return result, nil
}

func (s *Server) CancelJob(ctx context.Context, handle *runtimepb.JobHandle) (*runtimepb.Ack, error) {
	if err := s.authenticate(ctx); err != nil {
		return nil, err
	}

	// Still queued: drop it before a worker picks it up.
	if removed, _ := s.queue.Remove(ctx, handle.JobId); removed {
		s.markJob(ctx, handle.JobId, runtime.JobCancelled, "")
		return &runtimepb.Ack{Ok: true, Message: "job removed from queue"}, nil
	}

	s.mu.RLock()
	cancel, running := s.cancels[handle.JobId]
	s.mu.RUnlock()
	if running {
		cancel()
		s.markJob(ctx, handle.JobId, runtime.JobCancelled, "")
		return &runtimepb.Ack{Ok: true, Message: "running job cancelled"}, nil
	}

	return &runtimepb.Ack{Ok: false, Message: "job not found or already finished"}, nil
}

// ListJobs reports the audit trail, newest first. Requires the PostgreSQL
// store to be configured.
func (s *Server) ListJobs(ctx context.Context, req *runtimepb.ListJobsRequest) (*runtimepb.JobList, error) {
	if err := s.authenticate(ctx); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, status.Error(codes.FailedPrecondition, "audit trail is disabled")
	}

	recs, err := s.store.ListJobs(ctx, req.BackendName, int(req.Limit))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}

	list := &runtimepb.JobList{}
	for _, rec := range recs {
		sum := &runtimepb.JobSummary{
			JobId:           rec.ID,
			BackendName:     rec.Backend,
			State:           rec.State,
			Shots:           rec.Shots,
			Noisy:           rec.Noisy,
			SubmittedAtUnix: rec.SubmittedAt.Unix(),
			Error:           rec.Error,
		}
		if rec.CompletedAt.Valid {
			sum.CompletedAtUnix = rec.CompletedAt.Time.Unix()
		}
		list.Jobs = append(list.Jobs, sum)
	}
	return list, nil
}

// ------------------------------------------------------------------
// Worker
// ------------------------------------------------------------------

func (s *Server) processNextJob() {
	ctx := context.Background()

	jobID, err := s.queue.Pop(ctx)
	if err != nil || jobID == "" {
		return
	}

	job, err := s.loadJob(ctx, jobID)
	if err != nil {
		s.log.Error("dequeued unknown job", zap.String("job_id", jobID), zap.Error(err))
		return
	}

	job.State = runtime.JobRunning
	job.StartedAt = time.Now().Unix()
	if err := s.saveJob(ctx, job); err != nil {
		s.log.Error("save running state failed", zap.String("job_id", jobID), zap.Error(err))
	}

	jobCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancels[jobID] = cancel
	s.mu.Unlock()
	defer func() {
		cancel()
		s.mu.Lock()
		delete(s.cancels, jobID)
		s.mu.Unlock()
	}()

	var c circuit.Circuit
	var opts runtime.Options
	if err := json.Unmarshal([]byte(job.CircuitJSON), &c); err != nil {
		s.failJob(ctx, job, err)
		return
	}
	if err := json.Unmarshal([]byte(job.OptionsJSON), &opts); err != nil {
		s.failJob(ctx, job, err)
		return
	}

	var model *noise.Model
	if opts.Simulator != nil {
		model = opts.Simulator.NoiseModel
	}

	start := time.Now()
	counts, err := s.engine.Execute(jobCtx, &ExecRequest{
		Circuit: &c,
		Shots:   job.Shots,
		Noise:   model,
	})
	elapsed := time.Since(start)

	if err != nil {
		if jobCtx.Err() != nil {
			// cancellation already set the terminal state
			return
		}
		s.failJob(ctx, job, err)
		return
	}

	job.State = runtime.JobCompleted
	job.Counts = counts
	job.ElapsedMs = elapsed.Milliseconds()
	job.CompletedAt = time.Now().Unix()
	s.saveJob(ctx, job)
	if s.store != nil {
		s.store.MarkJob(ctx, job.ID, runtime.JobCompleted, "")
	}

	if key, err := RunKey(job.Backend, &c, &opts); err == nil {
		s.cache.Put(ctx, key, &CachedResult{
			Counts:  counts,
			Shots:   job.Shots,
			Backend: job.Backend,
		})
	}

	s.log.Info("job completed",
		zap.String("job_id", job.ID),
		zap.Duration("elapsed", elapsed))
}

func (s *Server) failJob(ctx context.Context, job *jobRecord, cause error) {
	job.State = runtime.JobFailed
	job.Error = cause.Error()
	job.CompletedAt = time.Now().Unix()
	s.saveJob(ctx, job)
	if s.store != nil {
		s.store.MarkJob(ctx, job.ID, runtime.JobFailed, job.Error)
	}
	s.log.Error("job failed", zap.String("job_id", job.ID), zap.Error(cause))
}

// ------------------------------------------------------------------
// Job persistence (Redis)
// ------------------------------------------------------------------

func (s *Server) saveJob(ctx context.Context, job *jobRecord) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, "qs:job:"+job.ID, data, jobTTL).Err()
}

func (s *Server) loadJob(ctx context.Context, jobID string) (*jobRecord, error) {
	data, err := s.rdb.Get(ctx, "qs:job:"+jobID).Bytes()
	if err == redis.Nil {
		return nil, status.Errorf(codes.NotFound, "job not found: %s", jobID)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "redis error: %v", err)
	}
	var job jobRecord
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, status.Errorf(codes.Internal, "parse job: %v", err)
	}
	return &job, nil
}

func (s *Server) markJob(ctx context.Context, jobID, state, errMsg string) {
	job, err := s.loadJob(ctx, jobID)
	if err != nil {
		return
	}
	job.State = state
	job.Error = errMsg
	switch state {
	case runtime.JobCompleted, runtime.JobFailed, runtime.JobCancelled:
		job.CompletedAt = time.Now().Unix()
	}
	s.saveJob(ctx, job)
	if s.store != nil {
		s.store.MarkJob(ctx, jobID, state, errMsg)
	}
}
