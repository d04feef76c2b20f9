// Runtime service client
// Thin wrapper over the gRPC API: backend lookup, transpilation, sessions

package runtime

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/perclft/QubitScope/backend"
	"github.com/perclft/QubitScope/circuit"
	"github.com/perclft/QubitScope/runtime/runtimepb"
)

// Service is a connection to the runtime service. It implements
// provider.Provider so remote backends can be searched like local ones.
type Service struct {
	cfg    *Config
	conn   *grpc.ClientConn
	client runtimepb.RuntimeClient
	log    *zap.Logger
}

// Open dials the runtime service. The account token rides along as metadata
// on every call.
func Open(cfg *Config) (*Service, error) {
	return OpenWithLogger(cfg, zap.NewNop())
}

// OpenWithLogger is Open with a structured logger attached.
func OpenWithLogger(cfg *Config, log *zap.Logger) (*Service, error) {
	conn, err := grpc.NewClient(cfg.Endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(authInterceptor(cfg.Token)),
	)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.Endpoint, err)
	}
	log.Debug("runtime service dialed",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("channel", cfg.Channel),
		zap.String("instance", cfg.Instance))
	return &Service{cfg: cfg, conn: conn, client: runtimepb.NewRuntimeClient(conn), log: log}, nil
}

func authInterceptor(token string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// Close tears down the connection.
func (s *Service) Close() error {
	return s.conn.Close()
}

// Name identifies the service as a provider.
func (s *Service) Name() string { return "runtime:" + s.cfg.Endpoint }

// Backends fetches the full catalog. Listing is synchronous, so this is the
// provider.Provider hook; prefer Backend for single lookups.
func (s *Service) Backends() []backend.Backend {
	list, err := s.ListBackends(context.Background())
	if err != nil {
		return nil
	}
	return list
}

// ListBackends fetches the catalog from the service.
func (s *Service) ListBackends(ctx context.Context) ([]backend.Backend, error) {
	reply, err := s.client.ListBackends(ctx, &runtimepb.ListBackendsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list backends: %w", err)
	}
	out := make([]backend.Backend, 0, len(reply.Backends))
	for _, pb := range reply.Backends {
		out = append(out, runtimepb.SnapshotFromProto(pb).Backend())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

// Backend fetches a single backend by name.
func (s *Service) Backend(ctx context.Context, name string) (backend.Backend, error) {
	pb, err := s.client.GetBackend(ctx, &runtimepb.GetBackendRequest{Name: name})
	if err != nil {
		return nil, fmt.Errorf("get backend %s: %w", name, err)
	}
	return runtimepb.SnapshotFromProto(pb).Backend(), nil
}

// JobSummary is one row of the service's job audit trail.
type JobSummary struct {
	ID        string
	Backend   string
	State     string
	Shots     int
	Noisy     bool
	Submitted time.Time
	Completed time.Time
	Err       string
}

// Jobs lists recent jobs from the service's audit trail, newest first.
// backendName filters when non-empty; limit 0 uses the service default.
func (s *Service) Jobs(ctx context.Context, backendName string, limit int) ([]*JobSummary, error) {
	reply, err := s.client.ListJobs(ctx, &runtimepb.ListJobsRequest{
		BackendName: backendName,
		Limit:       int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	out := make([]*JobSummary, 0, len(reply.Jobs))
	for _, j := range reply.Jobs {
		sum := &JobSummary{
			ID:      j.JobId,
			Backend: j.BackendName,
			State:   j.State,
			Shots:   int(j.Shots),
			Noisy:   j.Noisy,
			Err:     j.Error,
		}
		if j.SubmittedAtUnix != 0 {
			sum.Submitted = time.Unix(j.SubmittedAtUnix, 0)
		}
		if j.CompletedAtUnix != 0 {
			sum.Completed = time.Unix(j.CompletedAtUnix, 0)
		}
		out = append(out, sum)
	}
	return out, nil
}

// Transpile rewrites a circuit for a backend at optimization level 0: gates
// are renamed into the backend's basis and connectivity is checked, nothing
// is optimized away.
func (s *Service) Transpile(ctx context.Context, backendName string, c *circuit.Circuit) (*circuit.Circuit, error) {
	reply, err := s.client.Transpile(ctx, &runtimepb.TranspileRequest{
		BackendName: backendName,
		Circuit:     runtimepb.CircuitToProto(c),
	})
	if err != nil {
		return nil, fmt.Errorf("transpile for %s: %w", backendName, err)
	}
	out := runtimepb.CircuitFromProto(reply.Circuit)
	s.log.Debug("circuit transpiled",
		zap.String("backend", backendName),
		zap.Int("ops_in", c.NumOps()),
		zap.Int("ops_out", out.NumOps()))
	return out, nil
}
