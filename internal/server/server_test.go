package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/perclft/QubitScope/provider"
	"github.com/perclft/QubitScope/provider/fake"
	"github.com/perclft/QubitScope/runtime/runtimepb"
)

// newTestServer builds a server with no Redis, no audit store, and no auth.
// Session bookkeeping lives in memory, so the paths under test never touch
// the external stores.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	catalog := provider.NewRegistry()
	for _, b := range fake.NewProvider().Backends() {
		catalog.Register(b)
	}
	return New(zap.NewNop(), nil, nil, catalog, &StubEngine{}, Config{})
}

func TestOpenSessionDefaultTTL(t *testing.T) {
	srv := newTestServer(t)

	handle, err := srv.OpenSession(context.Background(), &runtimepb.OpenSessionRequest{
		BackendName: "fake_melbourne",
		Instance:    "hub/group/project",
	})
	require.NoError(t, err)

	sess := srv.session(handle.SessionId)
	require.NotNil(t, sess)
	assert.Equal(t, "fake_melbourne", sess.backend)
	assert.Equal(t, "hub/group/project", sess.instance)
	assert.InDelta(t, defaultSessionTTL.Seconds(), sess.expiresAt.Sub(sess.openedAt).Seconds(), 1)
}

func TestOpenSessionHonorsRequestedTTL(t *testing.T) {
	srv := newTestServer(t)

	handle, err := srv.OpenSession(context.Background(), &runtimepb.OpenSessionRequest{
		BackendName:   "fake_melbourne",
		MaxTtlSeconds: 60,
	})
	require.NoError(t, err)

	sess := srv.session(handle.SessionId)
	require.NotNil(t, sess)
	assert.InDelta(t, 60, sess.expiresAt.Sub(sess.openedAt).Seconds(), 1)
}

func TestOpenSessionCapsTTL(t *testing.T) {
	srv := newTestServer(t)

	week := int32((7 * 24 * time.Hour).Seconds())
	handle, err := srv.OpenSession(context.Background(), &runtimepb.OpenSessionRequest{
		BackendName:   "fake_melbourne",
		MaxTtlSeconds: week,
	})
	require.NoError(t, err)

	sess := srv.session(handle.SessionId)
	require.NotNil(t, sess)
	assert.InDelta(t, maxSessionTTL.Seconds(), sess.expiresAt.Sub(sess.openedAt).Seconds(), 1)
}

func TestOpenSessionUnknownBackend(t *testing.T) {
	srv := newTestServer(t)

	_, err := srv.OpenSession(context.Background(), &runtimepb.OpenSessionRequest{
		BackendName: "no_such_device",
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestRunSamplerRejectsExpiredSession(t *testing.T) {
	srv := newTestServer(t)

	handle, err := srv.OpenSession(context.Background(), &runtimepb.OpenSessionRequest{
		BackendName: "fake_melbourne",
	})
	require.NoError(t, err)

	srv.mu.Lock()
	srv.sessions[handle.SessionId].expiresAt = time.Now().Add(-time.Minute)
	srv.mu.Unlock()

	_, err = srv.RunSampler(context.Background(), &runtimepb.SamplerRunRequest{
		SessionId: handle.SessionId,
	})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Contains(t, err.Error(), "session expired")
}

func TestRunSamplerRejectsClosedSession(t *testing.T) {
	srv := newTestServer(t)

	handle, err := srv.OpenSession(context.Background(), &runtimepb.OpenSessionRequest{
		BackendName: "fake_melbourne",
	})
	require.NoError(t, err)

	ack, err := srv.CloseSession(context.Background(), handle)
	require.NoError(t, err)
	assert.True(t, ack.Ok)

	_, err = srv.RunSampler(context.Background(), &runtimepb.SamplerRunRequest{
		SessionId: handle.SessionId,
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestListJobsWithoutStore(t *testing.T) {
	srv := newTestServer(t)

	_, err := srv.ListJobs(context.Background(), &runtimepb.ListJobsRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Contains(t, err.Error(), "audit trail is disabled")
}
