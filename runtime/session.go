package runtime

import (
	"context"
	"fmt"

	"github.com/perclft/QubitScope/runtime/runtimepb"
)

// Session scopes sampler runs to one backend. Jobs submitted through the
// same session keep their queue affinity on the service side.
type Session struct {
	svc         *Service
	id          string
	backendName string
}

// OpenSession opens a session against the named backend.
func (s *Service) OpenSession(ctx context.Context, backendName string) (*Session, error) {
	handle, err := s.client.OpenSession(ctx, &runtimepb.OpenSessionRequest{
		BackendName: backendName,
		Instance:    s.cfg.Instance,
		Channel:     s.cfg.Channel,
	})
	if err != nil {
		return nil, fmt.Errorf("open session on %s: %w", backendName, err)
	}
	return &Session{svc: s, id: handle.SessionId, backendName: backendName}, nil
}

// ID returns the service-assigned session identifier.
func (s *Session) ID() string { return s.id }

// BackendName returns the backend this session is bound to.
func (s *Session) BackendName() string { return s.backendName }

// Close releases the session on the service.
func (s *Session) Close(ctx context.Context) error {
	ack, err := s.svc.client.CloseSession(ctx, &runtimepb.SessionHandle{SessionId: s.id})
	if err != nil {
		return fmt.Errorf("close session %s: %w", s.id, err)
	}
	if !ack.Ok {
		return fmt.Errorf("close session %s: %s", s.id, ack.Message)
	}
	return nil
}
