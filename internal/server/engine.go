// Execution engine boundary
// The service schedules and records runs; the engine produces the counts

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/perclft/QubitScope/circuit"
	"github.com/perclft/QubitScope/noise"
)

// ExecRequest is everything an engine needs for one run.
type ExecRequest struct {
	Circuit *circuit.Circuit
	Shots   int
	Noise   *noise.Model // nil for an ideal run
}

// Engine executes a circuit and returns measurement counts keyed by
// bitstring, most significant qubit first.
type Engine interface {
	Execute(ctx context.Context, req *ExecRequest) (map[string]int, error)
}

// ------------------------------------------------------------------
// Stub engine
// ------------------------------------------------------------------

// StubEngine stands in where no simulator process is attached. It returns a
// canned even split between the all-zeros and all-ones registers, after an
// artificial delay proportional to the circuit depth.
type StubEngine struct {
	PerOpDelay time.Duration
}

func (e *StubEngine) Execute(ctx context.Context, req *ExecRequest) (map[string]int, error) {
	if req.Circuit == nil {
		return nil, fmt.Errorf("no circuit")
	}

	delay := e.PerOpDelay * time.Duration(req.Circuit.NumOps())
	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	width := req.Circuit.NumClbits
	if width == 0 {
		width = req.Circuit.NumQubits
	}
	zeros := strings.Repeat("0", width)
	ones := strings.Repeat("1", width)

	half := req.Shots / 2
	return map[string]int{
		zeros: half,
		ones:  req.Shots - half,
	}, nil
}

// ------------------------------------------------------------------
// HTTP engine
// ------------------------------------------------------------------

// HTTPEngine forwards runs to an external simulator over its JSON API. The
// circuit travels as OpenQASM text plus the serialized noise model.
type HTTPEngine struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewHTTPEngine(baseURL, apiKey string) *HTTPEngine {
	return &HTTPEngine{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *HTTPEngine) Execute(ctx context.Context, req *ExecRequest) (map[string]int, error) {
	payload := map[string]any{
		"qasm":  req.Circuit.QASM(),
		"shots": req.Shots,
	}
	if req.Noise != nil {
		payload["noise_model"] = req.Noise
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode run payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", e.BaseURL+"/v1/run", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if e.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+e.APIKey)
	}

	resp, err := e.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("engine request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("engine returned %s", resp.Status)
	}

	var result struct {
		Counts map[string]int `json:"counts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode engine reply: %w", err)
	}
	return result.Counts, nil
}
