// Package provider talks to the remote roadmap service.
//
// The service is an opaque HTTP API with JSON bodies, numeric step ids and
// session-cookie authorization. Callers use the Provider interface; the
// HTTP implementation is wrapped with journaling by New.
package provider

import (
	"context"
	"encoding/json"

	"github.com/abhisek/pathway/internal/roadmap"
)

// Provider is the client's view of the roadmap service.
type Provider interface {
	// FetchRoadmap returns every roadmap step visible to the session.
	// Missing completed flags decode as false.
	FetchRoadmap(ctx context.Context) ([]roadmap.Node, error)

	// UpdateProgress records a step's completion flag. Any 2xx response
	// is an acknowledgement.
	UpdateProgress(ctx context.Context, update ProgressUpdate) (*Ack, error)

	// Name identifies the provider implementation.
	Name() string
}

// ProgressUpdate is the progress write body.
type ProgressUpdate struct {
	StepID    int64 `json:"roadmap_step_id"`
	Completed bool  `json:"completed"`
}

// Ack is the provider's acknowledgement of a progress write.
type Ack struct {
	StatusCode int
	// Body is the raw response body. It carries no meaning for the client.
	Body json.RawMessage
}
