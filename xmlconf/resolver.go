package xmlconf

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/viant/afs"
)

// ErrInvalidPublicID is returned when registering an empty public identifier.
var ErrInvalidPublicID = errors.New("public id must not be empty")

// InputSource is a stream-backed resource produced by entity resolution.
// SystemID carries the URL the resource was resolved from; the caller owns
// the Reader and closes it.
type InputSource struct {
	Reader   io.ReadCloser
	SystemID string
}

// Resolver maps XML public identifiers to locally supplied resource URLs. A
// common use is registering local URLs for DTDs and schemas so that
// processed documents do not need local SYSTEM URIs. The registry is not
// synchronized; callers coordinate concurrent access.
type Resolver struct {
	fs       afs.Service
	entities map[string]string
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{
		fs:       afs.New(),
		entities: make(map[string]string),
	}
}

// Register maps a public identifier to the URL the entity will be read from.
// An empty public identifier is rejected before any state change.
func (r *Resolver) Register(publicID, URL string) error {
	if publicID == "" {
		return ErrInvalidPublicID
	}
	r.entities[publicID] = URL
	return nil
}

// Resolve opens the resource registered for the public identifier, without
// caching, and returns it with the mapped URL as its system identifier. An
// unregistered or empty public identifier yields (nil, nil), signalling the
// calling parser to fall back to its default resolution. The system
// identifier of the entity reference itself does not participate in the
// lookup.
func (r *Resolver) Resolve(ctx context.Context, publicID, systemID string) (*InputSource, error) {
	if publicID == "" {
		return nil, nil
	}
	URL, ok := r.entities[publicID]
	if !ok {
		return nil, nil
	}
	reader, err := r.fs.OpenURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve entity %v from %v: %w", publicID, URL, err)
	}
	return &InputSource{Reader: reader, SystemID: URL}, nil
}

// RegisteredEntities returns a snapshot of the registered public identifiers
// and their URLs.
func (r *Resolver) RegisteredEntities() map[string]string {
	result := make(map[string]string, len(r.entities))
	for publicID, URL := range r.entities {
		result[publicID] = URL
	}
	return result
}
