package embedding

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned before any network call when no key is set.
var ErrMissingAPIKey = errors.New("embedding: api key not configured")

// Provider turns text into a vector.
type Provider interface {
	GetVector(ctx context.Context, text string) ([]float32, error)
}
