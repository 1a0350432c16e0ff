package ports

import (
	"context"

	"paperwork/internal/core/domain/model/kernel"
)

// CustomerRecord is a candidate returned by a customer search.
type CustomerRecord struct {
	ID         kernel.UUID
	Name       string
	Phone      string
	NationalID string
}

// CustomerDirectory looks up existing customers. Which candidate staff attach to an
// order, if any, has no effect on pricing or status logic.
type CustomerDirectory interface {
	// SearchByName returns up to limit customers whose name contains name,
	// case-insensitively. No match is an empty result, not an error.
	SearchByName(ctx context.Context, name string, limit int) ([]CustomerRecord, error)
}
