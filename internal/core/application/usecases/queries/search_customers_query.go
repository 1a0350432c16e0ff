package queries

import (
	"context"
	"errors"
	"strings"

	"paperwork/internal/core/ports"
	"paperwork/internal/pkg/errs"
	"paperwork/internal/pkg/guard"
)

// DefaultCustomerSearchLimit caps the candidates returned by a customer search.
const DefaultCustomerSearchLimit = 20

var ErrSearchCustomersQueryIsNotConstructed = errors.New(
	"SearchCustomersQuery must be created via NewSearchCustomersQuery constructor",
)

// SearchCustomersQuery finds existing customers by part of their name.
type SearchCustomersQuery struct {
	name  string
	limit int

	guard guard.ConstructorGuard
}

// NewSearchCustomersQuery requires a non-blank name. A limit outside 1..100 means
// DefaultCustomerSearchLimit.
func NewSearchCustomersQuery(name string, limit int) (SearchCustomersQuery, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SearchCustomersQuery{}, errs.NewValueIsRequiredError("name")
	}
	if limit < 1 || limit > 100 {
		limit = DefaultCustomerSearchLimit
	}
	return SearchCustomersQuery{name: name, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q SearchCustomersQuery) Validate() error {
	return q.guard.Validate(ErrSearchCustomersQueryIsNotConstructed)
}

func (q SearchCustomersQuery) Name() string { return q.name }
func (q SearchCustomersQuery) Limit() int { return q.limit }

// SearchCustomersQueryHandler delegates to the customer directory.
type SearchCustomersQueryHandler struct {
	directory ports.CustomerDirectory
}

func NewSearchCustomersQueryHandler(directory ports.CustomerDirectory) SearchCustomersQueryHandler {
	return SearchCustomersQueryHandler{directory: directory}
}

func (h SearchCustomersQueryHandler) Handle(ctx context.Context, query SearchCustomersQuery) ([]ports.CustomerRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := h.directory.SearchByName(ctx, query.Name(), query.Limit())
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = make([]ports.CustomerRecord, 0)
	}
	return records, nil
}
