package queries

import (
	"context"
	"errors"

	"paperwork/internal/core/domain/model/catalog"
	"paperwork/internal/pkg/guard"
)

var ErrListCatalogQueryIsNotConstructed = errors.New(
	"ListCatalogQuery must be created via NewListCatalogQuery constructor",
)

// ListCatalogQuery lists the fines and add-on services staff can tick.
type ListCatalogQuery struct {
	category catalog.Category

	guard guard.ConstructorGuard
}

// NewListCatalogQuery creates the query. An empty category lists everything.
func NewListCatalogQuery(category catalog.Category) ListCatalogQuery {
	return ListCatalogQuery{category: category, guard: guard.NewConstructorGuard()}
}

func (q ListCatalogQuery) Validate() error {
	return q.guard.Validate(ErrListCatalogQueryIsNotConstructed)
}

// ListCatalogQueryHandler serves the catalog loaded at start-up.
type ListCatalogQueryHandler struct {
	catalog catalog.Catalog
}

func NewListCatalogQueryHandler(c catalog.Catalog) ListCatalogQueryHandler {
	return ListCatalogQueryHandler{catalog: c}
}

// Handle returns items in catalog order.
func (h ListCatalogQueryHandler) Handle(_ context.Context, query ListCatalogQuery) ([]catalog.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if query.category == "" {
		return h.catalog.Items(), nil
	}
	return h.catalog.ByCategory(query.category), nil
}
