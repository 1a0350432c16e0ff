package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/ports"
	"paperwork/internal/pkg/errs"
)

// ErrNoTransaction is returned by Commit and Rollback outside Begin.
var ErrNoTransaction = errors.New("no active transaction")

// OrderStore keeps orders in process memory. It hands out units of work whose writes
// become visible to others only on Commit, and it doubles as the order reader, the
// order lister and the customer directory. Stored aggregates are copies, so a caller mutating an order it
// loaded never changes the store behind a unit of work's back.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[kernel.UUID]*order.Order)}
}

// Create implements ports.UnitOfWorkFactory.
func (s *OrderStore) Create() ports.UnitOfWork {
	return &unitOfWork{store: s}
}

// Get implements the read-side order reader.
func (s *OrderStore) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return clone(o), nil
}

// List returns committed orders in status, oldest first then by id.
// order.Unknown returns every order.
func (s *OrderStore) List(_ context.Context, status order.Status) ([]*order.Order, error) {
	s.mu.RLock()
	out := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if status == order.Unknown || o.Status() == status {
			out = append(out, clone(o))
		}
	}
	s.mu.RUnlock()

	sortOldestFirst(out)
	return out, nil
}

// SearchByName implements ports.CustomerDirectory over the customers of stored orders.
// A customer is identified by name and phone.
func (s *OrderStore) SearchByName(_ context.Context, name string, limit int) ([]ports.CustomerRecord, error) {
	needle := strings.ToLower(name)

	s.mu.RLock()
	seen := make(map[[2]string]struct{})
	records := make([]ports.CustomerRecord, 0)
	for _, o := range s.orders {
		c := o.Customer()
		key := [2]string{c.Name(), c.Phone()}
		if _, dup := seen[key]; dup || !strings.Contains(strings.ToLower(c.Name()), needle) {
			continue
		}
		seen[key] = struct{}{}
		records = append(records, ports.CustomerRecord{
			ID:         o.ID(),
			Name:       c.Name(),
			Phone:      c.Phone(),
			NationalID: c.NationalID(),
		})
	}
	s.mu.RUnlock()

	slices.SortFunc(records, func(a, b ports.CustomerRecord) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Phone, b.Phone))
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func clone(o *order.Order) *order.Order {
	return order.RestoreOrder(
		o.ID(), o.Customer(), o.VariantID(), o.Inputs(),
		o.Total(), o.Paid(), o.Status(), o.Notes(),
		o.CreatedAt(), o.UpdatedAt(),
	)
}

// unitOfWork buffers writes until Commit. A nil entry in pending marks a delete.
type unitOfWork struct {
	store   *OrderStore
	pending map[kernel.UUID]*order.Order
}

func (u *unitOfWork) Begin(_ context.Context) error {
	if u.pending == nil {
		u.pending = make(map[kernel.UUID]*order.Order)
	}
	return nil
}

func (u *unitOfWork) Commit(_ context.Context) error {
	if u.pending == nil {
		return ErrNoTransaction
	}

	u.store.mu.Lock()
	for id, o := range u.pending {
		if o == nil {
			delete(u.store.orders, id)
			continue
		}
		u.store.orders[id] = o
	}
	u.store.mu.Unlock()

	u.pending = nil
	return nil
}

func (u *unitOfWork) Rollback(_ context.Context) error {
	if u.pending == nil {
		return ErrNoTransaction
	}
	u.pending = nil
	return nil
}

func (u *unitOfWork) OrderRepository() ports.OrderRepository {
	return orderRepository{uow: u}
}

// orderRepository writes into the unit of work, or straight into the store when no
// transaction is open.
type orderRepository struct {
	uow *unitOfWork
}

func (r orderRepository) lookup(id kernel.UUID) (*order.Order, bool) {
	if r.uow.pending != nil {
		if o, ok := r.uow.pending[id]; ok {
			return o, o != nil
		}
	}
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()
	o, ok := r.uow.store.orders[id]
	return o, ok
}

func (r orderRepository) put(id kernel.UUID, o *order.Order) {
	if r.uow.pending != nil {
		r.uow.pending[id] = o
		return
	}
	r.uow.store.mu.Lock()
	defer r.uow.store.mu.Unlock()
	if o == nil {
		delete(r.uow.store.orders, id)
		return
	}
	r.uow.store.orders[id] = o
}

func (r orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.lookup(aggregate.ID()); exists {
		return errs.NewConflictError("order", aggregate.ID().String())
	}
	r.put(aggregate.ID(), clone(aggregate))
	return nil
}

func (r orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.lookup(aggregate.ID()); !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	r.put(aggregate.ID(), clone(aggregate))
	return nil
}

func (r orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	o, ok := r.lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return clone(o), nil
}

func (r orderRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if _, ok := r.lookup(id); !ok {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	r.put(id, nil)
	return nil
}

func (r orderRepository) ListByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r.uow.store.mu.RLock()
	merged := make(map[kernel.UUID]*order.Order, len(r.uow.store.orders))
	for id, o := range r.uow.store.orders {
		merged[id] = o
	}
	r.uow.store.mu.RUnlock()
	for id, o := range r.uow.pending {
		merged[id] = o
	}

	out := make([]*order.Order, 0)
	for _, o := range merged {
		if o != nil && o.Status() == status {
			out = append(out, clone(o))
		}
	}
	sortOldestFirst(out)
	return out, nil
}

func sortOldestFirst(orders []*order.Order) {
	slices.SortFunc(orders, func(a, b *order.Order) int {
		return cmp.Or(a.CreatedAt().Compare(b.CreatedAt()), cmp.Compare(a.ID().String(), b.ID().String()))
	})
}
