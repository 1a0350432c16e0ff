package order

import (
	"strings"

	"paperwork/internal/pkg/errs"
)

// Customer is the snapshot of the customer record attached to an order.
// Only the name is required; pricing and status logic never look at it.
type Customer struct {
	name       string
	phone      string
	nationalID string
}

// NewCustomer trims all fields and rejects an empty name.
func NewCustomer(name, phone, nationalID string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	return Customer{
		name:       name,
		phone:      strings.TrimSpace(phone),
		nationalID: strings.TrimSpace(nationalID),
	}, nil
}

func (c Customer) Name() string { return c.name }
func (c Customer) Phone() string { return c.phone }
func (c Customer) NationalID() string { return c.nationalID }

// Validate returns an error for a customer that was not built with NewCustomer.
func (c Customer) Validate() error {
	if c.name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	return nil
}
