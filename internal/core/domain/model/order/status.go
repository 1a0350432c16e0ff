package order

import (
	"fmt"
	"strings"

	"paperwork/internal/pkg/errs"
)

// Status is the operational stage of an order.
//
// The stages are ordered for display, but the order is not enforced: staff may move an
// order from any status to any other, because real handling is not linear and
// corrections must always stay possible.
//
//	AwaitingConfirmation → AwaitingPayment → Paid → Settlement → Fulfillment → Supply → Delivery
//	                                  (Returned and Cancelled reachable from anywhere)
//
// Status is persisted and exchanged by its String form.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// AwaitingConfirmation is the status of a freshly submitted order.
	AwaitingConfirmation

	// AwaitingPayment means the customer confirmed and has not paid in full.
	AwaitingPayment

	// Paid means payment was received.
	Paid

	// Settlement means the paperwork is being filed with the authority.
	// Only orders in this status can print a work order.
	Settlement

	// Fulfillment means the authority is producing the document.
	Fulfillment

	// Supply means the document was collected from the authority.
	Supply

	// Delivery means the document is on its way to, or waiting for, the customer.
	Delivery

	// Returned means the authority or the customer sent the order back.
	Returned

	// Cancelled means the order was abandoned.
	Cancelled
)

type statusInfo struct {
	code  string
	label string
}

// getStatusInfo returns the code and display label of every valid status.
func getStatusInfo() map[Status]statusInfo {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]statusInfo{
		AwaitingConfirmation: {code: "awaiting-confirmation", label: "Awaiting confirmation"},
		AwaitingPayment:      {code: "awaiting-payment", label: "Awaiting payment"},
		Paid:                 {code: "paid", label: "Paid"},
		Settlement:           {code: "settlement", label: "Settlement"},
		Fulfillment:          {code: "fulfillment", label: "Fulfillment"},
		Supply:               {code: "supply", label: "Supply"},
		Delivery:             {code: "delivery", label: "Delivery"},
		Returned:             {code: "returned", label: "Returned"},
		Cancelled:            {code: "cancelled", label: "Cancelled"},
	}
}

// Statuses returns all valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{
		AwaitingConfirmation,
		AwaitingPayment,
		Paid,
		Settlement,
		Fulfillment,
		Supply,
		Delivery,
		Returned,
		Cancelled,
	}
}

// ParseStatus maps a status code such as "awaiting-payment" back to its Status.
// Matching ignores case and surrounding whitespace.
//
// Returns:
//   - the matching Status
//   - a validation error for any other string
func ParseStatus(s string) (Status, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	for status, info := range getStatusInfo() {
		if info.code == code {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the nine lifecycle statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusInfo()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status code used in storage and on the wire,
// or "unknown" for invalid values.
func (s Status) String() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.code
	}
	return "unknown"
}

// Label returns the name shown to staff.
func (s Status) Label() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.label
	}
	return "Unknown"
}

// AllowsWorkOrder reports whether a work order may be printed in this status.
// This gates a read path only; printing never changes the order.
func (s Status) AllowsWorkOrder() bool {
	return s == Settlement
}
