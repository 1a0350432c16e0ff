// Package fees turns the fines and add-on services ticked for an order into money.
//
// The package includes:
//   - Selection: an immutable set of ticked catalog ids plus typed manual amounts
//   - Engine: toggling with the automatic fine-handling rule, and the derived amounts
//   - Line: the customer-facing fee breakdown
//
// Key business rules:
//   - The fine-handling add-on is selected exactly while a fine other than the
//     lost-report fine is selected
//   - Every active fine costs a hidden processing surcharge that is billed but never listed
//   - The fine-handling add-on re-bills visible fine charges plus the surcharge as a service
//   - Unknown catalog ids contribute nothing
package fees
