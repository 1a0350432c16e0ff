// Package kernel provides the value objects shared by every aggregate of the order desk.
//
// The package includes:
//   - Money: an integer amount of minor currency units with major-unit parsing and display
//   - UUID: a validated identifier for orders, reservations and customers
//
// Both types are immutable values and safe for concurrent use.
package kernel
