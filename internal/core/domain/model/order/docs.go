// Package order provides the Order aggregate and its status lifecycle.
//
// The package includes:
//   - Order: The aggregate root holding the customer snapshot, frozen pricing inputs,
//     computed total, payment balance and admin notes
//   - Status: The nine lifecycle stages with their display labels
//   - Customer and Note: value types owned by the order
//
// Key business rules:
//   - Orders start in awaiting-confirmation
//   - Any status may follow any status; changes stamp the update time and may record a note
//   - Total and remaining are recomputed whenever pricing inputs or payments change
//   - Only settlement orders may print a work order
package order
