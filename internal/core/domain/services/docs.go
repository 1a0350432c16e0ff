// Package services provides domain services that coordinate work no single aggregate owns.
//
// The package includes:
//   - SerialCheckSequencer: orders advisory serial availability checks per client so
//     that a late answer to an old request never replaces the answer to a newer one
package services
