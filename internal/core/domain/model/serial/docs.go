// Package serial models the consumption of pre-printed government form serials.
//
// A serial number is unique per service variant and, once consumed by an order,
// is never reused. Availability checks are advisory; only reserving a serial
// through a store with an atomic conditional write makes it exclusive.
package serial
