// Package pricing computes order totals and outstanding balances in minor currency units.
//
// Calculator.Total is a pure function of Inputs: the same inputs always give the
// same total, and the total is never negative because the discount is subtracted
// last and the result is clamped once at the end.
package pricing
