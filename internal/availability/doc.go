// Package availability holds the interval engine for coach availability:
// expanding weekly recurrence patterns into dated slots and carving
// sub-intervals out of existing slots. Everything here is pure; persistence
// and transactions live in the usecase layer.
package availability
