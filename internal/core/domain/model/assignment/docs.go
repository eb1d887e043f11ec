// Package assignment contains the Assignment record: the append-only proof
// that a courier was assigned an order. The ledger of these records feeds the
// fairness window and carries the one-shot delivery rating.
package assignment
