// Package order contains the Order aggregate and its lifecycle state machine.
// Orders checked out together share a session key and move through the
// kitchen workflow as a batch; delivery orders additionally travel through
// the courier assignment flow.
package order
