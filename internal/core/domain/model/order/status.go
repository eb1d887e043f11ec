package order

import (
	"fmt"

	"canteen/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct kitchen and delivery workflow.
//
// State transitions:
//
//	Pending ──> Placed ──> Cooking ──> Ready ──┬──> OutForDelivery ──> Delivered
//	                                           └──> Picked
//
// The delivery branch (OutForDelivery/Delivered) applies to delivery-method
// orders; the Picked terminal state applies to pickup-method orders. The
// split is enforced by the Order aggregate, which knows the method.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order sits in an open checkout
	// window and may still be cancelled by the customer.
	Pending

	// Placed means the checkout window closed and the canteen accepted the order.
	Placed

	// Cooking means the kitchen started preparing the order.
	Cooking

	// Ready means the order is prepared and waits for handoff.
	// Delivery orders become assignable to a courier in this status.
	Ready

	// OutForDelivery means a courier was assigned and is delivering the order.
	OutForDelivery

	// Delivered is the terminal state of the delivery path.
	Delivered

	// Picked is the terminal state of the pickup path.
	Picked
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Placed:         "placed",
		Cooking:        "cooking",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Picked:         "picked",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Placed:         "placed",
		Cooking:        "cooking",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Picked:         "picked",
	}
}

// transitions holds the legal state machine edges.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Placed},
		Placed:         {Cooking},
		Cooking:        {Ready},
		Ready:          {OutForDelivery, Picked},
		OutForDelivery: {Delivered},
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its string representation.
// Used when reconstructing orders from persistence or parsing API input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// CanTransitionTo reports whether the state machine allows moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the edge s -> target is legal,
// or an error describing the rejected transition.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("cannot transition from %s to %s", s, target))
	}
	return target, nil
}

// IsTerminal reports whether the status is a final state with no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Picked
}
