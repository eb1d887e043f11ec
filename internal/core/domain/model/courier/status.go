package courier

import (
	"fmt"

	"canteen/internal/pkg/errs"
)

// Status represents the availability state of a courier.
// Only Active couriers are eligible for delivery assignment; Inactive couriers
// remain in the directory (their history and rating are kept) but are skipped
// by the selection policy.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active means the courier is on shift and may receive assignments.
	Active

	// Inactive means the courier is off shift. New couriers start here.
	Inactive
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Active:   "active",
		Inactive: "inactive",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:   "active",
		Inactive: "inactive",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Active and Inactive; Unknown and any other values fail.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its string representation.
// Used when reconstructing couriers from persistence or external input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}
