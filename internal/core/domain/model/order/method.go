package order

import (
	"fmt"

	"canteen/internal/pkg/errs"
)

// Method represents how the customer receives the order.
// Delivery orders travel through the courier assignment flow;
// pickup orders are collected at the canteen counter.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// Delivery means a courier brings the order to the customer's address.
	Delivery

	// Pickup means the customer collects the order at the canteen.
	Pickup
)

// getMethodStrings returns valid Method values mapped to their string representations.
func getMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		Delivery: "delivery",
		Pickup:   "pickup",
	}
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if _, ok := getMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method is invalid",
			fmt.Errorf("%d is not a valid method", m))
	}
	return nil
}

// String returns the lowercase name of the method, or "unknown" for invalid values.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// MethodFromString parses a method from its string representation.
func MethodFromString(s string) (Method, error) {
	for method, str := range getMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("method is invalid",
		fmt.Errorf("%q is not a valid method", s))
}
