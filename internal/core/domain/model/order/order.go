package order

import (
	"errors"
	"fmt"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrAddressIsRequired is returned when a delivery order carries no address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

	// ErrNotDeliveryOrder is returned when a delivery-only transition is
	// attempted on a pickup order.
	ErrNotDeliveryOrder = errors.New("operation is only valid for delivery orders")

	// ErrNotPickupOrder is returned when a pickup-only transition is attempted
	// on a delivery order.
	ErrNotPickupOrder = errors.New("operation is only valid for pickup orders")
)

// Order represents a single order line placed by a customer at a canteen.
// Orders checked out together share a session key (the checkout timestamp),
// and the canteen processes each session as one batch: cooking, readiness,
// and courier assignment all happen session-wide.
//
// Order follows these invariants:
//   - Must have valid identifiers for itself, the customer, and the canteen
//   - Quantity and total amount must be positive
//   - Delivery orders must carry a delivery address
//   - Status transitions follow the lifecycle state machine, with the
//     delivery/pickup split enforced against the order's method
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// canteenID identifies the canteen preparing the order
	canteenID kernel.UUID

	// sessionTs is the checkout-batch key shared by orders placed together
	sessionTs int64

	// itemName is the menu item name at order time
	itemName string

	// quantity is the number of units ordered (positive)
	quantity int

	// totalAmount is the order line total in minor currency units (positive)
	totalAmount int

	// method determines the fulfilment path (delivery or pickup)
	method Method

	// address is the delivery destination; empty for pickup orders
	address string

	// status is the current state in the order lifecycle
	status Status

	// expiresAt closes the checkout window; pending orders are promoted
	// to placed once this time passes
	expiresAt time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status.
// All invariants are validated; for delivery orders the address is mandatory.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	canteenID kernel.UUID,
	sessionTs int64,
	itemName string,
	quantity int,
	totalAmount int,
	method Method,
	address string,
	expiresAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCanteenID(canteenID),
		o.setSessionTs(sessionTs),
		o.setItemName(itemName),
		o.setQuantity(quantity),
		o.setTotalAmount(totalAmount),
		o.setMethodAndAddress(method, address),
		o.setExpiresAt(expiresAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its current lifecycle status.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	canteenID kernel.UUID,
	sessionTs int64,
	itemName string,
	quantity int,
	totalAmount int,
	method Method,
	address string,
	status Status,
	expiresAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, canteenID, sessionTs, itemName, quantity, totalAmount, method, address, expiresAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CanteenID returns the identifier of the canteen preparing the order.
func (o *Order) CanteenID() kernel.UUID {
	return o.canteenID
}

// SessionTs returns the checkout-batch key shared by orders placed together.
func (o *Order) SessionTs() int64 {
	return o.sessionTs
}

// ItemName returns the menu item name.
func (o *Order) ItemName() string {
	return o.itemName
}

// Quantity returns the number of units ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// TotalAmount returns the order line total in minor currency units.
func (o *Order) TotalAmount() int {
	return o.totalAmount
}

// Method returns the fulfilment method.
func (o *Order) Method() Method {
	return o.method
}

// Address returns the delivery destination, or an empty string for pickup orders.
func (o *Order) Address() string {
	return o.address
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ExpiresAt returns the end of the checkout window.
func (o *Order) ExpiresAt() time.Time {
	return o.expiresAt
}

// Place closes the checkout window: Pending -> Placed.
func (o *Order) Place() error {
	return o.transition(Placed)
}

// StartCooking moves the order to the kitchen: Placed -> Cooking.
func (o *Order) StartCooking() error {
	return o.transition(Cooking)
}

// MarkReady marks preparation finished: Cooking -> Ready.
func (o *Order) MarkReady() error {
	return o.transition(Ready)
}

// StartDelivery hands the order to a courier: Ready -> OutForDelivery.
// Only valid for delivery-method orders.
func (o *Order) StartDelivery() error {
	if o.method != Delivery {
		return ErrNotDeliveryOrder
	}
	return o.transition(OutForDelivery)
}

// CompleteDelivery finishes the delivery path: OutForDelivery -> Delivered.
func (o *Order) CompleteDelivery() error {
	if o.method != Delivery {
		return ErrNotDeliveryOrder
	}
	return o.transition(Delivered)
}

// Pick hands the order to the customer at the counter: Ready -> Picked.
// Only valid for pickup-method orders.
func (o *Order) Pick() error {
	if o.method != Pickup {
		return ErrNotPickupOrder
	}
	return o.transition(Picked)
}

// IsAssignable reports whether the order is eligible for courier assignment:
// a delivery order in Ready status.
func (o *Order) IsAssignable() bool {
	return o.method == Delivery && o.status == Ready
}

// transition applies a state machine edge, leaving the order untouched on rejection.
func (o *Order) transition(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setCanteenID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("canteenId", err)
	}
	o.canteenID = id
	return nil
}

func (o *Order) setSessionTs(sessionTs int64) error {
	if sessionTs <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("sessionTs",
			fmt.Errorf("%d is not a valid batch key", sessionTs))
	}
	o.sessionTs = sessionTs
	return nil
}

func (o *Order) setItemName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("itemName")
	}
	o.itemName = name
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setTotalAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%d is not greater than 0", amount))
	}
	o.totalAmount = amount
	return nil
}

func (o *Order) setMethodAndAddress(method Method, address string) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if method == Delivery && address == "" {
		return ErrAddressIsRequired
	}
	o.method = method
	o.address = address
	return nil
}

func (o *Order) setExpiresAt(expiresAt time.Time) error {
	if expiresAt.IsZero() {
		return errs.NewValueIsRequiredError("expiresAt")
	}
	o.expiresAt = expiresAt
	return nil
}
