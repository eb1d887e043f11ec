package courier

import (
	"errors"
	"fmt"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that manages courier identity, availability, the
// running quality rating, and the assignment statistics the fairness policy
// reads (lifetime assignment count and last assignment time).
//
// Business rules:
//   - Courier must have a valid UUID and a non-empty name
//   - New couriers start Inactive and unrated (rating 0, zero ratings counted)
//   - The rating is always the arithmetic mean of exactly TotalRatingsCount
//     submissions, maintained incrementally via AcceptRating — it is never
//     recomputed by scanning history
//   - Assignment statistics only ever grow; LastAssignedAt is absent until
//     the first assignment
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// status determines eligibility for assignment
	status Status
	// rating is the running average of all accepted rating submissions
	rating kernel.Rating
	// totalAssigned counts lifetime order assignments
	totalAssigned int
	// totalRatingsCount counts rating submissions folded into rating
	totalRatingsCount int
	// lastAssignedAt is the time of the most recent assignment, nil if never assigned
	lastAssignedAt *time.Time
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the given identity.
// The courier starts Inactive with a zero rating and no assignment history;
// it must be activated before the selection policy will consider it.
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	courier := &Courier{
		status: Inactive,
		rating: kernel.ZeroRating(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// Unlike NewCourier, it accepts the full persisted state and validates it as
// a whole, so repositories can rebuild couriers with their accumulated
// statistics intact.
func RestoreCourier(
	id kernel.UUID,
	name string,
	status Status,
	rating kernel.Rating,
	totalAssigned int,
	totalRatingsCount int,
	lastAssignedAt *time.Time,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setStatus(status),
		courier.setRating(rating),
		courier.setTotalAssigned(totalAssigned),
		courier.setTotalRatingsCount(totalRatingsCount),
	); err != nil {
		return nil, err
	}

	if lastAssignedAt != nil {
		at := *lastAssignedAt
		courier.lastAssignedAt = &at
	}

	return courier, nil
}

// Validate ensures the Courier instance was properly constructed.
// Returns ErrCourierIsNotConstructed for nil or zero-value instances.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// Status returns the courier's availability status.
func (c *Courier) Status() Status {
	return c.status
}

// IsActive reports whether the courier is eligible for assignment.
func (c *Courier) IsActive() bool {
	return c.status == Active
}

// Rating returns the courier's running average rating.
func (c *Courier) Rating() kernel.Rating {
	return c.rating
}

// TotalAssigned returns the lifetime count of order assignments.
func (c *Courier) TotalAssigned() int {
	return c.totalAssigned
}

// TotalRatingsCount returns the number of rating submissions folded into Rating.
func (c *Courier) TotalRatingsCount() int {
	return c.totalRatingsCount
}

// LastAssignedAt returns the time of the most recent assignment,
// or nil if the courier has never been assigned.
func (c *Courier) LastAssignedAt() *time.Time {
	if c.lastAssignedAt == nil {
		return nil
	}
	at := *c.lastAssignedAt
	return &at
}

// Activate marks the courier as available for assignment.
func (c *Courier) Activate() {
	c.status = Active
}

// Deactivate takes the courier off shift.
// The courier keeps its history and rating but stops receiving assignments.
func (c *Courier) Deactivate() {
	c.status = Inactive
}

// RecordAssignments registers that count orders were assigned to the courier
// at the given time. Count must be positive; the courier's lifetime counter
// grows by count and LastAssignedAt moves to the assignment timestamp.
func (c *Courier) RecordAssignments(count int, at time.Time) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("assignments count",
			fmt.Errorf("%d is not greater than 0", count))
	}

	c.totalAssigned += count
	c.lastAssignedAt = &at
	return nil
}

// AcceptRating folds a new rating submission into the running average using
// the incremental identity newAvg = (oldAvg*oldCount + newRating) / (oldCount+1),
// and increments the submission counter. The result always stays in [0, 5]
// because it is a weighted mean of in-range values.
func (c *Courier) AcceptRating(submitted kernel.Rating) error {
	if err := submitted.Validate(); err != nil {
		return err
	}

	count := float64(c.totalRatingsCount)
	newAvg, err := kernel.NewRating((c.rating.Value()*count + submitted.Value()) / (count + 1))
	if err != nil {
		return err
	}

	c.rating = newAvg
	c.totalRatingsCount++
	return nil
}

// setID validates and sets the courier's unique identifier.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the courier's name.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Courier) setRating(rating kernel.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}
	c.rating = rating
	return nil
}

func (c *Courier) setTotalAssigned(total int) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAssigned",
			fmt.Errorf("%d is negative", total))
	}
	c.totalAssigned = total
	return nil
}

func (c *Courier) setTotalRatingsCount(total int) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalRatingsCount",
			fmt.Errorf("%d is negative", total))
	}
	c.totalRatingsCount = total
	return nil
}
