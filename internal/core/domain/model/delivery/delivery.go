package delivery

import (
	"errors"
	"fmt"
	"time"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery. This ensures all
// deliveries are properly validated.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the aggregate root for a medicine transport request from a
// hospital to a village. It owns the status state machine and the references
// to its operator and drone.
//
// Invariants:
//   - droneID and operatorID are set together by Assign and only from pending
//   - droneID stays recorded after terminal transitions (history); the drone
//     pool releases the physical drone separately
//   - actualArrival is set exactly when the delivery reaches delivered
//   - terminal statuses permit no further transitions
//
// The struct uses private fields; all mutation goes through methods that
// enforce the state machine.
type Delivery struct {
	id             kernel.UUID
	hospitalID     kernel.UUID
	villageID      kernel.UUID
	medicineTypeID kernel.UUID

	// requesterID is the user who created the request
	requesterID kernel.UUID

	// operatorID is the operator who claimed the delivery (nil while pending)
	operatorID *kernel.UUID

	// droneID is the bound drone (nil until assignment)
	droneID *kernel.UUID

	status   Status
	priority Priority

	// distanceKm and etaMinutes come from the route planner at creation
	distanceKm float64
	etaMinutes int

	estimatedArrival *time.Time
	actualArrival    *time.Time

	notes string

	isConstructed bool
}

// NewDelivery creates a pending Delivery with no operator or drone bound.
// The route figures (distanceKm, etaMinutes, estimatedArrival) are computed
// by the caller's route planner and validated here.
//
// Returns a validation error if any identifier is invalid, the priority is
// unknown, or the route figures are non-positive.
func NewDelivery(
	id kernel.UUID,
	hospitalID kernel.UUID,
	villageID kernel.UUID,
	medicineTypeID kernel.UUID,
	requesterID kernel.UUID,
	priority Priority,
	notes string,
	distanceKm float64,
	etaMinutes int,
	estimatedArrival time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:        StatusPending,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setHospitalID(hospitalID),
		d.setVillageID(villageID),
		d.setMedicineTypeID(medicineTypeID),
		d.setRequesterID(requesterID),
		d.setPriority(priority),
		d.setRoute(distanceKm, etaMinutes),
	); err != nil {
		return nil, err
	}

	arrival := estimatedArrival
	d.estimatedArrival = &arrival

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence, including its
// current status and optional operator/drone bindings. Used by repositories;
// application code creates deliveries through NewDelivery.
func RestoreDelivery(
	id kernel.UUID,
	hospitalID kernel.UUID,
	villageID kernel.UUID,
	medicineTypeID kernel.UUID,
	requesterID kernel.UUID,
	operatorID *kernel.UUID,
	droneID *kernel.UUID,
	status Status,
	priority Priority,
	notes string,
	distanceKm float64,
	etaMinutes int,
	estimatedArrival *time.Time,
	actualArrival *time.Time,
) (*Delivery, error) {
	d := &Delivery{
		notes:            notes,
		estimatedArrival: estimatedArrival,
		actualArrival:    actualArrival,
		isConstructed:    true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setHospitalID(hospitalID),
		d.setVillageID(villageID),
		d.setMedicineTypeID(medicineTypeID),
		d.setRequesterID(requesterID),
		d.setPriority(priority),
		d.setRoute(distanceKm, etaMinutes),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	d.status = status

	if operatorID != nil {
		if err := operatorID.Validate(); err != nil {
			return nil, err
		}
		opID := *operatorID
		d.operatorID = &opID
	}

	if droneID != nil {
		if err := droneID.Validate(); err != nil {
			return nil, err
		}
		drID := *droneID
		d.droneID = &drID
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// HospitalID returns the origin hospital's identifier.
func (d *Delivery) HospitalID() kernel.UUID {
	return d.hospitalID
}

// VillageID returns the destination village's identifier.
func (d *Delivery) VillageID() kernel.UUID {
	return d.villageID
}

// MedicineTypeID returns the payload's medicine type identifier.
func (d *Delivery) MedicineTypeID() kernel.UUID {
	return d.medicineTypeID
}

// RequesterID returns the requesting user's identifier.
func (d *Delivery) RequesterID() kernel.UUID {
	return d.requesterID
}

// OperatorID returns the claiming operator's identifier, or nil while pending.
func (d *Delivery) OperatorID() *kernel.UUID {
	return d.operatorID
}

// DroneID returns the bound drone's identifier, or nil if none was ever bound.
func (d *Delivery) DroneID() *kernel.UUID {
	return d.droneID
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// Priority returns the delivery's priority.
func (d *Delivery) Priority() Priority {
	return d.priority
}

// DistanceKm returns the planned route distance in kilometers.
func (d *Delivery) DistanceKm() float64 {
	return d.distanceKm
}

// ETAMinutes returns the planned delivery duration in minutes.
func (d *Delivery) ETAMinutes() int {
	return d.etaMinutes
}

// EstimatedArrival returns the planned arrival time.
func (d *Delivery) EstimatedArrival() *time.Time {
	return d.estimatedArrival
}

// ActualArrival returns the recorded arrival time, or nil until delivered.
func (d *Delivery) ActualArrival() *time.Time {
	return d.actualArrival
}

// Notes returns the requester's free-form notes.
func (d *Delivery) Notes() string {
	return d.notes
}

// IsRequestedBy reports whether the given user created this delivery.
func (d *Delivery) IsRequestedBy(userID kernel.UUID) bool {
	return d.requesterID.IsEqual(userID)
}

// Assign binds an operator and a drone to a pending delivery and moves it
// to preparing. The caller must have already claimed the drone in the pool;
// Assign only records the binding.
//
// Returns a state conflict if the delivery is not pending, so a concurrent
// second assignment fails instead of silently rebinding.
func (d *Delivery) Assign(operatorID kernel.UUID, droneID kernel.UUID) error {
	if err := errors.Join(
		operatorID.Validate(),
		droneID.Validate(),
	); err != nil {
		return err
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.operatorID = &operatorID
	d.droneID = &droneID
	return nil
}

// AdvanceTo moves the delivery to target via the status-update operation.
// Reaching delivered records now as the actual arrival.
//
// Returns:
//   - releaseDrone: true when target is terminal and a drone is still bound,
//     meaning the caller must release that drone in the same unit of work
//   - error: InvalidArgument for a bad target, StateConflict when the
//     delivery is already terminal
func (d *Delivery) AdvanceTo(target Status, now time.Time) (releaseDrone bool, err error) {
	newStatus, err := d.status.AdvanceTo(target)
	if err != nil {
		return false, err
	}

	d.status = newStatus
	if newStatus == StatusDelivered {
		arrival := now
		d.actualArrival = &arrival
	}

	return newStatus.IsTerminal() && d.droneID != nil, nil
}

// Cancel withdraws a pending or preparing delivery.
//
// Returns:
//   - releaseDrone: true when a drone is bound and must be returned to the
//     pool (without battery drain, unlike terminal status updates)
//   - error: StateConflict when the current status forbids cancellation
func (d *Delivery) Cancel() (releaseDrone bool, err error) {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return false, err
	}

	d.status = newStatus
	return d.droneID != nil, nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setHospitalID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("hospitalId", err)
	}
	d.hospitalID = id
	return nil
}

func (d *Delivery) setVillageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("villageId", err)
	}
	d.villageID = id
	return nil
}

func (d *Delivery) setMedicineTypeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("medicineTypeId", err)
	}
	d.medicineTypeID = id
	return nil
}

func (d *Delivery) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requesterId", err)
	}
	d.requesterID = id
	return nil
}

func (d *Delivery) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	d.priority = priority
	return nil
}

func (d *Delivery) setRoute(distanceKm float64, etaMinutes int) error {
	// Zero is legitimate: both endpoints can share coordinates, and the
	// ETA keeps a positive base offset regardless of distance.
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%v is negative", distanceKm))
	}
	if etaMinutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("etaMinutes",
			fmt.Errorf("%d is not greater than 0", etaMinutes))
	}
	d.distanceKm = distanceKm
	d.etaMinutes = etaMinutes
	return nil
}
