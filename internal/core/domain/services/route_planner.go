package services

import (
	"math"
	"time"

	"meddrone/internal/core/domain/model/place"
	"meddrone/internal/pkg/errs"
	"meddrone/internal/pkg/geo"
)

const (
	// DefaultDistanceKm is assumed when either endpoint has no surveyed
	// coordinates.
	DefaultDistanceKm = 25.0

	// BaseETAMinutes covers pre-flight checks and loading.
	BaseETAMinutes = 30

	// ETAMinutesPerKm is the cruise time budget per kilometre.
	ETAMinutesPerKm = 2
)

// Route is the planned leg from a hospital to a village.
type Route struct {
	DistanceKm       float64
	ETAMinutes       int
	EstimatedArrival time.Time
}

// RoutePlanner estimates distance and arrival time for a delivery leg.
type RoutePlanner interface {
	Plan(from *place.Hospital, to *place.Village, now time.Time) (Route, error)
}

var _ RoutePlanner = &routePlanner{}

type routePlanner struct{}

// NewRoutePlanner creates the production route planner.
func NewRoutePlanner() RoutePlanner {
	return &routePlanner{}
}

// Plan computes the great-circle distance between the two endpoints
// when both are surveyed, falling back to DefaultDistanceKm otherwise.
// The ETA is a fixed base plus a per-kilometre budget, rounded up to
// whole minutes.
func (p *routePlanner) Plan(from *place.Hospital, to *place.Village, now time.Time) (Route, error) {
	if from == nil {
		return Route{}, errs.NewValueIsRequiredError("hospital")
	}
	if to == nil {
		return Route{}, errs.NewValueIsRequiredError("village")
	}

	distanceKm := DefaultDistanceKm
	if from.Coordinates() != nil && to.Coordinates() != nil {
		distanceKm = geo.HaversineKm(
			from.Coordinates().Lat(), from.Coordinates().Lng(),
			to.Coordinates().Lat(), to.Coordinates().Lng(),
		)
		distanceKm = math.Round(distanceKm*100) / 100
	}

	etaMinutes := int(math.Ceil(BaseETAMinutes + ETAMinutesPerKm*distanceKm))

	return Route{
		DistanceKm:       distanceKm,
		ETAMinutes:       etaMinutes,
		EstimatedArrival: now.Add(time.Duration(etaMinutes) * time.Minute),
	}, nil
}
