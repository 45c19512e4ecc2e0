// Package rainfall resolves a free-text location to an annual rainfall
// estimate. It is the only effectful step of the assessment pipeline: two
// chained external lookups (geocoding, then historical precipitation), each
// bounded by a timeout, each degrading to a regional default on any failure.
package rainfall

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/diyakohli02/rwh-assessment-service/internal/domain"
	"github.com/diyakohli02/rwh-assessment-service/internal/observability"
)

// Coordinates is a WGS-84 latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Geocoder resolves a free-text place name to its best-match coordinates.
// found is false when the provider returned no match for the query.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (coords Coordinates, found bool, err error)
}

// Archive returns the daily precipitation totals in millimeters for one
// calendar year at the given coordinates.
type Archive interface {
	DailyPrecipitation(ctx context.Context, coords Coordinates, year int) ([]float64, error)
}

// Resolver turns a location string into a rainfall estimate. It is total with
// respect to its caller: every failure mode (network error, timeout, geocode
// miss, malformed payload) masks to the fallback default so a third-party
// outage never fails the user-facing flow.
type Resolver struct {
	geocoder Geocoder
	archive  Archive
	fallback float64
	clock    clockwork.Clock
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewResolver creates a Resolver. The clock decides which "previous full
// calendar year" to query; tests inject a fake to freeze it.
func NewResolver(geocoder Geocoder, archive Archive, clock clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) *Resolver {
	return &Resolver{
		geocoder: geocoder,
		archive:  archive,
		fallback: domain.DefaultAnnualRainfallMm,
		clock:    clock,
		metrics:  metrics,
		logger:   logger,
	}
}

// Resolve returns the annual rainfall estimate for a location. The result is
// tagged with its source so downstream layers can disclose fallback usage.
func (r *Resolver) Resolve(ctx context.Context, location string) domain.RainfallEstimate {
	location = strings.TrimSpace(location)
	if location == "" {
		return r.fallbackEstimate("empty_location")
	}

	coords, found, err := r.geocoder.Geocode(ctx, location)
	if err != nil {
		r.logger.Warn("geocoding failed, using default rainfall", "location", location, "error", err)
		return r.fallbackEstimate("geocode_error")
	}
	if !found {
		r.logger.Warn("location not found, using default rainfall", "location", location)
		return r.fallbackEstimate("geocode_miss")
	}

	year := r.clock.Now().Year() - 1
	daily, err := r.archive.DailyPrecipitation(ctx, coords, year)
	if err != nil {
		r.logger.Warn("precipitation archive failed, using default rainfall",
			"location", location, "lat", coords.Lat, "lon", coords.Lon, "year", year, "error", err)
		return r.fallbackEstimate("archive_error")
	}
	if len(daily) == 0 {
		r.logger.Warn("precipitation archive returned no data, using default rainfall",
			"location", location, "year", year)
		return r.fallbackEstimate("archive_empty")
	}

	var total float64
	for _, mm := range daily {
		total += mm
	}

	r.metrics.RainfallLookups.WithLabelValues("live", "ok").Inc()
	return domain.RainfallEstimate{
		AnnualMm: math.Round(total),
		Source:   domain.RainfallSourceLive,
	}
}

func (r *Resolver) fallbackEstimate(reason string) domain.RainfallEstimate {
	r.metrics.RainfallLookups.WithLabelValues("fallback", reason).Inc()
	return domain.RainfallEstimate{
		AnnualMm: r.fallback,
		Source:   domain.RainfallSourceFallback,
	}
}
