package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the Haversine formula.
const earthRadiusKm = 6371.0

// Coordinate is a geographical point in decimal degrees.
// Latitude is in [-90, 90], longitude in [-180, 180].
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Locatable is implemented by records that may carry a coordinate.
// The bool reports whether the position is known.
type Locatable interface {
	Coordinates() (Coordinate, bool)
}

// Distance returns the great-circle distance between two points in kilometers,
// computed with the Haversine formula on a spherical-earth approximation.
func Distance(a, b Coordinate) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	deltaLat := radians(b.Latitude - a.Latitude)
	deltaLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// FilterWithinRadius returns the candidates whose distance from origin does not
// exceed radiusKm, preserving input order. Candidates without a known location
// are excluded. If the origin is unknown, or radiusKm is zero, negative or
// non-finite, the result is empty. The filter is pure: the input slice is not
// modified and the result is always a freshly allocated slice.
func FilterWithinRadius[T Locatable](origin Coordinate, originKnown bool, radiusKm float64, candidates []T) []T {
	result := make([]T, 0, len(candidates))
	if !originKnown || radiusKm <= 0 || math.IsInf(radiusKm, 0) || math.IsNaN(radiusKm) {
		return result
	}

	for _, candidate := range candidates {
		loc, ok := candidate.Coordinates()
		if !ok {
			continue
		}
		if Distance(origin, loc) <= radiusKm {
			result = append(result, candidate)
		}
	}
	return result
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
