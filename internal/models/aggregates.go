package models

import "math"

// RatingSummary returns the arithmetic mean of the review ratings rounded
// to one decimal, and the review count. An empty slice yields 0.0 so the
// caller never divides by zero.
func RatingSummary(reviews []*Review) (float64, int) {
	if len(reviews) == 0 {
		return 0.0, 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10, len(reviews)
}

// ApproxDistanceKm is a flat-plane degrees-to-kilometres approximation:
// sqrt(dlat^2 + dlng^2) * 111. Known to be inaccurate at high latitudes and
// long distances; kept deliberately, geodesic correction is out of scope.
func ApproxDistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := lat1 - lat2
	dLng := lng1 - lng2
	return math.Sqrt(dLat*dLat+dLng*dLng) * 111
}

// Round2 rounds to two decimals, the precision attached to nearby-search
// results.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
