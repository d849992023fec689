package spatial

// Centroid calculates the geographic centroid of a set of [lon, lat] points
func Centroid(points [][2]float64) [2]float64 {
	if len(points) == 0 {
		return [2]float64{}
	}

	var sumLon, sumLat float64
	for _, p := range points {
		sumLon += p[0]
		sumLat += p[1]
	}

	return [2]float64{
		sumLon / float64(len(points)),
		sumLat / float64(len(points)),
	}
}

// BoundingBox calculates the bounding box of a set of [lon, lat] points
// Returns (minLon, minLat, maxLon, maxLat)
func BoundingBox(points [][2]float64) (float64, float64, float64, float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	minLon, maxLon := points[0][0], points[0][0]
	minLat, maxLat := points[0][1], points[0][1]

	for _, p := range points[1:] {
		if p[0] < minLon {
			minLon = p[0]
		}
		if p[0] > maxLon {
			maxLon = p[0]
		}
		if p[1] < minLat {
			minLat = p[1]
		}
		if p[1] > maxLat {
			maxLat = p[1]
		}
	}

	return minLon, minLat, maxLon, maxLat
}

// PathLengthKm calculates the total length of a path in kilometers
func PathLengthKm(points [][2]float64) float64 {
	if len(points) < 2 {
		return 0
	}

	var total float64
	for i := 1; i < len(points); i++ {
		total += DistanceKm(points[i-1], points[i])
	}

	return total
}

// CumulativeDistancesKm returns, for each point, the distance traveled from
// the start of the path up to that point. The first entry is always 0.
func CumulativeDistancesKm(points [][2]float64) []float64 {
	if len(points) == 0 {
		return nil
	}

	cum := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		cum[i] = cum[i-1] + DistanceKm(points[i-1], points[i])
	}

	return cum
}
