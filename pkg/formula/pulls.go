package formula

// FrictionPull is the pull needed to drag the full load across the
// sliderbed. The coefficient applies to the whole load regardless of
// incline; the cos(angle) reduction is deliberately omitted, which is
// conservative on inclines and exact on horizontal runs.
func FrictionPull(totalLoad, friction float64) float64 {
	return totalLoad * friction
}

// InclinePull is the gravity component of the load along the belt axis.
func InclinePull(totalLoad, inclineAngleDeg float64) float64 {
	return totalLoad * sinDeg(inclineAngleDeg)
}

// TotalBeltPull is friction plus incline plus the fixed starting pull.
func TotalBeltPull(frictionPull, inclinePull, startingPull float64) float64 {
	return frictionPull + inclinePull + startingPull
}
