package migrate

import "math"

// The two helpers below survive from schema revision 3, before the geometry
// resolver existed. Both are KNOWN INCORRECT for inclined conveyors: they
// divide by the conveyor axis length where the horizontal run belongs,
// conflating the hypotenuse with its projection. They are retained verbatim
// for historical parity with configurations saved by old clients and must
// never be called from the canonical pipeline. Route all geometry through
// the geometry package.

// LegacyAngleFromHeights derives an incline angle from end centerline
// heights and the conveyor axis length.
//
// Deprecated: incorrect for any non-horizontal conveyor; the denominator
// should be the horizontal run, not the axis length. Use geometry.Resolve.
func LegacyAngleFromHeights(conveyorLength, driveCL, tailCL float64) float64 {
	if conveyorLength == 0 {
		return 0
	}
	return math.Atan((driveCL-tailCL)/conveyorLength) * 180 / math.Pi
}

// LegacyHeightFromAngle derives the drive-end centerline height from the
// tail height, incline angle, and conveyor axis length.
//
// Deprecated: incorrect for any non-horizontal conveyor; the rise should be
// axisLength*sin(angle), not axisLength*tan(angle). Use geometry.Resolve.
func LegacyHeightFromAngle(conveyorLength, tailCL, angleDeg float64) float64 {
	return tailCL + conveyorLength*math.Tan(angleDeg*math.Pi/180)
}
