package formula

import "math"

// RollerCounts distributes return rollers along the conveyor. Positions sit
// at the fixed roller spacing with one at each end. When snubs are present
// they occupy the two end positions and gravity rollers fill the interior;
// otherwise gravity rollers take every position, with a floor of two so the
// return is always supported at both ends.
func RollerCounts(conveyorLength, spacing float64, snubsPresent bool) (gravity, snub int) {
	if conveyorLength <= 0 || spacing <= 0 {
		if snubsPresent {
			return 0, 2
		}
		return 2, 0
	}

	positions := int(math.Floor(conveyorLength/spacing)) + 1
	if snubsPresent {
		gravity = positions - 2
		if gravity < 0 {
			gravity = 0
		}
		return gravity, 2
	}
	if positions < 2 {
		positions = 2
	}
	return positions, 0
}
