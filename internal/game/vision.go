package game

// VisionState tracks a guard's current look direction and sight envelope.
// Angles are degrees; 0 = +X, 90 = +Y (screen down).
type VisionState struct {
	FacingDeg float64
	FOVDeg    float64 // total arc width
	Range     float64 // world units
}

// NewVisionState creates a vision state facing initialDeg with the given
// cone parameters.
func NewVisionState(initialDeg, fovDeg, rng float64) VisionState {
	return VisionState{FacingDeg: initialDeg, FOVDeg: fovDeg, Range: rng}
}

// CanSee reports whether an observer at (ox,oy) sees the target at (tx,ty).
// The cone test runs first because it is cheap; the obstacle sweep only runs
// for targets already inside the cone.
func (v *VisionState) CanSee(ox, oy, tx, ty float64, obstacles []Obstacle) bool {
	if !PointInCone(tx, ty, ox, oy, v.FacingDeg, v.FOVDeg, v.Range) {
		return false
	}
	return HasLineOfSight(ox, oy, tx, ty, obstacles)
}

// TurnToward rotates the facing toward targetDeg by at most rateDeg.
func (v *VisionState) TurnToward(targetDeg, rateDeg float64) {
	diff := AngleDiff(v.FacingDeg, targetDeg)
	switch {
	case diff > rateDeg:
		v.FacingDeg = NormalizeAngle(v.FacingDeg + rateDeg)
	case diff < -rateDeg:
		v.FacingDeg = NormalizeAngle(v.FacingDeg - rateDeg)
	default:
		v.FacingDeg = NormalizeAngle(targetDeg)
	}
}

// RayScan sweeps numRays evenly spaced rays through a full circle from
// (ox,oy) and returns the hit distance of each. Used by the telemetry feed
// and the debug overlay.
func RayScan(ox, oy float64, numRays int, maxDist float64, obstacles []Obstacle) []float64 {
	if numRays <= 0 {
		return nil
	}
	out := make([]float64, numRays)
	step := 360.0 / float64(numRays)
	for i := 0; i < numRays; i++ {
		out[i], _ = CastRay(ox, oy, float64(i)*step, maxDist, obstacles)
	}
	return out
}
