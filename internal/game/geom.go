package game

import "math"

// parallelEps is the determinant threshold below which two segments are
// treated as parallel.
const parallelEps = 1e-10

// Obstacle is an axis-aligned wall rectangle given by center and size.
// Coordinates are screen-down: y grows toward the bottom.
type Obstacle struct {
	X, Y float64 // center
	W, H float64
}

func (o Obstacle) MinX() float64 { return o.X - o.W/2 }
func (o Obstacle) MaxX() float64 { return o.X + o.W/2 }
func (o Obstacle) MinY() float64 { return o.Y - o.H/2 }
func (o Obstacle) MaxY() float64 { return o.Y + o.H/2 }

// Contains reports whether the point lies inside the rectangle, edges
// inclusive.
func (o Obstacle) Contains(px, py float64) bool {
	return px >= o.MinX() && px <= o.MaxX() && py >= o.MinY() && py <= o.MaxY()
}

// ContainsInflated is Contains against the rectangle grown by pad on every
// side.
func (o Obstacle) ContainsInflated(px, py, pad float64) bool {
	return px >= o.MinX()-pad && px <= o.MaxX()+pad &&
		py >= o.MinY()-pad && py <= o.MaxY()+pad
}

// Dist is the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleTo returns the bearing in degrees from (x1,y1) to (x2,y2), normalized
// to [0,360). 0 = +X, 90 = +Y (screen down).
func AngleTo(x1, y1, x2, y2 float64) float64 {
	return NormalizeAngle(math.Atan2(y2-y1, x2-x1) * 180 / math.Pi)
}

// NormalizeAngle wraps a degree value into [0,360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngleDiff returns the signed shortest-arc rotation from one bearing to
// another, in (-180,180]. Positive means turning in the +angle direction.
func AngleDiff(fromDeg, toDeg float64) float64 {
	d := math.Mod(toDeg-fromDeg, 360)
	if d > 180 {
		d -= 360
	}
	if d <= -180 {
		d += 360
	}
	return d
}

// SegmentIntersection returns the intersection point of segments (x1,y1)-(x2,y2)
// and (x3,y3)-(x4,y4). Parallel and collinear pairs report no intersection.
func SegmentIntersection(x1, y1, x2, y2, x3, y3, x4, y4 float64) (float64, float64, bool) {
	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(den) < parallelEps {
		return 0, 0, false
	}
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u := ((x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, 0, false
	}
	return x1 + t*(x2-x1), y1 + t*(y2-y1), true
}

// segmentRectHit tests a segment against all four rectangle edges and
// returns the crossing closest to (x1,y1).
func segmentRectHit(x1, y1, x2, y2 float64, o Obstacle) (float64, float64, float64, bool) {
	edges := [4][4]float64{
		{o.MinX(), o.MinY(), o.MaxX(), o.MinY()}, // top
		{o.MinX(), o.MaxY(), o.MaxX(), o.MaxY()}, // bottom
		{o.MinX(), o.MinY(), o.MinX(), o.MaxY()}, // left
		{o.MaxX(), o.MinY(), o.MaxX(), o.MaxY()}, // right
	}

	bestDist := math.Inf(1)
	var bestX, bestY float64
	hit := false
	for _, e := range edges {
		ix, iy, ok := SegmentIntersection(x1, y1, x2, y2, e[0], e[1], e[2], e[3])
		if !ok {
			continue
		}
		d := Dist(x1, y1, ix, iy)
		if d < bestDist {
			bestDist = d
			bestX, bestY = ix, iy
			hit = true
		}
	}
	return bestDist, bestX, bestY, hit
}

// RayRectHit casts a ray of maxDist from (ox,oy) along angleDeg against one
// rectangle. Returns the hit distance and point.
func RayRectHit(ox, oy, angleDeg, maxDist float64, o Obstacle) (float64, float64, float64, bool) {
	rad := angleDeg * math.Pi / 180
	ex := ox + math.Cos(rad)*maxDist
	ey := oy + math.Sin(rad)*maxDist
	return segmentRectHit(ox, oy, ex, ey, o)
}

// CastRay casts a ray against the obstacle set and returns the distance to
// the closest hit plus the index of the obstacle hit, or (maxDist, -1) on a
// clean miss.
func CastRay(ox, oy, angleDeg, maxDist float64, obstacles []Obstacle) (float64, int) {
	bestDist := maxDist
	bestIdx := -1
	for i, o := range obstacles {
		if d, _, _, ok := RayRectHit(ox, oy, angleDeg, maxDist, o); ok && d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	return bestDist, bestIdx
}

// HasLineOfSight reports whether the segment between two points crosses no
// obstacle edge. Endpoints inside an obstacle still count as visible if no
// edge lies between them.
func HasLineOfSight(ox, oy, tx, ty float64, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if _, _, _, hit := segmentRectHit(ox, oy, tx, ty, o); hit {
			return false
		}
	}
	return true
}

// PointInCone reports whether the target lies inside a vision cone anchored
// at (ox,oy), facing facingDeg, spanning fovDeg total, out to maxDist.
func PointInCone(tx, ty, ox, oy, facingDeg, fovDeg, maxDist float64) bool {
	if Dist(ox, oy, tx, ty) > maxDist {
		return false
	}
	bearing := AngleTo(ox, oy, tx, ty)
	return math.Abs(AngleDiff(facingDeg, bearing)) <= fovDeg/2
}
