package game

import (
	"container/heap"
	"math"
)

const diagonalCost = 1.4

// PathGrid is a uniform partition of the world into TileSize cells whose
// walkability is derived on demand from the obstacle set. It holds no
// per-search state; every FindPath call allocates its own open/closed
// structures.
type PathGrid struct {
	TileSize  int
	Cols      int
	Rows      int
	Clearance float64 // agent radius + buffer used for walkability sampling
	obstacles []Obstacle
}

// NewPathGrid builds a grid over a Cols×Rows partition. The obstacle slice is
// referenced, not copied; it must stay unchanged for the grid's lifetime.
func NewPathGrid(tileSize, cols, rows int, obstacles []Obstacle, agentRadius, buffer float64) *PathGrid {
	return &PathGrid{
		TileSize:  tileSize,
		Cols:      cols,
		Rows:      rows,
		Clearance: agentRadius + buffer,
		obstacles: obstacles,
	}
}

// WorldToCell converts world coordinates to grid cell coordinates.
func (pg *PathGrid) WorldToCell(wx, wy float64) (int, int) {
	return int(wx) / pg.TileSize, int(wy) / pg.TileSize
}

// CellToWorld converts cell coordinates to the world position of the cell
// center.
func (pg *PathGrid) CellToWorld(cx, cy int) (float64, float64) {
	half := float64(pg.TileSize) / 2
	return float64(cx*pg.TileSize) + half, float64(cy*pg.TileSize) + half
}

// InBounds reports whether (cx,cy) is a valid cell.
func (pg *PathGrid) InBounds(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < pg.Cols && cy < pg.Rows
}

// IsWalkable reports whether an agent of the grid's clearance fits at the
// cell's center. The agent footprint is sampled at the center plus 8
// perimeter points; the cell is walkable only when no sample falls inside an
// obstacle.
func (pg *PathGrid) IsWalkable(cx, cy int) bool {
	if !pg.InBounds(cx, cy) {
		return false
	}
	wx, wy := pg.CellToWorld(cx, cy)
	r := pg.Clearance
	d := r * 0.707 // perimeter diagonal offset

	samples := [9][2]float64{
		{wx, wy},
		{wx + r, wy}, {wx - r, wy},
		{wx, wy + r}, {wx, wy - r},
		{wx + d, wy + d}, {wx - d, wy + d},
		{wx + d, wy - d}, {wx - d, wy - d},
	}
	for _, p := range samples {
		for _, o := range pg.obstacles {
			if o.Contains(p[0], p[1]) {
				return false
			}
		}
	}
	return true
}

// --- A* search ---

type pathNode struct {
	cx, cy int
	g, h   float64
	parent *pathNode
	index  int // heap index
}

type openList []*pathNode

func (ol openList) Len() int           { return len(ol) }
func (ol openList) Less(i, j int) bool { return (ol[i].g + ol[i].h) < (ol[j].g + ol[j].h) }
func (ol openList) Swap(i, j int) {
	ol[i], ol[j] = ol[j], ol[i]
	ol[i].index = i
	ol[j].index = j
}
func (ol *openList) Push(x interface{}) {
	n := x.(*pathNode)
	n.index = len(*ol)
	*ol = append(*ol, n)
}
func (ol *openList) Pop() interface{} {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

var pathDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// manhattan is the search heuristic. With diagonal moves at 1.4 it is not
// strictly admissible, so paths can be marginally longer than optimal; the
// speed/optimality tradeoff is accepted and covered by tolerance in tests.
func manhattan(ax, ay, bx, by int) float64 {
	return math.Abs(float64(ax-bx)) + math.Abs(float64(ay-by))
}

// FindPath searches for a route from (sx,sy) to (gx,gy) in world coordinates
// and returns the simplified waypoint list, or nil when the start cell is
// unwalkable or the search exhausts the open set. A blocked goal cell is
// retargeted to the nearest walkable cell within the ring-search bound.
func (pg *PathGrid) FindPath(sx, sy, gx, gy float64, snapRadius int) [][2]float64 {
	scx, scy := pg.WorldToCell(sx, sy)
	gcx, gcy := pg.WorldToCell(gx, gy)

	// walk memoises the sampling test for this search only.
	memo := make(map[int]int8)
	key := func(cx, cy int) int { return cy*pg.Cols + cx }
	walk := func(cx, cy int) bool {
		if !pg.InBounds(cx, cy) {
			return false
		}
		k := key(cx, cy)
		if v, ok := memo[k]; ok {
			return v == 1
		}
		ok := pg.IsWalkable(cx, cy)
		if ok {
			memo[k] = 1
		} else {
			memo[k] = 0
		}
		return ok
	}

	if !walk(scx, scy) {
		return nil
	}
	if !walk(gcx, gcy) {
		ncx, ncy, ok := pg.nearestWalkable(gcx, gcy, snapRadius, walk)
		if !ok {
			return nil
		}
		gcx, gcy = ncx, ncy
	}

	start := &pathNode{cx: scx, cy: scy, h: manhattan(scx, scy, gcx, gcy)}
	ol := &openList{start}
	heap.Init(ol)

	closed := make(map[int]bool)
	best := map[int]float64{key(scx, scy): 0}

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if cur.cx == gcx && cur.cy == gcy {
			return pg.simplify(reconstruct(cur, pg))
		}
		k := key(cur.cx, cur.cy)
		if closed[k] {
			continue
		}
		closed[k] = true

		for _, d := range pathDirs {
			nx, ny := cur.cx+d[0], cur.cy+d[1]
			if !walk(nx, ny) {
				continue
			}
			diagonal := d[0] != 0 && d[1] != 0
			if diagonal {
				// Corner-cut rule: the two adjacent cardinal cells must
				// both be free, or the agent would clip the wall corner.
				if !walk(cur.cx+d[0], cur.cy) || !walk(cur.cx, cur.cy+d[1]) {
					continue
				}
			}
			nk := key(nx, ny)
			if closed[nk] {
				continue
			}
			cost := 1.0
			if diagonal {
				cost = diagonalCost
			}
			tg := cur.g + cost
			if prev, ok := best[nk]; ok && tg >= prev {
				continue
			}
			best[nk] = tg
			heap.Push(ol, &pathNode{
				cx: nx, cy: ny,
				g: tg, h: manhattan(nx, ny, gcx, gcy),
				parent: cur,
			})
		}
	}
	return nil
}

// nearestWalkable scans expanding square rings around (cx,cy) for the first
// walkable cell, out to maxRadius.
func (pg *PathGrid) nearestWalkable(cx, cy, maxRadius int, walk func(int, int) bool) (int, int, bool) {
	for radius := 1; radius <= maxRadius; radius++ {
		for dx := -radius; dx <= radius; dx++ {
			for dy := -radius; dy <= radius; dy++ {
				if dx != -radius && dx != radius && dy != -radius && dy != radius {
					continue // perimeter only
				}
				nx, ny := cx+dx, cy+dy
				if walk(nx, ny) {
					return nx, ny, true
				}
			}
		}
	}
	return 0, 0, false
}

// reconstruct walks parent links back to the start and emits world-space
// waypoints in start-to-goal order.
func reconstruct(end *pathNode, pg *PathGrid) [][2]float64 {
	var cells [][2]int
	for n := end; n != nil; n = n.parent {
		cells = append(cells, [2]int{n.cx, n.cy})
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	path := make([][2]float64, len(cells))
	for i, c := range cells {
		wx, wy := pg.CellToWorld(c[0], c[1])
		path[i] = [2]float64{wx, wy}
	}
	return path
}

// simplify greedily skips to the farthest waypoint still reachable in a
// straight line, sampling the segment against obstacles inflated by a
// quarter tile. Keeps waypoint counts small and motion smooth without the
// full segment-intersection math.
func (pg *PathGrid) simplify(path [][2]float64) [][2]float64 {
	if len(path) <= 2 {
		return path
	}

	simplified := [][2]float64{path[0]}
	cur := 0
	for cur < len(path)-1 {
		furthest := cur + 1
		for test := cur + 2; test < len(path); test++ {
			if pg.clearSegment(path[cur], path[test]) {
				furthest = test
			} else {
				break
			}
		}
		simplified = append(simplified, path[furthest])
		cur = furthest
	}
	return simplified
}

// clearSegment samples the segment at half-tile intervals and rejects it if
// any sample lands within a quarter tile of an obstacle.
func (pg *PathGrid) clearSegment(a, b [2]float64) bool {
	dist := Dist(a[0], a[1], b[0], b[1])
	samples := int(dist/(float64(pg.TileSize)/2)) + 1
	pad := float64(pg.TileSize) / 4

	for i := 0; i <= samples; i++ {
		t := float64(i) / math.Max(float64(samples), 1)
		px := a[0] + (b[0]-a[0])*t
		py := a[1] + (b[1]-a[1])*t
		for _, o := range pg.obstacles {
			if o.ContainsInflated(px, py, pad) {
				return false
			}
		}
	}
	return true
}
