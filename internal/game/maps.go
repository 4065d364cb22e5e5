package game

// Built-in apartment map: a 1280x720 maze of corridors with L-turns and a
// few free-standing cover blocks. Coordinates are screen-down (y grows
// toward the bottom of the window).

const wallThickness = 15

// ApartmentWalls returns the wall set for a world of the given size. The
// layout assumes 1280x720 but scales its perimeter to any size.
func ApartmentWalls(w, h float64) []Obstacle {
	t := float64(wallThickness)
	walls := []Obstacle{
		// Perimeter.
		{X: w / 2, Y: t / 2, W: w, H: t},
		{X: w / 2, Y: h - t/2, W: w, H: t},
		{X: t / 2, Y: h / 2, W: t, H: h},
		{X: w - t/2, Y: h / 2, W: t, H: h},

		// Left side maze.
		{X: 200, Y: 200, W: t, H: 300},
		{X: 300, Y: 350, W: 220, H: t},
		{X: 400, Y: 480, W: t, H: 280},
		{X: 250, Y: h - 200, W: t, H: 250},
		{X: 150, Y: h - 325, W: 220, H: t},

		// Center maze.
		{X: w / 2, Y: h - 300, W: t, H: 400},
		{X: 750, Y: 200, W: 300, H: t},
		{X: 550, Y: h - 400, W: 200, H: t},
		{X: 750, Y: h - 200, W: 300, H: t},

		// Right side maze.
		{X: w - 250, Y: 300, W: t, H: 400},
		{X: w - 150, Y: 450, W: 220, H: t},
		{X: w - 200, Y: h - 300, W: t, H: 380},

		// Free-standing cover blocks.
		{X: 350, Y: h - 450, W: 80, H: 50},
		{X: 850, Y: h - 450, W: 80, H: 50},
		{X: 550, Y: 100, W: 60, H: 80},
		{X: 550, Y: h - 100, W: 70, H: 60},
	}
	return walls
}

// ApartmentPlayerSpawn is the safe entrance corner.
func ApartmentPlayerSpawn(w, h float64) (float64, float64) {
	return 80, h - 80
}

// ApartmentGuardSpawns returns up to n guard spawn points spread through the
// maze corridors, far from the player entrance.
func ApartmentGuardSpawns(w, h float64, n int) [][2]float64 {
	spawns := [][2]float64{
		{300, 200},
		{700, 350},
		{w - 300, 300},
		{900, h - 300},
		{450, h - 200},
		{w - 100, h - 450},
		{150, h - 450},
	}
	if n > len(spawns) {
		n = len(spawns)
	}
	return spawns[:n]
}

// ApartmentPatrolRoute returns the corridor patrol loop for guard i. Guards
// beyond the predefined routes get a small square around their spawn.
func ApartmentPatrolRoute(w, h float64, i int) [][2]float64 {
	routes := [][][2]float64{
		{ // top left corridor, L-shaped
			{280, 150}, {280, 280}, {350, 280}, {350, 150},
		},
		{ // top center area
			{680, 250}, {780, 250}, {780, 350}, {680, 350},
		},
		{ // top right corridor
			{w - 300, 250}, {w - 120, 250}, {w - 120, 400}, {w - 300, 400},
		},
		{ // right center, vertical loop
			{900, h - 250}, {900, h - 350}, {800, h - 350}, {800, h - 250},
		},
		{ // bottom center
			{450, h - 150}, {600, h - 150}, {600, h - 250}, {450, h - 250},
		},
		{ // right side corridor
			{w - 100, h - 400}, {w - 100, h - 500}, {w - 170, h - 500}, {w - 170, h - 400},
		},
		{ // left side corridor
			{120, h - 400}, {170, h - 400}, {170, h - 480}, {120, h - 480},
		},
	}
	if i < len(routes) {
		return routes[i]
	}

	spawns := ApartmentGuardSpawns(w, h, i+1)
	idx := i % len(spawns)
	sx, sy := spawns[idx][0], spawns[idx][1]
	return [][2]float64{
		{sx - 50, sy - 50}, {sx + 50, sy - 50},
		{sx + 50, sy + 50}, {sx - 50, sy + 50},
	}
}
