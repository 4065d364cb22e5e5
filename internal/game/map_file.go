package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MapFile is the on-disk map format. Positions are world units unless a
// field says otherwise.
type MapFile struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	PlayerStart [2]float64 `yaml:"player_start"`

	Walls  []MapWall  `yaml:"walls"`
	Guards []MapGuard `yaml:"guards"`
}

// MapWall is a wall rectangle given by center and size.
type MapWall struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// MapGuard is one guard placement with an optional per-guard vision tune.
type MapGuard struct {
	Pos    [2]float64   `yaml:"pos"`
	Patrol [][2]float64 `yaml:"patrol"`

	FOVDeg        float64 `yaml:"fov_deg"`        // 0 = use config default
	Range         float64 `yaml:"range"`          // 0 = use config default
	DetectionTime float64 `yaml:"detection_time"` // 0 = use config default
}

// LoadMapFile parses a YAML map.
func LoadMapFile(path string) (*MapFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	var m MapFile
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("map %s: dimensions must be positive, got %gx%g", path, m.Width, m.Height)
	}
	return &m, nil
}

// Obstacles converts the wall list to the core obstacle type.
func (m *MapFile) Obstacles() []Obstacle {
	out := make([]Obstacle, len(m.Walls))
	for i, w := range m.Walls {
		out[i] = Obstacle{X: w.X, Y: w.Y, W: w.W, H: w.H}
	}
	return out
}
