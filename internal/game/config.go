package game

import (
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Config collects every behaviour tunable in one place. A single Config is
// built once and shared read-only by the world, its guards, and the
// pathfinder for the lifetime of an episode.
type Config struct {
	// World dimensions and grid partition.
	WorldWidth  float64 `yaml:"world_width" json:"world_width"`
	WorldHeight float64 `yaml:"world_height" json:"world_height"`
	TileSize    int     `yaml:"tile_size" json:"tile_size"`

	// Vision cone.
	VisionRange float64 `yaml:"vision_range" json:"vision_range"`
	VisionFOV   float64 `yaml:"vision_fov" json:"vision_fov"` // degrees, total arc

	// Detection accumulation.
	DetectionThreshold float64 `yaml:"detection_threshold" json:"detection_threshold"` // seconds to full detection
	DecayRate          float64 `yaml:"decay_rate" json:"decay_rate"`

	// Awareness timers (seconds).
	SuspiciousDuration float64 `yaml:"suspicious_duration" json:"suspicious_duration"`
	SearchDuration     float64 `yaml:"search_duration" json:"search_duration"`
	LostSightDelay     float64 `yaml:"lost_sight_delay" json:"lost_sight_delay"`

	// Movement.
	GuardSpeed       float64 `yaml:"guard_speed" json:"guard_speed"`             // units per tick while patrolling
	GuardChaseSpeed  float64 `yaml:"guard_chase_speed" json:"guard_chase_speed"` // units per tick while alerted
	PlayerSpeed      float64 `yaml:"player_speed" json:"player_speed"`
	TurnRate         float64 `yaml:"turn_rate" json:"turn_rate"` // degrees per tick
	PatrolPauseTicks int     `yaml:"patrol_pause_ticks" json:"patrol_pause_ticks"`

	// Navigation.
	AgentRadius      float64 `yaml:"agent_radius" json:"agent_radius"`
	WalkBuffer       float64 `yaml:"walk_buffer" json:"walk_buffer"` // extra clearance for walkability sampling
	ArriveThreshold  float64 `yaml:"arrive_threshold" json:"arrive_threshold"`
	ReplanInterval   int     `yaml:"replan_interval" json:"replan_interval"`   // ticks between forced replans
	ReplanDistance   float64 `yaml:"replan_distance" json:"replan_distance"`   // goal drift that forces a replan
	SnapSearchRadius int     `yaml:"snap_search_radius" json:"snap_search_radius"` // ring search bound for blocked goals

	// Guard fire.
	ShootCooldown  int     `yaml:"shoot_cooldown" json:"shoot_cooldown"` // ticks between shots
	ShootDelay     int     `yaml:"shoot_delay" json:"shoot_delay"`       // ticks of continuous sight before first shot
	BulletSpeed    float64 `yaml:"bullet_speed" json:"bullet_speed"`
	BulletRadius   float64 `yaml:"bullet_radius" json:"bullet_radius"`
	BulletLifetime int     `yaml:"bullet_lifetime" json:"bullet_lifetime"` // ticks

	// Episodes.
	MaxStepsPerEpisode int `yaml:"max_steps_per_episode" json:"max_steps_per_episode"`
	NumGuards          int `yaml:"num_guards" json:"num_guards"`

	// Telemetry ray sensor sweep.
	NumRays        int     `yaml:"num_rays" json:"num_rays"`
	RayMaxDistance float64 `yaml:"ray_max_distance" json:"ray_max_distance"`
}

// DefaultConfig returns the baseline tuning.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:  1280,
		WorldHeight: 720,
		TileSize:    40,

		VisionRange: 200,
		VisionFOV:   60,

		DetectionThreshold: 0.3,
		DecayRate:          2.0,

		SuspiciousDuration: 2.0,
		SearchDuration:     6.0,
		LostSightDelay:     3.0,

		GuardSpeed:       1.0,
		GuardChaseSpeed:  1.5,
		PlayerSpeed:      3.0,
		TurnRate:         6.0,
		PatrolPauseTicks: 60,

		AgentRadius:      15,
		WalkBuffer:       4,
		ArriveThreshold:  10,
		ReplanInterval:   30,
		ReplanDistance:   30,
		SnapSearchRadius: 5,

		ShootCooldown:  60,
		ShootDelay:     30,
		BulletSpeed:    8.0,
		BulletRadius:   4,
		BulletLifetime: 120,

		MaxStepsPerEpisode: 2000,
		NumGuards:          5,

		NumRays:        16,
		RayMaxDistance: 300,
	}
}

// LoadConfig reads a YAML tuning file over the defaults, so partial files
// only override the keys they name.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values that would break the core invariants.
func (c *Config) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %d", c.TileSize)
	}
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %.0fx%.0f", c.WorldWidth, c.WorldHeight)
	}
	if c.DetectionThreshold <= 0 {
		return fmt.Errorf("detection_threshold must be positive, got %g", c.DetectionThreshold)
	}
	if c.DecayRate < 0 {
		return fmt.Errorf("decay_rate must be non-negative, got %g", c.DecayRate)
	}
	if c.VisionFOV <= 0 || c.VisionFOV > 360 {
		return fmt.Errorf("vision_fov must be in (0,360], got %g", c.VisionFOV)
	}
	if c.AgentRadius < 0 || c.WalkBuffer < 0 {
		return fmt.Errorf("agent_radius and walk_buffer must be non-negative")
	}
	if c.ReplanInterval <= 0 {
		return fmt.Errorf("replan_interval must be positive, got %d", c.ReplanInterval)
	}
	if c.SnapSearchRadius <= 0 {
		return fmt.Errorf("snap_search_radius must be positive, got %d", c.SnapSearchRadius)
	}
	return nil
}

// GridCols returns the number of grid columns implied by the world width.
func (c *Config) GridCols() int { return int(c.WorldWidth) / c.TileSize }

// GridRows returns the number of grid rows implied by the world height.
func (c *Config) GridRows() int { return int(c.WorldHeight) / c.TileSize }

// ConfigSchema returns the JSON schema describing the config file format,
// for editor integration and the headless runner's -config-schema flag.
func ConfigSchema() ([]byte, error) {
	r := &jsonschema.Reflector{ExpandedStruct: true}
	schema := r.Reflect(&Config{})
	data, err := schema.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal config schema: %w", err)
	}
	return data, nil
}
