package loop

import (
	"time"

	"github.com/lowrey/bumper/internal/config"
	"github.com/lowrey/bumper/internal/physics"
)

// Frame timing.
const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// maxFrameDelta caps the physics dt after a stall (e.g. a suspended laptop)
// so bodies do not tunnel through each other on the catch-up frame.
const maxFrameDelta = 0.05

// Target resolution - sandbox objects use these logical dimensions.
// Actual rendering scales to fit terminal size.
const (
	targetWidth  = 120 // Logical width
	targetHeight = 80  // Logical height (in sub-pixels, so 40 terminal rows)
)

// Max render resolution (terminal cells). Larger terminals get a centered
// canvas with a border around it.
const (
	maxTermWidth  = 180
	maxTermHeight = 50
)

// SandboxConfig holds the tunable simulation parameters. Every field has a
// sensible default; a YAML file can override any subset.
type SandboxConfig struct {
	GravityY      float64 `yaml:"gravity_y"`
	OverlapBias   float64 `yaml:"overlap_bias"`
	CellSize      float64 `yaml:"cell_size"`
	Crates        int     `yaml:"crates"`
	Balls         int     `yaml:"balls"`
	PlatformSpeed float64 `yaml:"platform_speed"`
}

// DefaultConfig returns the built-in sandbox tuning.
func DefaultConfig() SandboxConfig {
	return SandboxConfig{
		GravityY:      90,
		OverlapBias:   physics.DefaultOverlapBias,
		CellSize:      16,
		Crates:        4,
		Balls:         2,
		PlatformSpeed: 12,
	}
}

// LoadConfig loads the sandbox config from the YAML file named by the
// BUMPER_CONFIG environment variable (default config/sandbox.yaml). A missing
// file keeps the defaults; a malformed file is an error.
func LoadConfig() (SandboxConfig, error) {
	cfg := DefaultConfig()

	path := config.GetEnv("BUMPER_CONFIG", "config/sandbox.yaml")
	if err := config.LoadYAML(path, &cfg); err != nil {
		return cfg, err
	}

	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultConfig().CellSize
	}
	if cfg.OverlapBias < 0 {
		cfg.OverlapBias = physics.DefaultOverlapBias
	}
	return cfg, nil
}
