// Package config provides YAML/TOML game configuration loading and
// difficulty schedules for the shooter variants.
package config

import (
	"fmt"
	"time"
)

// StartMode selects what moves a session from the title screen to play.
type StartMode string

const (
	StartPointer StartMode = "pointer" // First pointer/touch press starts the run
	StartAuto    StartMode = "auto"    // Run starts as soon as the title screen is shown
)

// SpreadKind selects how an enemy burst fans out.
type SpreadKind string

const (
	SpreadAngular SpreadKind = "angular" // Bullets leave at angles around straight down
	SpreadLateral SpreadKind = "lateral" // Bullets fall at the same speed with a sideways drift
)

// ShooterConfig contains all configuration for one shooter variant.
type ShooterConfig struct {
	Surface    SurfaceConfig    `yaml:"surface" toml:"surface"`
	Start      StartConfig      `yaml:"start" toml:"start"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy" toml:"enemy"`
	Obstacle   ObstacleConfig   `yaml:"obstacle" toml:"obstacle"`
	Schedule   ScheduleConfig   `yaml:"schedule" toml:"schedule"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// SurfaceConfig is the logical drawing surface in pixels.
type SurfaceConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// StartConfig controls the title screen.
type StartConfig struct {
	Mode          StartMode `yaml:"mode" toml:"mode"`
	WaitForAssets bool      `yaml:"wait_for_assets" toml:"wait_for_assets"`
}

// BulletConfig describes a projectile. Speed is in pixels per tick.
type BulletConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width           float64      `yaml:"width" toml:"width"`
	Height          float64      `yaml:"height" toml:"height"`
	BottomOffset    float64      `yaml:"bottom_offset" toml:"bottom_offset"` // Distance from ship top to surface bottom
	Lives           int          `yaml:"lives" toml:"lives"`
	InvincibilityMS int          `yaml:"invincibility_ms" toml:"invincibility_ms"`
	FireCooldownMS  int          `yaml:"fire_cooldown_ms" toml:"fire_cooldown_ms"`
	Bullet          BulletConfig `yaml:"bullet" toml:"bullet"`
}

// Invincibility returns the post-damage grace window.
func (p PlayerConfig) Invincibility() time.Duration {
	return time.Duration(p.InvincibilityMS) * time.Millisecond
}

// FireCooldown returns the minimum time between two player shots.
func (p PlayerConfig) FireCooldown() time.Duration {
	return time.Duration(p.FireCooldownMS) * time.Millisecond
}

// EnemyConfig defines enemy ships.
type EnemyConfig struct {
	Width        float64    `yaml:"width" toml:"width"`
	Height       float64    `yaml:"height" toml:"height"`
	SpawnY       float64    `yaml:"spawn_y" toml:"spawn_y"`
	Health       int        `yaml:"health" toml:"health"`
	MaxActive    int        `yaml:"max_active" toml:"max_active"`
	DescentSpeed float64    `yaml:"descent_speed" toml:"descent_speed"` // 0 keeps enemies in place
	Fire         FireConfig `yaml:"fire" toml:"fire"`
}

// FireConfig defines an enemy burst.
type FireConfig struct {
	Burst  int        `yaml:"burst" toml:"burst"`
	Spread SpreadKind `yaml:"spread" toml:"spread"`
	// Step is the angle between neighbouring bullets in radians for angular
	// spreads, or the sideways speed difference in pixels per tick for lateral ones.
	Step   float64      `yaml:"step" toml:"step"`
	Bullet BulletConfig `yaml:"bullet" toml:"bullet"`
}

// ObstacleConfig defines falling obstacles.
type ObstacleConfig struct {
	Height      float64 `yaml:"height" toml:"height"`
	MinWidth    float64 `yaml:"min_width" toml:"min_width"`
	WidthMargin float64 `yaml:"width_margin" toml:"width_margin"` // Width is MinWidth + rand*(surface width - WidthMargin)
	SpawnY      float64 `yaml:"spawn_y" toml:"spawn_y"`
	Health      int     `yaml:"health" toml:"health"`
	MinSpeed    float64 `yaml:"min_speed" toml:"min_speed"`
	SpeedJitter float64 `yaml:"speed_jitter" toml:"speed_jitter"` // Re-rolled every tick; 0 means a fixed speed
}

// ScheduleConfig holds the three time-driven intervals of a session.
type ScheduleConfig struct {
	EnemySpawn    IntervalConfig `yaml:"enemy_spawn" toml:"enemy_spawn"`
	ObstacleSpawn IntervalConfig `yaml:"obstacle_spawn" toml:"obstacle_spawn"`
	EnemyFire     IntervalConfig `yaml:"enemy_fire" toml:"enemy_fire"`
}

// IntervalConfig is a linearly shrinking interval:
// max(FloorMS, BaseMS - elapsedMS*Rate).
type IntervalConfig struct {
	BaseMS  float64 `yaml:"base_ms" toml:"base_ms"`
	Rate    float64 `yaml:"rate" toml:"rate"`
	FloorMS float64 `yaml:"floor_ms" toml:"floor_ms"`
}

// DifficultyConfig scales the schedule.
type DifficultyConfig struct {
	Enabled     bool    `yaml:"enabled" toml:"enabled"`             // false freezes every interval at its base
	RateScale   float64 `yaml:"rate_scale" toml:"rate_scale"`       // Multiplies every interval's rate
	HeadStartMS float64 `yaml:"head_start_ms" toml:"head_start_ms"` // Added to elapsed time before evaluation
}

// Validate reports configuration values the game cannot run with.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Surface.Width <= 0 || c.Surface.Height <= 0:
		return fmt.Errorf("config: surface must be positive, got %vx%v", c.Surface.Width, c.Surface.Height)
	case c.Player.Width <= 0 || c.Player.Width > c.Surface.Width:
		return fmt.Errorf("config: player width %v does not fit surface width %v", c.Player.Width, c.Surface.Width)
	case c.Player.Lives <= 0:
		return fmt.Errorf("config: player lives must be positive, got %d", c.Player.Lives)
	case c.Enemy.Width <= 0 || c.Enemy.Width > c.Surface.Width:
		return fmt.Errorf("config: enemy width %v does not fit surface width %v", c.Enemy.Width, c.Surface.Width)
	case c.Enemy.Health <= 0 || c.Obstacle.Health <= 0:
		return fmt.Errorf("config: enemy and obstacle health must be positive")
	case c.Enemy.MaxActive < 0:
		return fmt.Errorf("config: enemy max_active must not be negative, got %d", c.Enemy.MaxActive)
	case c.Enemy.Fire.Burst < 0:
		return fmt.Errorf("config: enemy fire burst must not be negative, got %d", c.Enemy.Fire.Burst)
	case c.Obstacle.MinWidth <= 0 || c.Obstacle.MinWidth > c.Surface.Width:
		return fmt.Errorf("config: obstacle min_width %v does not fit surface width %v", c.Obstacle.MinWidth, c.Surface.Width)
	}

	switch c.Start.Mode {
	case StartPointer, StartAuto:
	default:
		return fmt.Errorf("config: unknown start mode %q", c.Start.Mode)
	}
	switch c.Enemy.Fire.Spread {
	case SpreadAngular, SpreadLateral:
	default:
		return fmt.Errorf("config: unknown spread %q", c.Enemy.Fire.Spread)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = preset != DifficultyFixed
	cfg.Difficulty.RateScale = 1
	cfg.Difficulty.HeadStartMS = 0

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.RateScale = 0.5
		cfg.Player.Lives = 5
	case DifficultyHard:
		// Start where a normal run is after two minutes
		cfg.Difficulty.HeadStartMS = 120000
		cfg.Player.Lives = 2
	}
}
