package config

import (
	_ "embed"
	"math"
)

// Game IDs with embedded defaults.
const (
	ShooterID        = "shooter"
	ShooterCompactID = "shooter_compact"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/shooter_compact.yaml
var defaultShooterCompactYAML []byte

// DefaultShooterConfig returns the default Sky Raid configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Surface: SurfaceConfig{Width: 600, Height: 900},
		Start:   StartConfig{Mode: StartPointer, WaitForAssets: true},
		Player: PlayerConfig{
			Width:           70,
			Height:          70,
			BottomOffset:    100,
			Lives:           3,
			InvincibilityMS: 1000,
			FireCooldownMS:  200,
			Bullet:          BulletConfig{Width: 6, Height: 20, Speed: 7},
		},
		Enemy: EnemyConfig{
			Width:     70,
			Height:    70,
			SpawnY:    50,
			Health:    5,
			MaxActive: 3,
			Fire: FireConfig{
				Burst:  3,
				Spread: SpreadAngular,
				Step:   math.Pi / 16,
				Bullet: BulletConfig{Width: 30, Height: 30, Speed: 2},
			},
		},
		Obstacle: ObstacleConfig{
			Height:      70,
			MinWidth:    70,
			WidthMargin: 140,
			SpawnY:      -70,
			Health:      3,
			MinSpeed:    2.5,
			SpeedJitter: 3.5,
		},
		Schedule: ScheduleConfig{
			EnemySpawn:    IntervalConfig{BaseMS: 5000, Rate: 0.01, FloorMS: 1000},
			ObstacleSpawn: IntervalConfig{BaseMS: 3000, Rate: 0.006, FloorMS: 1000},
			EnemyFire:     IntervalConfig{BaseMS: 1000, Rate: 500.0 / 60000.0, FloorMS: 500},
		},
		Difficulty: DifficultyConfig{Enabled: true, RateScale: 1},
	}
}

// DefaultShooterCompactConfig returns the default Sky Raid (Compact) configuration.
func DefaultShooterCompactConfig() ShooterConfig {
	return ShooterConfig{
		Surface: SurfaceConfig{Width: 450, Height: 800},
		Start:   StartConfig{Mode: StartAuto},
		Player: PlayerConfig{
			Width:           50,
			Height:          50,
			BottomOffset:    80,
			Lives:           3,
			InvincibilityMS: 1000,
			FireCooldownMS:  200,
			Bullet:          BulletConfig{Width: 5, Height: 15, Speed: 7},
		},
		Enemy: EnemyConfig{
			Width:        50,
			Height:       50,
			SpawnY:       40,
			Health:       5,
			MaxActive:    3,
			DescentSpeed: 0.5,
			Fire: FireConfig{
				Burst:  3,
				Spread: SpreadLateral,
				Step:   1,
				Bullet: BulletConfig{Width: 20, Height: 20, Speed: 3},
			},
		},
		Obstacle: ObstacleConfig{
			Height:      50,
			MinWidth:    50,
			WidthMargin: 100,
			SpawnY:      -50,
			Health:      3,
			MinSpeed:    3,
		},
		Schedule: ScheduleConfig{
			EnemySpawn:    IntervalConfig{BaseMS: 5000, Rate: 0.005, FloorMS: 1000},
			ObstacleSpawn: IntervalConfig{BaseMS: 3000, Rate: 0.003, FloorMS: 1000},
			EnemyFire:     IntervalConfig{BaseMS: 1000, Rate: 0, FloorMS: 1000},
		},
		Difficulty: DifficultyConfig{Enabled: true, RateScale: 1},
	}
}

// DefaultFor returns the hardcoded defaults for a game ID.
// Unknown IDs get the Sky Raid defaults.
func DefaultFor(gameID string) ShooterConfig {
	if gameID == ShooterCompactID {
		return DefaultShooterCompactConfig()
	}
	return DefaultShooterConfig()
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case ShooterID:
		return defaultShooterYAML
	case ShooterCompactID:
		return defaultShooterCompactYAML
	default:
		return nil
	}
}
