package config

import (
	"math"
	"time"
)

// Intervals is the evaluated schedule at one point in time.
type Intervals struct {
	EnemySpawn    time.Duration
	ObstacleSpawn time.Duration
	EnemyFire     time.Duration
}

// DifficultyManager evaluates the session schedule from elapsed play time.
type DifficultyManager struct {
	schedule ScheduleConfig
	cfg      DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(schedule ScheduleConfig, cfg DifficultyConfig) *DifficultyManager {
	if cfg.RateScale < 0 {
		cfg.RateScale = 0
	}
	return &DifficultyManager{schedule: schedule, cfg: cfg}
}

// IsEnabled returns whether intervals shrink over time.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.RateScale > 0
}

// At returns all intervals for the given elapsed play time.
func (d *DifficultyManager) At(elapsed time.Duration) Intervals {
	return Intervals{
		EnemySpawn:    d.interval(d.schedule.EnemySpawn, elapsed),
		ObstacleSpawn: d.interval(d.schedule.ObstacleSpawn, elapsed),
		EnemyFire:     d.interval(d.schedule.EnemyFire, elapsed),
	}
}

func (d *DifficultyManager) interval(ic IntervalConfig, elapsed time.Duration) time.Duration {
	if !d.cfg.Enabled {
		return msToDuration(ic.BaseMS)
	}
	ms := float64(elapsed)/float64(time.Millisecond) + d.cfg.HeadStartMS
	return msToDuration(Interval(ic.BaseMS, ic.Rate*d.cfg.RateScale, ic.FloorMS, ms))
}

// Interval computes max(floor, base - elapsed*rate). All values are in
// milliseconds. A floor above base is honoured, so the result never drops
// below floor.
func Interval(base, rate, floor, elapsed float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	return math.Max(floor, base-elapsed*rate)
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
