// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import "time"

// ShooterConfig contains all configuration for the shooter.
type ShooterConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Input     InputConfig     `yaml:"input"`
}

// PlayfieldConfig defines the bounds of the world.
// The world is centered at the origin with y pointing up.
type PlayfieldConfig struct {
	Width         float64 `yaml:"width"`          // Logical canvas width
	Height        float64 `yaml:"height"`         // Logical canvas height
	HalfWidth     float64 `yaml:"half_width"`     // Player x clamp
	BulletCeiling float64 `yaml:"bullet_ceiling"` // Bullets culled above
	EnemyFloor    float64 `yaml:"enemy_floor"`    // Enemies culled below
	SpawnLine     float64 `yaml:"spawn_line"`     // Enemy spawn y
	PlayerY       float64 `yaml:"player_y"`       // Player start y
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed        float64       `yaml:"speed"`
	FireCooldown time.Duration `yaml:"fire_cooldown"`
	MuzzleOffset float64       `yaml:"muzzle_offset"` // Bullet spawn height above the player
	Width        float64       `yaml:"width"`
	Height       float64       `yaml:"height"`
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyConfig defines the single enemy type and its spawn cadence.
type EnemyConfig struct {
	Speed         float64       `yaml:"speed"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
}

// ScoringConfig defines collision scoring.
type ScoringConfig struct {
	HitRadius float64 `yaml:"hit_radius"`
	Points    int     `yaml:"points"`
}

// InputConfig tunes platform input handling.
type InputConfig struct {
	// Hold is how long a terminal key stays held after its last press.
	// Terminals report presses and auto-repeats, never releases.
	Hold time.Duration `yaml:"hold"`
}
