package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Playfield: PlayfieldConfig{
			Width:         800,
			Height:        600,
			HalfWidth:     350,
			BulletCeiling: 400,
			EnemyFloor:    -300,
			SpawnLine:     300,
			PlayerY:       -200,
		},
		Player: PlayerConfig{
			Speed:        300,
			FireCooldown: 500 * time.Millisecond,
			MuzzleOffset: 30,
			Width:        50,
			Height:       50,
		},
		Bullet: BulletConfig{
			Speed:  500,
			Width:  5,
			Height: 15,
		},
		Enemy: EnemyConfig{
			Speed:         100,
			SpawnInterval: time.Second,
			Width:         40,
			Height:        40,
		},
		Scoring: ScoringConfig{
			HitRadius: 20,
			Points:    10,
		},
		Input: InputConfig{
			Hold: 500 * time.Millisecond,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter":
		return defaultShooterYAML
	default:
		return nil
	}
}
