package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.arcade/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
// A custom path must exist, parse and validate; the implicit locations are skipped
// when they are missing or broken.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultShooterConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shooter.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "shooter.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (ShooterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ShooterConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the invariants the simulation relies on.
// All problems are reported together.
func Validate(cfg ShooterConfig) error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v))
		}
	}

	positive("playfield.width", cfg.Playfield.Width)
	positive("playfield.height", cfg.Playfield.Height)
	positive("playfield.half_width", cfg.Playfield.HalfWidth)
	positive("player.speed", cfg.Player.Speed)
	positive("player.fire_cooldown", cfg.Player.FireCooldown.Seconds())
	positive("bullet.speed", cfg.Bullet.Speed)
	positive("enemy.speed", cfg.Enemy.Speed)
	positive("enemy.spawn_interval", cfg.Enemy.SpawnInterval.Seconds())
	positive("scoring.hit_radius", cfg.Scoring.HitRadius)
	positive("scoring.points", float64(cfg.Scoring.Points))

	if cfg.Playfield.EnemyFloor >= cfg.Playfield.SpawnLine {
		errs = append(errs, fmt.Errorf("%w: playfield.enemy_floor (%v) must be below spawn_line (%v)",
			ErrInvalidConfig, cfg.Playfield.EnemyFloor, cfg.Playfield.SpawnLine))
	}
	if cfg.Playfield.PlayerY >= cfg.Playfield.BulletCeiling {
		errs = append(errs, fmt.Errorf("%w: playfield.player_y (%v) must be below bullet_ceiling (%v)",
			ErrInvalidConfig, cfg.Playfield.PlayerY, cfg.Playfield.BulletCeiling))
	}
	if cfg.Input.Hold < 0 {
		errs = append(errs, fmt.Errorf("%w: input.hold must not be negative, got %v", ErrInvalidConfig, cfg.Input.Hold))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
