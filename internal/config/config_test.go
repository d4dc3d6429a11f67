package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML("shooter"))
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Errorf("embedded defaults drifted from DefaultShooterConfig():\n got %+v\nwant %+v", cfg, DefaultShooterConfig())
	}
}

func TestDefaultHoldCoversKeyRepeatDelay(t *testing.T) {
	// Common terminal auto-repeat delays run up to about 500ms.
	if hold := DefaultShooterConfig().Input.Hold; hold < 500*time.Millisecond {
		t.Errorf("default input.hold = %v, expected at least 500ms", hold)
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Validate(DefaultShooterConfig()); err != nil {
		t.Errorf("Validate(defaults) = %v, expected nil", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  fire_cooldown: 250ms\nenemy:\n  speed: 150\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Player.FireCooldown != 250*time.Millisecond {
		t.Errorf("FireCooldown = %v, expected 250ms", cfg.Player.FireCooldown)
	}
	if cfg.Enemy.Speed != 150 {
		t.Errorf("Enemy.Speed = %v, expected 150", cfg.Enemy.Speed)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Speed != 300 {
		t.Errorf("Player.Speed = %v, expected default 300", cfg.Player.Speed)
	}
	if cfg.Enemy.SpawnInterval != time.Second {
		t.Errorf("SpawnInterval = %v, expected default 1s", cfg.Enemy.SpawnInterval)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
	}{
		{"zero bullet speed", func(c *ShooterConfig) { c.Bullet.Speed = 0 }},
		{"negative enemy speed", func(c *ShooterConfig) { c.Enemy.Speed = -100 }},
		{"zero cooldown", func(c *ShooterConfig) { c.Player.FireCooldown = 0 }},
		{"zero spawn interval", func(c *ShooterConfig) { c.Enemy.SpawnInterval = 0 }},
		{"zero hit radius", func(c *ShooterConfig) { c.Scoring.HitRadius = 0 }},
		{"floor above spawn line", func(c *ShooterConfig) { c.Playfield.EnemyFloor = 400 }},
		{"player above ceiling", func(c *ShooterConfig) { c.Playfield.PlayerY = 500 }},
		{"negative hold", func(c *ShooterConfig) { c.Input.Hold = -time.Millisecond }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse([]byte("bullet:\n  speed: 0\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Parse() = %v, expected ErrInvalidConfig", err)
	}
	if _, err := Parse([]byte("player: [not, a, map]\n")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestLoadShooterCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  points: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}
	if cfg.Scoring.Points != 25 {
		t.Errorf("Points = %d, expected 25", cfg.Scoring.Points)
	}
}

func TestLoadShooterMissingCustomPath(t *testing.T) {
	_, err := LoadShooter(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadShooter() = %v, expected os.ErrNotExist", err)
	}
}
