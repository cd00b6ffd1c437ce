// Package config loads editor tuning from TOML
// Every field defaults to the matching parameter constant
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/floorplan/parameter"
)

// EnvPort overrides API.Port when set
const EnvPort = "FLOORPLAN_PORT"

// Config is the full editor configuration
type Config struct {
	Validation Validation `toml:"validation"`
	Grid       Grid       `toml:"grid"`
	Door       Door       `toml:"door"`
	Input      Input      `toml:"input"`
	API        API        `toml:"api"`
	Audio      Audio      `toml:"audio"`
}

// Validation holds geometric acceptance bounds
type Validation struct {
	MinRoomArea       float64 `toml:"min_room_area"`
	WallSnapThreshold float64 `toml:"wall_snap_threshold"`
	RotationEpsilon   float64 `toml:"rotation_epsilon"`
	MinDoorWidth      float64 `toml:"min_door_width"`
	MaxDoorWidth      float64 `toml:"max_door_width"`
	MinDoorHeight     float64 `toml:"min_door_height"`
	MaxDoorHeight     float64 `toml:"max_door_height"`
}

// Grid controls vertex snapping
type Grid struct {
	Size float64 `toml:"size"`
	Snap bool    `toml:"snap"`
}

// Door holds defaults for newly placed doors
type Door struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	SwingAngle float64 `toml:"swing_angle"`
}

// Input holds gesture recognition tuning
type Input struct {
	PointHitThreshold float64 `toml:"point_hit_threshold"`
	TapMaxMs          int     `toml:"tap_max_ms"`
	DoubleTapMs       int     `toml:"double_tap_ms"`
	WheelPinchFactor  float64 `toml:"wheel_pinch_factor"`
}

// API holds HTTP server settings
type API struct {
	Port         string `toml:"port"`
	ReadTimeout  int    `toml:"read_timeout"`
	WriteTimeout int    `toml:"write_timeout"`
}

// Audio toggles feedback tones
type Audio struct {
	Enabled bool `toml:"enabled"`
}

// TapMax returns the tap duration threshold
func (i Input) TapMax() time.Duration {
	return time.Duration(i.TapMaxMs) * time.Millisecond
}

// DoubleTap returns the double-tap window
func (i Input) DoubleTap() time.Duration {
	return time.Duration(i.DoubleTapMs) * time.Millisecond
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Validation: Validation{
			MinRoomArea:       parameter.MinRoomArea,
			WallSnapThreshold: parameter.WallSnapThreshold,
			RotationEpsilon:   parameter.RotationEpsilon,
			MinDoorWidth:      parameter.MinDoorWidth,
			MaxDoorWidth:      parameter.MaxDoorWidth,
			MinDoorHeight:     parameter.MinDoorHeight,
			MaxDoorHeight:     parameter.MaxDoorHeight,
		},
		Grid: Grid{
			Size: parameter.GridSize,
			Snap: parameter.GridSnapEnabled,
		},
		Door: Door{
			Width:      parameter.DefaultDoorWidth,
			Height:     parameter.DefaultDoorHeight,
			SwingAngle: parameter.DefaultDoorSwingAngle,
		},
		Input: Input{
			PointHitThreshold: parameter.PointHitThreshold,
			TapMaxMs:          int(parameter.TapMaxDuration / time.Millisecond),
			DoubleTapMs:       int(parameter.DoubleTapWindow / time.Millisecond),
			WheelPinchFactor:  parameter.WheelPinchFactor,
		},
		API: API{
			Port:         parameter.APIPort,
			ReadTimeout:  parameter.APIReadTimeout,
			WriteTimeout: parameter.APIWriteTimeout,
		},
		Audio: Audio{Enabled: true},
	}
}

// Load reads path over the defaults
// A missing file is not an error; the defaults are returned
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}
	if port := os.Getenv(EnvPort); port != "" {
		cfg.API.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write encodes cfg as TOML
func Write(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate rejects inconsistent bounds
func (c *Config) Validate() error {
	v := c.Validation
	switch {
	case v.MinRoomArea < 0:
		return fmt.Errorf("validation.min_room_area must be >= 0, got %g", v.MinRoomArea)
	case v.WallSnapThreshold <= 0:
		return fmt.Errorf("validation.wall_snap_threshold must be > 0, got %g", v.WallSnapThreshold)
	case v.RotationEpsilon < 0:
		return fmt.Errorf("validation.rotation_epsilon must be >= 0, got %g", v.RotationEpsilon)
	case v.MinDoorWidth <= 0 || v.MinDoorWidth > v.MaxDoorWidth:
		return fmt.Errorf("validation door width bounds invalid: [%g, %g]", v.MinDoorWidth, v.MaxDoorWidth)
	case v.MinDoorHeight <= 0 || v.MinDoorHeight > v.MaxDoorHeight:
		return fmt.Errorf("validation door height bounds invalid: [%g, %g]", v.MinDoorHeight, v.MaxDoorHeight)
	}
	if c.Grid.Size <= 0 {
		return fmt.Errorf("grid.size must be > 0, got %g", c.Grid.Size)
	}
	if c.Door.Width < v.MinDoorWidth || c.Door.Width > v.MaxDoorWidth {
		return fmt.Errorf("door.width %g outside [%g, %g]", c.Door.Width, v.MinDoorWidth, v.MaxDoorWidth)
	}
	if c.Door.Height < v.MinDoorHeight || c.Door.Height > v.MaxDoorHeight {
		return fmt.Errorf("door.height %g outside [%g, %g]", c.Door.Height, v.MinDoorHeight, v.MaxDoorHeight)
	}
	if c.Input.TapMaxMs <= 0 || c.Input.DoubleTapMs <= 0 {
		return fmt.Errorf("input tap timings must be > 0")
	}
	return nil
}
