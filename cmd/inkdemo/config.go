package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gopaint/ink"
)

// BrushPreset is one named brush in the presets file.
type BrushPreset struct {
	Color             string  `yaml:"color"` // hex, e.g. "#1a6dd4"
	Width             float64 `yaml:"width"`
	PressureSensitive bool    `yaml:"pressure_sensitive"`
}

// Presets is the demo's YAML configuration: named brushes and a fill
// palette, the same shape the coloring games ship to players.
type Presets struct {
	Brushes map[string]BrushPreset `yaml:"brushes"`
	Palette map[string]string      `yaml:"palette"` // name -> hex
}

// defaultPresets returns the built-in presets used when no config file is
// given.
func defaultPresets() Presets {
	return Presets{
		Brushes: map[string]BrushPreset{
			"pencil": {Color: "#222222", Width: 2, PressureSensitive: true},
			"marker": {Color: "#1a6dd4", Width: 6, PressureSensitive: true},
			"crayon": {Color: "#d4481a", Width: 10, PressureSensitive: false},
		},
		Palette: map[string]string{
			"sky":    "#8ecae6",
			"grass":  "#52b788",
			"sun":    "#ffb703",
			"tomato": "#e63946",
		},
	}
}

// loadPresets reads a presets YAML file, or returns the defaults when path
// is empty.
func loadPresets(path string) (Presets, error) {
	if path == "" {
		return defaultPresets(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Presets{}, fmt.Errorf("read presets: %w", err)
	}

	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Presets{}, fmt.Errorf("parse presets: %w", err)
	}
	return p, nil
}

// brush resolves a named preset into an ink.Brush.
func (p Presets) brush(name string) (ink.Brush, error) {
	preset, ok := p.Brushes[name]
	if !ok {
		return ink.Brush{}, fmt.Errorf("unknown brush %q", name)
	}
	return ink.Brush{
		Color:             ink.Hex(preset.Color),
		BaseWidth:         preset.Width,
		PressureSensitive: preset.PressureSensitive,
	}, nil
}

// fill resolves a named palette entry into a buffer color.
func (p Presets) fill(name string) (ink.RGBA8, error) {
	hex, ok := p.Palette[name]
	if !ok {
		return ink.RGBA8{}, fmt.Errorf("unknown palette color %q", name)
	}
	return ink.Hex(hex).Bytes(), nil
}
