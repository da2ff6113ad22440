// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config collects the tunable stage parameters into one
// YAML-backed configuration. The defaults preserve the reference
// values, so an absent or empty config reproduces reference output.
package config

import (
	"fmt"
	"os"

	"github.com/GameHunter101/v4go/base/errors"
	"github.com/GameHunter101/v4go/compute"
	"github.com/GameHunter101/v4go/lighting"
	"github.com/GameHunter101/v4go/postfx"
	"gopkg.in/yaml.v3"
)

// Lighting holds the lighting stage parameters.
type Lighting struct {
	// Shininess is the specular exponent. The reference materials
	// use 20 and 32.
	Shininess float32 `yaml:"shininess"`

	// TangentSpace evaluates the lighting math in tangent space
	// instead of world space. The two are numerically equivalent.
	TangentSpace bool `yaml:"tangent-space"`
}

// Space returns the lighting space selected by the configuration.
func (lt *Lighting) Space() lighting.Space {
	if lt.TangentSpace {
		return lighting.TangentSpace
	}
	return lighting.WorldSpace
}

// Blur holds the box blur parameters.
type Blur struct {
	// ReferenceResolution sets the sampling offset to
	// 2 / ReferenceResolution in UV units.
	ReferenceResolution float32 `yaml:"reference-resolution"`
}

// Overlay holds the overlay composite parameters.
type Overlay struct {
	Color [3]float32 `yaml:"color"`
	Alpha float32    `yaml:"alpha"`
}

// Skybox holds the skybox stage parameters.
type Skybox struct {
	// Recentered selects the camera-recentered reconstruction, which
	// ignores camera translation.
	Recentered bool `yaml:"recentered"`
}

// Compute holds the compute stage parameters.
type Compute struct {
	// WorkgroupSize is the number of invocations per scheduling unit.
	WorkgroupSize int `yaml:"workgroup-size"`

	// BufferLength is the element count of the compute buffers. The
	// reference dispatch uses 8.
	BufferLength int `yaml:"buffer-length"`
}

// Config is the full stage configuration.
type Config struct {
	Lighting Lighting `yaml:"lighting"`
	Blur     Blur     `yaml:"blur"`
	Overlay  Overlay  `yaml:"overlay"`
	Skybox   Skybox   `yaml:"skybox"`
	Compute  Compute  `yaml:"compute"`
}

// Defaults sets all parameters to the reference values.
func (cf *Config) Defaults() {
	cf.Lighting.Shininess = lighting.DefaultShininess
	cf.Lighting.TangentSpace = false
	cf.Blur.ReferenceResolution = postfx.DefaultReferenceResolution
	// reference engine clear color, at a light touch
	cf.Overlay.Color = [3]float32{0.8, 0.15, 0.2}
	cf.Overlay.Alpha = 0.2
	cf.Skybox.Recentered = false
	cf.Compute.WorkgroupSize = compute.DefaultWorkgroupSize
	cf.Compute.BufferLength = 8
}

// New returns a new [Config] with the reference defaults.
func New() *Config {
	cf := &Config{}
	cf.Defaults()
	return cf
}

// Open reads the configuration from the given YAML file, on top of the
// reference defaults, so partial files only override what they name.
func Open(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cf := New()
	if err := yaml.Unmarshal(b, cf); err != nil {
		return nil, fmt.Errorf("config: %q: %w", filename, err)
	}
	return cf, nil
}

// OpenOrDefaults is [Open], except that any error is logged and a
// default configuration is returned, for callers that treat the config
// file as optional.
func OpenOrDefaults(filename string) *Config {
	cf, err := Open(filename)
	if err != nil {
		errors.Log(err)
		return New()
	}
	return cf
}

// Save writes the configuration to the given YAML file.
func (cf *Config) Save(filename string) error {
	b, err := yaml.Marshal(cf)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(filename, b, 0666); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
