// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds motifmark settings unmarshalled from Viper. Values
// come from defaults, an optional YAML settings file, MOTIFMARK_ prefixed
// environment variables and command line flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/biogo/motifmark/layout"
	"github.com/biogo/motifmark/render"
)

// Color allocation modes.
const (
	Random   = "random"
	Distinct = "distinct"
	Rainbow  = "rainbow"
)

// EnvPrefix is the prefix of environment variables read by New.
const EnvPrefix = "MOTIFMARK"

// Config is the root-level settings struct.
type Config struct {
	// canvas geometry
	Margin       float64 `mapstructure:"margin"`
	RowHeight    float64 `mapstructure:"row-height"`
	HeaderHeight float64 `mapstructure:"header-height"`
	LabelAdvance float64 `mapstructure:"label-advance"`

	// measure legend labels with font metrics
	// rather than by character count
	Measure bool `mapstructure:"measure"`

	// text and strokes
	Font          string  `mapstructure:"font"`
	FontSize      float64 `mapstructure:"font-size"`
	BaselineWidth float64 `mapstructure:"baseline-width"`
	FeatureWidth  float64 `mapstructure:"feature-width"`

	// color allocation mode and, for distinct
	// mode, the minimum CIE L*a*b* distance
	Colors      string  `mapstructure:"colors"`
	MinDistance float64 `mapstructure:"min-distance"`
	Tries       int     `mapstructure:"tries"`
}

// SetDefaults registers the reference settings with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("margin", layout.DefaultConfig.Margin)
	v.SetDefault("row-height", layout.DefaultConfig.RowHeight)
	v.SetDefault("header-height", layout.DefaultConfig.HeaderHeight)
	v.SetDefault("label-advance", layout.DefaultConfig.LabelAdvance)
	v.SetDefault("measure", false)
	v.SetDefault("font", render.DefaultStyle.Font)
	v.SetDefault("font-size", render.DefaultStyle.FontSize)
	v.SetDefault("baseline-width", render.DefaultStyle.BaselineWidth)
	v.SetDefault("feature-width", render.DefaultStyle.FeatureWidth)
	v.SetDefault("colors", Random)
	v.SetDefault("min-distance", 0.3)
	v.SetDefault("tries", 100)
}

// New returns a Config populated from v. If file is not empty it is read
// as a settings file first.
func New(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		err := v.ReadInConfig()
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %q: %w", file, err)
		}
	}

	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		return Config{}, fmt.Errorf("config: unable to decode settings: %w", err)
	}
	return c, c.validate()
}

func (c Config) validate() error {
	var errs []error
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"row-height", c.RowHeight},
		{"label-advance", c.LabelAdvance},
		{"font-size", c.FontSize},
		{"baseline-width", c.BaselineWidth},
		{"feature-width", c.FeatureWidth},
	} {
		if f.val <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive: %v", f.name, f.val))
		}
	}
	if c.Margin < 0 {
		errs = append(errs, fmt.Errorf("config: margin must not be negative: %v", c.Margin))
	}
	if c.HeaderHeight < 0 {
		errs = append(errs, fmt.Errorf("config: header-height must not be negative: %v", c.HeaderHeight))
	}
	switch c.Colors {
	case Random, Distinct, Rainbow:
	default:
		errs = append(errs, fmt.Errorf("config: unknown color mode %q", c.Colors))
	}
	return errors.Join(errs...)
}

// Layout returns the layout configuration described by c.
func (c Config) Layout() (layout.Config, error) {
	l := layout.DefaultConfig
	l.Margin = c.Margin
	l.RowHeight = c.RowHeight
	l.HeaderHeight = c.HeaderHeight
	l.LabelAdvance = c.LabelAdvance
	if c.Measure {
		m, err := layout.FontMeasure(c.Font, c.FontSize)
		if err != nil {
			return l, fmt.Errorf("config: %v", err)
		}
		l.Measure = m
	}
	return l, nil
}

// Style returns the drawing style described by c.
func (c Config) Style() render.Style {
	s := render.DefaultStyle
	s.Font = c.Font
	s.FontSize = c.FontSize
	s.BaselineWidth = c.BaselineWidth
	s.FeatureWidth = c.FeatureWidth
	return s
}
