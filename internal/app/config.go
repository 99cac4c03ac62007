// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package app

import (
	"bytes"
	_ "embed"
	"log/slog"
	"time"

	"github.com/z5labs/minfold/config"
	"github.com/z5labs/minfold/internal/telemetry"
	"github.com/z5labs/minfold/present"
)

//go:embed default_config.yaml
var defaultConfig []byte

//go:embed demo_config.yaml
var demoConfig []byte

// DefaultConfig returns the base config every run starts from.
func DefaultConfig() config.Source {
	return config.FromYaml(bytes.NewReader(defaultConfig))
}

// DemoConfig returns the jobs replaying the part00 and part01 walkthroughs.
func DemoConfig() config.Source {
	return config.FromYaml(bytes.NewReader(demoConfig))
}

// Config
type Config struct {
	Logging struct {
		Level slog.Level `config:"level"`
	} `config:"logging"`

	Output struct {
		Style present.Style `config:"style"`
	} `config:"output"`

	OTel telemetry.Config `config:"otel"`

	Watch struct {
		Enabled  bool          `config:"enabled"`
		Debounce time.Duration `config:"debounce"`
	} `config:"watch"`

	Jobs []JobConfig `config:"jobs"`
}

// JobConfig describes a single reduction. Values takes precedence
// over File when both are set.
type JobConfig struct {
	Name   string  `config:"name"`
	Values []int32 `config:"values"`
	File   string  `config:"file"`
	Style  string  `config:"style"`
	Sum    bool    `config:"sum"`
	Print  bool    `config:"print"`
}
