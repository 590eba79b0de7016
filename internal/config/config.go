// Package config decodes the YAML configuration file that partitions
// options by process: analyze, explore, canonize.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PriorityOptions mirrors the priorities block shared by the analyze and
// explore sections; explore ignores Elim/Simu.
type PriorityOptions struct {
	Emission        int32 `yaml:"emission"`
	Reception       int32 `yaml:"reception"`
	MultiRdv        int32 `yaml:"multi_rdv"`
	InLoop          int32 `yaml:"in_loop"`
	Elim            int32 `yaml:"elim"`
	Simu            int32 `yaml:"simu"`
}

// AnalyzeOptions is the `@analyze_option` section.
type AnalyzeOptions struct {
	AnalysisKind string          `yaml:"analysis_kind"`
	UseLocana    bool            `yaml:"use_locana"`
	Priorities   PriorityOptions `yaml:"priorities"`
}

// ExploreOptions is the `@explore_option` section.
type ExploreOptions struct {
	MaxLoop    uint32          `yaml:"max_loop"`
	Priorities PriorityOptions `yaml:"priorities"`
}

// CanonizeOptions is the `@canonize_option` section.
type CanonizeOptions struct {
	SearchAll bool   `yaml:"search_all"`
	Phases    string `yaml:"phases"`
}

// Config is the top-level decoded configuration file; every section is
// optional, callers fall back to their own defaults for an absent one.
type Config struct {
	Analyze  *AnalyzeOptions  `yaml:"analyze"`
	Explore  *ExploreOptions  `yaml:"explore"`
	Canonize *CanonizeOptions `yaml:"canonize"`
}

var validAnalysisKinds = map[string]bool{
	"accept":         true,
	"prefix":         true,
	"hide":           true,
	"simulate_before": true,
	"simulate_after":  true,
}

var validPhasePresets = map[string]bool{
	"basic":             true,
	"basic_with_to_seq": true,
	"five_phases":       true,
}

// Load reads and decodes the configuration file at path, validating every
// section that is present.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks every section present in c against its fixed set of
// legal knob values.
func (c *Config) Validate() error {
	if c.Analyze != nil {
		if !validAnalysisKinds[c.Analyze.AnalysisKind] {
			return fmt.Errorf("analyze.analysis_kind: unknown value %q", c.Analyze.AnalysisKind)
		}
	}
	if c.Canonize != nil && c.Canonize.Phases != "" {
		if !validPhasePresets[c.Canonize.Phases] {
			return fmt.Errorf("canonize.phases: unknown preset %q", c.Canonize.Phases)
		}
	}
	return nil
}
