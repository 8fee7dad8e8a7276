// Package config loads the engine's YAML configuration file: the policy
// knobs left to the host (uninitialized-read policy, codepage,
// atlas page size, control-panel port).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/isgasho/gsl8engine/gml"
)

// Document is the on-disk YAML shape; it mirrors gml.EngineConfig field
// for field so the zero value of a field absent from the file falls back
// to gml.DefaultEngineConfig rather than to Go's zero value.
type Document struct {
	UninitFieldsAreZero *bool   `yaml:"uninit_fields_are_zero"`
	UninitArgsAreZero   *bool   `yaml:"uninit_args_are_zero"`
	Codepage            *string `yaml:"codepage"`
	AtlasPageSize       *int    `yaml:"atlas_page_size"`
	ControlPanelPort    *int    `yaml:"control_panel_port"`
}

// Load reads a YAML document at path and overlays it onto the default
// configuration.
func Load(path string) (*gml.EngineConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg := gml.DefaultEngineConfig()
	if doc.UninitFieldsAreZero != nil {
		cfg.UninitFieldsAreZero = *doc.UninitFieldsAreZero
	}
	if doc.UninitArgsAreZero != nil {
		cfg.UninitArgsAreZero = *doc.UninitArgsAreZero
	}
	if doc.Codepage != nil {
		cfg.Codepage = *doc.Codepage
	}
	if doc.AtlasPageSize != nil {
		cfg.AtlasPageSize = *doc.AtlasPageSize
	}
	if doc.ControlPanelPort != nil {
		cfg.ControlPanelPort = *doc.ControlPanelPort
	}
	return cfg, nil
}
