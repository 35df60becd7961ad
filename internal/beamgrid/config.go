package beamgrid

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type EntryCfg struct {
	Row int       `json:"row" yaml:"row"`
	Col int       `json:"col" yaml:"col"`
	Dir Direction `json:"dir" yaml:"dir"`
}

// State converts the entry to a beam state.
func (e EntryCfg) State() State { return State{Pos: Position{e.Row, e.Col}, Dir: e.Dir} }

type RenderCfg struct {
	Text     bool    `json:"text,omitempty" yaml:"text,omitempty"`         // print the energized map of the single entry
	PNG      string  `json:"png,omitempty" yaml:"png,omitempty"`           // heatmap over all entries
	GIF      string  `json:"gif,omitempty" yaml:"gif,omitempty"`           // one frame per entry
	Raw      string  `json:"raw,omitempty" yaml:"raw,omitempty"`           // binary heatmap dump
	Scale    int     `json:"scale,omitempty" yaml:"scale,omitempty"`       // pixels per cell
	GIFDelay int     `json:"gifDelay,omitempty" yaml:"gifDelay,omitempty"` // 100ths of a second per frame
	Gamma    float64 `json:"gamma,omitempty" yaml:"gamma,omitempty"`
}

type Config struct {
	Input       string    `json:"input" yaml:"input"`
	Entry       *EntryCfg `json:"entry,omitempty" yaml:"entry,omitempty"` // defaults to (0,0) heading right
	Memoize     bool      `json:"memoize,omitempty" yaml:"memoize,omitempty"`
	Stats       bool      `json:"stats,omitempty" yaml:"stats,omitempty"`
	Render      RenderCfg `json:"render,omitempty" yaml:"render,omitempty"`
	BenchIters  int       `json:"benchIters,omitempty" yaml:"benchIters,omitempty"` // 0 disables the benchmark
	MetricsFile string    `json:"metricsFile,omitempty" yaml:"metricsFile,omitempty"`
}

// UnmarshalYAML reads a direction from a YAML scalar such as "right" or "R".
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: direction must be a scalar", value.Line)
	}
	return d.UnmarshalText([]byte(value.Value))
}

// LoadConfig reads a JSON (.json) or YAML (.yaml, .yml) config and applies defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q (want .json, .yaml or .yml)", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	DebugLog("Loaded config from %s: input=%s entry=%v memoize=%v bench=%d", path, cfg.Input, cfg.Entry.State(), cfg.Memoize, cfg.BenchIters)
	return &cfg, nil
}

// applyDefaults fills unset fields and rejects values that cannot be used.
func (c *Config) applyDefaults() error {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.Entry == nil {
		c.Entry = &EntryCfg{Row: DefaultEntry.Pos.Row, Col: DefaultEntry.Pos.Col, Dir: DefaultEntry.Dir}
	}
	if c.Entry.Row < 0 || c.Entry.Col < 0 {
		return fmt.Errorf("entry (%d,%d) must not be negative", c.Entry.Row, c.Entry.Col)
	}
	if c.Render.Scale < 0 {
		return fmt.Errorf("render scale must be >= 0, got %d", c.Render.Scale)
	}
	if c.Render.Scale == 0 {
		c.Render.Scale = DefaultScale
	}
	if c.Render.GIFDelay <= 0 {
		c.Render.GIFDelay = DefaultGIFDelay
	}
	if c.Render.Gamma <= 0 {
		c.Render.Gamma = DefaultGamma
	}
	if c.BenchIters < 0 {
		return fmt.Errorf("benchIters must be >= 0, got %d", c.BenchIters)
	}
	return nil
}
