// Package config loads gridpath scenario files.
//
// A scenario is a YAML document describing a board and how to search it:
//
//	rows: 20
//	cols: 20
//	delay: 100ms
//	algorithm: astar
//	start: {row: 0, col: 0}
//	end:   {row: 19, col: 19}
//	walls:
//	  - {row: 3, col: 4}
//
// A non-empty layout block replaces rows, cols, start, end and walls with an
// ASCII picture in the gridgraph text format:
//
//	layout: |
//	  S..#
//	  ...E
//
// An optional random block then scatters extra walls, reproducibly for a
// given seed:
//
//	random: {density: 0.3, seed: 42}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Limits on scenario files.
const (
	MaxFileSize = 1 << 20
	MaxSide     = 200
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid scenario")

	// ErrFileTooLarge is returned by Load for files above MaxFileSize.
	ErrFileTooLarge = errors.New("config: scenario file too large")
)

// Point is a cell position in a scenario.
type Point struct {
	Row int `yaml:"row" validate:"gte=0"`
	Col int `yaml:"col" validate:"gte=0"`
}

// Cell converts p to a grid cell.
func (p Point) Cell() gridgraph.Cell {
	return gridgraph.Cell{Row: p.Row, Col: p.Col}
}

// Random scatters walls over the board after everything else is placed.
type Random struct {
	Density float64 `yaml:"density" validate:"gte=0,lte=1"`
	Seed    int64   `yaml:"seed"`
}

// Config is a parsed scenario.
type Config struct {
	Rows      int           `yaml:"rows" validate:"gte=1,lte=200"`
	Cols      int           `yaml:"cols" validate:"gte=1,lte=200"`
	Delay     time.Duration `yaml:"delay" validate:"gte=0s,lte=10s"`
	Algorithm string        `yaml:"algorithm" validate:"oneof=astar dijkstra"`
	Start     *Point        `yaml:"start,omitempty"`
	End       *Point        `yaml:"end,omitempty"`
	Walls     []Point       `yaml:"walls,omitempty" validate:"dive"`
	Layout    string        `yaml:"layout,omitempty"`
	Random    *Random       `yaml:"random,omitempty"`
}

// Default returns an empty 20×20 board searched with A* at one step per
// 100ms.
func Default() *Config {
	return &Config{
		Rows:      20,
		Cols:      20,
		Delay:     100 * time.Millisecond,
		Algorithm: search.AlgorithmAStar.String(),
	}
}

// EnsureEndpoints puts a missing start in the top-left corner and a missing
// end in the bottom-right one. Layout scenarios are left alone.
func (c *Config) EnsureEndpoints() {
	if strings.TrimSpace(c.Layout) != "" {
		return
	}
	if c.Start == nil {
		c.Start = &Point{Row: 0, Col: 0}
	}
	if c.End == nil {
		c.End = &Point{Row: c.Rows - 1, Col: c.Cols - 1}
	}
}

// Load reads and validates the scenario at path.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFileTooLarge, path, info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return cfg, nil
}

// Parse decodes a scenario on top of Default and validates it. Unknown keys
// are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	cfg.Algorithm = strings.ToLower(strings.TrimSpace(cfg.Algorithm))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Write saves c to path, creating parent directories as needed.
func (c *Config) Write(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// SearchAlgorithm returns the configured algorithm.
func (c *Config) SearchAlgorithm() search.Algorithm {
	alg, err := search.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return search.AlgorithmAStar
	}

	return alg
}

// Grid builds the described grid. c must be valid.
func (c *Config) Grid() (*gridgraph.Grid, error) {
	g, err := c.baseGrid()
	if err != nil {
		return nil, err
	}
	if c.Random != nil {
		if _, err = g.Scatter(c.Random.Density, rand.New(rand.NewSource(c.Random.Seed))); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (c *Config) baseGrid() (*gridgraph.Grid, error) {
	if strings.TrimSpace(c.Layout) != "" {
		return gridgraph.Parse(c.Layout)
	}

	g, err := gridgraph.NewGrid(c.Rows, c.Cols)
	if err != nil {
		return nil, err
	}
	for _, w := range c.Walls {
		if err = g.SetRole(w.Cell(), gridgraph.RoleWall); err != nil {
			return nil, err
		}
	}
	if c.Start != nil {
		if err = g.SetRole(c.Start.Cell(), gridgraph.RoleStart); err != nil {
			return nil, err
		}
	}
	if c.End != nil {
		if err = g.SetRole(c.End.Cell(), gridgraph.RoleEnd); err != nil {
			return nil, err
		}
	}

	return g, nil
}
