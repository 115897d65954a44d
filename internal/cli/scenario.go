package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pipegrid/grid"
)

// ErrBadScenario indicates a scenario file that parsed but does not describe
// a usable problem (missing grid, malformed dimensions).
var ErrBadScenario = errors.New("cli: invalid scenario")

// coordSpec is the YAML form of a grid coordinate.
type coordSpec struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// coord converts the YAML form to a grid.Coord.
func (c coordSpec) coord() grid.Coord {
	return grid.Coord{Row: c.Row, Col: c.Col}
}

// Scenario is one optimization problem loaded from a YAML file: grid
// dimensions, the source cell, the consumer cells, and optional per-scenario
// penalty and seed overrides.
type Scenario struct {
	Grid struct {
		Rows int `yaml:"rows"`
		Cols int `yaml:"cols"`
	} `yaml:"grid"`
	Source    coordSpec   `yaml:"source"`
	Consumers []coordSpec `yaml:"consumers"`
	Penalty   *float64    `yaml:"penalty"`
	Seed      *int64      `yaml:"seed"`
}

// loadScenario reads and validates a scenario file.
func loadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("cli: reading scenario %q: %w", path, err)
	}

	var sc Scenario
	if err = yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("cli: parsing scenario %q: %w", path, err)
	}
	if sc.Grid.Rows <= 0 || sc.Grid.Cols <= 0 {
		return Scenario{}, fmt.Errorf("%w: grid dimensions must be positive in %q", ErrBadScenario, path)
	}
	if sc.Penalty != nil && *sc.Penalty < 0 {
		return Scenario{}, fmt.Errorf("%w: penalty must be non-negative in %q", ErrBadScenario, path)
	}

	return sc, nil
}

// inputs converts the scenario to optimizer inputs. Bounds are checked by
// steiner.Solve, not here.
func (s Scenario) inputs() (grid.Grid, grid.Coord, []grid.Coord, error) {
	g, err := grid.New(s.Grid.Rows, s.Grid.Cols)
	if err != nil {
		return grid.Grid{}, grid.Coord{}, nil, err
	}

	consumers := make([]grid.Coord, 0, len(s.Consumers))
	for _, c := range s.Consumers {
		consumers = append(consumers, c.coord())
	}

	return g, s.Source.coord(), consumers, nil
}
