// Package config loads the demo driver's scenario settings from YAML,
// following udisondev-la2go's internal/config defaults-then-override
// pattern: a Scenario with sensible defaults, optionally overridden by
// a config file on disk.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HeuristicKind selects which search.Heuristic the demo wires up.
type HeuristicKind string

const (
	HeuristicZero   HeuristicKind = "zero"
	HeuristicTarget HeuristicKind = "target"
	HeuristicFence  HeuristicKind = "fence"
)

// Scenario is the demo driver's YAML-configurable run: how many nearest
// goals to find, the wall-clock budget, geometric tolerance, and which
// heuristic variant to run (spec.md §4.4's blind/target/fence choice).
type Scenario struct {
	K              int           `yaml:"k"`
	TimeLimitMicro int64         `yaml:"time_limit_micro"`
	Epsilon        float64       `yaml:"epsilon"`
	HeuristicKind  HeuristicKind `yaml:"heuristic"`
}

// DefaultScenario returns a Scenario with sensible defaults: a single
// nearest goal, a generous one-second budget, the library's epsilon,
// and the target heuristic.
func DefaultScenario() Scenario {
	return Scenario{
		K:              1,
		TimeLimitMicro: 1_000_000,
		Epsilon:        1e-8,
		HeuristicKind:  HeuristicTarget,
	}
}

// LoadScenario loads a Scenario from a YAML file, starting from
// DefaultScenario and overriding only the fields the file sets. A
// missing file is not an error — it just yields the defaults.
func LoadScenario(path string) (Scenario, error) {
	cfg := DefaultScenario()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
