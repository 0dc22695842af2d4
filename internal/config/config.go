package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"option-sim/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load scenario inputs from a separate YAML
	// (e.g. examples/scenarios/*.yaml). If both ScenarioFile and Scenario
	// are provided, Scenario overrides ScenarioFile.
	ScenarioFile string         `yaml:"scenario_file"`
	Scenario     ScenarioConfig `yaml:"scenario"`
}

type ScenarioConfig struct {
	Name             string  `yaml:"name"`
	FairValue        float64 `yaml:"fair_value"`
	InitialBid       float64 `yaml:"initial_bid"`
	InitialAsk       float64 `yaml:"initial_ask"`
	HumanLimitPrice  float64 `yaml:"human_limit_price"`
	PushStep         float64 `yaml:"push_step"`
	TargetMultiplier float64 `yaml:"target_multiplier"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Absent fields fall back to the demo defaults so scenario files can
	// stay as small as the one value they change.
	c.Scenario = applyDefaults(c.Scenario)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate or default it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If scenario_file is set, load it and merge in any explicit overrides
	// from c.Scenario.
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := LoadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Scenario.ToInputs().Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	return nil
}

func (s ScenarioConfig) ToInputs() model.SimulationInputs {
	return model.SimulationInputs{
		FairValue:        s.FairValue,
		InitialBid:       s.InitialBid,
		InitialAsk:       s.InitialAsk,
		HumanLimitPrice:  s.HumanLimitPrice,
		PushStep:         s.PushStep,
		TargetMultiplier: s.TargetMultiplier,
	}
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

// LoadScenarioFile reads a preset scenario YAML (a file holding just a
// scenario block).
func LoadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, err
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base.
// This is used when loading a scenario file and then applying overrides from
// the config or the request.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.FairValue != 0 {
		out.FairValue = override.FairValue
	}
	if override.InitialBid != 0 {
		out.InitialBid = override.InitialBid
	}
	if override.InitialAsk != 0 {
		out.InitialAsk = override.InitialAsk
	}
	if override.HumanLimitPrice != 0 {
		out.HumanLimitPrice = override.HumanLimitPrice
	}
	if override.PushStep != 0 {
		out.PushStep = override.PushStep
	}
	if override.TargetMultiplier != 0 {
		out.TargetMultiplier = override.TargetMultiplier
	}
	return out
}

func applyDefaults(s ScenarioConfig) ScenarioConfig {
	def := model.Defaults()
	base := ScenarioConfig{
		FairValue:        def.FairValue,
		InitialBid:       def.InitialBid,
		InitialAsk:       def.InitialAsk,
		HumanLimitPrice:  def.HumanLimitPrice,
		PushStep:         def.PushStep,
		TargetMultiplier: def.TargetMultiplier,
	}
	return MergeScenario(base, s)
}
