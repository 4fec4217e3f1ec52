// Package config provides configuration loading and access for the colony
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/outpost/components"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Structures StructuresConfig `yaml:"structures"`
	Recipes    RecipesConfig    `yaml:"recipes"`
	Deposits   DepositsConfig   `yaml:"deposits"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Colony     ColonyConfig     `yaml:"colony"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WorldConfig holds grid dimensions and the terrain seed.
type WorldConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"` // 0 = host picks a seed
}

// StructuresConfig holds the fixed per-type structure parameters. These are
// construction-time data; they are not consulted again after placement.
type StructuresConfig struct {
	Base       BaseConfig       `yaml:"base"`
	PowerPlant PowerPlantConfig `yaml:"power_plant"`
	Mine       MineConfig       `yaml:"mine"`
	Storage    StorageConfig    `yaml:"storage"`
}

// BaseConfig holds base parameters.
type BaseConfig struct {
	EnergyOut       uint64 `yaml:"energy_out"`
	BatteryCapacity uint64 `yaml:"battery_capacity"`
}

// PowerPlantConfig holds power plant parameters.
type PowerPlantConfig struct {
	EnergyOut uint64 `yaml:"energy_out"`
}

// MineConfig holds mine parameters.
type MineConfig struct {
	EnergyIn    uint64 `yaml:"energy_in"`
	ResourceOut uint64 `yaml:"resource_out"`
}

// StorageConfig holds storage slot capacities, per kind.
type StorageConfig struct {
	ResourceCapacity  uint64 `yaml:"resource_capacity"`
	CommodityCapacity uint64 `yaml:"commodity_capacity"`
}

// RecipeConfig describes one production rule in the config file. Names are
// resolved against the commodity/resource rosters during load.
type RecipeConfig struct {
	Out       uint64            `yaml:"out"`
	Energy    uint64            `yaml:"energy"`
	Resources map[string]uint64 `yaml:"resources"`
}

// RecipesConfig holds the factory and refinery recipe tables.
type RecipesConfig struct {
	Factory  map[string]RecipeConfig `yaml:"factory"`
	Refinery map[string]RecipeConfig `yaml:"refinery"`
}

// DepositsConfig holds deposit generation noise parameters.
type DepositsConfig struct {
	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Threshold   float64 `yaml:"threshold"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window
}

// PlacementConfig describes one structure in the initial colony layout.
type PlacementConfig struct {
	Kind      string `yaml:"kind"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Resource  string `yaml:"resource,omitempty"`
	Commodity string `yaml:"commodity,omitempty"`
}

// ColonyConfig holds the host-side colony setup.
type ColonyConfig struct {
	TickIntervalMs int               `yaml:"tick_interval_ms"` // 0 = run flat out
	ReportEvery    int               `yaml:"report_every"`     // ticks between colony reports
	Structures     []PlacementConfig `yaml:"structures"`
}

// RecipeSpec is a recipe with names resolved to kinds.
type RecipeSpec struct {
	Out       uint64
	Energy    uint64
	Resources map[components.Resource]uint64
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FactoryRecipes  map[components.Commodity]RecipeSpec
	RefineryRecipes map[components.Commodity]RecipeSpec
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// computeDerived resolves recipe tables against the goods rosters.
func (c *Config) computeDerived() error {
	factory, err := resolveRecipes(c.Recipes.Factory)
	if err != nil {
		return fmt.Errorf("resolving factory recipes: %w", err)
	}
	refinery, err := resolveRecipes(c.Recipes.Refinery)
	if err != nil {
		return fmt.Errorf("resolving refinery recipes: %w", err)
	}

	c.Derived.FactoryRecipes = factory
	c.Derived.RefineryRecipes = refinery
	return nil
}

func resolveRecipes(table map[string]RecipeConfig) (map[components.Commodity]RecipeSpec, error) {
	out := make(map[components.Commodity]RecipeSpec, len(table))
	for name, rc := range table {
		commodity, err := components.ParseCommodity(name)
		if err != nil {
			return nil, err
		}

		resources := make(map[components.Resource]uint64, len(rc.Resources))
		for resName, amount := range rc.Resources {
			resource, err := components.ParseResource(resName)
			if err != nil {
				return nil, fmt.Errorf("recipe %s: %w", name, err)
			}
			resources[resource] = amount
		}

		out[commodity] = RecipeSpec{
			Out:       rc.Out,
			Energy:    rc.Energy,
			Resources: resources,
		}
	}
	return out, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
