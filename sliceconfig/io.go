package sliceconfig

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Default returns a Config filled with reasonable default values, the way
// a freshly generated settings file would look.
func Default() Config {
	return Config{
		LayerHeight:                      0.2,
		NozzleDiameter:                   []float64{0.4},
		RaftLayers:                       0,
		SupportContactDistance:           0.1,
		SupportMaterialExtruder:          1,
		SupportMaterialInterfaceExtruder: 1,
		ExtrudersUsed:                    []int{1},
	}
}

// Load reads a Config from a YAML settings file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
