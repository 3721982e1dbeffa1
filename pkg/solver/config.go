package solver

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Config carries the tunables the core accepts: the scattering chunk size
// and seed, plus optional expansion budgets. Zero values select defaults
// (sqrt-of-N chunking, seed 0, unlimited paths and rounds).
type Config struct {
	ChunkSize uint64 `mapstructure:"chunkSize"`
	Seed      uint64 `mapstructure:"seed"`
	MaxPaths  uint64 `mapstructure:"maxPaths"`
	MaxRounds uint64 `mapstructure:"maxRounds"`
}

func ConfigFromJson(file string) (Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, err
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return Config{}, err
	}

	var config Config
	mapstructure.Decode(configJson, &config)

	return config, nil
}
