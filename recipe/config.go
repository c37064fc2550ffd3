package recipe

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// catalogFile is the on-disk form of a catalog.
//
//	[[recipe]]
//	name = "EO"
//	input = "EO"
//	output = "LG"
type catalogFile struct {
	Recipe []recipeConfig `toml:"recipe"`
}

type recipeConfig struct {
	Name   string `toml:"name"`
	Input  string `toml:"input"`
	Output string `toml:"output"`
}

// Load reads a catalog from a TOML file.
// Every recipe of the file is validated the same way New validates them.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog load failed (%s): %w", path, err)
	}
	return Decode(data)
}

// Decode builds a catalog from TOML data.
func Decode(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog parse failed: %w", err)
	}
	if len(file.Recipe) == 0 {
		return nil, fmt.Errorf("catalog holds no recipe")
	}
	recipes := make([]Recipe, len(file.Recipe))
	for i, rc := range file.Recipe {
		input, output, err := ParseRule(rc.Input + " -> " + rc.Output)
		if err != nil {
			return nil, err
		}
		name := rc.Name
		if name == "" {
			name = rc.Input
		}
		recipes[i] = Recipe{Name: name, Input: input, Output: output}
	}
	return New(recipes...)
}
