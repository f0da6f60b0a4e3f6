package instrument

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsphweid/partgen/model"
)

// LoadCatalog reads a YAML list of descriptors and returns a registry over
// them. Used to substitute or extend the built-in catalog without
// recompiling.
func LoadCatalog(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Registry{}, fmt.Errorf("could not read catalog %v: %w", path, err)
	}
	var descs []model.Descriptor
	if err := yaml.Unmarshal(data, &descs); err != nil {
		return Registry{}, fmt.Errorf("could not parse catalog %v: %w", path, err)
	}
	for _, d := range descs {
		if d.Name == "" {
			return Registry{}, fmt.Errorf("catalog %v has a descriptor without a name", path)
		}
		if d.Clef != model.TrebleClef && d.Clef != model.BassClef {
			return Registry{}, fmt.Errorf("instrument %q: unsupported clef %q", d.Name, d.Clef)
		}
	}
	return NewRegistry(descs...), nil
}
