// Package scorefile persists multi-part scores as YAML documents. The
// document carries part names, full instrument descriptors and measures, so
// a saved score round-trips losslessly without the built-in catalog.
package scorefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsphweid/partgen/instrument"
	"github.com/jsphweid/partgen/model"
	"github.com/jsphweid/partgen/score"
)

// Save writes the score. Descriptors for every part's instrument are
// resolved through the registry and embedded in the document.
func Save(path string, s *score.Score, reg instrument.Registry) error {
	doc := s.Document(reg.Lookup)
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("could not encode score: %w", err)
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return fmt.Errorf("could not write %v: %w", path, err)
	}
	return nil
}

// Load reads a score document. The returned registry is the given one
// extended with every descriptor embedded in the document, so instruments
// unknown to the built-in catalog still resolve.
func Load(path string, reg instrument.Registry) (*score.Score, instrument.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, reg, fmt.Errorf("could not read %v: %w", path, err)
	}
	var doc model.ScoreDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, reg, fmt.Errorf("could not parse %v: %w", path, err)
	}
	s, err := score.FromDocument(doc)
	if err != nil {
		return nil, reg, err
	}
	extended := reg
	if len(doc.Instruments) > 0 {
		descs := make([]model.Descriptor, 0, len(doc.Instruments))
		for _, d := range doc.Instruments {
			descs = append(descs, d)
		}
		extended = reg.With(descs...)
	}
	return s, extended, nil
}
