// Package generate derives the missing parts of a partially recognized
// score. Each derived part comes from a fixed table of rules: a direct copy,
// an octave shift, or an activity merge of several sources normalized to
// concert pitch. Some rules read parts produced by earlier rules, so the
// table is walked in its (topologically ordered) row order.
package generate

import (
	"errors"

	"github.com/jsphweid/partgen/instrument"
	"github.com/jsphweid/partgen/merge"
	"github.com/jsphweid/partgen/model"
	"github.com/jsphweid/partgen/score"
	"github.com/jsphweid/partgen/transpose"
)

type Generator struct {
	reg instrument.Registry
	tr  *transpose.Transposer
}

func New(reg instrument.Registry) *Generator {
	return &Generator{reg: reg, tr: transpose.New(reg)}
}

// Generate derives every part the table can produce from the given score.
// Parts come back in generation order, written in their target instrument's
// key, alongside a report of skipped parts, unresolved instruments and range
// warnings. Recoverable problems accumulate in the report; only malformed
// note data aborts with an error.
func (g *Generator) Generate(s *score.Score) ([]model.Part, *model.GenerationReport, error) {
	var parts []model.Part
	report := &model.GenerationReport{}
	generated := make(map[string]model.Part)

	for _, r := range derivations {
		// an upstream part under the derived name wins; never overwrite it
		if _, ok := s.Part(r.output); ok {
			continue
		}

		target, ok := g.reg.Lookup(r.target)
		if !ok {
			report.Unresolved = append(report.Unresolved, model.UnresolvedInstrument{
				Part:       r.output,
				Instrument: r.target,
			})
			continue
		}

		var part model.Part
		var warnings []model.RangeWarning
		var err error
		switch r.kind {
		case kindCopy:
			part, err = g.deriveCopy(s, generated, r, target, report)
		case kindOctaveShift:
			part, warnings, err = g.deriveOctaveShift(s, generated, r, target, report)
		case kindMerge:
			part, warnings, err = g.deriveMerge(s, generated, r, target, report)
		}
		if err != nil {
			if errors.Is(err, errNoSources) {
				continue // already reported
			}
			return nil, nil, err
		}

		if r.clef != "" {
			part.Clef = r.clef
		}
		for _, w := range warnings {
			w.Part = r.output
			report.Warnings = append(report.Warnings, w)
		}
		parts = append(parts, part)
		generated[r.output] = part
		report.Generated = append(report.Generated, r.output)
	}

	return parts, report, nil
}

// Complete returns a copy of the score with every derivable part appended.
func (g *Generator) Complete(s *score.Score) (*score.Score, *model.GenerationReport, error) {
	parts, report, err := g.Generate(s)
	if err != nil {
		return nil, nil, err
	}
	out := s.Copy()
	for _, p := range parts {
		if err := out.AddPart(p); err != nil {
			return nil, nil, err
		}
	}
	return out, report, nil
}

// errNoSources signals a derivation whose entire source list was
// unavailable. The skip has already been reported by then.
var errNoSources = errors.New("no sources available")

func (g *Generator) deriveCopy(s *score.Score, generated map[string]model.Part, r rule, target model.Descriptor, report *model.GenerationReport) (model.Part, error) {
	src, found := findSource(s, generated, r.sources[0])
	if !found {
		report.Skipped = append(report.Skipped, model.SkippedPart{
			Part:           r.output,
			MissingSources: []string{r.sources[0].name},
		})
		return model.Part{}, errNoSources
	}

	// a direct copy stays in the source's written key: the target is either
	// the same C instrument or the same transposing family
	out := src
	out.Name = r.output
	out.Instrument = target.Name
	out.Clef = target.Clef
	out.Measures = src.CopyMeasures()
	return out, nil
}

func (g *Generator) deriveOctaveShift(s *score.Score, generated map[string]model.Part, r rule, target model.Descriptor, report *model.GenerationReport) (model.Part, []model.RangeWarning, error) {
	src, found := findSource(s, generated, r.sources[0])
	if !found {
		report.Skipped = append(report.Skipped, model.SkippedPart{
			Part:           r.output,
			MissingSources: []string{r.sources[0].name},
		})
		return model.Part{}, nil, errNoSources
	}

	concert, err := g.tr.PartToConcert(src)
	if err != nil {
		var unresolved *instrument.UnresolvedError
		if errors.As(err, &unresolved) {
			report.Unresolved = append(report.Unresolved, model.UnresolvedInstrument{
				Part:       src.Name,
				Instrument: unresolved.Name,
			})
			report.Skipped = append(report.Skipped, model.SkippedPart{
				Part:           r.output,
				MissingSources: []string{r.sources[0].name},
			})
			return model.Part{}, nil, errNoSources
		}
		return model.Part{}, nil, err
	}

	shifted, err := transpose.ShiftOctaves(concert, r.octaves)
	if err != nil {
		return model.Part{}, nil, err
	}
	out, warnings, err := transpose.PartToWritten(shifted, target)
	if err != nil {
		return model.Part{}, nil, err
	}
	out.Name = r.output
	return out, warnings, nil
}

func (g *Generator) deriveMerge(s *score.Score, generated map[string]model.Part, r rule, target model.Descriptor, report *model.GenerationReport) (model.Part, []model.RangeWarning, error) {
	var concertSources []model.Part
	var missing []string

	for _, src := range r.sources {
		part, found := findSource(s, generated, src)
		if !found {
			missing = append(missing, src.name)
			continue
		}
		concert, err := g.tr.PartToConcert(part)
		if err != nil {
			var unresolved *instrument.UnresolvedError
			if errors.As(err, &unresolved) {
				report.Unresolved = append(report.Unresolved, model.UnresolvedInstrument{
					Part:       part.Name,
					Instrument: unresolved.Name,
				})
				missing = append(missing, src.name)
				continue
			}
			return model.Part{}, nil, err
		}
		concertSources = append(concertSources, concert)
	}

	if len(concertSources) == 0 {
		report.Skipped = append(report.Skipped, model.SkippedPart{
			Part:           r.output,
			MissingSources: missing,
		})
		return model.Part{}, nil, errNoSources
	}

	merged := merge.Parts(concertSources)
	out, warnings, err := transpose.PartToWritten(merged, target)
	if err != nil {
		return model.Part{}, nil, err
	}
	out.Name = r.output
	return out, warnings, nil
}

// findSource resolves one derivation input. Generated sources only come from
// parts derived earlier in the same pass; score sources are matched against
// the part names by alias, in alias priority order.
func findSource(s *score.Score, generated map[string]model.Part, src source) (model.Part, bool) {
	if src.generated {
		p, ok := generated[src.name]
		return p, ok
	}
	for _, alias := range src.aliases {
		for _, p := range s.Parts() {
			if instrument.Normalize(p.Name) == instrument.Normalize(alias) ||
				instrument.MatchesName(p.Name, alias) {
				return p, true
			}
		}
	}
	return model.Part{}, false
}
