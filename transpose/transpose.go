// Package transpose converts parts between an instrument's written key and
// concert pitch. All functions are pure; the input part is never modified.
package transpose

import (
	"fmt"

	"github.com/jsphweid/partgen/instrument"
	"github.com/jsphweid/partgen/model"
	"github.com/jsphweid/partgen/pitch"
)

// Transposer applies instrument transpositions using descriptors resolved
// from an injected read-only registry.
type Transposer struct {
	reg instrument.Registry
}

func New(reg instrument.Registry) *Transposer {
	return &Transposer{reg: reg}
}

func (t *Transposer) Registry() instrument.Registry { return t.reg }

// WrittenToConcert converts one written pitch to the pitch that sounds.
func WrittenToConcert(p pitch.Pitch, d model.Descriptor) pitch.Pitch {
	iv := d.Transposition
	if iv.Semitones == 0 {
		return p
	}
	return p.Transpose(iv.Semitones, iv.PreferFlats)
}

// ConcertToWritten converts a sounding pitch to the instrument's written
// pitch. It is the exact inverse of WrittenToConcert on every pitch.
func ConcertToWritten(p pitch.Pitch, d model.Descriptor) pitch.Pitch {
	iv := d.Transposition
	if iv.Semitones == 0 {
		return p
	}
	return p.Transpose(-iv.Semitones, iv.PreferFlats)
}

// PartToConcert rewrites every note of the part into concert pitch. Rests,
// durations and measure boundaries are untouched. The part's instrument is
// resolved through the registry; a miss is an *instrument.UnresolvedError.
func (t *Transposer) PartToConcert(p model.Part) (model.Part, error) {
	d, err := t.reg.Resolve(p.Instrument)
	if err != nil {
		return model.Part{}, err
	}
	return mapPitches(p, func(pt pitch.Pitch) pitch.Pitch {
		return WrittenToConcert(pt, d)
	})
}

// PartToWritten takes a concert-pitch part and rewrites it into the target
// instrument's written key. Notes whose sounding pitch falls outside the
// target's documented range come back as warnings keyed by measure index;
// they are never clamped or dropped. The warnings' Part field is left for
// the caller to fill in.
func PartToWritten(p model.Part, target model.Descriptor) (model.Part, []model.RangeWarning, error) {
	var warnings []model.RangeWarning
	checker, err := newRangeChecker(target)
	if err != nil {
		return model.Part{}, nil, err
	}

	out := p
	out.Instrument = target.Name
	out.Clef = target.Clef
	out.Measures = make([]model.Measure, len(p.Measures))
	for i, m := range p.Measures {
		measure := make(model.Measure, len(m))
		for j, ev := range m {
			if ev.Rest {
				measure[j] = ev
				continue
			}
			concert, err := pitch.Parse(ev.Pitch)
			if err != nil {
				return model.Part{}, nil, fmt.Errorf("part %q measure %v: %w", p.Name, i, err)
			}
			if w, outside := checker.check(concert, i); outside {
				warnings = append(warnings, w)
			}
			ev.Pitch = ConcertToWritten(concert, target).String()
			measure[j] = ev
		}
		out.Measures[i] = measure
	}
	return out, warnings, nil
}

// ShiftOctaves moves every note by whole octaves. No respelling happens;
// note names stay put and only octave numbers move.
func ShiftOctaves(p model.Part, octaves int) (model.Part, error) {
	return mapPitches(p, func(pt pitch.Pitch) pitch.Pitch {
		return pt.Transpose(octaves*pitch.SemitonesPerOctave, isFlatName(pt.Name()))
	})
}

func isFlatName(name string) bool {
	return len(name) == 2 && name[1] == 'b'
}

// rangeChecker compares sounding pitches against a descriptor's advisory
// concert-pitch range. Descriptors without a range check nothing.
type rangeChecker struct {
	desc      model.Descriptor
	low, high int
	enabled   bool
}

func newRangeChecker(d model.Descriptor) (rangeChecker, error) {
	if d.RangeLow == "" || d.RangeHigh == "" {
		return rangeChecker{desc: d}, nil
	}
	low, err := pitch.Parse(d.RangeLow)
	if err != nil {
		return rangeChecker{}, fmt.Errorf("instrument %q range: %w", d.Name, err)
	}
	high, err := pitch.Parse(d.RangeHigh)
	if err != nil {
		return rangeChecker{}, fmt.Errorf("instrument %q range: %w", d.Name, err)
	}
	return rangeChecker{desc: d, low: low.Semitone(), high: high.Semitone(), enabled: true}, nil
}

func (c rangeChecker) check(concert pitch.Pitch, measureIndex int) (model.RangeWarning, bool) {
	if !c.enabled {
		return model.RangeWarning{}, false
	}
	n := concert.Semitone()
	if n >= c.low && n <= c.high {
		return model.RangeWarning{}, false
	}
	return model.RangeWarning{
		MeasureIndex: measureIndex,
		Pitch:        concert.String(),
		RangeLow:     c.desc.RangeLow,
		RangeHigh:    c.desc.RangeHigh,
	}, true
}

func mapPitches(p model.Part, f func(pitch.Pitch) pitch.Pitch) (model.Part, error) {
	out := p
	out.Measures = make([]model.Measure, len(p.Measures))
	for i, m := range p.Measures {
		measure := make(model.Measure, len(m))
		for j, ev := range m {
			if ev.Rest {
				measure[j] = ev
				continue
			}
			pt, err := pitch.Parse(ev.Pitch)
			if err != nil {
				return model.Part{}, fmt.Errorf("part %q measure %v: %w", p.Name, i, err)
			}
			ev.Pitch = f(pt).String()
			measure[j] = ev
		}
		out.Measures[i] = measure
	}
	return out, nil
}
