// Package score holds the in-memory multi-part score that recognition
// populates and part generation appends to. Parts are kept in insertion
// order and part names are unique.
package score

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/partgen/model"
)

var ErrDuplicatePart = errors.New("duplicate part name")

// MeasureCountError reports parts whose measure counts disagree. The score
// is never padded to fix it; masking a recognition gap with silent rests is
// a caller decision.
type MeasureCountError struct {
	Counts map[string]int
}

func (e *MeasureCountError) Error() string {
	names := make([]string, 0, len(e.Counts))
	for name := range e.Counts {
		names = append(names, name)
	}
	sort.Strings(names)
	var parts []string
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%v=%v", name, e.Counts[name]))
	}
	return "measure counts disagree: " + strings.Join(parts, ", ")
}

// Score is an insertion-ordered collection of named parts plus piece
// metadata. Everything downstream of generation treats it as read-only.
type Score struct {
	Title    string
	Composer string

	parts []model.Part
	index map[string]int
}

func New(title, composer string) *Score {
	return &Score{
		Title:    title,
		Composer: composer,
		index:    make(map[string]int),
	}
}

// AddPart appends a part. Adding a second part under an existing name fails
// with ErrDuplicatePart.
func (s *Score) AddPart(p model.Part) error {
	if p.Name == "" {
		return errors.New("part has no name")
	}
	if _, ok := s.index[p.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePart, p.Name)
	}
	s.index[p.Name] = len(s.parts)
	s.parts = append(s.parts, p)
	return nil
}

// Part returns the part with the exact given name.
func (s *Score) Part(name string) (model.Part, bool) {
	i, ok := s.index[name]
	if !ok {
		return model.Part{}, false
	}
	return s.parts[i], true
}

// Parts returns the parts in insertion order. The slice is a copy; the
// parts' measure slices are shared.
func (s *Score) Parts() []model.Part {
	return append([]model.Part(nil), s.parts...)
}

func (s *Score) PartNames() []string {
	names := make([]string, len(s.parts))
	for i, p := range s.parts {
		names[i] = p.Name
	}
	return names
}

func (s *Score) Len() int { return len(s.parts) }

// NumMeasures returns the measure count of the longest part.
func (s *Score) NumMeasures() int {
	max := 0
	for _, p := range s.parts {
		if len(p.Measures) > max {
			max = len(p.Measures)
		}
	}
	return max
}

// Validate checks the completed-score invariant: every part has the same
// measure count. On disagreement it returns a *MeasureCountError naming
// every part and its count.
func (s *Score) Validate() error {
	if len(s.parts) < 2 {
		return nil
	}
	first := len(s.parts[0].Measures)
	mismatch := false
	for _, p := range s.parts[1:] {
		if len(p.Measures) != first {
			mismatch = true
			break
		}
	}
	if !mismatch {
		return nil
	}
	counts := make(map[string]int, len(s.parts))
	for _, p := range s.parts {
		counts[p.Name] = len(p.Measures)
	}
	return &MeasureCountError{Counts: counts}
}

// Copy makes a deep copy of the score.
func (s *Score) Copy() *Score {
	out := New(s.Title, s.Composer)
	for _, p := range s.parts {
		cp := p
		cp.Measures = p.CopyMeasures()
		out.AddPart(cp)
	}
	return out
}

// Document returns the serializable form of the score. Resolve is consulted
// for each part's instrument so the document carries full descriptors; an
// instrument it cannot resolve is simply left out of the instrument table.
func (s *Score) Document(resolve func(name string) (model.Descriptor, bool)) model.ScoreDocument {
	doc := model.ScoreDocument{
		Title:       s.Title,
		Composer:    s.Composer,
		Instruments: make(map[string]model.Descriptor),
		Parts:       append([]model.Part(nil), s.parts...),
	}
	for _, p := range s.parts {
		if resolve == nil {
			continue
		}
		if d, ok := resolve(p.Instrument); ok {
			doc.Instruments[d.Name] = d
		}
	}
	return doc
}

// FromDocument rebuilds a score from its serialized form, enforcing the
// unique-name invariant.
func FromDocument(doc model.ScoreDocument) (*Score, error) {
	s := New(doc.Title, doc.Composer)
	for _, p := range doc.Parts {
		if err := s.AddPart(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}
