package transpose

import (
	"github.com/jsphweid/partgen/score"
)

// ScoreToConcert returns a concert-pitch copy of the whole score. The copy
// is a derived view for consumers that need sounding pitches; the written
// score stays the single source of truth.
func (t *Transposer) ScoreToConcert(s *score.Score) (*score.Score, error) {
	out := score.New(s.Title+" (Concert Pitch)", s.Composer)
	for _, p := range s.Parts() {
		concert, err := t.PartToConcert(p)
		if err != nil {
			return nil, err
		}
		if err := out.AddPart(concert); err != nil {
			return nil, err
		}
	}
	return out, nil
}
