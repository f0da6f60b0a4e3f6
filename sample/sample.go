// Package sample builds a small partial band score, the shape recognition
// would hand over: a handful of named parts in written pitch, equal measure
// counts, with the derived parts (flutes 2/3, strings, double reeds, low
// sax) all absent.
package sample

import (
	"github.com/jsphweid/partgen/model"
	"github.com/jsphweid/partgen/score"
)

const numMeasures = 8

func note(p string, dur float64) model.NoteEvent {
	return model.NoteEvent{Pitch: p, Duration: dur}
}

func rest(dur float64) model.NoteEvent {
	return model.NoteEvent{Rest: true, Duration: dur}
}

// quarters fills a measure with four quarter notes cycling over the pitches.
func quarters(pitches ...string) model.Measure {
	var m model.Measure
	for i := 0; i < 4; i++ {
		m = append(m, note(pitches[i%len(pitches)], 1))
	}
	return m
}

func repeatMeasures(m model.Measure, n int) []model.Measure {
	out := make([]model.Measure, n)
	for i := range out {
		out[i] = append(model.Measure(nil), m...)
	}
	return out
}

func part(name, inst string, clef model.Clef, m model.Measure) model.Part {
	return model.Part{
		Name:          name,
		Instrument:    inst,
		Clef:          clef,
		TimeSignature: model.TimeSignature{Numerator: 4, Denominator: 4},
		Measures:      repeatMeasures(m, numMeasures),
	}
}

// Score returns the demo piece.
func Score() *score.Score {
	s := score.New("March Demo", "Trad.")

	parts := []model.Part{
		part("C Flute", "C Flute", model.TrebleClef,
			quarters("C5", "E5", "G5", "E5")),
		part("2nd Bb Clarinet", "2nd Bb Clarinet", model.TrebleClef,
			quarters("C4", "D4", "E4", "D4")),
		part("3rd Bb Clarinet", "3rd Bb Clarinet", model.TrebleClef,
			quarters("A3", "B3", "C4", "B3")),
		part("2nd Bb Trumpet", "2nd Bb Trumpet", model.TrebleClef,
			model.Measure{note("G4", 2), rest(2)}),
		part("Bb Tenor Saxophone", "Bb Tenor Saxophone", model.TrebleClef,
			model.Measure{note("D4", 4)}),
		part("1st Trombone", "1st Trombone", model.BassClef,
			quarters("Bb2", "D3", "F3", "D3")),
		part("2nd Trombone", "2nd Trombone", model.BassClef,
			model.Measure{note("Bb2", 2), note("F2", 2)}),
		part("Baritone (Bass Clef)", "Baritone (Bass Clef)", model.BassClef,
			quarters("Bb2", "F2", "Bb2", "F2")),
		part("Baritone (Treble Clef)", "Baritone (Treble Clef)", model.TrebleClef,
			model.Measure{note("C4", 4)}),
	}
	for _, p := range parts {
		if err := s.AddPart(p); err != nil {
			panic(err.Error())
		}
	}
	return s
}
