// Package pitch implements semitone-accurate note representation. Pitches
// are totally ordered by their semitone number, which uses MIDI numbering:
// middle C (C4) is 60.
package pitch

import (
	"fmt"
	"strconv"
)

const SemitonesPerOctave = 12

var sharpNames = [SemitonesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var flatNames = [SemitonesPerOctave]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

// pitch class by spelling, including the rare enharmonics so that anything
// upstream hands us still maps to exactly one semitone. B# and Cb cross the
// octave boundary, so their classes sit outside 0..11.
var classes = map[string]int{
	"C": 0, "B#": 12,
	"C#": 1, "Db": 1,
	"D": 2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G": 7,
	"G#": 8, "Ab": 8,
	"A": 9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": -1,
}

// Pitch is a note name plus octave, e.g. Bb3 or F#5. The zero value is not a
// valid pitch; construct through Parse, New or FromSemitone.
type Pitch struct {
	name   string
	octave int
}

// New validates the note name and returns the pitch.
func New(name string, octave int) (Pitch, error) {
	if _, ok := classes[name]; !ok {
		return Pitch{}, fmt.Errorf("invalid note name: %q", name)
	}
	return Pitch{name: name, octave: octave}, nil
}

// Parse reads scientific pitch notation like "C4", "F#5" or "Bb3". The
// Unicode accidentals ♭ and ♯ are accepted as well.
func Parse(s string) (Pitch, error) {
	if len(s) < 2 {
		return Pitch{}, fmt.Errorf("invalid pitch string: %q", s)
	}
	name := s[:1]
	rest := s[1:]
	switch {
	case len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b'):
		name += rest[:1]
		rest = rest[1:]
	case len(rest) >= len("♭") && (rest[:len("♭")] == "♭" || rest[:len("♯")] == "♯"):
		if rest[:len("♭")] == "♭" {
			name += "b"
		} else {
			name += "#"
		}
		rest = rest[len("♭"):]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Pitch{}, fmt.Errorf("invalid pitch string: %q", s)
	}
	return New(name, octave)
}

// MustParse is Parse for static catalog literals.
func MustParse(s string) Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// FromSemitone builds the pitch for a semitone number, spelling black keys
// with flats when preferFlats is set and sharps otherwise.
func FromSemitone(n int, preferFlats bool) Pitch {
	octave := n/SemitonesPerOctave - 1
	class := n % SemitonesPerOctave
	if class < 0 {
		class += SemitonesPerOctave
		octave--
	}
	name := sharpNames[class]
	if preferFlats {
		name = flatNames[class]
	}
	return Pitch{name: name, octave: octave}
}

func (p Pitch) Name() string { return p.name }

func (p Pitch) Octave() int { return p.octave }

func (p Pitch) String() string {
	return p.name + strconv.Itoa(p.octave)
}

// Semitone returns the pitch's semitone number. B#4 and Cb4 land in the
// neighboring octaves' numbers, as spelled.
func (p Pitch) Semitone() int {
	return (p.octave+1)*SemitonesPerOctave + classes[p.name]
}

// Transpose shifts the pitch by a signed number of semitones and respells
// the result. It is a pure function of (semitones, spelling preference).
func (p Pitch) Transpose(semitones int, preferFlats bool) Pitch {
	return FromSemitone(p.Semitone()+semitones, preferFlats)
}

// Compare orders pitches by semitone number.
func (p Pitch) Compare(q Pitch) int {
	return p.Semitone() - q.Semitone()
}
