package model

// Clef as it appears on the staff. Only treble and bass are supported.
type Clef string

const (
	TrebleClef Clef = "G"
	BassClef   Clef = "F"
)

// NoteEvent is a single note or rest inside a measure. Duration is measured
// in quarter notes, so a half note is 2 and an eighth note is 0.5.
type NoteEvent struct {
	Rest     bool    `yaml:"rest,omitempty" json:"rest,omitempty"`
	Pitch    string  `yaml:"pitch,omitempty" json:"pitch,omitempty"`
	Duration float64 `yaml:"duration" json:"duration"`
}

type Measure = []NoteEvent

type TimeSignature struct {
	Numerator   int `yaml:"numerator" json:"numerator"`
	Denominator int `yaml:"denominator" json:"denominator"`
}

// Beats returns the capacity of one measure in quarter notes. The zero value
// counts as 4/4.
func (t TimeSignature) Beats() float64 {
	if t.Numerator == 0 || t.Denominator == 0 {
		return 4
	}
	return float64(t.Numerator) * 4 / float64(t.Denominator)
}

// Part is one instrument's line through the piece. Measures are always
// stored in the instrument's written pitch; concert-pitch views are derived
// on demand and never stored back.
type Part struct {
	Name          string        `yaml:"name" json:"name"`
	Instrument    string        `yaml:"instrument" json:"instrument"`
	Clef          Clef          `yaml:"clef" json:"clef"`
	TimeSignature TimeSignature `yaml:"time_signature,omitempty" json:"time_signature,omitempty"`
	Measures      []Measure     `yaml:"measures" json:"measures"`
}

// CopyMeasures returns a deep copy of the part's measures.
func (p Part) CopyMeasures() []Measure {
	measures := make([]Measure, len(p.Measures))
	for i, m := range p.Measures {
		measures[i] = append(Measure(nil), m...)
	}
	return measures
}
