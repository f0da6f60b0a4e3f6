package model

// Interval is the fixed distance between an instrument's written pitch and
// the pitch that actually sounds. Semitones is signed: written + Semitones =
// concert, so a Bb instrument carries -2. PreferFlats picks the enharmonic
// spelling for pitches produced while applying the interval.
type Interval struct {
	Semitones   int  `yaml:"semitones" json:"semitones"`
	PreferFlats bool `yaml:"prefer_flats,omitempty" json:"prefer_flats,omitempty"`
}

// The intervals that actually occur in band writing.
var (
	IntervalNone         = Interval{Semitones: 0}
	IntervalBbDown       = Interval{Semitones: -2, PreferFlats: true}
	IntervalEbDown       = Interval{Semitones: -9, PreferFlats: true}
	IntervalFDown        = Interval{Semitones: -7, PreferFlats: true}
	IntervalBbDownOctave = Interval{Semitones: -14, PreferFlats: true}
)

// Descriptor describes one instrument role. RangeLow/RangeHigh are the
// playable range in concert pitch; they are advisory, notes outside them are
// reported but never rejected.
type Descriptor struct {
	Name          string   `yaml:"name" json:"name"`
	ShortName     string   `yaml:"short_name" json:"short_name"`
	Clef          Clef     `yaml:"clef" json:"clef"`
	Transposition Interval `yaml:"transposition" json:"transposition"`
	RangeLow      string   `yaml:"range_low" json:"range_low"`
	RangeHigh     string   `yaml:"range_high" json:"range_high"`
	PartNumber    int      `yaml:"part_number,omitempty" json:"part_number,omitempty"`
}
