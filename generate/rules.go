package generate

import "github.com/jsphweid/partgen/model"

type ruleKind int

const (
	kindCopy ruleKind = iota
	kindOctaveShift
	kindMerge
)

// source names one input of a derivation. Generated sources are resolved
// from parts derived earlier in the same pass, never from the incoming
// score. Aliases cover the name variants recognition is known to produce.
type source struct {
	name      string
	generated bool
	aliases   []string
}

func fromScore(name string, aliases ...string) source {
	return source{name: name, aliases: append([]string{name}, aliases...)}
}

func fromGenerated(name string) source {
	return source{name: name, generated: true}
}

// rule is one row of the derivation table: what to produce, how, and from
// which sources in priority order. Keeping the rows as tagged variants keeps
// the ordering concerns apart from how any one row computes its result.
type rule struct {
	output  string
	kind    ruleKind
	sources []source
	target  string     // catalog instrument assigned to the output part
	octaves int        // kindOctaveShift only
	clef    model.Clef // forced clef; empty means the target's default
}

// The derivation table. Row order is a topological order of the
// generated-part dependencies: Flute 2 and Flute 3 come before Oboe and
// Viola, and Tuba comes before the Eb Baritone Sax merge.
var derivations = []rule{
	{
		output: "Flute 2",
		kind:   kindMerge,
		sources: []source{
			fromScore("2nd Bb Clarinet", "2nd Clarinet"),
			fromScore("2nd Bb Trumpet", "2nd Trumpet"),
			fromScore("2nd Eb Alto Saxophone", "2nd Alto Sax", "2nd Eb Alto Sax"),
			fromScore("2nd Trombone", "2nd C Trombone", "Trombone 2"),
		},
		target: "2nd C Flute",
		clef:   model.TrebleClef,
	},
	{
		output: "Flute 3",
		kind:   kindMerge,
		sources: []source{
			fromScore("3rd Bb Clarinet", "3rd Clarinet"),
			fromScore("3rd Bb Trumpet", "3rd Trumpet"),
			fromScore("3rd Eb Alto Saxophone", "3rd Alto Sax", "3rd Eb Alto Sax"),
			fromScore("Bb Tenor Saxophone", "Tenor Sax", "Bb Tenor Sax"),
		},
		target: "3rd C Flute",
		clef:   model.TrebleClef,
	},
	{
		output:  "Oboe",
		kind:    kindCopy,
		sources: []source{fromGenerated("Flute 2")},
		target:  "Oboe",
	},
	{
		output:  "Violin",
		kind:    kindOctaveShift,
		sources: []source{fromScore("C Flute", "C Flute 1", "Flute 1", "1st C Flute")},
		target:  "Violin",
		octaves: -1,
		clef:    model.TrebleClef,
	},
	{
		output:  "Viola",
		kind:    kindOctaveShift,
		sources: []source{fromGenerated("Flute 3")},
		target:  "Viola",
		octaves: -1,
		clef:    model.TrebleClef,
	},
	{
		output:  "Cello",
		kind:    kindCopy,
		sources: []source{fromScore("1st Trombone", "1st C Trombone", "Trombone 1")},
		target:  "Cello",
	},
	{
		output:  "Bassoon",
		kind:    kindCopy,
		sources: []source{fromScore("2nd Trombone", "2nd C Trombone", "Trombone 2")},
		target:  "Bassoon",
	},
	{
		output: "Tuba",
		kind:   kindOctaveShift,
		sources: []source{
			fromScore("Baritone (Bass Clef)", "Baritone B.C.", "Baritone BC", "Euphonium"),
		},
		target:  "C Tuba",
		octaves: -1,
		clef:    model.BassClef,
	},
	{
		output:  "Eb Alto Clarinet",
		kind:    kindCopy,
		sources: []source{fromScore("3rd Eb Alto Saxophone", "3rd Alto Sax", "3rd Eb Alto Sax")},
		target:  "Eb Alto Clarinet",
	},
	{
		output: "Eb Baritone Saxophone",
		kind:   kindMerge,
		sources: []source{
			fromScore("Baritone (Treble Clef)", "Baritone T.C.", "Baritone TC", "Bb Baritone TC"),
			fromScore("Baritone (Bass Clef)", "Baritone B.C.", "Baritone BC", "Euphonium"),
			fromGenerated("Tuba"),
		},
		target: "Eb Baritone Saxophone",
		clef:   model.TrebleClef,
	},
}
