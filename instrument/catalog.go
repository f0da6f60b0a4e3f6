package instrument

import "github.com/jsphweid/partgen/model"

// The standard concert-band catalog, following the ranges used by the
// recognition pipeline. Ranges are concert pitch and advisory.
var (
	CFlute = model.Descriptor{
		Name: "C Flute", ShortName: "Fl.", Clef: model.TrebleClef,
		Transposition: model.IntervalNone, RangeLow: "C4", RangeHigh: "C7",
	}
	CFlute2 = model.Descriptor{
		Name: "2nd C Flute", ShortName: "Fl. 2", Clef: model.TrebleClef,
		Transposition: model.IntervalNone, RangeLow: "C4", RangeHigh: "C7", PartNumber: 2,
	}
	CFlute3 = model.Descriptor{
		Name: "3rd C Flute", ShortName: "Fl. 3", Clef: model.TrebleClef,
		Transposition: model.IntervalNone, RangeLow: "C4", RangeHigh: "C7", PartNumber: 3,
	}
	CPiccolo = model.Descriptor{
		Name: "C Piccolo", ShortName: "Picc.", Clef: model.TrebleClef,
		Transposition: model.IntervalNone, RangeLow: "C5", RangeHigh: "C8",
	}
	Oboe = model.Descriptor{
		Name: "Oboe", ShortName: "Ob.", Clef: model.TrebleClef,
		Transposition: model.IntervalNone, RangeLow: "B3", RangeHigh: "A6",
	}
	Bassoon = model.Descriptor{
		Name: "Bassoon", ShortName: "Bsn.", Clef: model.BassClef,
		Transposition: model.IntervalNone, RangeLow: "B1", RangeHigh: "E5",
	}

	BbClarinet1 = model.Descriptor{
		Name: "1st Bb Clarinet", ShortName: "Cl. 1", Clef: model.TrebleClef,
		Transposition: model.IntervalBbDown, RangeLow: "D3", RangeHigh: "C7", PartNumber: 1,
	}
	BbClarinet2 = model.Descriptor{
		Name: "2nd Bb Clarinet", ShortName: "Cl. 2", Clef: model.TrebleClef,
		Transposition: model.IntervalBbDown, RangeLow: "D3", RangeHigh: "C7", PartNumber: 2,
	}
	BbClarinet3 = model.Descriptor{
		Name: "3rd Bb Clarinet", ShortName: "Cl. 3", Clef: model.TrebleClef,
		Transposition: model.IntervalBbDown, RangeLow: "D3", RangeHigh: "C7", PartNumber: 3,
	}
	EbAltoClarinet = model.Descriptor{
		Name: "Eb Alto Clarinet", ShortName: "A. Cl.", Clef: model.TrebleClef,
		Transposition: model.IntervalEbDown, RangeLow: "E2", RangeHigh: "C6",
	}
	BbBassClarinet = model.Descriptor{
		Name: "Bb Bass Clarinet", ShortName: "B. Cl.", Clef: model.TrebleClef,
		Transposition: model.IntervalBbDownOctave, RangeLow: "D2", RangeHigh: "F5",
	}

	BbSopranoSax = model.Descriptor{
		Name: "Bb Soprano Saxophone", ShortName: "S. Sax", Clef: model.TrebleClef,
		Transposition: model.IntervalBbDown, RangeLow: "A3", RangeHigh: "E6",
	}
	EbAltoSax1 = model.Descriptor{
		Name: "1st Eb Alto Saxophone", ShortName: "A. Sax 1", Clef: model.TrebleClef,
		Transposition: model.IntervalEbDown, RangeLow: "D3", RangeHigh: "A5", PartNumber: 1,
	}
	EbAltoSax2 = model.Descriptor{
		Name: "2nd Eb Alto Saxophone", ShortName: "A. Sax 2", Clef: model.TrebleClef,
		Transposition: model.IntervalEbDown, RangeLow: "D3", RangeHigh: "A5", PartNumber: 2,
	}
	EbAltoSax3 = model.Descriptor{
		Name: "3rd Eb Alto Saxophone", ShortName: "A. Sax 3", Clef: model.TrebleClef,
		Transposition: model.IntervalEbDown, RangeLow: "D3", RangeHigh: "A5", PartNumber: 3,
	}
	BbTenorSax = model.Descriptor{
		Name: "Bb Tenor Saxophone", ShortName: "T. Sax", Clef: model.TrebleClef,
		Transposition: model.IntervalBbDownOctave, RangeLow: "A2", RangeHigh: "E5",
	}
	EbBaritoneSax = model.Descriptor{
		Name: "Eb Baritone Saxophone", ShortName: "Bari. Sax", Clef: model.TrebleClef,
		Transposition: model.IntervalEbDown, RangeLow: "D2", RangeHigh: "A4",
	}

	BbTrumpet1 = model.Descriptor{
		Name: "1st Bb Trumpet", ShortName: "Tpt. 1", Clef: model.TrebleClef,
		Transposition: model.IntervalBbDown, RangeLow: "E3", RangeHigh: "C6", PartNumber: 1,
	}
	BbTrumpet2 = model.Descriptor{
		Name: "2nd Bb Trumpet", ShortName: "Tpt. 2", Clef: model.TrebleClef,
		Transposition: model.IntervalBbDown, RangeLow: "E3", RangeHigh: "C6", PartNumber: 2,
	}
	BbTrumpet3 = model.Descriptor{
		Name: "3rd Bb Trumpet", ShortName: "Tpt. 3", Clef: model.TrebleClef,
		Transposition: model.IntervalBbDown, RangeLow: "E3", RangeHigh: "C6", PartNumber: 3,
	}
	FFrenchHorn1 = model.Descriptor{
		Name: "1st F French Horn", ShortName: "Hn. 1", Clef: model.TrebleClef,
		Transposition: model.IntervalFDown, RangeLow: "B2", RangeHigh: "F5", PartNumber: 1,
	}
	FFrenchHorn2 = model.Descriptor{
		Name: "2nd F French Horn", ShortName: "Hn. 2", Clef: model.TrebleClef,
		Transposition: model.IntervalFDown, RangeLow: "B2", RangeHigh: "F5", PartNumber: 2,
	}

	Trombone1 = model.Descriptor{
		Name: "1st Trombone", ShortName: "Tbn. 1", Clef: model.BassClef,
		Transposition: model.IntervalNone, RangeLow: "E2", RangeHigh: "F5", PartNumber: 1,
	}
	Trombone2 = model.Descriptor{
		Name: "2nd Trombone", ShortName: "Tbn. 2", Clef: model.BassClef,
		Transposition: model.IntervalNone, RangeLow: "E2", RangeHigh: "F5", PartNumber: 2,
	}
	Trombone3 = model.Descriptor{
		Name: "3rd Trombone", ShortName: "Tbn. 3", Clef: model.BassClef,
		Transposition: model.IntervalNone, RangeLow: "E2", RangeHigh: "F5", PartNumber: 3,
	}
	BaritoneTC = model.Descriptor{
		Name: "Baritone (Treble Clef)", ShortName: "Bar.", Clef: model.TrebleClef,
		Transposition: model.IntervalBbDownOctave, RangeLow: "E2", RangeHigh: "B4",
	}
	BaritoneBC = model.Descriptor{
		Name: "Baritone (Bass Clef)", ShortName: "Bar.", Clef: model.BassClef,
		Transposition: model.IntervalNone, RangeLow: "E2", RangeHigh: "B4",
	}
	Euphonium = model.Descriptor{
		Name: "Euphonium", ShortName: "Euph.", Clef: model.BassClef,
		Transposition: model.IntervalNone, RangeLow: "E2", RangeHigh: "B4",
	}
	CTuba = model.Descriptor{
		Name: "C Tuba", ShortName: "Tuba", Clef: model.BassClef,
		Transposition: model.IntervalNone, RangeLow: "E1", RangeHigh: "F4",
	}
	BbTuba = model.Descriptor{
		Name: "Bb Tuba", ShortName: "Tuba", Clef: model.TrebleClef,
		Transposition: model.IntervalBbDownOctave, RangeLow: "D1", RangeHigh: "F4",
	}

	Percussion = model.Descriptor{
		Name: "Percussion", ShortName: "Perc.", Clef: model.TrebleClef,
		Transposition: model.IntervalNone, RangeLow: "C3", RangeHigh: "C6",
	}

	Violin = model.Descriptor{
		Name: "Violin", ShortName: "Vln.", Clef: model.TrebleClef,
		Transposition: model.IntervalNone, RangeLow: "G3", RangeHigh: "A7",
	}
	// viola parts here stay in treble clef; alto clef is out of scope
	Viola = model.Descriptor{
		Name: "Viola", ShortName: "Vla.", Clef: model.TrebleClef,
		Transposition: model.IntervalNone, RangeLow: "C3", RangeHigh: "E6",
	}
	Cello = model.Descriptor{
		Name: "Cello", ShortName: "Vc.", Clef: model.BassClef,
		Transposition: model.IntervalNone, RangeLow: "C2", RangeHigh: "C6",
	}
)

// Default returns the registry over the full built-in catalog.
func Default() Registry {
	return NewRegistry(
		CPiccolo, CFlute, CFlute2, CFlute3, Oboe, Bassoon,
		BbClarinet1, BbClarinet2, BbClarinet3, EbAltoClarinet, BbBassClarinet,
		BbSopranoSax, EbAltoSax1, EbAltoSax2, EbAltoSax3, BbTenorSax, EbBaritoneSax,
		BbTrumpet1, BbTrumpet2, BbTrumpet3, FFrenchHorn1, FFrenchHorn2,
		Trombone1, Trombone2, Trombone3, BaritoneTC, BaritoneBC, Euphonium,
		CTuba, BbTuba, Percussion,
		Violin, Viola, Cello,
	)
}
