package model

// RangeWarning marks a transposed or shifted note that landed outside its
// instrument's documented range. The note is kept as-is; the warning only
// records where it happened.
type RangeWarning struct {
	Part         string `yaml:"part" json:"part"`
	MeasureIndex int    `yaml:"measure_index" json:"measure_index"`
	Pitch        string `yaml:"pitch" json:"pitch"`
	RangeLow     string `yaml:"range_low" json:"range_low"`
	RangeHigh    string `yaml:"range_high" json:"range_high"`
}

// SkippedPart records a derived part whose entire source list was
// unavailable, so nothing could be generated for it.
type SkippedPart struct {
	Part           string   `yaml:"part" json:"part"`
	MissingSources []string `yaml:"missing_sources" json:"missing_sources"`
}

// UnresolvedInstrument records an instrument name that could not be found in
// the registry. It is fatal only for the part or derivation that needed it.
type UnresolvedInstrument struct {
	Part       string `yaml:"part" json:"part"`
	Instrument string `yaml:"instrument" json:"instrument"`
}

// GenerationReport is returned alongside generated parts. Skipped parts and
// range warnings accumulate here instead of aborting generation.
type GenerationReport struct {
	Generated  []string               `yaml:"generated" json:"generated"`
	Skipped    []SkippedPart          `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Unresolved []UnresolvedInstrument `yaml:"unresolved,omitempty" json:"unresolved,omitempty"`
	Warnings   []RangeWarning         `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

// PieceMetadata is what the metadata table knows about a piece.
type PieceMetadata struct {
	Title    string `json:"title"`
	Composer string `json:"composer"`
	Year     uint   `json:"year,omitempty"`
}
