package model

// ScoreDocument is the serializable form of a multi-part score. Instruments
// carries the descriptor of every instrument the parts reference so a saved
// document round-trips without consulting any particular registry.
type ScoreDocument struct {
	Title       string                `yaml:"title" json:"title"`
	Composer    string                `yaml:"composer" json:"composer"`
	Instruments map[string]Descriptor `yaml:"instruments,omitempty" json:"instruments,omitempty"`
	Parts       []Part                `yaml:"parts" json:"parts"`
}
