package midifile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsphweid/partgen/instrument"
	"github.com/jsphweid/partgen/model"
	"github.com/jsphweid/partgen/sample"
	"github.com/jsphweid/partgen/score"
)

func TestExportWritesAStandardMidiFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mid")

	require.NoError(t, Export(path, sample.Score(), instrument.Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 14)
	assert.Equal(t, "MThd", string(data[:4]))
}

func TestExportRejectsUnparseablePitches(t *testing.T) {
	s := score.New("bad", "")
	require.NoError(t, s.AddPart(model.Part{
		Name:       "C Flute",
		Instrument: "C Flute",
		Clef:       model.TrebleClef,
		Measures:   []model.Measure{{{Pitch: "H9", Duration: 4}}},
	}))

	err := Export(filepath.Join(t.TempDir(), "out.mid"), s, instrument.Default())
	assert.Error(t, err)
}
