package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsphweid/partgen/instrument"
	"github.com/jsphweid/partgen/model"
)

func measures(n int) []model.Measure {
	out := make([]model.Measure, n)
	for i := range out {
		out[i] = model.Measure{{Pitch: "C4", Duration: 4}}
	}
	return out
}

func TestAddPartRejectsDuplicates(t *testing.T) {
	s := New("test", "")
	require.NoError(t, s.AddPart(model.Part{Name: "C Flute"}))

	err := s.AddPart(model.Part{Name: "C Flute"})
	assert.ErrorIs(t, err, ErrDuplicatePart)
	assert.Contains(t, err.Error(), `"C Flute"`)
	assert.Equal(t, 1, s.Len())
}

func TestAddPartRejectsEmptyName(t *testing.T) {
	s := New("test", "")
	assert.Error(t, s.AddPart(model.Part{}))
}

func TestPartsAreKeptInInsertionOrder(t *testing.T) {
	s := New("test", "")
	names := []string{"Oboe", "C Flute", "1st Trombone"}
	for _, n := range names {
		require.NoError(t, s.AddPart(model.Part{Name: n}))
	}
	assert.Equal(t, names, s.PartNames())

	p, ok := s.Part("C Flute")
	assert.True(t, ok)
	assert.Equal(t, "C Flute", p.Name)

	_, ok = s.Part("Bassoon")
	assert.False(t, ok)
}

func TestNumMeasuresIsTheLongestPart(t *testing.T) {
	s := New("test", "")
	require.NoError(t, s.AddPart(model.Part{Name: "a", Measures: measures(8)}))
	require.NoError(t, s.AddPart(model.Part{Name: "b", Measures: measures(12)}))
	assert.Equal(t, 12, s.NumMeasures())
}

func TestValidateNamesEveryPart(t *testing.T) {
	s := New("test", "")
	require.NoError(t, s.AddPart(model.Part{Name: "a", Measures: measures(8)}))
	require.NoError(t, s.AddPart(model.Part{Name: "b", Measures: measures(8)}))
	assert.NoError(t, s.Validate())

	require.NoError(t, s.AddPart(model.Part{Name: "c", Measures: measures(9)}))
	err := s.Validate()
	require.Error(t, err)

	var mismatch *MeasureCountError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, map[string]int{"a": 8, "b": 8, "c": 9}, mismatch.Counts)
	assert.Equal(t, "measure counts disagree: a=8, b=8, c=9", err.Error())
}

func TestCopyIsDeep(t *testing.T) {
	s := New("March", "Trad.")
	require.NoError(t, s.AddPart(model.Part{Name: "a", Measures: measures(2)}))

	cp := s.Copy()
	cp.Title = "changed"
	cp.Parts()[0].Measures[0][0].Pitch = "G4"

	assert.Equal(t, "March", s.Title)
	orig, _ := s.Part("a")
	assert.Equal(t, "C4", orig.Measures[0][0].Pitch)
}

func TestDocumentRoundTrip(t *testing.T) {
	reg := instrument.Default()
	s := New("March", "Trad.")
	require.NoError(t, s.AddPart(model.Part{
		Name:       "C Flute",
		Instrument: "C Flute",
		Clef:       model.TrebleClef,
		Measures:   measures(4),
	}))
	require.NoError(t, s.AddPart(model.Part{
		Name:       "2nd Bb Clarinet",
		Instrument: "2nd Bb Clarinet",
		Clef:       model.TrebleClef,
		Measures:   measures(4),
	}))

	doc := s.Document(reg.Lookup)
	assert := assert.New(t)
	assert.Equal("March", doc.Title)
	assert.Len(doc.Parts, 2)
	assert.Contains(doc.Instruments, "C Flute")
	assert.Contains(doc.Instruments, "2nd Bb Clarinet")

	back, err := FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(s.PartNames(), back.PartNames())
	assert.Equal(s.Title, back.Title)
	assert.Equal(s.Composer, back.Composer)
}

func TestDocumentSkipsUnknownInstruments(t *testing.T) {
	s := New("test", "")
	require.NoError(t, s.AddPart(model.Part{Name: "Theremin", Instrument: "Theremin"}))

	doc := s.Document(instrument.NewRegistry(instrument.CFlute).Lookup)
	assert.Empty(t, doc.Instruments)
}

func TestFromDocumentRejectsDuplicateNames(t *testing.T) {
	doc := model.ScoreDocument{
		Title: "test",
		Parts: []model.Part{{Name: "a"}, {Name: "a"}},
	}
	_, err := FromDocument(doc)
	assert.ErrorIs(t, err, ErrDuplicatePart)
}
