package instrument

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/partgen/model"
)

func TestLookupExactName(t *testing.T) {
	reg := Default()
	d, ok := reg.Lookup("2nd Bb Clarinet")
	assert.True(t, ok)
	assert.Equal(t, "2nd Bb Clarinet", d.Name)
	assert.Equal(t, -2, d.Transposition.Semitones)
}

func TestLookupNormalizesAccidentalsAndCase(t *testing.T) {
	reg := Default()
	d, ok := reg.Lookup("2nd B♭ clarinet")
	assert.True(t, ok)
	assert.Equal(t, "2nd Bb Clarinet", d.Name)
}

func TestLookupByRoleVariants(t *testing.T) {
	reg := Default()
	cases := map[string]string{
		"2nd Clarinet":           "2nd Bb Clarinet",
		"Tenor Sax":              "Bb Tenor Saxophone",
		"2nd Alto Sax":           "2nd Eb Alto Saxophone",
		"Tuba":                   "C Tuba",
		"Baritone (Bass Clef)":   "Baritone (Bass Clef)",
		"Baritone (Treble Clef)": "Baritone (Treble Clef)",
		"C Flute 1":              "C Flute",
	}
	for query, want := range cases {
		t.Run(query, func(t *testing.T) {
			d, ok := reg.Lookup(query)
			assert.True(t, ok)
			assert.Equal(t, want, d.Name)
		})
	}
}

func TestLookupMiss(t *testing.T) {
	reg := Default()
	_, ok := reg.Lookup("Theremin")
	assert.False(t, ok)

	_, err := reg.Resolve("Theremin")
	var unresolved *UnresolvedError
	assert.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "Theremin", unresolved.Name)
}

func TestReducedCatalogSubstitution(t *testing.T) {
	reg := NewRegistry(CFlute, BbClarinet2)
	assert.Equal(t, 2, reg.Len())

	_, ok := reg.Lookup("Oboe")
	assert.False(t, ok)

	_, ok = reg.Lookup("2nd Clarinet")
	assert.True(t, ok)
}

func TestWithLeavesReceiverUntouched(t *testing.T) {
	base := NewRegistry(CFlute)
	extended := base.With(Oboe)

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, extended.Len())
	_, ok := base.Lookup("Oboe")
	assert.False(t, ok)
}

func TestMatchesName(t *testing.T) {
	assert := assert.New(t)
	assert.True(MatchesName("2nd B♭ Clarinet", "2nd Clarinet"))
	assert.True(MatchesName("Bb Tenor Saxophone", "Tenor Sax"))
	assert.False(MatchesName("2nd Bb Clarinet", "3rd Clarinet"))
	assert.False(MatchesName("Baritone (Treble Clef)", "Baritone B.C."))
	assert.False(MatchesName("2nd Bb Clarinet", ""))
}

func TestLoadCatalog(t *testing.T) {
	contents := `
- name: Garden Hose
  short_name: Hose
  clef: G
  transposition: {semitones: -2, prefer_flats: true}
  range_low: C3
  range_high: C5
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0666))

	reg, err := LoadCatalog(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	d, ok := reg.Lookup("Garden Hose")
	assert.True(t, ok)
	assert.Equal(t, model.TrebleClef, d.Clef)
	assert.Equal(t, -2, d.Transposition.Semitones)
}

func TestLoadCatalogRejectsBadClef(t *testing.T) {
	contents := `
- name: Viola
  short_name: Vla.
  clef: C
  transposition: {semitones: 0}
  range_low: C3
  range_high: E6
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0666))

	_, err := LoadCatalog(path)
	assert.Error(t, err)
}
