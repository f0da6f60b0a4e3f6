package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAndString(t *testing.T) {
	cases := []string{"C4", "F#5", "Bb3", "A0", "G9", "C-1", "Eb2"}
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			p, err := Parse(s)
			assert.NoError(t, err)
			assert.Equal(t, s, p.String())
		})
	}
}

func TestParseUnicodeAccidentals(t *testing.T) {
	assert := assert.New(t)

	p, err := Parse("B♭3")
	assert.NoError(err)
	assert.Equal("Bb3", p.String())

	p, err = Parse("F♯5")
	assert.NoError(err)
	assert.Equal("F#5", p.String())
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "C", "H4", "Cbb4", "4C", "B#"} {
		_, err := Parse(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestSemitoneNumbers(t *testing.T) {
	cases := map[string]int{
		"C4":  60, // middle C
		"Bb3": 58,
		"A#3": 58,
		"F#5": 78,
		"A4":  69,
		"C-1": 0,
		"E1":  28,
		"B#3": 60, // spelled into the next octave's number
		"Cb4": 59,
	}
	for s, want := range cases {
		t.Run(s, func(t *testing.T) {
			assert.Equal(t, want, MustParse(s).Semitone())
		})
	}
}

func TestFromSemitoneSpelling(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Bb3", FromSemitone(58, true).String())
	assert.Equal("A#3", FromSemitone(58, false).String())
	assert.Equal("C4", FromSemitone(60, true).String())
	assert.Equal("C4", FromSemitone(60, false).String())
}

func TestTransposeCrossesOctaves(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Bb3", MustParse("C4").Transpose(-2, true).String())
	assert.Equal("C4", MustParse("Bb3").Transpose(2, true).String())
	assert.Equal("Eb3", MustParse("C4").Transpose(-9, true).String())
	assert.Equal("A5", MustParse("C4").Transpose(21, true).String())
	assert.Equal("C2", MustParse("C4").Transpose(-24, true).String())
}

func TestTransposeIsPure(t *testing.T) {
	p := MustParse("D4")
	for i := 0; i < 3; i++ {
		assert.Equal(t, "C4", p.Transpose(-2, true).String())
	}
	assert.Equal(t, "D4", p.String())
}

func TestCompareOrdersBySemitone(t *testing.T) {
	assert := assert.New(t)
	assert.Negative(MustParse("Bb3").Compare(MustParse("C4")))
	assert.Positive(MustParse("C5").Compare(MustParse("C4")))
	// enharmonic equivalents are the same semitone
	assert.Zero(MustParse("A#3").Compare(MustParse("Bb3")))
}

func TestRoundTripThroughSemitone(t *testing.T) {
	for n := 0; n < 128; n++ {
		name := fmt.Sprintf("semitone %v", n)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, n, FromSemitone(n, true).Semitone())
			assert.Equal(t, n, FromSemitone(n, false).Semitone())
		})
	}
}
