// Package midifile renders a completed score to a standard MIDI file, one
// track per part, at sounding pitch. It is a boundary adapter for sequencer
// import; notation-level concerns (layout, beaming, clefs) do not survive
// the format and are not attempted.
package midifile

import (
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/partgen/instrument"
	"github.com/jsphweid/partgen/model"
	"github.com/jsphweid/partgen/pitch"
	"github.com/jsphweid/partgen/score"
	"github.com/jsphweid/partgen/transpose"
	"github.com/jsphweid/partgen/util"
)

const ticksPerQuarter = 960

// Export writes the score as a type-1 SMF. Parts are converted to concert
// pitch through the registry so the file plays at sounding pitch.
func Export(path string, s *score.Score, reg instrument.Registry) error {
	tr := transpose.New(reg)
	concert, err := tr.ScoreToConcert(s)
	if err != nil {
		return err
	}

	mf := smf.New()
	mf.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	for _, p := range concert.Parts() {
		track, err := partTrack(p)
		if err != nil {
			return err
		}
		if err := mf.Add(track); err != nil {
			return fmt.Errorf("could not add track for %q: %w", p.Name, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", path, err)
	}
	defer f.Close()
	if _, err := mf.WriteTo(f); err != nil {
		return fmt.Errorf("could not write %v: %w", path, err)
	}
	return nil
}

// metaText builds a text-style meta message (track name 0x03, instrument
// 0x04). Texts here are short part names, so a single length byte suffices.
func metaText(kind byte, text string) smf.Message {
	if len(text) > 127 {
		text = text[:127]
	}
	data := []byte{0xFF, kind, byte(len(text))}
	return smf.Message(append(data, text...))
}

func partTrack(p model.Part) (smf.Track, error) {
	var track smf.Track
	track.Add(0, metaText(0x03, p.Name))
	track.Add(0, metaText(0x04, p.Instrument))
	ts := p.TimeSignature
	if ts.Numerator == 0 || ts.Denominator == 0 {
		ts = model.TimeSignature{Numerator: 4, Denominator: 4}
	}
	denomLog := uint8(0)
	for v := ts.Denominator; v > 1; v /= 2 {
		denomLog++
	}
	track.Add(0, smf.Message([]byte{0xFF, 0x58, 0x04, byte(ts.Numerator), denomLog, 24, 8}))

	const channel = 0
	const velocity = 90
	var restTicks uint32
	for i, m := range p.Measures {
		for _, ev := range m {
			ticks := uint32(ev.Duration * ticksPerQuarter)
			if ev.Rest {
				restTicks += ticks
				continue
			}
			pt, err := pitch.Parse(ev.Pitch)
			if err != nil {
				return nil, fmt.Errorf("part %q measure %v: %w", p.Name, i, err)
			}
			// MIDI keys are 7 bit; semitone numbers past the edges of the
			// keyboard have to saturate at the wire format
			key := uint8(util.Min(util.Max(pt.Semitone(), 0), 127))
			track.Add(restTicks, midi.NoteOn(channel, key, velocity))
			track.Add(ticks, midi.NoteOff(channel, key))
			restTicks = 0
		}
	}
	track.Close(restTicks)
	return track, nil
}
