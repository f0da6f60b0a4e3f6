// Package merge combines several concert-pitch parts into one by picking,
// measure by measure, the candidate with the most musical activity.
package merge

import (
	"github.com/jsphweid/partgen/model"
	"github.com/jsphweid/partgen/util"
)

// Activity counts the sounding notes in a measure. Rests contribute nothing.
// It is the proxy for musical presence when choosing among candidates.
func Activity(m model.Measure) int {
	count := 0
	for _, ev := range m {
		if !ev.Rest {
			count++
		}
	}
	return count
}

// SelectBest picks the strictly most active measure. Candidates must already
// be in the caller's priority order: on equal activity the earlier candidate
// wins, and only a strictly higher score displaces it. Nil for no candidates.
func SelectBest(candidates []model.Measure) model.Measure {
	if len(candidates) == 0 {
		return nil
	}
	best := candidates[0]
	bestScore := Activity(best)
	for _, c := range candidates[1:] {
		if score := Activity(c); score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

// Parts merges the sources, in priority order, into a single part. The
// output spans the longest source; at indexes where a source has ended it
// simply drops out of the candidate set, and an index no source reaches
// becomes a full-measure rest so the measure count never shrinks. The result
// carries no instrument assignment of its own.
func Parts(sources []model.Part) model.Part {
	var out model.Part
	if len(sources) == 0 {
		return out
	}
	out.TimeSignature = sources[0].TimeSignature

	numMeasures := 0
	for _, s := range sources {
		numMeasures = util.Max(numMeasures, len(s.Measures))
	}

	out.Measures = make([]model.Measure, numMeasures)
	for i := 0; i < numMeasures; i++ {
		var candidates []model.Measure
		for _, s := range sources {
			if i < len(s.Measures) {
				candidates = append(candidates, s.Measures[i])
			}
		}
		best := SelectBest(candidates)
		if best == nil {
			best = RestMeasure(out.TimeSignature)
		}
		out.Measures[i] = append(model.Measure(nil), best...)
	}
	return out
}

// RestMeasure builds a full-duration rest for the given time signature.
func RestMeasure(ts model.TimeSignature) model.Measure {
	return model.Measure{{Rest: true, Duration: ts.Beats()}}
}
