// Package instrument holds the static catalog of band and orchestral
// instrument descriptors and the read-only registry used to look them up.
// The registry is a value handed to the transposer and the part generator at
// construction, so tests can substitute a reduced catalog.
package instrument

import (
	"fmt"
	"strings"

	"github.com/jsphweid/partgen/model"
)

// UnresolvedError means a name could not be found in the registry. It is
// fatal only for the single part or derivation that needed the lookup.
type UnresolvedError struct {
	Name string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("instrument not in registry: %q", e.Name)
}

// Registry is an immutable name -> descriptor lookup. Never mutated after
// construction.
type Registry struct {
	byName map[string]model.Descriptor
	names  []string // insertion order
}

func NewRegistry(descs ...model.Descriptor) Registry {
	r := Registry{byName: make(map[string]model.Descriptor, len(descs))}
	for _, d := range descs {
		key := Normalize(d.Name)
		if _, ok := r.byName[key]; !ok {
			r.names = append(r.names, d.Name)
		}
		r.byName[key] = d
	}
	return r
}

// With returns a new registry extended by the given descriptors. The
// receiver is left untouched.
func (r Registry) With(descs ...model.Descriptor) Registry {
	all := make([]model.Descriptor, 0, len(r.names)+len(descs))
	for _, name := range r.names {
		all = append(all, r.byName[Normalize(name)])
	}
	return NewRegistry(append(all, descs...)...)
}

// Lookup finds a descriptor by name. Exact normalized matches win; failing
// that, a catalog name containing the query (or vice versa) is accepted, so
// "Tuba" finds "C Tuba"; as a last resort every token of the query must
// prefix-match a token of the catalog name, so "2nd Clarinet" finds
// "2nd Bb Clarinet" and "Tenor Sax" finds "Bb Tenor Saxophone". Ties go to
// catalog insertion order.
func (r Registry) Lookup(name string) (model.Descriptor, bool) {
	key := Normalize(name)
	if d, ok := r.byName[key]; ok {
		return d, true
	}
	for _, catalogName := range r.names {
		ck := Normalize(catalogName)
		if strings.Contains(ck, key) || strings.Contains(key, ck) {
			return r.byName[ck], true
		}
	}
	for _, catalogName := range r.names {
		ck := Normalize(catalogName)
		if MatchesName(catalogName, name) {
			return r.byName[ck], true
		}
	}
	return model.Descriptor{}, false
}

// MatchesName reports whether a part or instrument name satisfies the query:
// every token of the query must prefix-match some token of the name, in
// order.
func MatchesName(name, query string) bool {
	nameTokens := strings.Fields(Normalize(name))
	queryTokens := strings.Fields(Normalize(query))
	if len(queryTokens) == 0 {
		return false
	}
	i := 0
	for _, qt := range queryTokens {
		found := false
		for ; i < len(nameTokens); i++ {
			if strings.HasPrefix(nameTokens[i], qt) {
				found = true
				i++
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Resolve is Lookup returning *UnresolvedError on a miss.
func (r Registry) Resolve(name string) (model.Descriptor, error) {
	d, ok := r.Lookup(name)
	if !ok {
		return model.Descriptor{}, &UnresolvedError{Name: name}
	}
	return d, nil
}

// Names returns the catalog names in insertion order.
func (r Registry) Names() []string {
	return append([]string(nil), r.names...)
}

func (r Registry) Len() int { return len(r.names) }

// Normalize folds an instrument or part name for matching: lowercase,
// Unicode accidentals to ASCII, punctuation stripped, spacing collapsed.
func Normalize(name string) string {
	s := strings.ToLower(name)
	replacer := strings.NewReplacer(
		"♭", "b", "♯", "#",
		".", "", ",", "", "(", "", ")", "",
	)
	s = replacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
