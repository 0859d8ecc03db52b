// Package state holds the persisted user record and the stores that read
// and write it.
package state

import "slices"

// SchemaVersion is written into every state file.
const SchemaVersion = 1

// Record is the persisted user state. Languages is an ordered set; Bag holds
// the languages not yet drawn in the current cycle.
type Record struct {
	Version   int      `yaml:"version"`
	Username  string   `yaml:"username"`
	Languages []string `yaml:"languages"`
	Bag       []string `yaml:"bag"`
}

// NewRecord builds a fresh record whose bag is a full copy of languages.
// Duplicate languages are dropped, keeping the first occurrence.
func NewRecord(username string, languages []string) *Record {
	langs := dedupe(languages)
	return &Record{
		Version:   SchemaVersion,
		Username:  username,
		Languages: langs,
		Bag:       slices.Clone(langs),
	}
}

// HasLanguage reports whether lang is in the candidate list.
func (r *Record) HasLanguage(lang string) bool {
	return slices.Contains(r.Languages, lang)
}

// AddLanguage appends lang to both the candidate list and the bag.
// It returns false and leaves the record untouched if lang is already listed.
func (r *Record) AddLanguage(lang string) bool {
	if r.HasLanguage(lang) {
		return false
	}
	r.Languages = append(r.Languages, lang)
	r.Bag = append(r.Bag, lang)
	return true
}

// RemoveLanguage drops lang from the candidate list and, if still undrawn,
// from the bag. It returns false if lang was not listed.
func (r *Record) RemoveLanguage(lang string) bool {
	i := slices.Index(r.Languages, lang)
	if i < 0 {
		return false
	}
	r.Languages = slices.Delete(r.Languages, i, i+1)
	if j := slices.Index(r.Bag, lang); j >= 0 {
		r.Bag = slices.Delete(r.Bag, j, j+1)
	}
	return true
}

// Refill replaces the bag with a copy of the candidate list.
func (r *Record) Refill() {
	r.Bag = slices.Clone(r.Languages)
}

// normalize dedupes languages and drops bag entries that are no longer
// listed. Files edited by hand can break both.
func (r *Record) normalize() {
	r.Languages = dedupe(r.Languages)

	// Each language may appear in the bag at most as often as in Languages,
	// which after dedupe means once.
	seen := make(map[string]bool, len(r.Bag))
	bag := make([]string, 0, len(r.Bag))
	for _, lang := range r.Bag {
		if seen[lang] || !r.HasLanguage(lang) {
			continue
		}
		seen[lang] = true
		bag = append(bag, lang)
	}
	r.Bag = bag
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
