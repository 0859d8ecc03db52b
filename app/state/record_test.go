package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecordCopiesBag(t *testing.T) {
	rec := NewRecord("ada", []string{"Go", "Rust", "Go", "Python"})

	assert.Equal(t, SchemaVersion, rec.Version)
	assert.Equal(t, []string{"Go", "Rust", "Python"}, rec.Languages)
	assert.Equal(t, rec.Languages, rec.Bag)

	rec.Bag[0] = "changed"
	assert.Equal(t, "Go", rec.Languages[0], "bag must not alias languages")
}

func TestAddLanguageIsIdempotent(t *testing.T) {
	rec := NewRecord("ada", []string{"Go"})

	assert.True(t, rec.AddLanguage("Zig"))
	assert.False(t, rec.AddLanguage("Zig"))

	assert.Equal(t, []string{"Go", "Zig"}, rec.Languages)
	assert.Equal(t, []string{"Go", "Zig"}, rec.Bag)
}

func TestRemoveLanguage(t *testing.T) {
	tests := []struct {
		name      string
		languages []string
		bag       []string
		remove    string
		removed   bool
		wantLangs []string
		wantBag   []string
	}{
		{
			name:      "in both",
			languages: []string{"Go", "Rust", "Python"},
			bag:       []string{"Python", "Go"},
			remove:    "Go",
			removed:   true,
			wantLangs: []string{"Rust", "Python"},
			wantBag:   []string{"Python"},
		},
		{
			name:      "already drawn",
			languages: []string{"Go", "Rust"},
			bag:       []string{"Rust"},
			remove:    "Go",
			removed:   true,
			wantLangs: []string{"Rust"},
			wantBag:   []string{"Rust"},
		},
		{
			name:      "absent",
			languages: []string{"Go"},
			bag:       []string{"Go"},
			remove:    "COBOL",
			removed:   false,
			wantLangs: []string{"Go"},
			wantBag:   []string{"Go"},
		},
		{
			name:      "case sensitive",
			languages: []string{"Go"},
			bag:       []string{"Go"},
			remove:    "go",
			removed:   false,
			wantLangs: []string{"Go"},
			wantBag:   []string{"Go"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &Record{Languages: tc.languages, Bag: tc.bag}
			assert.Equal(t, tc.removed, rec.RemoveLanguage(tc.remove))
			assert.Equal(t, tc.wantLangs, rec.Languages)
			assert.Equal(t, tc.wantBag, rec.Bag)
		})
	}
}

func TestNormalize(t *testing.T) {
	rec := &Record{
		Languages: []string{"Go", "Rust", "Go"},
		Bag:       []string{"Rust", "Perl", "Rust", "Go"},
	}
	rec.normalize()

	assert.Equal(t, []string{"Go", "Rust"}, rec.Languages)
	assert.Equal(t, []string{"Rust", "Go"}, rec.Bag)
}
