// Package picker draws the day's language from the record's bag.
package picker

import (
	"errors"
	"math/rand/v2"

	"github.com/Guerrilla-Interactive/advent-of-random/app/state"
)

// ErrEmptyLanguages is returned when there is nothing to draw from.
var ErrEmptyLanguages = errors.New("no languages configured")

// Picker draws languages without replacement. The zero value is not usable;
// create one with New or NewWithRand.
type Picker struct {
	rng *rand.Rand
}

// New returns a Picker seeded from the runtime's random source.
func New() *Picker {
	return NewWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand returns a Picker using rng, which lets tests fix the sequence.
func NewWithRand(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// Rand returns the source the picker draws from, so callers that need
// more randomness in the same run can share it.
func (p *Picker) Rand() *rand.Rand { return p.rng }

// Pick refills the bag from the candidate list when it is empty, shuffles it
// and pops the last element. Every language is drawn once per cycle.
func (p *Picker) Pick(rec *state.Record) (string, error) {
	if len(rec.Bag) == 0 {
		rec.Refill()
	}
	if len(rec.Bag) == 0 {
		return "", ErrEmptyLanguages
	}

	p.rng.Shuffle(len(rec.Bag), func(i, j int) {
		rec.Bag[i], rec.Bag[j] = rec.Bag[j], rec.Bag[i]
	})

	last := len(rec.Bag) - 1
	lang := rec.Bag[last]
	rec.Bag = rec.Bag[:last]
	return lang, nil
}
