// Package quiz generates multiple-choice drills over a dictionary.
//
// A Run is a shuffled snapshot of the dictionary's pairs with a cursor.
// The drill never completes: when the cursor consumes the whole sequence
// the pairs are reshuffled and the cursor resets, so every pass shows
// each word exactly once in a fresh order.
package quiz

import (
	"errors"
	"math/rand"

	"polyglot/internal/domain"
)

// MinWords is the minimum dictionary size required to start a quiz
const MinWords = 5

// maxDistractors caps the number of wrong options per question
const maxDistractors = 4

// ErrNotEnoughWords is returned when the dictionary has fewer than
// MinWords pairs after applying the direction
var ErrNotEnoughWords = errors.New("dictionary has not enough words for a quiz")

// Marks used to annotate graded answer options
const (
	MarkCorrect = "✅ "
	MarkWrong   = "❌ "
)

// Run is a transient quiz over one dictionary. It lives only inside the
// user's session and is never persisted.
type Run struct {
	DictName string

	pairs domain.Words
	index int
	rng   *rand.Rand

	// current question
	Word     string
	Correct  string
	Options  []string
	Answered bool
}

// Start builds a run from a dictionary snapshot. With reversed set the
// key/value sides are swapped first. rng may be nil to use the global
// math/rand source.
func Start(d domain.Dictionary, reversed bool, rng *rand.Rand) (*Run, error) {
	name := d.Name
	words := d.Words
	if reversed {
		name = d.ReversedName()
		words = words.Reversed()
	}

	if len(words) < MinWords {
		return nil, ErrNotEnoughWords
	}

	r := &Run{
		DictName: name,
		pairs:    append(domain.Words{}, words...),
		rng:      rng,
	}
	r.shufflePairs()
	r.question()
	return r, nil
}

// Index returns the current cursor position within the pass
func (r *Run) Index() int {
	return r.index
}

// Len returns the number of pairs in the run
func (r *Run) Len() int {
	return len(r.pairs)
}

// Next advances the cursor and builds the next question. A completed
// pass reshuffles the pairs and restarts from the beginning.
func (r *Run) Next() {
	r.index++
	r.question()
}

// Grade compares the chosen option against the recorded correct answer
// and returns the option labels annotated for re-display: the correct
// answer gets a check mark, a wrong chosen one gets a cross, the rest
// stay as they are.
func (r *Run) Grade(chosen string) (marked []string, correct bool) {
	r.Answered = true
	correct = chosen == r.Correct

	marked = make([]string, 0, len(r.Options))
	for _, opt := range r.Options {
		switch {
		case opt == r.Correct:
			marked = append(marked, MarkCorrect+opt)
		case opt == chosen:
			marked = append(marked, MarkWrong+opt)
		default:
			marked = append(marked, opt)
		}
	}
	return marked, correct
}

// question builds the question at the current cursor
func (r *Run) question() {
	if r.index >= len(r.pairs) {
		r.shufflePairs()
		r.index = 0
	}

	pair := r.pairs[r.index]
	r.Word = pair.Word
	r.Correct = pair.Translation
	r.Answered = false

	options := append(r.distractors(pair.Translation), pair.Translation)
	r.shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	r.Options = options
}

// distractors samples up to maxDistractors distinct translations other
// than the correct one, without replacement
func (r *Run) distractors(correct string) []string {
	seen := map[string]bool{correct: true}
	candidates := make([]string, 0, len(r.pairs))
	for _, p := range r.pairs {
		if !seen[p.Translation] {
			seen[p.Translation] = true
			candidates = append(candidates, p.Translation)
		}
	}

	r.shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > maxDistractors {
		candidates = candidates[:maxDistractors]
	}
	return candidates
}

func (r *Run) shufflePairs() {
	r.shuffle(len(r.pairs), func(i, j int) {
		r.pairs[i], r.pairs[j] = r.pairs[j], r.pairs[i]
	})
}

func (r *Run) shuffle(n int, swap func(i, j int)) {
	if r.rng != nil {
		r.rng.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}
