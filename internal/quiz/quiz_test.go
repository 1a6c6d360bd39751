package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"polyglot/internal/domain"
)

func testDict() domain.Dictionary {
	return domain.Dictionary{
		Name: "🇬🇧 English ➡️ 🇪🇸 Spanish",
		Words: domain.Words{
			{Word: "cat", Translation: "gato"},
			{Word: "dog", Translation: "perro"},
			{Word: "bird", Translation: "pájaro"},
			{Word: "fish", Translation: "pez"},
			{Word: "horse", Translation: "caballo"},
			{Word: "cow", Translation: "vaca"},
		},
	}
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func correctFor(d domain.Dictionary, word string) string {
	translation, _ := d.Words.Get(word)
	return translation
}

func TestStart_NotEnoughWords(t *testing.T) {
	d := domain.Dictionary{
		Name: "tiny",
		Words: domain.Words{
			{Word: "cat", Translation: "gato"},
			{Word: "dog", Translation: "perro"},
			{Word: "bird", Translation: "pájaro"},
			{Word: "fish", Translation: "pez"},
		},
	}

	_, err := Start(d, false, testRNG())
	assert.ErrorIs(t, err, ErrNotEnoughWords)
}

func TestStart_Forward(t *testing.T) {
	d := testDict()

	run, err := Start(d, false, testRNG())
	assert.NoError(t, err)

	assert.Equal(t, d.Name, run.DictName)
	assert.Equal(t, 6, run.Len())
	assert.Equal(t, 0, run.Index())
	assert.False(t, run.Answered)

	// The question word comes from the dictionary and the correct
	// answer is its translation
	assert.Equal(t, correctFor(d, run.Word), run.Correct)
	assert.Contains(t, run.Options, run.Correct)

	// Five options: the correct answer plus four distinct distractors
	assert.Len(t, run.Options, 5)
	seen := map[string]bool{}
	for _, opt := range run.Options {
		assert.False(t, seen[opt], "duplicate option %q", opt)
		seen[opt] = true
	}
}

func TestStart_ReversedBelowMinAfterMerge(t *testing.T) {
	// Two words sharing a translation merge into one reversed entry,
	// leaving 4 pairs: too few for a quiz even though the forward
	// direction has 5
	d := domain.Dictionary{
		Name: "🇬🇧 English ➡️ 🇪🇸 Spanish",
		Words: domain.Words{
			{Word: "cat", Translation: "gato"},
			{Word: "kitty", Translation: "gato"},
			{Word: "dog", Translation: "perro"},
			{Word: "bird", Translation: "pájaro"},
			{Word: "fish", Translation: "pez"},
		},
	}

	_, err := Start(d, false, testRNG())
	assert.NoError(t, err)

	_, err = Start(d, true, testRNG())
	assert.ErrorIs(t, err, ErrNotEnoughWords)
}

func TestStart_Reversed(t *testing.T) {
	d := testDict()

	run, err := Start(d, true, testRNG())
	assert.NoError(t, err)

	assert.Equal(t, "🇪🇸 Spanish ➡️ 🇬🇧 English", run.DictName)

	// Direction swapped: questions are translations, answers are words
	key, ok := d.Words.KeyOf(run.Word)
	assert.True(t, ok)
	assert.Equal(t, key, run.Correct)

	// The snapshot belongs to the run, the dictionary is untouched
	assert.Equal(t, "cat", d.Words[0].Word)
}

func TestStart_FewerOptionsThanCap(t *testing.T) {
	d := domain.Dictionary{
		Name: "five",
		Words: domain.Words{
			{Word: "one", Translation: "uno"},
			{Word: "two", Translation: "dos"},
			{Word: "three", Translation: "tres"},
			{Word: "four", Translation: "cuatro"},
			{Word: "five", Translation: "cinco"},
		},
	}

	run, err := Start(d, false, testRNG())
	assert.NoError(t, err)
	assert.Len(t, run.Options, 5)
}

func TestNext_EachWordOncePerPass(t *testing.T) {
	run, err := Start(testDict(), false, testRNG())
	assert.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < run.Len(); i++ {
		assert.False(t, seen[run.Word], "word %q repeated within a pass", run.Word)
		seen[run.Word] = true
		run.Next()
	}
	assert.Len(t, seen, run.Len())
}

func TestNext_WrapsAndContinues(t *testing.T) {
	run, err := Start(testDict(), false, testRNG())
	assert.NoError(t, err)

	for i := 0; i < run.Len()-1; i++ {
		run.Next()
	}
	assert.Equal(t, run.Len()-1, run.Index())

	// Stepping past the last question starts a fresh pass
	run.Next()
	assert.Equal(t, 0, run.Index())
	assert.NotEmpty(t, run.Word)
	assert.Contains(t, run.Options, run.Correct)
	assert.False(t, run.Answered)
}

func TestGrade(t *testing.T) {
	run, err := Start(testDict(), false, testRNG())
	assert.NoError(t, err)

	t.Run("correct answer", func(t *testing.T) {
		marked, correct := run.Grade(run.Correct)
		assert.True(t, correct)
		assert.True(t, run.Answered)
		assert.Len(t, marked, len(run.Options))
		assert.Contains(t, marked, MarkCorrect+run.Correct)
		for _, m := range marked {
			assert.NotContains(t, m, MarkWrong)
		}
	})

	t.Run("wrong answer", func(t *testing.T) {
		var wrong string
		for _, opt := range run.Options {
			if opt != run.Correct {
				wrong = opt
				break
			}
		}

		marked, correct := run.Grade(wrong)
		assert.False(t, correct)
		assert.Contains(t, marked, MarkCorrect+run.Correct)
		assert.Contains(t, marked, MarkWrong+wrong)
	})
}

func TestGrade_MarksKeepOptionOrder(t *testing.T) {
	run, err := Start(testDict(), false, testRNG())
	assert.NoError(t, err)

	marked, _ := run.Grade(run.Correct)
	for i, opt := range run.Options {
		if opt == run.Correct {
			assert.Equal(t, MarkCorrect+opt, marked[i])
		} else {
			assert.Equal(t, opt, marked[i])
		}
	}
}
