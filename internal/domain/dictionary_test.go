package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already normalized",
			input:    "cat",
			expected: "cat",
		},
		{
			name:     "uppercase",
			input:    "CAT",
			expected: "cat",
		},
		{
			name:     "surrounding whitespace",
			input:    "  Cat  ",
			expected: "cat",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestWords_SetGetDelete(t *testing.T) {
	words := Words{}

	words.Set("cat", "gato")
	words.Set("dog", "perro")

	translation, ok := words.Get("cat")
	assert.True(t, ok)
	assert.Equal(t, "gato", translation)

	// Overwriting keeps the position and replaces the translation
	words.Set("cat", "felino")
	translation, ok = words.Get("cat")
	assert.True(t, ok)
	assert.Equal(t, "felino", translation)
	assert.Len(t, words, 2)
	assert.Equal(t, "cat", words[0].Word)

	// Deleting an absent key reports false and changes nothing
	assert.False(t, words.Delete("bird"))
	assert.Len(t, words, 2)

	assert.True(t, words.Delete("cat"))
	assert.Len(t, words, 1)
	_, ok = words.Get("cat")
	assert.False(t, ok)
}

func TestWords_KeyOf(t *testing.T) {
	words := Words{
		{Word: "cat", Translation: "gato"},
		{Word: "kitty", Translation: "gato"},
		{Word: "dog", Translation: "perro"},
	}

	// First match wins for duplicate translations
	key, ok := words.KeyOf("gato")
	assert.True(t, ok)
	assert.Equal(t, "cat", key)

	_, ok = words.KeyOf("chien")
	assert.False(t, ok)
}

func TestWords_Contains(t *testing.T) {
	words := Words{
		{Word: "cat", Translation: "gato"},
	}

	assert.True(t, words.Contains("cat"))
	assert.True(t, words.Contains("gato"))
	assert.False(t, words.Contains("dog"))
}

func TestWords_Reversed(t *testing.T) {
	words := Words{
		{Word: "cat", Translation: "gato"},
		{Word: "dog", Translation: "perro"},
	}

	reversed := words.Reversed()

	assert.Equal(t, Words{
		{Word: "gato", Translation: "cat"},
		{Word: "perro", Translation: "dog"},
	}, reversed)

	// Original untouched
	assert.Equal(t, "cat", words[0].Word)
}

func TestWords_ReversedMergesDuplicateTranslations(t *testing.T) {
	words := Words{
		{Word: "cat", Translation: "gato"},
		{Word: "kitty", Translation: "gato"},
		{Word: "dog", Translation: "perro"},
	}

	// Duplicate translations collapse into one key: last pair wins,
	// the entry keeps the first pair's position
	assert.Equal(t, Words{
		{Word: "gato", Translation: "kitty"},
		{Word: "perro", Translation: "dog"},
	}, words.Reversed())
}

func TestWords_JSONRoundTrip(t *testing.T) {
	words := Words{
		{Word: "zebra", Translation: "cebra"},
		{Word: "apple", Translation: "manzana"},
		{Word: "cat", Translation: "gato"},
	}

	data, err := json.Marshal(words)
	assert.NoError(t, err)
	assert.Equal(t, `{"zebra":"cebra","apple":"manzana","cat":"gato"}`, string(data))

	var decoded Words
	err = json.Unmarshal(data, &decoded)
	assert.NoError(t, err)

	// Insertion order survives the round trip
	assert.Equal(t, words, decoded)
}

func TestWords_UnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "array instead of object",
			input: `["cat","gato"]`,
		},
		{
			name:  "non-string value",
			input: `{"cat":1}`,
		},
		{
			name:  "truncated",
			input: `{"cat":"gato"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var words Words
			assert.Error(t, json.Unmarshal([]byte(tt.input), &words))
		})
	}
}

func TestDictionaries_SetGetDelete(t *testing.T) {
	ds := Dictionaries{}

	ds.Set(Dictionary{Name: "🇬🇧 English ➡️ 🇪🇸 Spanish", Words: Words{}})
	ds.Set(Dictionary{Name: "🇫🇷 French ➡️ 🇩🇪 German", Words: Words{}})
	assert.Equal(t, []string{"🇬🇧 English ➡️ 🇪🇸 Spanish", "🇫🇷 French ➡️ 🇩🇪 German"}, ds.Names())

	dict, ok := ds.Get("🇬🇧 English ➡️ 🇪🇸 Spanish")
	assert.True(t, ok)

	// Mutation through the returned pointer is visible in the set
	dict.Words.Set("cat", "gato")
	dict, _ = ds.Get("🇬🇧 English ➡️ 🇪🇸 Spanish")
	assert.Len(t, dict.Words, 1)

	// Upserting an existing name keeps its position and resets words
	ds.Set(Dictionary{Name: "🇬🇧 English ➡️ 🇪🇸 Spanish", Words: Words{}})
	assert.Equal(t, "🇬🇧 English ➡️ 🇪🇸 Spanish", ds[0].Name)
	dict, _ = ds.Get("🇬🇧 English ➡️ 🇪🇸 Spanish")
	assert.Len(t, dict.Words, 0)

	assert.False(t, ds.Delete("missing"))
	assert.True(t, ds.Delete("🇫🇷 French ➡️ 🇩🇪 German"))
	assert.Equal(t, []string{"🇬🇧 English ➡️ 🇪🇸 Spanish"}, ds.Names())
}

func TestDictionaries_JSONRoundTrip(t *testing.T) {
	ds := Dictionaries{
		{
			Name: "en ➡️ es",
			Words: Words{
				{Word: "cat", Translation: "gato"},
				{Word: "dog", Translation: "perro"},
			},
		},
		{
			Name:  "fr ➡️ de",
			Words: Words{},
		},
	}

	data, err := json.Marshal(ds)
	assert.NoError(t, err)
	assert.Equal(t, `{"en ➡️ es":{"cat":"gato","dog":"perro"},"fr ➡️ de":{}}`, string(data))

	var decoded Dictionaries
	err = json.Unmarshal(data, &decoded)
	assert.NoError(t, err)
	assert.Equal(t, ds, decoded)
}

func TestDictionary_ReversedName(t *testing.T) {
	tests := []struct {
		name     string
		dictName string
		expected string
	}{
		{
			name:     "two languages",
			dictName: "🇬🇧 English ➡️ 🇪🇸 Spanish",
			expected: "🇪🇸 Spanish ➡️ 🇬🇧 English",
		},
		{
			name:     "no separator",
			dictName: "just a name",
			expected: "just a name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Dictionary{Name: tt.dictName}
			assert.Equal(t, tt.expected, d.ReversedName())
		})
	}
}
