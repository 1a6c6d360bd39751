package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// NameSeparator joins the two language names of a dictionary
const NameSeparator = " ➡️ "

// WordPair is a single word-translation entry
type WordPair struct {
	Word        string
	Translation string
}

// Words is an ordered set of word pairs with unique, normalized keys.
// Serialized as a JSON object; insertion order is kept on both ends
// so numbered list views stay stable across round trips.
type Words []WordPair

// Normalize lowercases and trims a word before storage or lookup
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Get returns the translation for a word key
func (w Words) Get(word string) (string, bool) {
	for _, p := range w {
		if p.Word == word {
			return p.Translation, true
		}
	}
	return "", false
}

// KeyOf returns the first key whose translation equals the given value.
// Translations are not unique, the first match wins.
func (w Words) KeyOf(translation string) (string, bool) {
	for _, p := range w {
		if p.Translation == translation {
			return p.Word, true
		}
	}
	return "", false
}

// Contains reports whether s matches a key or a translation
func (w Words) Contains(s string) bool {
	if _, ok := w.Get(s); ok {
		return true
	}
	_, ok := w.KeyOf(s)
	return ok
}

// Set upserts a pair, overwriting the translation of an existing key in place
func (w *Words) Set(word, translation string) {
	for i, p := range *w {
		if p.Word == word {
			(*w)[i].Translation = translation
			return
		}
	}
	*w = append(*w, WordPair{Word: word, Translation: translation})
}

// Delete removes a pair by key, reporting whether it was present
func (w *Words) Delete(word string) bool {
	for i, p := range *w {
		if p.Word == word {
			*w = append((*w)[:i], (*w)[i+1:]...)
			return true
		}
	}
	return false
}

// Reversed returns a copy with keys and translations swapped. The old
// translations become keys, so pairs sharing a translation merge into
// one entry: last pair wins, the entry keeps the first pair's position.
func (w Words) Reversed() Words {
	out := make(Words, 0, len(w))
	for _, p := range w {
		out.Set(p.Translation, p.Word)
	}
	return out
}

// MarshalJSON encodes the words as a JSON object in insertion order
func (w Words) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range w {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Word)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.Translation)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping key order
func (w *Words) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("words: expected JSON object, got %v", tok)
	}

	out := Words{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("words: unexpected key token %v", keyTok)
		}
		var val string
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("words: value for %q: %w", key, err)
		}
		out = append(out, WordPair{Word: key, Translation: val})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*w = out
	return nil
}

// Dictionary is a named, per-user collection of word pairs
type Dictionary struct {
	Name  string
	Words Words
}

// ReversedName returns the dictionary name with its languages swapped,
// e.g. "English ➡️ Spanish" becomes "Spanish ➡️ English"
func (d Dictionary) ReversedName() string {
	parts := strings.SplitN(d.Name, NameSeparator, 2)
	if len(parts) != 2 {
		return d.Name
	}
	return parts[1] + NameSeparator + parts[0]
}

// Dictionaries is the ordered set of one user's dictionaries, serialized
// as a single JSON object keyed by dictionary name
type Dictionaries []Dictionary

// Get returns a pointer into the slice so callers can mutate in place
func (ds Dictionaries) Get(name string) (*Dictionary, bool) {
	for i := range ds {
		if ds[i].Name == name {
			return &ds[i], true
		}
	}
	return nil, false
}

// Names returns dictionary names in insertion order
func (ds Dictionaries) Names() []string {
	names := make([]string, 0, len(ds))
	for _, d := range ds {
		names = append(names, d.Name)
	}
	return names
}

// Set upserts a dictionary by name. An existing name keeps its position,
// its words are replaced (last write wins).
func (ds *Dictionaries) Set(d Dictionary) {
	for i := range *ds {
		if (*ds)[i].Name == d.Name {
			(*ds)[i] = d
			return
		}
	}
	*ds = append(*ds, d)
}

// Delete removes a dictionary by name, reporting whether it was present
func (ds *Dictionaries) Delete(name string) bool {
	for i := range *ds {
		if (*ds)[i].Name == name {
			*ds = append((*ds)[:i], (*ds)[i+1:]...)
			return true
		}
	}
	return false
}

// MarshalJSON encodes the dictionaries as a JSON object in insertion order
func (ds Dictionaries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range ds {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(d.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(d.Words)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping dictionary order
func (ds *Dictionaries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("dictionaries: expected JSON object, got %v", tok)
	}

	out := Dictionaries{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("dictionaries: unexpected key token %v", keyTok)
		}
		var words Words
		if err := dec.Decode(&words); err != nil {
			return fmt.Errorf("dictionaries: words for %q: %w", name, err)
		}
		out = append(out, Dictionary{Name: name, Words: words})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*ds = out
	return nil
}
