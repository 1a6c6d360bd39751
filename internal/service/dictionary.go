package service

import (
	"fmt"
	"sync"

	"polyglot/internal/domain"
	"polyglot/internal/repository"
)

// DictionaryService handles dictionary business logic. Every mutation is
// a whole-blob read-modify-write against the repository, serialized per
// user with a keyed mutex so two actions from the same user cannot lose
// updates. Actions from different users never contend.
type DictionaryService struct {
	dictRepo repository.DictionaryRepository

	locks    map[int64]*sync.Mutex
	locksMux sync.Mutex
}

// NewDictionaryService creates a new dictionary service
func NewDictionaryService(dictRepo repository.DictionaryRepository) *DictionaryService {
	return &DictionaryService{
		dictRepo: dictRepo,
		locks:    make(map[int64]*sync.Mutex),
	}
}

// userLock returns the mutation lock for one user, creating it lazily
func (s *DictionaryService) userLock(userID int64) *sync.Mutex {
	s.locksMux.Lock()
	defer s.locksMux.Unlock()

	lock, exists := s.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// Dictionaries returns all dictionaries of a user, empty if none
func (s *DictionaryService) Dictionaries(userID int64) (domain.Dictionaries, error) {
	return s.dictRepo.GetDictionaries(userID)
}

// Dictionary returns one dictionary by name
func (s *DictionaryService) Dictionary(userID int64, name string) (domain.Dictionary, error) {
	dictionaries, err := s.dictRepo.GetDictionaries(userID)
	if err != nil {
		return domain.Dictionary{}, err
	}

	dict, ok := dictionaries.Get(name)
	if !ok {
		return domain.Dictionary{}, fmt.Errorf("dictionary %q: %w", name, domain.ErrNotFound)
	}
	return *dict, nil
}

// CreateDictionary adds an empty dictionary. A user may own at most
// domain.MaxDictionaries; creating an existing name overwrites it in
// place (last write wins) and does not count against the limit.
func (s *DictionaryService) CreateDictionary(userID int64, name string) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	dictionaries, err := s.dictRepo.GetDictionaries(userID)
	if err != nil {
		return err
	}

	if _, exists := dictionaries.Get(name); !exists && len(dictionaries) >= domain.MaxDictionaries {
		return domain.ErrDictionaryLimit
	}

	dictionaries.Set(domain.Dictionary{Name: name, Words: domain.Words{}})
	return s.dictRepo.SaveDictionaries(userID, dictionaries)
}

// DeleteDictionary removes a dictionary by name
func (s *DictionaryService) DeleteDictionary(userID int64, name string) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	dictionaries, err := s.dictRepo.GetDictionaries(userID)
	if err != nil {
		return err
	}

	if !dictionaries.Delete(name) {
		return fmt.Errorf("dictionary %q: %w", name, domain.ErrNotFound)
	}

	return s.dictRepo.SaveDictionaries(userID, dictionaries)
}

// UpsertWord stores a word pair, lowercasing and trimming both sides.
// A missing dictionary is created on the fly; an existing key gets its
// translation overwritten.
func (s *DictionaryService) UpsertWord(userID int64, dictName, word, translation string) error {
	word = domain.Normalize(word)
	translation = domain.Normalize(translation)
	if word == "" || translation == "" {
		return domain.ErrInvalidInput
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	dictionaries, err := s.dictRepo.GetDictionaries(userID)
	if err != nil {
		return err
	}

	dict, ok := dictionaries.Get(dictName)
	if !ok {
		dictionaries.Set(domain.Dictionary{Name: dictName, Words: domain.Words{}})
		dict, _ = dictionaries.Get(dictName)
	}

	dict.Words.Set(word, translation)
	return s.dictRepo.SaveDictionaries(userID, dictionaries)
}

// DeleteWord removes a word pair. The given word may match either a key
// or a translation; a translation match resolves to the first key that
// carries it.
func (s *DictionaryService) DeleteWord(userID int64, dictName, word string) error {
	word = domain.Normalize(word)

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	dictionaries, err := s.dictRepo.GetDictionaries(userID)
	if err != nil {
		return err
	}

	dict, ok := dictionaries.Get(dictName)
	if !ok {
		return fmt.Errorf("dictionary %q: %w", dictName, domain.ErrNotFound)
	}

	key := word
	if _, ok := dict.Words.Get(key); !ok {
		key, ok = dict.Words.KeyOf(word)
		if !ok {
			return fmt.Errorf("word %q: %w", word, domain.ErrNotFound)
		}
	}

	dict.Words.Delete(key)
	return s.dictRepo.SaveDictionaries(userID, dictionaries)
}

// RenameWord updates a pair matched by either side. A key match re-keys
// the pair under newTranslation, keeping its translation; a value match
// updates the translation of the first key carrying the old value. Both
// behaviors are load-bearing for the edit flow and kept as is.
func (s *DictionaryService) RenameWord(userID int64, dictName, old, newTranslation string) error {
	old = domain.Normalize(old)
	newTranslation = domain.Normalize(newTranslation)
	if newTranslation == "" {
		return domain.ErrInvalidInput
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	dictionaries, err := s.dictRepo.GetDictionaries(userID)
	if err != nil {
		return err
	}

	dict, ok := dictionaries.Get(dictName)
	if !ok {
		return fmt.Errorf("dictionary %q: %w", dictName, domain.ErrNotFound)
	}

	if translation, ok := dict.Words.Get(old); ok {
		dict.Words.Delete(old)
		dict.Words.Set(newTranslation, translation)
		return s.dictRepo.SaveDictionaries(userID, dictionaries)
	}

	if key, ok := dict.Words.KeyOf(old); ok {
		dict.Words.Set(key, newTranslation)
		return s.dictRepo.SaveDictionaries(userID, dictionaries)
	}

	return fmt.Errorf("word %q: %w", old, domain.ErrNotFound)
}

// SearchWord finds the counterpart of a word: the translation for a key
// match, or the key for a translation match.
func (s *DictionaryService) SearchWord(userID int64, dictName, word string) (string, error) {
	word = domain.Normalize(word)

	dictionaries, err := s.dictRepo.GetDictionaries(userID)
	if err != nil {
		return "", err
	}

	dict, ok := dictionaries.Get(dictName)
	if !ok {
		return "", fmt.Errorf("dictionary %q: %w", dictName, domain.ErrNotFound)
	}

	if translation, ok := dict.Words.Get(word); ok {
		return translation, nil
	}
	if key, ok := dict.Words.KeyOf(word); ok {
		return key, nil
	}

	return "", fmt.Errorf("word %q: %w", word, domain.ErrNotFound)
}
