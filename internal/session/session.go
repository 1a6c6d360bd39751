// Package session tracks per-user conversation state in memory.
package session

import (
	"sync"

	"polyglot/internal/quiz"
)

// Mode is a discrete conversation state
type Mode string

const (
	ModeIdle Mode = "idle"

	// add-dictionary flow
	ModeChoosingFirstLanguage  Mode = "choosing_first_language"
	ModeChoosingSecondLanguage Mode = "choosing_second_language"

	// open-dictionary superstate and its text-expecting substates
	ModeDictOpen               Mode = "dict_open"
	ModeAddingWord1            Mode = "adding_word_1"
	ModeAddingWord2            Mode = "adding_word_2"
	ModeDeletingWord           Mode = "deleting_word"
	ModeEditingWord            Mode = "editing_word"
	ModeAwaitingNewTranslation Mode = "awaiting_new_translation"
	ModeSearchingWord          Mode = "searching_word"

	// quiz flow
	ModeChoosingQuizDict Mode = "choosing_quiz_dict"
	ModeOnQuiz           Mode = "on_quiz"
	ModeAnswered         Mode = "answered"
)

// ExpectsText reports whether free-text input is interpreted in this mode
func (m Mode) ExpectsText() bool {
	switch m {
	case ModeAddingWord1, ModeAddingWord2, ModeDeletingWord,
		ModeEditingWord, ModeAwaitingNewTranslation, ModeSearchingWord:
		return true
	}
	return false
}

// Session holds one user's mode plus the transient fields of the active
// flow. It lives only for the conversation and is never persisted.
type Session struct {
	Mode Mode

	// carried for the lifetime of the dict_open superstate
	DictName string
	Page     int

	// add-dictionary flow
	FirstLanguage string

	// add-word flow
	Word1 string

	// edit-word flow
	EditWord string

	// active quiz run
	Quiz *quiz.Run
}

// Manager stores sessions keyed by user id. All access goes through the
// lock so concurrent actions from different users are safe.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]Session)}
}

// Get returns the user's session, or a fresh idle one
func (m *Manager) Get(userID int64) Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, exists := m.sessions[userID]
	if !exists {
		return Session{Mode: ModeIdle}
	}
	return sess
}

// Set replaces the user's session
func (m *Manager) Set(userID int64, sess Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = sess
}

// Reset drops the user's session, clearing all transient fields
func (m *Manager) Reset(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
