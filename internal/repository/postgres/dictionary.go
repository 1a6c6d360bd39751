package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"polyglot/internal/domain"
)

// DictionaryRepo implements repository.DictionaryRepository over the
// users.dictionaries JSONB column: one serialized object per user
// mapping dictionary name to its word pairs.
type DictionaryRepo struct {
	db *sql.DB
}

// NewDictionaryRepo creates a new dictionary repository
func NewDictionaryRepo(db *sql.DB) *DictionaryRepo {
	return &DictionaryRepo{db: db}
}

// GetDictionaries loads the full dictionaries blob for a user. A missing
// user or a NULL column yields an empty set rather than an error.
func (r *DictionaryRepo) GetDictionaries(telegramID int64) (domain.Dictionaries, error) {
	var raw sql.NullString
	query := `SELECT dictionaries FROM users WHERE telegram_id = $1`
	err := r.db.QueryRow(query, telegramID).Scan(&raw)

	if err == sql.ErrNoRows {
		return domain.Dictionaries{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !raw.Valid || raw.String == "" {
		return domain.Dictionaries{}, nil
	}

	var dictionaries domain.Dictionaries
	if err := json.Unmarshal([]byte(raw.String), &dictionaries); err != nil {
		return nil, fmt.Errorf("failed to decode dictionaries: %w", err)
	}

	return dictionaries, nil
}

// SaveDictionaries replaces the whole dictionaries blob for a user
func (r *DictionaryRepo) SaveDictionaries(telegramID int64, dictionaries domain.Dictionaries) error {
	raw, err := json.Marshal(dictionaries)
	if err != nil {
		return fmt.Errorf("failed to encode dictionaries: %w", err)
	}

	query := `UPDATE users SET dictionaries = $1 WHERE telegram_id = $2`
	_, err = r.db.Exec(query, string(raw), telegramID)
	return err
}
