package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"polyglot/internal/domain"
)

func TestDictionaryRepo_GetDictionaries(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expected      domain.Dictionaries
		expectedError bool
	}{
		{
			name:   "populated blob preserving order",
			userID: 123,
			mockRows: sqlmock.NewRows([]string{"dictionaries"}).
				AddRow(`{"en ➡️ es":{"cat":"gato","dog":"perro"},"fr ➡️ de":{}}`),
			expected: domain.Dictionaries{
				{
					Name: "en ➡️ es",
					Words: domain.Words{
						{Word: "cat", Translation: "gato"},
						{Word: "dog", Translation: "perro"},
					},
				},
				{
					Name:  "fr ➡️ de",
					Words: domain.Words{},
				},
			},
			expectedError: false,
		},
		{
			name:          "NULL column",
			userID:        123,
			mockRows:      sqlmock.NewRows([]string{"dictionaries"}).AddRow(nil),
			expected:      domain.Dictionaries{},
			expectedError: false,
		},
		{
			name:          "unknown user",
			userID:        456,
			mockRows:      nil,
			mockError:     sql.ErrNoRows,
			expected:      domain.Dictionaries{},
			expectedError: false,
		},
		{
			name:          "corrupted blob",
			userID:        123,
			mockRows:      sqlmock.NewRows([]string{"dictionaries"}).AddRow(`["not","an","object"]`),
			expected:      nil,
			expectedError: true,
		},
		{
			name:          "database error",
			userID:        789,
			mockRows:      nil,
			mockError:     errors.New("connection refused"),
			expected:      nil,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewDictionaryRepo(db)

			query := "SELECT dictionaries FROM users WHERE telegram_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			dictionaries, err := repo.GetDictionaries(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, dictionaries)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDictionaryRepo_SaveDictionaries(t *testing.T) {
	t.Run("writes ordered blob", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewDictionaryRepo(db)

		dictionaries := domain.Dictionaries{
			{
				Name: "en ➡️ es",
				Words: domain.Words{
					{Word: "cat", Translation: "gato"},
				},
			},
		}

		mock.ExpectExec("UPDATE users SET dictionaries").
			WithArgs(`{"en ➡️ es":{"cat":"gato"}}`, int64(123)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.SaveDictionaries(123, dictionaries)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty set writes an empty object", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewDictionaryRepo(db)

		mock.ExpectExec("UPDATE users SET dictionaries").
			WithArgs(`{}`, int64(123)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.SaveDictionaries(123, domain.Dictionaries{})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewDictionaryRepo(db)

		mock.ExpectExec("UPDATE users SET dictionaries").
			WithArgs(`{}`, int64(123)).
			WillReturnError(errors.New("connection refused"))

		err = repo.SaveDictionaries(123, domain.Dictionaries{})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
