package postgres

import (
	"database/sql"

	"polyglot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetUser returns a user by telegram id, or nil if not registered yet
func (r *UserRepo) GetUser(telegramID int64) (*domain.User, error) {
	var u domain.User
	query := `SELECT telegram_id, registration_date FROM users WHERE telegram_id = $1`
	err := r.db.QueryRow(query, telegramID).Scan(&u.TelegramID, &u.RegistrationDate)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// EnsureUser creates the user row on first contact if it doesn't exist
func (r *UserRepo) EnsureUser(telegramID int64) error {
	query := `
		INSERT INTO users (telegram_id, registration_date)
		VALUES ($1, NOW())
		ON CONFLICT (telegram_id) DO NOTHING
	`
	_, err := r.db.Exec(query, telegramID)
	return err
}
