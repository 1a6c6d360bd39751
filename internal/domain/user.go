package domain

import "time"

// User represents a bot user, created on first contact
type User struct {
	TelegramID       int64
	RegistrationDate time.Time
}
