package user

import "time"

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	DisplayName     string
	PreferredLocale string
	DefaultCurrency string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
