package auth

import "time"

// User is stored with a one-way bcrypt hash only; the plaintext password
// never touches the store. Email is unique, stored exactly as given.
type User struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"createdAt"`
}
