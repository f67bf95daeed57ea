package models

// User is a registered account. Usernames are immutable and accounts are
// never deleted, so there is no soft-delete column here.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // one-way digest, never the plaintext
	Role     string `json:"role" gorm:"default:'student'"`
}
