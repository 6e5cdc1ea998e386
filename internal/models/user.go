package models

// User is a registered account. The password hash is write-only: it never
// appears in JSON responses.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:50;not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
