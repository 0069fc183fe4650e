package models

// UserModel represents an authenticated account that owns summarizations.
type UserModel struct {
	Base
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email"    gorm:"uniqueIndex"`
	Password string `json:"-"        gorm:"not null"`
	Role     string `json:"role"     gorm:"not null;default:user"`
}

func (UserModel) TableName() string { return "users" }
