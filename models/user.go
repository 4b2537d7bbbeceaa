package models

// Account roles. Anything that is not RoleAdmin is treated as
// non-privileged.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an application account. PasswordHash only ever holds a
// bcrypt hash loaded from or bound for storage; clear-text passwords
// travel as separate function arguments and are never stored on the
// model or serialized.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;not null;size:50"`
	PasswordHash string `json:"-" gorm:"column:password;not null;size:255"`
	Role         string `json:"role" gorm:"not null;size:20"`
	Name         string `json:"name" gorm:"not null;size:255"`
	Email        string `json:"email" gorm:"size:255"`
}

// IsAdmin reports whether the account has the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
