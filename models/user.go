package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the persisted account record. The email is the unique key,
// compared case-insensitively.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"passwordHash"`
}
