package models

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is the authenticated account projection. Credential secrets are never
// part of this struct, so a persisted session can never leak them.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
