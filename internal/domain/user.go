package domain

// UserRole enumerates backend user roles.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleAgent UserRole = "agent"
	UserRoleUser  UserRole = "user"
)

// User is a backend account that can create or be assigned tickets.
type User struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Avatar string   `json:"avatar,omitempty"`
	Role   UserRole `json:"role"`
}
