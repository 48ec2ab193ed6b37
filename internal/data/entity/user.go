package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	AvatarURL    *string  `db:"avatar_url"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}
