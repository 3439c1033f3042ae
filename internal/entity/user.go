package entity

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Username string `json:"username"`
	Role     Role   `json:"role"`
	FullName string `json:"full_name"`
}
