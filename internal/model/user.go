package model

// RoleAdmin is the only role a user can be promoted to.
const RoleAdmin = "admin"

// User is a registered customer. Passwords live with the external identity provider.
type User struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// RegisterRequest is the payload of POST /users.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// AdminStatus answers GET /user/admin/{email}.
type AdminStatus struct {
	Admin bool `json:"admin"`
}
