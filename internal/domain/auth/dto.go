package auth

// RegisterRequest creates a new marketplace user. Role is restricted to
// "agent" on the public endpoint; other roles are assigned by an admin.
type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	AgencyName string `json:"agency_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin agent operations sales"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
