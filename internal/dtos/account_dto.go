package dtos

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest uses the PascalCase keys the account endpoint expects.
type RegisterRequest struct {
	FirstName string `json:"FirstName" binding:"required"`
	LastName  string `json:"LastName" binding:"required"`
	Email     string `json:"Email" binding:"required,email"`
	Password  string `json:"Password" binding:"required"`
	Role      string `json:"Role" binding:"required,oneof=recruiter applicant"`
}
