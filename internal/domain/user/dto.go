package user

// RegisterInput is the self-service sign-up payload. Role is accepted for
// compatibility with older clients and ignored.
type RegisterInput struct {
	Name     string `json:"name" binding:"required,max=100" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	Role     string `json:"role,omitempty" example:"user"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type Summary struct {
	ID    string `json:"id" example:"3f1c2d8e-6a0b-4c55-9d1e-2b7f0a9c4e11"`
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@example.com"`
}
