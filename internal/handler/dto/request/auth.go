package request

import "stayspot/internal/usecase/commands"

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role,omitempty"`
}

func (r SignupRequest) ToCommand() commands.SignupRequest {
	return commands.SignupRequest{
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{
		Email:    r.Email,
		Password: r.Password,
	}
}
