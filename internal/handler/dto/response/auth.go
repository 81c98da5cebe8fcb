package response

import (
	"stayspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

type LoginResponse struct {
	User UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromAuthorizedUser(rm *queries.AuthorizedUserView) UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, rm)
	return resp
}
