package response

import "autocare360/internal/domain/entities"

type LoginResponse struct {
	Token      string `json:"token"`
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id,omitempty"`
}

func FromLogin(token string, u entities.User) LoginResponse {
	return LoginResponse{
		Token:      token,
		UserID:     u.ID,
		Email:      u.Email,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
	}
}
