package response

import (
	"time"

	"rental-marketplace/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	res := &UserResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	res.ID = v.ID.String()
	return res, nil
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

type RegisterResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}
