package handler

import (
	"time"

	"github.com/taplog/attendance-system/internal/core/domain"
)

type createUserRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=100"`
	UID         string `json:"uid"         validate:"required,hexuid"`
	Gender      string `json:"gender"      validate:"required,oneof=Male Female Other"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,ph_phone"`
}

type updateUserRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=100"`
	UID         string `json:"uid"         validate:"omitempty,hexuid"`
	Gender      string `json:"gender"      validate:"required,oneof=Male Female Other"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,ph_phone"`
}

type userResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	UID         string    `json:"uid"`
	Gender      string    `json:"gender"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type deletedUserResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		UID:         u.UID,
		Gender:      u.Gender,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
