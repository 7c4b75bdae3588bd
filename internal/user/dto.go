package user

import "time"

type CreateUserRequest struct {
	Nickname string `json:"nickname" binding:"required,min=2,max=50"`
	Language string `json:"language" binding:"required,max=10"`
}

// UpdateUserRequest carries partial updates. A nil field means "leave
// unchanged"; there is no way to clear a field.
type UpdateUserRequest struct {
	Nickname *string `json:"nickname" binding:"omitempty,min=2,max=50"`
	Language *string `json:"language" binding:"omitempty,max=10"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Nickname  string    `json:"nickname"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Nickname:  u.Nickname,
		Language:  u.Language,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
