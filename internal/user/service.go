package user

import (
	"context"

	"github.com/kimdaehee-sian/msa-back-User-Service/internal/logs"
)

// Service holds the business rules: nickname uniqueness on create and
// update, existence on lookup. Boundary validation happens before it.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	taken, err := s.repo.ExistsByNickname(ctx, req.Nickname)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &DuplicateNicknameError{Nickname: req.Nickname}
	}

	u := &User{
		Nickname: req.Nickname,
		Language: req.Language,
	}
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}

	logs.LogJSON("INFO", "User created", map[string]interface{}{
		"operation": "create_user",
		"id":        u.ID,
		"nickname":  u.Nickname,
	})
	resp := toResponse(u)
	return &resp, nil
}

func (s *Service) GetUserByID(ctx context.Context, id uint) (*UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &NotFoundError{ID: id}
	}

	logs.LogJSON("INFO", "User fetched", map[string]interface{}{
		"operation": "get_user",
		"id":        u.ID,
	})
	resp := toResponse(u)
	return &resp, nil
}

func (s *Service) UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &NotFoundError{ID: id}
	}

	if req.Nickname != nil && *req.Nickname != u.Nickname {
		taken, err := s.repo.ExistsByNickname(ctx, *req.Nickname)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &DuplicateNicknameError{Nickname: *req.Nickname}
		}
		u.Nickname = *req.Nickname
	}
	if req.Language != nil {
		u.Language = *req.Language
	}

	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}

	logs.LogJSON("INFO", "User updated", map[string]interface{}{
		"operation": "update_user",
		"id":        u.ID,
		"nickname":  u.Nickname,
	})
	resp := toResponse(u)
	return &resp, nil
}

func (s *Service) SearchUsersByNickname(ctx context.Context, fragment string) ([]UserResponse, error) {
	users, err := s.repo.SearchByNickname(ctx, fragment)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toResponse(&users[i]))
	}

	logs.LogJSON("INFO", "User search completed", map[string]interface{}{
		"operation": "search_users",
		"fragment":  fragment,
		"count":     len(responses),
	})
	return responses, nil
}
