package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	// FindByID returns nil, nil when no user has the id.
	FindByID(ctx context.Context, id uint) (*User, error)
	// FindByNickname is an exact, case-sensitive lookup.
	FindByNickname(ctx context.Context, nickname string) (*User, error)
	ExistsByNickname(ctx context.Context, nickname string) (bool, error)
	// SearchByNickname matches nickname substrings case-insensitively.
	// It returns an empty slice, never nil, when nothing matches.
	SearchByNickname(ctx context.Context, fragment string) ([]User, error)
	// Save inserts when u.ID is zero (the store assigns id and
	// timestamps), updates in place otherwise.
	Save(ctx context.Context, u *User) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *gormRepository) FindByNickname(ctx context.Context, nickname string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("nickname = ?", nickname).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *gormRepository) ExistsByNickname(ctx context.Context, nickname string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("nickname = ?", nickname).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormRepository) SearchByNickname(ctx context.Context, fragment string) ([]User, error) {
	users := make([]User, 0)
	err := r.db.WithContext(ctx).
		Where("nickname ILIKE ?", "%"+fragment+"%").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *gormRepository) Save(ctx context.Context, u *User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &DuplicateNicknameError{Nickname: u.Nickname}
		}
		return err
	}
	return nil
}
