package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"droscher.com/Foodgram/pkg/model"
)

type UserRepository interface {
	GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error)
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
	AddUser(ctx context.Context, user model.User) (*model.User, error)
	GetFollowedAuthors(ctx context.Context, userID uint, limit int, offset int) ([]*model.User, int64, error)
	GetFollowedAuthorIDs(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error)
}

func (r *Repository) GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Where("uuid = ?", uuid).First(&user)
	if result.Error != nil {
		return nil, translate(result.Error, "user %s", uuid)
	}

	return &user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).First(&user, userID)
	if result.Error != nil {
		return nil, translate(result.Error, "user %d", userID)
	}

	return &user, nil
}

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, translate(result.Error, "user with email %s", email)
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, user model.User) (*model.User, error) {
	user.UUID = uuid.New()

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, translate(result.Error, "user %s already exists", user.Username)
	}

	return &user, nil
}

// GetFollowedAuthors lists the authors userID follows, most recent subscription first.
func (r *Repository) GetFollowedAuthors(ctx context.Context, userID uint, limit int, offset int) ([]*model.User, int64, error) {
	var (
		authors []*model.User
		total   int64
	)

	query := r.DB.WithContext(ctx).Model(&model.User{}).
		Joins("INNER JOIN follows f ON f.author_id = users.id").
		Where("f.user_id = ?", userID).
		Session(&gorm.Session{})

	if result := query.Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	result := query.Order("f.id DESC").Limit(limit).Offset(offset).Find(&authors)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return authors, total, nil
}

// GetFollowedAuthorIDs reports which of authorIDs userID is subscribed to.
func (r *Repository) GetFollowedAuthorIDs(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error) {
	followed := make(map[uint]bool, len(authorIDs))
	if userID == 0 || len(authorIDs) == 0 {
		return followed, nil
	}

	var ids []uint

	result := r.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("user_id = ? AND author_id IN ?", userID, authorIDs).
		Pluck("author_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, id := range ids {
		followed[id] = true
	}

	return followed, nil
}
