package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Foodgram/pkg/model"
)

type MembershipRepository interface {
	AddMembership(ctx context.Context, kind model.MembershipKind, ownerID uint, targetID uint) error
	RemoveMembership(ctx context.Context, kind model.MembershipKind, ownerID uint, targetID uint) error
}

type membershipRow interface {
	model.Favorite | model.CartItem | model.Follow
}

// AddMembership inserts one (owner, target) record into the set named by kind.
// The unique index on the pair turns a concurrent double insert into
// model.ErrConflict for the loser.
func (r *Repository) AddMembership(ctx context.Context, kind model.MembershipKind, ownerID uint, targetID uint) error {
	var err error

	switch kind {
	case model.KindFavorite:
		err = insertMembership(ctx, r.DB, &model.Favorite{UserID: ownerID, RecipeID: targetID})
	case model.KindCart:
		err = insertMembership(ctx, r.DB, &model.CartItem{UserID: ownerID, RecipeID: targetID})
	case model.KindFollow:
		err = insertMembership(ctx, r.DB, &model.Follow{UserID: ownerID, AuthorID: targetID})
	default:
		return fmt.Errorf("%w: unknown membership kind %d", model.ErrValidation, kind)
	}

	if err != nil {
		r.Logger.Info("membership not added", zap.Stringer("kind", kind), zap.Uint("owner_id", ownerID), zap.Uint("target_id", targetID), zap.Error(err))

		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return translate(err, "%s target %d does not exist", kind, targetID)
		}

		return translate(err, "%s %d already exists for user %d", kind, targetID, ownerID)
	}

	return nil
}

// RemoveMembership deletes the (owner, target) record from the set named by
// kind, failing with model.ErrNotFound when there is none.
func (r *Repository) RemoveMembership(ctx context.Context, kind model.MembershipKind, ownerID uint, targetID uint) error {
	var result *gorm.DB

	switch kind {
	case model.KindFavorite:
		result = deleteMembership[model.Favorite](ctx, r.DB, "recipe_id", ownerID, targetID)
	case model.KindCart:
		result = deleteMembership[model.CartItem](ctx, r.DB, "recipe_id", ownerID, targetID)
	case model.KindFollow:
		result = deleteMembership[model.Follow](ctx, r.DB, "author_id", ownerID, targetID)
	default:
		return fmt.Errorf("%w: unknown membership kind %d", model.ErrValidation, kind)
	}

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s %d does not exist for user %d", model.ErrNotFound, kind, targetID, ownerID)
	}

	return nil
}

func insertMembership[T membershipRow](ctx context.Context, db *gorm.DB, row *T) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(row).Error
}

func deleteMembership[T membershipRow](ctx context.Context, db *gorm.DB, targetColumn string, ownerID uint, targetID uint) *gorm.DB {
	var row T

	return db.WithContext(ctx).Where("user_id = ? AND "+targetColumn+" = ?", ownerID, targetID).Delete(&row)
}
