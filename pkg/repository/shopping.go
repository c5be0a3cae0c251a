package repository

import (
	"context"

	"droscher.com/Foodgram/pkg/model"
)

type ShoppingRepository interface {
	CountCartItems(ctx context.Context, userID uint) (int64, error)
	GetShoppingListEntries(ctx context.Context, userID uint) ([]model.ShoppingListEntry, error)
}

func (r *Repository) CountCartItems(ctx context.Context, userID uint) (int64, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.CartItem{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// GetShoppingListEntries returns every ingredient row of every recipe in the
// user's cart. Grouping and summing happen in the shopping package.
func (r *Repository) GetShoppingListEntries(ctx context.Context, userID uint) ([]model.ShoppingListEntry, error) {
	var entries []model.ShoppingListEntry

	result := r.DB.WithContext(ctx).Table("recipe_ingredients AS ri").
		Select("i.name AS name, i.measurement_unit AS measurement_unit, ri.amount AS amount").
		Joins("INNER JOIN ingredients i ON i.id = ri.ingredient_id").
		Joins("INNER JOIN shopping_cart_items sci ON sci.recipe_id = ri.recipe_id").
		Where("sci.user_id = ?", userID).
		Order("i.name, i.measurement_unit, ri.id").
		Scan(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}
