package repository

import (
	"context"
	"strings"

	"droscher.com/Foodgram/pkg/model"
)

const ingredientBatchSize = 500

type CatalogRepository interface {
	GetTags(ctx context.Context) ([]*model.Tag, error)
	GetTagByID(ctx context.Context, tagID uint) (*model.Tag, error)
	GetTagsByIDs(ctx context.Context, tagIDs []uint) (map[uint]model.Tag, error)
	GetIngredients(ctx context.Context, prefix string) ([]*model.Ingredient, error)
	GetIngredientByID(ctx context.Context, ingredientID uint) (*model.Ingredient, error)
	ExistingIngredientIDs(ctx context.Context, ingredientIDs []uint) (map[uint]bool, error)
	AddIngredients(ctx context.Context, ingredients []model.Ingredient) (int64, error)
}

func (r *Repository) GetTags(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag

	if result := r.DB.WithContext(ctx).Order("name").Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetTagByID(ctx context.Context, tagID uint) (*model.Tag, error) {
	var tag model.Tag

	if result := r.DB.WithContext(ctx).First(&tag, tagID); result.Error != nil {
		return nil, translate(result.Error, "tag %d", tagID)
	}

	return &tag, nil
}

// GetTagsByIDs returns the tags with the given ids keyed by id. Unknown ids
// are simply absent from the result.
func (r *Repository) GetTagsByIDs(ctx context.Context, tagIDs []uint) (map[uint]model.Tag, error) {
	var tags []*model.Tag

	if result := r.DB.WithContext(ctx).Where("id IN ?", tagIDs).Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	tagsByID := make(map[uint]model.Tag, len(tags))

	for index := range tags {
		tag := tags[index]
		tagsByID[tag.ID] = *tag
	}

	return tagsByID, nil
}

// GetIngredients lists ingredients, optionally restricted to names starting
// with prefix (case-insensitive).
func (r *Repository) GetIngredients(ctx context.Context, prefix string) ([]*model.Ingredient, error) {
	var ingredients []*model.Ingredient

	query := r.DB.WithContext(ctx).Order("name")
	if prefix != "" {
		query = query.Where("LOWER(name) LIKE ?", escapeLike(strings.ToLower(prefix))+"%")
	}

	if result := query.Find(&ingredients); result.Error != nil {
		return nil, result.Error
	}

	return ingredients, nil
}

func (r *Repository) GetIngredientByID(ctx context.Context, ingredientID uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient

	if result := r.DB.WithContext(ctx).First(&ingredient, ingredientID); result.Error != nil {
		return nil, translate(result.Error, "ingredient %d", ingredientID)
	}

	return &ingredient, nil
}

// ExistingIngredientIDs reports which of ingredientIDs are present in the store.
func (r *Repository) ExistingIngredientIDs(ctx context.Context, ingredientIDs []uint) (map[uint]bool, error) {
	existing := make(map[uint]bool, len(ingredientIDs))
	if len(ingredientIDs) == 0 {
		return existing, nil
	}

	var ids []uint

	result := r.DB.WithContext(ctx).Model(&model.Ingredient{}).Where("id IN ?", ingredientIDs).Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, id := range ids {
		existing[id] = true
	}

	return existing, nil
}

func (r *Repository) AddIngredients(ctx context.Context, ingredients []model.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	result := r.DB.WithContext(ctx).CreateInBatches(&ingredients, ingredientBatchSize)

	return result.RowsAffected, result.Error
}

func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}
