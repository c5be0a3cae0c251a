package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Foodgram/pkg/model"
)

type RecipeRepository interface { //nolint:interfacebloat // this is an acceptable interface
	CreateRecipe(ctx context.Context, recipe *model.Recipe, tagIDs []uint, ingredients []model.IngredientAmount) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe *model.Recipe, tagIDs []uint, ingredients []model.IngredientAmount) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID uint) error
	GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error)
	GetRecipes(ctx context.Context, filter model.RecipeFilter) ([]*model.Recipe, int64, error)
	GetRecipesByAuthor(ctx context.Context, authorID uint, limit int) ([]*model.Recipe, error)
	CountRecipesByAuthors(ctx context.Context, authorIDs []uint) (map[uint]int64, error)
	GetRecipeMemberships(ctx context.Context, userID uint, recipeIDs []uint) (favorited map[uint]bool, inCart map[uint]bool, err error)
}

// CreateRecipe stores the recipe row, its ingredient amounts and its tag links
// in a single transaction.
func (r *Repository) CreateRecipe(ctx context.Context, recipe *model.Recipe, tagIDs []uint, ingredients []model.IngredientAmount) (*model.Recipe, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Omit(clause.Associations).Create(recipe); result.Error != nil {
			return result.Error
		}

		if err := insertRecipeIngredients(tx, recipe.ID, ingredients); err != nil {
			return err
		}

		return insertRecipeTags(tx, recipe.ID, tagIDs)
	})
	if err != nil {
		r.Logger.Error("error creating recipe", zap.String("name", recipe.Name), zap.Uint("author_id", recipe.AuthorID), zap.Error(err))

		return nil, translate(err, "recipe %s", recipe.Name)
	}

	return recipe, nil
}

// UpdateRecipe saves the scalar fields of recipe and replaces its ingredient
// rows wholesale. Tag links are replaced only when tagIDs is non-nil.
func (r *Repository) UpdateRecipe(ctx context.Context, recipe *model.Recipe, tagIDs []uint, ingredients []model.IngredientAmount) (*model.Recipe, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(recipe).Select("name", "text", "image", "cooking_time").Omit(clause.Associations).Updates(recipe)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if tagIDs != nil {
			if result := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeTag{}); result.Error != nil {
				return result.Error
			}

			if err := insertRecipeTags(tx, recipe.ID, tagIDs); err != nil {
				return err
			}
		}

		if result := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeIngredient{}); result.Error != nil {
			return result.Error
		}

		return insertRecipeIngredients(tx, recipe.ID, ingredients)
	})
	if err != nil {
		r.Logger.Error("error updating recipe", zap.Uint("recipe_id", recipe.ID), zap.Error(err))

		return nil, translate(err, "recipe %d", recipe.ID)
	}

	return recipe, nil
}

// DeleteRecipe removes a recipe together with everything that depends on it.
// Tags and ingredients are shared and stay untouched.
func (r *Repository) DeleteRecipe(ctx context.Context, recipeID uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dependents := []any{&model.RecipeIngredient{}, &model.RecipeTag{}, &model.Favorite{}, &model.CartItem{}}
		for _, dependent := range dependents {
			if result := tx.Where("recipe_id = ?", recipeID).Delete(dependent); result.Error != nil {
				return result.Error
			}
		}

		result := tx.Delete(&model.Recipe{}, recipeID)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})

	return translate(err, "recipe %d", recipeID)
}

func insertRecipeIngredients(tx *gorm.DB, recipeID uint, ingredients []model.IngredientAmount) error {
	if len(ingredients) == 0 {
		return nil
	}

	rows := make([]model.RecipeIngredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		rows = append(rows, model.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ingredient.IngredientID,
			Amount:       ingredient.Amount,
		})
	}

	return tx.Omit(clause.Associations).Create(&rows).Error
}

func insertRecipeTags(tx *gorm.DB, recipeID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]model.RecipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, model.RecipeTag{RecipeID: recipeID, TagID: tagID})
	}

	return tx.Create(&rows).Error
}

func (r *Repository) withRecipeDetails(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Joins("Author").
		Preload("Tags").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_ingredients.id ASC") }).
		Preload("Ingredients.Ingredient")
}

func (r *Repository) GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error) {
	var recipe model.Recipe

	result := r.withRecipeDetails(ctx).First(&recipe, recipeID)
	if result.Error != nil {
		return nil, translate(result.Error, "recipe %d", recipeID)
	}

	return &recipe, nil
}

// GetRecipes returns one page of recipes matching filter, newest first, and
// the total number of matches.
func (r *Repository) GetRecipes(ctx context.Context, filter model.RecipeFilter) ([]*model.Recipe, int64, error) {
	var (
		recipes []*model.Recipe
		total   int64
	)

	query := applyRecipeFilter(r.DB.WithContext(ctx).Model(&model.Recipe{}), filter).Session(&gorm.Session{})

	if result := query.Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	page := query.
		Joins("Author").
		Preload("Tags").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_ingredients.id ASC") }).
		Preload("Ingredients.Ingredient").
		Order("recipes.id DESC")

	if filter.Limit > 0 {
		page = page.Limit(filter.Limit).Offset(filter.Offset)
	}

	if result := page.Find(&recipes); result.Error != nil {
		r.Logger.Error("error listing recipes", zap.Error(result.Error))

		return nil, 0, result.Error
	}

	return recipes, total, nil
}

func applyRecipeFilter(query *gorm.DB, filter model.RecipeFilter) *gorm.DB {
	if len(filter.TagSlugs) > 0 {
		query = query.Where("recipes.id IN (SELECT rt.recipe_id FROM recipe_tags rt INNER JOIN tags t ON t.id = rt.tag_id WHERE t.slug IN ?)", filter.TagSlugs)
	}

	if filter.AuthorID != nil {
		query = query.Where("recipes.author_id = ?", *filter.AuthorID)
	}

	// Membership filters only make sense for a known viewer.
	if filter.ViewerID == 0 {
		return query
	}

	if filter.IsFavorited != nil {
		subQuery := "recipes.id IN (SELECT recipe_id FROM favorites WHERE user_id = ?)"
		if !*filter.IsFavorited {
			subQuery = "recipes.id NOT IN (SELECT recipe_id FROM favorites WHERE user_id = ?)"
		}

		query = query.Where(subQuery, filter.ViewerID)
	}

	if filter.IsInShoppingCart != nil {
		subQuery := "recipes.id IN (SELECT recipe_id FROM shopping_cart_items WHERE user_id = ?)"
		if !*filter.IsInShoppingCart {
			subQuery = "recipes.id NOT IN (SELECT recipe_id FROM shopping_cart_items WHERE user_id = ?)"
		}

		query = query.Where(subQuery, filter.ViewerID)
	}

	return query
}

// GetRecipesByAuthor returns the author's recipes newest first. A limit of
// zero or less means no limit.
func (r *Repository) GetRecipesByAuthor(ctx context.Context, authorID uint, limit int) ([]*model.Recipe, error) {
	var recipes []*model.Recipe

	query := r.DB.WithContext(ctx).Where("author_id = ?", authorID).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if result := query.Find(&recipes); result.Error != nil {
		return nil, result.Error
	}

	return recipes, nil
}

func (r *Repository) CountRecipesByAuthors(ctx context.Context, authorIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		AuthorID uint
		Count    int64
	}

	result := r.DB.WithContext(ctx).Model(&model.Recipe{}).
		Select("author_id, count(*) as count").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, row := range rows {
		counts[row.AuthorID] = row.Count
	}

	return counts, nil
}

// GetRecipeMemberships reports which of recipeIDs userID has favorited and
// which are in their shopping cart.
func (r *Repository) GetRecipeMemberships(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, map[uint]bool, error) {
	favorited := make(map[uint]bool, len(recipeIDs))
	inCart := make(map[uint]bool, len(recipeIDs))

	if userID == 0 || len(recipeIDs) == 0 {
		return favorited, inCart, nil
	}

	var ids []uint

	result := r.DB.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids)
	if result.Error != nil {
		return nil, nil, result.Error
	}

	for _, id := range ids {
		favorited[id] = true
	}

	ids = nil

	result = r.DB.WithContext(ctx).Model(&model.CartItem{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids)
	if result.Error != nil {
		return nil, nil, result.Error
	}

	for _, id := range ids {
		inCart[id] = true
	}

	return favorited, inCart, nil
}
