package server

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

type CatalogServer struct {
	repository repository.CatalogRepository
	logger     *zap.Logger
}

func NewCatalogServer(repository repository.CatalogRepository, logger *zap.Logger) *CatalogServer {
	return &CatalogServer{repository: repository, logger: logger}
}

func (c *CatalogServer) ListTags(ctx context.Context) ([]*model.Tag, error) {
	return c.repository.GetTags(ctx)
}

func (c *CatalogServer) GetTag(ctx context.Context, tagID uint) (*model.Tag, error) {
	return c.repository.GetTagByID(ctx, tagID)
}

// ListIngredients returns every ingredient whose name starts with prefix,
// ignoring case. An empty prefix lists the whole catalog.
func (c *CatalogServer) ListIngredients(ctx context.Context, prefix string) ([]*model.Ingredient, error) {
	return c.repository.GetIngredients(ctx, prefix)
}

func (c *CatalogServer) GetIngredient(ctx context.Context, ingredientID uint) (*model.Ingredient, error) {
	return c.repository.GetIngredientByID(ctx, ingredientID)
}

func (c *CatalogServer) ImportIngredients(ctx context.Context, ingredients []model.Ingredient) (int64, error) {
	added, err := c.repository.AddIngredients(ctx, ingredients)
	if err != nil {
		c.logger.Error("error importing ingredients", zap.Int("count", len(ingredients)), zap.Error(err))

		return 0, err
	}

	c.logger.Info("imported ingredients", zap.Int64("added", added))

	return added, nil
}
