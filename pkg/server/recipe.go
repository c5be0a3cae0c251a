package server

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/composition"
	"droscher.com/Foodgram/pkg/membership"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/shopping"
)

// RecipeRequest carries a recipe create or update. On update a nil pointer
// keeps the stored value, nil TagIDs keep the current tags and an empty image
// keeps the current image. Ingredients always replace the stored ones.
type RecipeRequest struct {
	Name        *string
	Text        *string
	CookingTime *uint
	Image       string
	ImageUpload []byte
	TagIDs      []uint
	Ingredients []model.IngredientAmount
}

func (r RecipeRequest) hasImage() bool {
	return r.Image != "" || len(r.ImageUpload) > 0
}

type RecipeFilter struct {
	TagSlugs         []string
	AuthorID         *uint
	IsFavorited      *bool
	IsInShoppingCart *bool
	ListOptions
}

type RecipeServer struct {
	logger      *zap.Logger
	stores      Stores
	validator   *composition.Validator
	memberships *membership.Engine
	images      ImageStore
	pageSize    int
	company     string
	now         func() time.Time
}

func NewRecipeServer(stores Stores, validator *composition.Validator, memberships *membership.Engine, images ImageStore, pageSize int, company string, logger *zap.Logger) *RecipeServer {
	return &RecipeServer{
		logger:      logger,
		stores:      stores,
		validator:   validator,
		memberships: memberships,
		images:      images,
		pageSize:    pageSize,
		company:     company,
		now:         time.Now,
	}
}

// WithClock replaces the clock used to date shopping lists.
func (s *RecipeServer) WithClock(now func() time.Time) *RecipeServer {
	s.now = now

	return s
}

func (s *RecipeServer) CreateRecipe(ctx context.Context, author *model.User, request RecipeRequest) (*RecipeDetails, error) {
	payload := composition.Payload{
		Name:        stringValue(request.Name),
		Text:        stringValue(request.Text),
		CookingTime: uintValue(request.CookingTime),
		TagIDs:      request.TagIDs,
		Ingredients: request.Ingredients,
	}

	if request.hasImage() {
		payload.Image = "supplied"
	}

	if err := s.validator.ValidateCreate(ctx, payload); err != nil {
		return nil, err
	}

	tags, err := s.lookupTags(ctx, request.TagIDs)
	if err != nil {
		return nil, err
	}

	image, err := s.storeImage(request)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		AuthorID:    author.ID,
		Name:        payload.Name,
		Text:        payload.Text,
		Image:       image,
		CookingTime: payload.CookingTime,
	}

	created, err := s.stores.Recipes.CreateRecipe(ctx, recipe, request.TagIDs, request.Ingredients)
	if err != nil {
		s.discardImage(image)

		return nil, err
	}

	s.warnDuplicateTagNames(created.ID, tags)

	return s.GetRecipe(ctx, author, created.ID)
}

func (s *RecipeServer) UpdateRecipe(ctx context.Context, user *model.User, recipeID uint, request RecipeRequest) (*RecipeDetails, error) {
	existing, err := s.authoredRecipe(ctx, user, recipeID)
	if err != nil {
		return nil, err
	}

	payload := composition.Payload{
		Name:        existing.Name,
		Text:        existing.Text,
		Image:       existing.Image,
		CookingTime: existing.CookingTime,
		TagIDs:      request.TagIDs,
		Ingredients: request.Ingredients,
	}

	if request.Name != nil {
		payload.Name = *request.Name
	}

	if request.Text != nil {
		payload.Text = *request.Text
	}

	if request.CookingTime != nil {
		payload.CookingTime = *request.CookingTime
	}

	if err := s.validator.ValidateUpdate(ctx, payload); err != nil {
		return nil, err
	}

	var tags map[uint]model.Tag

	if request.TagIDs != nil {
		if tags, err = s.lookupTags(ctx, request.TagIDs); err != nil {
			return nil, err
		}
	}

	image := existing.Image

	if request.hasImage() {
		if image, err = s.storeImage(request); err != nil {
			return nil, err
		}
	}

	recipe := &model.Recipe{
		ID:          existing.ID,
		AuthorID:    existing.AuthorID,
		Name:        payload.Name,
		Text:        payload.Text,
		Image:       image,
		CookingTime: payload.CookingTime,
	}

	if _, err := s.stores.Recipes.UpdateRecipe(ctx, recipe, request.TagIDs, request.Ingredients); err != nil {
		if image != existing.Image {
			s.discardImage(image)
		}

		return nil, err
	}

	if image != existing.Image {
		s.discardImage(existing.Image)
	}

	s.warnDuplicateTagNames(recipeID, tags)

	return s.GetRecipe(ctx, user, recipeID)
}

func (s *RecipeServer) DeleteRecipe(ctx context.Context, user *model.User, recipeID uint) error {
	existing, err := s.authoredRecipe(ctx, user, recipeID)
	if err != nil {
		return err
	}

	if err := s.stores.Recipes.DeleteRecipe(ctx, recipeID); err != nil {
		return err
	}

	s.discardImage(existing.Image)

	return nil
}

// GetRecipe loads a recipe with its viewer flags. viewer may be nil.
func (s *RecipeServer) GetRecipe(ctx context.Context, viewer *model.User, recipeID uint) (*RecipeDetails, error) {
	recipe, err := s.stores.Recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	details, err := s.describe(ctx, viewer, []*model.Recipe{recipe})
	if err != nil {
		return nil, err
	}

	return details[0], nil
}

func (s *RecipeServer) ListRecipes(ctx context.Context, viewer *model.User, filter RecipeFilter) (*Page[*RecipeDetails], error) {
	page, limit, offset := filter.window(s.pageSize)

	recipes, total, err := s.stores.Recipes.GetRecipes(ctx, model.RecipeFilter{
		TagSlugs:         filter.TagSlugs,
		AuthorID:         filter.AuthorID,
		IsFavorited:      filter.IsFavorited,
		IsInShoppingCart: filter.IsInShoppingCart,
		ViewerID:         viewerID(viewer),
		Limit:            limit,
		Offset:           offset,
	})
	if err != nil {
		return nil, err
	}

	details, err := s.describe(ctx, viewer, recipes)
	if err != nil {
		return nil, err
	}

	return &Page[*RecipeDetails]{Count: total, Page: page, Limit: limit, Results: details}, nil
}

func (s *RecipeServer) AddFavorite(ctx context.Context, user *model.User, recipeID uint) (*model.Recipe, error) {
	return s.addMembership(ctx, model.KindFavorite, user, recipeID)
}

func (s *RecipeServer) RemoveFavorite(ctx context.Context, user *model.User, recipeID uint) error {
	return s.removeMembership(ctx, model.KindFavorite, user, recipeID)
}

func (s *RecipeServer) AddToCart(ctx context.Context, user *model.User, recipeID uint) (*model.Recipe, error) {
	return s.addMembership(ctx, model.KindCart, user, recipeID)
}

func (s *RecipeServer) RemoveFromCart(ctx context.Context, user *model.User, recipeID uint) error {
	return s.removeMembership(ctx, model.KindCart, user, recipeID)
}

// DownloadShoppingList sums the ingredients of every recipe in the user's
// cart into a dated text file.
func (s *RecipeServer) DownloadShoppingList(ctx context.Context, user *model.User) (*ShoppingList, error) {
	count, err := s.stores.Shopping.CountCartItems(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if count == 0 {
		return nil, model.ErrEmptyCart
	}

	entries, err := s.stores.Shopping.GetShoppingListEntries(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	lines, err := shopping.Aggregate(entries)
	if err != nil {
		s.logger.Error("error aggregating shopping list", zap.Uint("user_id", user.ID), zap.Error(err))

		return nil, err
	}

	return &ShoppingList{
		Filename: shopping.Filename(user.Username),
		Content:  shopping.Render(lines, s.now(), s.company),
	}, nil
}

func (s *RecipeServer) addMembership(ctx context.Context, kind model.MembershipKind, user *model.User, recipeID uint) (*model.Recipe, error) {
	recipe, err := s.stores.Recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if err := s.memberships.Add(ctx, kind, user.ID, recipeID); err != nil {
		return nil, err
	}

	return recipe, nil
}

func (s *RecipeServer) removeMembership(ctx context.Context, kind model.MembershipKind, user *model.User, recipeID uint) error {
	if _, err := s.stores.Recipes.GetRecipeByID(ctx, recipeID); err != nil {
		return err
	}

	return s.memberships.Remove(ctx, kind, user.ID, recipeID)
}

func (s *RecipeServer) authoredRecipe(ctx context.Context, user *model.User, recipeID uint) (*model.Recipe, error) {
	recipe, err := s.stores.Recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if recipe.AuthorID != user.ID {
		return nil, fmt.Errorf("%w: only the author can change recipe %d", model.ErrPermissionDenied, recipeID)
	}

	return recipe, nil
}

// describe attaches the viewer's favorite, cart and subscription flags to
// recipes, keeping their order.
func (s *RecipeServer) describe(ctx context.Context, viewer *model.User, recipes []*model.Recipe) ([]*RecipeDetails, error) {
	details := make([]*RecipeDetails, 0, len(recipes))
	if len(recipes) == 0 {
		return details, nil
	}

	recipeIDs := make([]uint, 0, len(recipes))
	authorIDs := make([]uint, 0, len(recipes))

	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID)
		authorIDs = append(authorIDs, recipe.AuthorID)
	}

	favorited, inCart, err := s.stores.Recipes.GetRecipeMemberships(ctx, viewerID(viewer), recipeIDs)
	if err != nil {
		return nil, err
	}

	subscribed, err := s.stores.Users.GetFollowedAuthorIDs(ctx, viewerID(viewer), authorIDs)
	if err != nil {
		return nil, err
	}

	for _, recipe := range recipes {
		details = append(details, &RecipeDetails{
			Recipe:             recipe,
			IsFavorited:        favorited[recipe.ID],
			IsInShoppingCart:   inCart[recipe.ID],
			IsAuthorSubscribed: subscribed[recipe.AuthorID],
		})
	}

	return details, nil
}

func (s *RecipeServer) lookupTags(ctx context.Context, tagIDs []uint) (map[uint]model.Tag, error) {
	if len(tagIDs) == 0 {
		return map[uint]model.Tag{}, nil
	}

	tags, err := s.stores.Catalog.GetTagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}

	for _, tagID := range tagIDs {
		if _, found := tags[tagID]; !found {
			return nil, fmt.Errorf("%w: tag %d", model.ErrNotFound, tagID)
		}
	}

	return tags, nil
}

// warnDuplicateTagNames runs after the recipe is committed, so it can only
// report, not reject.
func (s *RecipeServer) warnDuplicateTagNames(recipeID uint, tags map[uint]model.Tag) {
	seen := make(map[string]uint, len(tags))

	for id, tag := range tags {
		if other, found := seen[tag.Name]; found {
			s.logger.Warn("recipe has tags with the same name", zap.Uint("recipe_id", recipeID), zap.String("tag", tag.Name), zap.Uint("tag_id", id), zap.Uint("other_tag_id", other))

			continue
		}

		seen[tag.Name] = id
	}
}

func (s *RecipeServer) storeImage(request RecipeRequest) (string, error) {
	if len(request.ImageUpload) > 0 {
		return s.images.SaveUpload(request.ImageUpload)
	}

	return s.images.SaveDataURI(request.Image)
}

func (s *RecipeServer) discardImage(name string) {
	if err := s.images.Delete(name); err != nil {
		s.logger.Warn("error deleting image", zap.String("image", name), zap.Error(err))
	}
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func uintValue(value *uint) uint {
	if value == nil {
		return 0
	}

	return *value
}
