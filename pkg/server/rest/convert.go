package rest

import (
	"strings"

	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/server"
)

type User struct {
	Email        string `json:"email"`
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// Follow extends the user view with a preview of the author's recipes.
type Follow struct {
	User
	Recipes      []RecipeShort `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}

type Tag struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type Ingredient struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type RecipeIngredient struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          uint   `json:"amount"`
}

type Recipe struct {
	ID               uint               `json:"id"`
	Tags             []Tag              `json:"tags"`
	Author           User               `json:"author"`
	Ingredients      []RecipeIngredient `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
	Name             string             `json:"name"`
	Image            string             `json:"image"`
	Text             string             `json:"text"`
	CookingTime      uint               `json:"cooking_time"`
}

type RecipeShort struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime uint   `json:"cooking_time"`
}

type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func UserFromModel(user *model.User, subscribed bool) User {
	return User{
		Email:        user.Email,
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: subscribed,
	}
}

func FollowFromDetails(details *server.AuthorDetails, mediaURL string) Follow {
	recipes := make([]RecipeShort, 0, len(details.Recipes))
	for _, recipe := range details.Recipes {
		recipes = append(recipes, RecipeShortFromModel(recipe, mediaURL))
	}

	return Follow{
		User:         UserFromModel(details.User, details.IsSubscribed),
		Recipes:      recipes,
		RecipesCount: details.RecipesCount,
	}
}

func FollowsFromDetails(details []*server.AuthorDetails, mediaURL string) []Follow {
	follows := make([]Follow, 0, len(details))
	for _, author := range details {
		follows = append(follows, FollowFromDetails(author, mediaURL))
	}

	return follows
}

func TagFromModel(tag model.Tag) Tag {
	return Tag{ID: tag.ID, Name: tag.Name, Color: tag.Color, Slug: tag.Slug}
}

func TagsFromModel(tags []*model.Tag) []Tag {
	converted := make([]Tag, 0, len(tags))
	for _, tag := range tags {
		converted = append(converted, TagFromModel(*tag))
	}

	return converted
}

func IngredientFromModel(ingredient model.Ingredient) Ingredient {
	return Ingredient{ID: ingredient.ID, Name: ingredient.Name, MeasurementUnit: ingredient.MeasurementUnit}
}

func IngredientsFromModel(ingredients []*model.Ingredient) []Ingredient {
	converted := make([]Ingredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		converted = append(converted, IngredientFromModel(*ingredient))
	}

	return converted
}

// RecipeFromDetails reports ingredient rows by the catalog ingredient's id,
// not the row id.
func RecipeFromDetails(details *server.RecipeDetails, mediaURL string) Recipe {
	recipe := details.Recipe

	tags := make([]Tag, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		tags = append(tags, TagFromModel(tag))
	}

	ingredients := make([]RecipeIngredient, 0, len(recipe.Ingredients))
	for _, row := range recipe.Ingredients {
		ingredients = append(ingredients, RecipeIngredient{
			ID:              row.IngredientID,
			Name:            row.Ingredient.Name,
			MeasurementUnit: row.Ingredient.MeasurementUnit,
			Amount:          row.Amount,
		})
	}

	return Recipe{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           UserFromModel(&recipe.Author, details.IsAuthorSubscribed),
		Ingredients:      ingredients,
		IsFavorited:      details.IsFavorited,
		IsInShoppingCart: details.IsInShoppingCart,
		Name:             recipe.Name,
		Image:            MediaURL(mediaURL, recipe.Image),
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}
}

func RecipesFromDetails(details []*server.RecipeDetails, mediaURL string) []Recipe {
	recipes := make([]Recipe, 0, len(details))
	for _, recipe := range details {
		recipes = append(recipes, RecipeFromDetails(recipe, mediaURL))
	}

	return recipes
}

func RecipeShortFromModel(recipe *model.Recipe, mediaURL string) RecipeShort {
	return RecipeShort{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       MediaURL(mediaURL, recipe.Image),
		CookingTime: recipe.CookingTime,
	}
}

// MediaURL joins the public media prefix and a stored blob name.
func MediaURL(prefix string, name string) string {
	if name == "" {
		return ""
	}

	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(name, "/")
}

type ingredientAmount struct {
	ID     uint `json:"id"`
	Amount uint `json:"amount"`
}

// recipeBody is the JSON form of a recipe create or update.
type recipeBody struct {
	Ingredients []ingredientAmount `json:"ingredients"`
	Tags        []uint             `json:"tags"`
	Image       string             `json:"image"`
	Name        *string            `json:"name"`
	Text        *string            `json:"text"`
	CookingTime *uint              `json:"cooking_time"`
}

func (b recipeBody) toRequest() server.RecipeRequest {
	var ingredients []model.IngredientAmount

	if b.Ingredients != nil {
		ingredients = make([]model.IngredientAmount, 0, len(b.Ingredients))
		for _, ingredient := range b.Ingredients {
			ingredients = append(ingredients, model.IngredientAmount{IngredientID: ingredient.ID, Amount: ingredient.Amount})
		}
	}

	return server.RecipeRequest{
		Name:        b.Name,
		Text:        b.Text,
		CookingTime: b.CookingTime,
		Image:       b.Image,
		TagIDs:      b.Tags,
		Ingredients: ingredients,
	}
}
