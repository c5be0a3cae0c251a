package server

import (
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

const firstPage = 1

type ImageStore interface {
	SaveDataURI(dataURI string) (string, error)
	SaveUpload(data []byte) (string, error)
	Delete(name string) error
}

// Stores groups the repositories the servers read from and write to.
type Stores struct {
	Recipes  repository.RecipeRepository
	Catalog  repository.CatalogRepository
	Users    repository.UserRepository
	Shopping repository.ShoppingRepository
}

// RecipeDetails is a recipe as seen by one viewer.
type RecipeDetails struct {
	Recipe             *model.Recipe
	IsFavorited        bool
	IsInShoppingCart   bool
	IsAuthorSubscribed bool
}

type UserDetails struct {
	User         *model.User
	IsSubscribed bool
}

// AuthorDetails is a followed author with a preview of their recipes.
type AuthorDetails struct {
	UserDetails
	RecipesCount int64
	Recipes      []*model.Recipe
}

type Page[T any] struct {
	Count   int64
	Page    int
	Limit   int
	Results []T
}

type ListOptions struct {
	Page  int
	Limit int
}

// window turns page/limit into limit/offset, falling back to pageSize for a
// missing limit and to the first page for a missing page.
func (o ListOptions) window(pageSize int) (int, int, int) {
	page := o.Page
	if page < firstPage {
		page = firstPage
	}

	limit := o.Limit
	if limit <= 0 {
		limit = pageSize
	}

	return page, limit, (page - 1) * limit
}

// ShoppingList is a rendered shopping list ready to be sent as a file.
type ShoppingList struct {
	Filename string
	Content  string
}

func viewerID(viewer *model.User) uint {
	if viewer == nil {
		return 0
	}

	return viewer.ID
}
