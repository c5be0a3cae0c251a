package model

import (
	"time"

	"gorm.io/gorm"
)

type Tag struct {
	gorm.Model
	Name  string `gorm:"size:150;uniqueIndex"`
	Color string `gorm:"size:64;uniqueIndex"`
	Slug  string `gorm:"size:64;uniqueIndex"`
}

// Ingredient names are not unique on their own; the same name may appear
// with different measurement units.
type Ingredient struct {
	gorm.Model
	Name            string `gorm:"size:256;index"`
	MeasurementUnit string `gorm:"size:16"`
}

// Recipe rows are hard deleted so that the cascade to ingredients and
// memberships is a real removal.
type Recipe struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	AuthorID    uint   `gorm:"index;not null"`
	Name        string `gorm:"size:200;not null"`
	Text        string `gorm:"size:2048;not null"`
	Image       string
	CookingTime uint `gorm:"not null"`

	Author      User               `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
	Tags        []Tag              `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE;"`
	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE;"`
}

type RecipeIngredient struct {
	ID           uint `gorm:"primarykey"`
	RecipeID     uint `gorm:"index;not null"`
	IngredientID uint `gorm:"index;not null"`
	Amount       uint `gorm:"not null"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE;"`
}

type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey"`
	TagID    uint `gorm:"primaryKey"`
}

// IngredientAmount is a requested (ingredient, amount) pair before it is
// persisted as a RecipeIngredient.
type IngredientAmount struct {
	IngredientID uint
	Amount       uint
}

type RecipeFilter struct {
	TagSlugs         []string
	AuthorID         *uint
	IsFavorited      *bool
	IsInShoppingCart *bool
	ViewerID         uint
	Limit            int
	Offset           int
}

// ShoppingListEntry is one RecipeIngredient row of a recipe in a user's cart,
// flattened to the fields the shopping list groups on.
type ShoppingListEntry struct {
	Name            string
	MeasurementUnit string
	Amount          uint
}
