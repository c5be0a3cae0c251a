package model

import "time"

// MembershipKind names one of the per-user sets a record can belong to.
type MembershipKind int

const (
	KindFavorite MembershipKind = iota + 1
	KindCart
	KindFollow
)

func (k MembershipKind) String() string {
	switch k {
	case KindFavorite:
		return "favorite"
	case KindCart:
		return "shopping cart"
	case KindFollow:
		return "subscription"
	default:
		return "unknown"
	}
}

type Favorite struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"uniqueIndex:idx_favorite_user_recipe;not null"`
	RecipeID  uint `gorm:"uniqueIndex:idx_favorite_user_recipe;index;not null"`
	CreatedAt time.Time

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}

type CartItem struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"uniqueIndex:idx_cart_user_recipe;not null"`
	RecipeID  uint `gorm:"uniqueIndex:idx_cart_user_recipe;index;not null"`
	CreatedAt time.Time

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}

func (CartItem) TableName() string { return "shopping_cart_items" }

// Follow links a subscriber (UserID) to the author they follow.
type Follow struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"uniqueIndex:idx_follow_user_author;not null"`
	AuthorID  uint `gorm:"uniqueIndex:idx_follow_user_author;index;not null"`
	CreatedAt time.Time

	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}
