package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UUID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid()"`
	Username  string    `gorm:"size:150;uniqueIndex"`
	FirstName string    `gorm:"size:150"`
	LastName  string    `gorm:"size:150"`
	Email     string    `gorm:"size:254;uniqueIndex"`
}
