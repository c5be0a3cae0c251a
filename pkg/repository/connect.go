package repository

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
)

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		conf.DB.Host, conf.DB.User, conf.DB.Password, conf.DB.Database, conf.DB.Port)

	db, err := gorm.Open(postgres.Open(dsn), GormConfig(logger))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Repository{DB: db, Logger: logger}, err
}

// GormConfig routes SQL logging through zap and turns driver errors into
// gorm's portable ones (duplicate key, foreign key violation).
func GormConfig(logger *zap.Logger) *gorm.Config {
	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	return &gorm.Config{Logger: gormLogger, TranslateError: true}
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// Migrate creates or updates every table of the schema.
func (r *Repository) Migrate() error {
	err := r.DB.SetupJoinTable(&model.Recipe{}, "Tags", &model.RecipeTag{})
	if err != nil {
		return err
	}

	return r.DB.AutoMigrate(
		&model.User{},
		&model.Tag{}, &model.Ingredient{},
		&model.Recipe{}, &model.RecipeIngredient{}, &model.RecipeTag{},
		&model.Favorite{}, &model.CartItem{}, &model.Follow{})
}

func translate(err error, format string, args ...any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %s", model.ErrNotFound, fmt.Sprintf(format, args...))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s", model.ErrConflict, fmt.Sprintf(format, args...))
	default:
		return err
	}
}
