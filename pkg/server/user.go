package server

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/membership"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

const reservedUsername = "me"

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

type RegisterRequest struct {
	Email     string `json:"email"      validate:"required,email,max=254"`
	Username  string `json:"username"   validate:"required,max=150,username"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name"  validate:"required,max=150"`
}

type UserServer struct {
	users       repository.UserRepository
	recipes     repository.RecipeRepository
	memberships *membership.Engine
	validate    *validator.Validate
	pageSize    int
	logger      *zap.Logger
}

func NewUserServer(users repository.UserRepository, recipes repository.RecipeRepository, memberships *membership.Engine, pageSize int, logger *zap.Logger) *UserServer {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

		return name
	})
	_ = validate.RegisterValidation("username", func(field validator.FieldLevel) bool {
		return usernamePattern.MatchString(field.Field().String())
	})

	return &UserServer{users: users, recipes: recipes, memberships: memberships, validate: validate, pageSize: pageSize, logger: logger}
}

func (u *UserServer) AddUser(ctx context.Context, request RegisterRequest) (*model.User, error) {
	violations := model.NewValidationError()

	if err := u.validate.Struct(request); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return nil, err
		}

		for _, fieldError := range fieldErrors {
			violations.Addf("%s: failed %s check", fieldError.Field(), fieldError.Tag())
		}
	}

	// "me" would shadow the /users/me route.
	if strings.EqualFold(request.Username, reservedUsername) {
		violations.Addf("username: %q is reserved", request.Username)
	}

	if err := violations.Err(); err != nil {
		return nil, err
	}

	user, err := u.users.AddUser(ctx, model.User{
		Email:     request.Email,
		Username:  request.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("user registered", zap.String("username", user.Username))

	return user, nil
}

// GetUser loads a profile as seen by viewer, who may be nil.
func (u *UserServer) GetUser(ctx context.Context, viewer *model.User, userID uint) (*UserDetails, error) {
	user, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	subscribed, err := u.users.GetFollowedAuthorIDs(ctx, viewerID(viewer), []uint{user.ID})
	if err != nil {
		return nil, err
	}

	return &UserDetails{User: user, IsSubscribed: subscribed[user.ID]}, nil
}

func (u *UserServer) Me(_ context.Context, user *model.User) *UserDetails {
	return &UserDetails{User: user}
}

// Subscribe makes user follow authorID and returns the author with up to
// recipesLimit of their recipes. A recipesLimit of zero means all of them.
func (u *UserServer) Subscribe(ctx context.Context, user *model.User, authorID uint, recipesLimit int) (*AuthorDetails, error) {
	author, err := u.users.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if err := u.memberships.Add(ctx, model.KindFollow, user.ID, authorID); err != nil {
		return nil, err
	}

	authors, err := u.describeAuthors(ctx, []*model.User{author}, recipesLimit)
	if err != nil {
		return nil, err
	}

	return authors[0], nil
}

func (u *UserServer) Unsubscribe(ctx context.Context, user *model.User, authorID uint) error {
	if _, err := u.users.GetUserByID(ctx, authorID); err != nil {
		return err
	}

	return u.memberships.Remove(ctx, model.KindFollow, user.ID, authorID)
}

// Subscriptions pages through the authors user follows, most recent first.
func (u *UserServer) Subscriptions(ctx context.Context, user *model.User, options ListOptions, recipesLimit int) (*Page[*AuthorDetails], error) {
	page, limit, offset := options.window(u.pageSize)

	authors, total, err := u.users.GetFollowedAuthors(ctx, user.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	details, err := u.describeAuthors(ctx, authors, recipesLimit)
	if err != nil {
		return nil, err
	}

	return &Page[*AuthorDetails]{Count: total, Page: page, Limit: limit, Results: details}, nil
}

// describeAuthors builds the follow projection. Every author passed in is
// followed by the caller.
func (u *UserServer) describeAuthors(ctx context.Context, authors []*model.User, recipesLimit int) ([]*AuthorDetails, error) {
	details := make([]*AuthorDetails, 0, len(authors))
	if len(authors) == 0 {
		return details, nil
	}

	authorIDs := make([]uint, 0, len(authors))
	for _, author := range authors {
		authorIDs = append(authorIDs, author.ID)
	}

	counts, err := u.recipes.CountRecipesByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	for _, author := range authors {
		recipes, err := u.recipes.GetRecipesByAuthor(ctx, author.ID, recipesLimit)
		if err != nil {
			return nil, fmt.Errorf("loading recipes of author %d: %w", author.ID, err)
		}

		details = append(details, &AuthorDetails{
			UserDetails:  UserDetails{User: author, IsSubscribed: true},
			RecipesCount: counts[author.ID],
			Recipes:      recipes,
		})
	}

	return details, nil
}
