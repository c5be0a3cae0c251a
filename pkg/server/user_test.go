package server_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"droscher.com/Foodgram/mocks"
	"droscher.com/Foodgram/pkg/membership"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/server"
)

type UserTestSuite struct {
	suite.Suite
	userRepo       *mocks.UserRepository
	recipeRepo     *mocks.RecipeRepository
	membershipRepo *mocks.MembershipRepository
	service        *server.UserServer
	reader         *model.User
	author         *model.User
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (suite *UserTestSuite) SetupTest() {
	suite.userRepo = mocks.NewUserRepository(suite.T())
	suite.recipeRepo = mocks.NewRecipeRepository(suite.T())
	suite.membershipRepo = mocks.NewMembershipRepository(suite.T())
	logger := zaptest.NewLogger(suite.T())
	engine := membership.NewEngine(suite.membershipRepo, logger)
	suite.service = server.NewUserServer(suite.userRepo, suite.recipeRepo, engine, 6, logger)

	suite.reader = &model.User{Model: gorm.Model{ID: 1}, Username: "reader"}
	suite.author = &model.User{Model: gorm.Model{ID: 2}, Username: "author"}
}

func (suite *UserTestSuite) TestAddUser_Registers() {
	ctx := context.Background()
	request := server.RegisterRequest{Email: "cook@example.com", Username: "cook", FirstName: "Ada", LastName: "Lovelace"}
	created := &model.User{Model: gorm.Model{ID: 7}, Email: "cook@example.com", Username: "cook"}

	suite.userRepo.EXPECT().AddUser(ctx, model.User{Email: "cook@example.com", Username: "cook", FirstName: "Ada", LastName: "Lovelace"}).Return(created, nil)

	user, err := suite.service.AddUser(ctx, request)

	suite.Require().NoError(err)
	suite.Equal(created, user)
}

func (suite *UserTestSuite) TestAddUser_Invalid() {
	user, err := suite.service.AddUser(context.Background(), server.RegisterRequest{Email: "not-an-email", Username: "me"})

	suite.Nil(user)
	suite.Require().ErrorIs(err, model.ErrValidation)

	var validationError *model.ValidationError
	suite.Require().ErrorAs(err, &validationError)
	suite.ElementsMatch([]string{
		"email: failed email check",
		"first_name: failed required check",
		"last_name: failed required check",
		`username: "me" is reserved`,
	}, validationError.Violations())
}

func (suite *UserTestSuite) TestAddUser_UsernameCharacters() {
	request := server.RegisterRequest{Email: "cook@example.com", Username: "cook book!", FirstName: "Ada", LastName: "Lovelace"}

	user, err := suite.service.AddUser(context.Background(), request)

	suite.Nil(user)
	suite.EqualError(err, "validation failed: username: failed username check")
}

func (suite *UserTestSuite) TestAddUser_Duplicate() {
	ctx := context.Background()
	request := server.RegisterRequest{Email: "cook@example.com", Username: "cook", FirstName: "Ada", LastName: "Lovelace"}

	suite.userRepo.EXPECT().AddUser(ctx, mock.Anything).Return(nil, model.ErrConflict)

	user, err := suite.service.AddUser(ctx, request)

	suite.Nil(user)
	suite.ErrorIs(err, model.ErrConflict)
}

func (suite *UserTestSuite) TestGetUser_ReportsSubscription() {
	ctx := context.Background()

	suite.userRepo.EXPECT().GetUserByID(ctx, uint(2)).Return(suite.author, nil)
	suite.userRepo.EXPECT().GetFollowedAuthorIDs(ctx, uint(1), []uint{2}).Return(map[uint]bool{2: true}, nil)

	details, err := suite.service.GetUser(ctx, suite.reader, 2)

	suite.Require().NoError(err)
	suite.Equal(suite.author, details.User)
	suite.True(details.IsSubscribed)
}

func (suite *UserTestSuite) TestMe() {
	details := suite.service.Me(context.Background(), suite.reader)

	suite.Equal(suite.reader, details.User)
	suite.False(details.IsSubscribed)
}

func (suite *UserTestSuite) TestSubscribe_ReturnsAuthorWithLimitedRecipes() {
	ctx := context.Background()
	recipes := []*model.Recipe{{ID: 9, AuthorID: 2}, {ID: 8, AuthorID: 2}}

	suite.userRepo.EXPECT().GetUserByID(ctx, uint(2)).Return(suite.author, nil)
	suite.membershipRepo.EXPECT().AddMembership(ctx, model.KindFollow, uint(1), uint(2)).Return(nil)
	suite.recipeRepo.EXPECT().CountRecipesByAuthors(ctx, []uint{2}).Return(map[uint]int64{2: 5}, nil)
	suite.recipeRepo.EXPECT().GetRecipesByAuthor(ctx, uint(2), 2).Return(recipes, nil)

	details, err := suite.service.Subscribe(ctx, suite.reader, 2, 2)

	suite.Require().NoError(err)
	suite.Equal(suite.author, details.User)
	suite.True(details.IsSubscribed)
	suite.Equal(int64(5), details.RecipesCount)
	suite.Equal(recipes, details.Recipes)
}

func (suite *UserTestSuite) TestSubscribe_Self() {
	ctx := context.Background()

	suite.userRepo.EXPECT().GetUserByID(ctx, uint(1)).Return(suite.reader, nil)

	details, err := suite.service.Subscribe(ctx, suite.reader, 1, 0)

	suite.Nil(details)
	suite.Require().ErrorIs(err, model.ErrSelfFollow)
	suite.ErrorIs(err, model.ErrConflict)
}

func (suite *UserTestSuite) TestSubscribe_Twice() {
	ctx := context.Background()

	suite.userRepo.EXPECT().GetUserByID(ctx, uint(2)).Return(suite.author, nil)
	suite.membershipRepo.EXPECT().AddMembership(ctx, model.KindFollow, uint(1), uint(2)).Return(model.ErrConflict)

	details, err := suite.service.Subscribe(ctx, suite.reader, 2, 0)

	suite.Nil(details)
	suite.ErrorIs(err, model.ErrConflict)
}

func (suite *UserTestSuite) TestUnsubscribe_UnknownAuthor() {
	ctx := context.Background()

	suite.userRepo.EXPECT().GetUserByID(ctx, uint(40)).Return(nil, model.ErrNotFound)

	suite.ErrorIs(suite.service.Unsubscribe(ctx, suite.reader, 40), model.ErrNotFound)
}

func (suite *UserTestSuite) TestUnsubscribe_NotSubscribed() {
	ctx := context.Background()

	suite.userRepo.EXPECT().GetUserByID(ctx, uint(2)).Return(suite.author, nil)
	suite.membershipRepo.EXPECT().RemoveMembership(ctx, model.KindFollow, uint(1), uint(2)).Return(model.ErrNotFound)

	suite.ErrorIs(suite.service.Unsubscribe(ctx, suite.reader, 2), model.ErrNotFound)
}

func (suite *UserTestSuite) TestSubscriptions_Pages() {
	ctx := context.Background()
	other := &model.User{Model: gorm.Model{ID: 3}, Username: "baker"}

	suite.userRepo.EXPECT().GetFollowedAuthors(ctx, uint(1), 2, 2).Return([]*model.User{suite.author, other}, int64(5), nil)
	suite.recipeRepo.EXPECT().CountRecipesByAuthors(ctx, []uint{2, 3}).Return(map[uint]int64{2: 1}, nil)
	suite.recipeRepo.EXPECT().GetRecipesByAuthor(ctx, uint(2), 0).Return([]*model.Recipe{{ID: 4, AuthorID: 2}}, nil)
	suite.recipeRepo.EXPECT().GetRecipesByAuthor(ctx, uint(3), 0).Return([]*model.Recipe{}, nil)

	page, err := suite.service.Subscriptions(ctx, suite.reader, server.ListOptions{Page: 2, Limit: 2}, 0)

	suite.Require().NoError(err)
	suite.Equal(int64(5), page.Count)
	suite.Require().Len(page.Results, 2)
	suite.Equal(int64(1), page.Results[0].RecipesCount)
	suite.Zero(page.Results[1].RecipesCount)
	suite.Empty(page.Results[1].Recipes)
}
