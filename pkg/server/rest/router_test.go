package rest_test

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/mocks"
	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/composition"
	"droscher.com/Foodgram/pkg/membership"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/server"
	"droscher.com/Foodgram/pkg/server/rest"
)

const secret = "secret"

type RouterTestSuite struct {
	suite.Suite
	recipeRepo     *mocks.RecipeRepository
	catalogRepo    *mocks.CatalogRepository
	userRepo       *mocks.UserRepository
	shoppingRepo   *mocks.ShoppingRepository
	membershipRepo *mocks.MembershipRepository
	images         *mocks.ImageStore
	observedLogs   *observer.ObservedLogs
	mediaRoot      string
	router         http.Handler
	chef           *model.User
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (suite *RouterTestSuite) SetupTest() {
	suite.recipeRepo = mocks.NewRecipeRepository(suite.T())
	suite.catalogRepo = mocks.NewCatalogRepository(suite.T())
	suite.userRepo = mocks.NewUserRepository(suite.T())
	suite.shoppingRepo = mocks.NewShoppingRepository(suite.T())
	suite.membershipRepo = mocks.NewMembershipRepository(suite.T())
	suite.images = mocks.NewImageStore(suite.T())
	suite.mediaRoot = suite.T().TempDir()

	observedZapCore, observedLogs := observer.New(zap.WarnLevel)
	suite.observedLogs = observedLogs
	logger := zap.New(observedZapCore)

	limits := configs.Limits{MinCookingTime: 1, MaxCookingTime: 32000, MinAmount: 1, MaxAmount: 32000}
	stores := server.Stores{Recipes: suite.recipeRepo, Catalog: suite.catalogRepo, Users: suite.userRepo, Shopping: suite.shoppingRepo}
	engine := membership.NewEngine(suite.membershipRepo, logger)

	recipes := server.NewRecipeServer(stores, composition.New(limits, suite.catalogRepo), engine, suite.images, 6, "Test Kitchen", logger).
		WithClock(func() time.Time { return time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC) })
	users := server.NewUserServer(suite.userRepo, suite.recipeRepo, engine, 6, logger)
	catalog := server.NewCatalogServer(suite.catalogRepo, logger)

	conf := &configs.Config{Auth: configs.Auth{SecretKey: secret}}
	handler := rest.NewHandler(recipes, users, catalog, "/media/", logger)
	suite.router = rest.NewRouter(handler, auth.NewAuthManager(conf, suite.userRepo, logger), suite.mediaRoot, "/media/", logger)

	suite.chef = &model.User{Model: gorm.Model{ID: 1}, Username: "chef", Email: "chef@example.com"}
}

func (suite *RouterTestSuite) signedIn(request *http.Request) *http.Request {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": suite.chef.Email}).SignedString([]byte(secret))
	suite.Require().NoError(err)

	suite.userRepo.EXPECT().GetUserFromEmail(mock.Anything, suite.chef.Email).Return(suite.chef, nil).Once()
	request.Header.Set("Authorization", "Bearer "+token)

	return request
}

func (suite *RouterTestSuite) serve(request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)

	return recorder
}

func (suite *RouterTestSuite) decode(recorder *httptest.ResponseRecorder, target any) {
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), target))
}

func (suite *RouterTestSuite) TestListTags() {
	suite.catalogRepo.EXPECT().GetTags(mock.Anything).Return([]*model.Tag{
		{Model: gorm.Model{ID: 1}, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
	}, nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/api/tags", nil))

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("application/json", recorder.Header().Get("Content-Type"))
	suite.JSONEq(`[{"id":1,"name":"Breakfast","color":"#E26C2D","slug":"breakfast"}]`, recorder.Body.String())
}

func (suite *RouterTestSuite) TestGetRecipe_BadID() {
	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/api/recipes/abc", nil))

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *RouterTestSuite) TestGetRecipe_RendersView() {
	recipe := &model.Recipe{
		ID: 4, AuthorID: 2, Name: "Toast", Text: "Toast it.", Image: "recipes/images/toast.png", CookingTime: 3,
		Author:      model.User{Model: gorm.Model{ID: 2}, Username: "baker", Email: "baker@example.com"},
		Tags:        []model.Tag{{Model: gorm.Model{ID: 1}, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}},
		Ingredients: []model.RecipeIngredient{{ID: 30, RecipeID: 4, IngredientID: 7, Amount: 2, Ingredient: model.Ingredient{Model: gorm.Model{ID: 7}, Name: "bread", MeasurementUnit: "slice"}}},
	}

	suite.recipeRepo.EXPECT().GetRecipeByID(mock.Anything, uint(4)).Return(recipe, nil)
	suite.recipeRepo.EXPECT().GetRecipeMemberships(mock.Anything, uint(0), []uint{4}).Return(map[uint]bool{}, map[uint]bool{}, nil)
	suite.userRepo.EXPECT().GetFollowedAuthorIDs(mock.Anything, uint(0), []uint{2}).Return(map[uint]bool{}, nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/api/recipes/4", nil))

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{
		"id": 4,
		"tags": [{"id": 1, "name": "Breakfast", "color": "#E26C2D", "slug": "breakfast"}],
		"author": {"email": "baker@example.com", "id": 2, "username": "baker", "first_name": "", "last_name": "", "is_subscribed": false},
		"ingredients": [{"id": 7, "name": "bread", "measurement_unit": "slice", "amount": 2}],
		"is_favorited": false,
		"is_in_shopping_cart": false,
		"name": "Toast",
		"image": "/media/recipes/images/toast.png",
		"text": "Toast it.",
		"cooking_time": 3
	}`, recorder.Body.String())
}

func (suite *RouterTestSuite) TestCreateRecipe_RequiresUser() {
	recorder := suite.serve(httptest.NewRequest(http.MethodPost, "/api/recipes", bytes.NewBufferString(`{}`)))

	suite.Equal(http.StatusUnauthorized, recorder.Code)

	var body map[string]any
	suite.decode(recorder, &body)
	suite.Contains(body["errors"], "authentication credentials were not provided")
}

func (suite *RouterTestSuite) TestCreateRecipe_ValidationDetails() {
	request := httptest.NewRequest(http.MethodPost, "/api/recipes", bytes.NewBufferString(
		`{"name": "Toast", "text": "Toast it.", "cooking_time": 3, "image": "data:image/png;base64,AAAA", "tags": [1, 1], "ingredients": [{"id": 7, "amount": 2}]}`))
	request.Header.Set("Content-Type", "application/json")

	suite.catalogRepo.EXPECT().ExistingIngredientIDs(mock.Anything, []uint{7}).Return(map[uint]bool{7: true}, nil)

	recorder := suite.serve(suite.signedIn(request))

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.JSONEq(`{"errors": "validation failed", "details": ["tags: tag 1 is listed more than once"]}`, recorder.Body.String())
}

func (suite *RouterTestSuite) TestCreateRecipe_MultipartUpload() {
	var buffer bytes.Buffer

	form := multipart.NewWriter(&buffer)
	suite.Require().NoError(form.WriteField("name", "Toast"))
	suite.Require().NoError(form.WriteField("text", "Toast it."))
	suite.Require().NoError(form.WriteField("cooking_time", "3"))
	suite.Require().NoError(form.WriteField("tags", "1"))
	suite.Require().NoError(form.WriteField("ingredients", `[{"id": 7, "amount": 2}]`))
	file, err := form.CreateFormFile("image", "toast.png")
	suite.Require().NoError(err)
	_, err = file.Write([]byte("png bytes"))
	suite.Require().NoError(err)
	suite.Require().NoError(form.Close())

	request := httptest.NewRequest(http.MethodPost, "/api/recipes", &buffer)
	request.Header.Set("Content-Type", form.FormDataContentType())

	created := &model.Recipe{ID: 9, AuthorID: 1, Name: "Toast", Image: "recipes/images/x.png", Author: *suite.chef}

	suite.catalogRepo.EXPECT().ExistingIngredientIDs(mock.Anything, []uint{7}).Return(map[uint]bool{7: true}, nil)
	suite.catalogRepo.EXPECT().GetTagsByIDs(mock.Anything, []uint{1}).Return(map[uint]model.Tag{1: {Model: gorm.Model{ID: 1}}}, nil)
	suite.images.EXPECT().SaveUpload([]byte("png bytes")).Return("recipes/images/x.png", nil)
	suite.recipeRepo.EXPECT().CreateRecipe(mock.Anything, mock.Anything, []uint{1}, []model.IngredientAmount{{IngredientID: 7, Amount: 2}}).Return(created, nil)
	suite.recipeRepo.EXPECT().GetRecipeByID(mock.Anything, uint(9)).Return(created, nil)
	suite.recipeRepo.EXPECT().GetRecipeMemberships(mock.Anything, uint(1), []uint{9}).Return(map[uint]bool{}, map[uint]bool{}, nil)
	suite.userRepo.EXPECT().GetFollowedAuthorIDs(mock.Anything, uint(1), []uint{1}).Return(map[uint]bool{}, nil)

	recorder := suite.serve(suite.signedIn(request))

	suite.Equal(http.StatusCreated, recorder.Code)

	var body rest.Recipe
	suite.decode(recorder, &body)
	suite.Equal(uint(9), body.ID)
	suite.Equal("/media/recipes/images/x.png", body.Image)
}

func (suite *RouterTestSuite) TestCreateRecipe_UploadTooLarge() {
	var buffer bytes.Buffer

	form := multipart.NewWriter(&buffer)
	suite.Require().NoError(form.WriteField("name", "Toast"))
	file, err := form.CreateFormFile("image", "toast.png")
	suite.Require().NoError(err)
	_, err = file.Write([]byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a})
	suite.Require().NoError(err)
	_, err = file.Write(make([]byte, 10<<20))
	suite.Require().NoError(err)
	suite.Require().NoError(form.Close())

	request := httptest.NewRequest(http.MethodPost, "/api/recipes", &buffer)
	request.Header.Set("Content-Type", form.FormDataContentType())

	recorder := suite.serve(suite.signedIn(request))

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(recorder.Body.String(), "image: exceeds 10485760 bytes")
}

func (suite *RouterTestSuite) TestListRecipes_PageOutOfRange() {
	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/api/recipes?page=9223372036854775807&limit=2", nil))

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(recorder.Body.String(), "page: must be an integer between 1 and 2147483647")
}

func (suite *RouterTestSuite) TestDeleteRecipe_NotAuthor() {
	suite.recipeRepo.EXPECT().GetRecipeByID(mock.Anything, uint(5)).Return(&model.Recipe{ID: 5, AuthorID: 2}, nil)

	recorder := suite.serve(suite.signedIn(httptest.NewRequest(http.MethodDelete, "/api/recipes/5", nil)))

	suite.Equal(http.StatusForbidden, recorder.Code)
}

func (suite *RouterTestSuite) TestAddFavorite() {
	suite.recipeRepo.EXPECT().GetRecipeByID(mock.Anything, uint(5)).Return(&model.Recipe{ID: 5, AuthorID: 2, Name: "Toast", CookingTime: 3}, nil)
	suite.membershipRepo.EXPECT().AddMembership(mock.Anything, model.KindFavorite, uint(1), uint(5)).Return(nil)

	recorder := suite.serve(suite.signedIn(httptest.NewRequest(http.MethodPost, "/api/recipes/5/favorite", nil)))

	suite.Equal(http.StatusCreated, recorder.Code)
	suite.JSONEq(`{"id": 5, "name": "Toast", "image": "", "cooking_time": 3}`, recorder.Body.String())
}

func (suite *RouterTestSuite) TestAddToCart_Twice() {
	suite.recipeRepo.EXPECT().GetRecipeByID(mock.Anything, uint(5)).Return(&model.Recipe{ID: 5}, nil)
	suite.membershipRepo.EXPECT().AddMembership(mock.Anything, model.KindCart, uint(1), uint(5)).
		Return(fmt.Errorf("%w: shopping cart 5 already exists for user 1", model.ErrConflict))

	recorder := suite.serve(suite.signedIn(httptest.NewRequest(http.MethodPost, "/api/recipes/5/shopping_cart", nil)))

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *RouterTestSuite) TestRemoveFromCart() {
	suite.recipeRepo.EXPECT().GetRecipeByID(mock.Anything, uint(5)).Return(&model.Recipe{ID: 5}, nil)
	suite.membershipRepo.EXPECT().RemoveMembership(mock.Anything, model.KindCart, uint(1), uint(5)).Return(nil)

	recorder := suite.serve(suite.signedIn(httptest.NewRequest(http.MethodDelete, "/api/recipes/5/shopping_cart", nil)))

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *RouterTestSuite) TestDownloadShoppingCart() {
	suite.shoppingRepo.EXPECT().CountCartItems(mock.Anything, uint(1)).Return(int64(1), nil)
	suite.shoppingRepo.EXPECT().GetShoppingListEntries(mock.Anything, uint(1)).Return([]model.ShoppingListEntry{
		{Name: "bread", MeasurementUnit: "slice", Amount: 2},
	}, nil)

	recorder := suite.serve(suite.signedIn(httptest.NewRequest(http.MethodGet, "/api/recipes/download_shopping_cart", nil)))

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("text/plain; charset=utf-8", recorder.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="chef_shopping_list.txt"`, recorder.Header().Get("Content-Disposition"))
	suite.Equal("Date: 2024-03-09\n\n| bread | (slice) | 2\n\nTest Kitchen (2024)\n\nAll terms served", recorder.Body.String())
}

func (suite *RouterTestSuite) TestDownloadShoppingCart_Empty() {
	suite.shoppingRepo.EXPECT().CountCartItems(mock.Anything, uint(1)).Return(int64(0), nil)

	recorder := suite.serve(suite.signedIn(httptest.NewRequest(http.MethodGet, "/api/recipes/download_shopping_cart", nil)))

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.JSONEq(`{"errors": "shopping cart is empty"}`, recorder.Body.String())
}

func (suite *RouterTestSuite) TestSubscriptions_PagesAndLimitsRecipes() {
	author := &model.User{Model: gorm.Model{ID: 2}, Username: "baker", Email: "baker@example.com"}

	suite.userRepo.EXPECT().GetFollowedAuthors(mock.Anything, uint(1), 1, 0).Return([]*model.User{author}, int64(3), nil)
	suite.recipeRepo.EXPECT().CountRecipesByAuthors(mock.Anything, []uint{2}).Return(map[uint]int64{2: 4}, nil)
	suite.recipeRepo.EXPECT().GetRecipesByAuthor(mock.Anything, uint(2), 1).Return([]*model.Recipe{{ID: 8, AuthorID: 2, Name: "Rye"}}, nil)

	request := httptest.NewRequest(http.MethodGet, "http://foodgram.test/api/users/subscriptions?limit=1&recipes_limit=1", nil)
	recorder := suite.serve(suite.signedIn(request))

	suite.Equal(http.StatusOK, recorder.Code)

	var body rest.Page[rest.Follow]
	suite.decode(recorder, &body)
	suite.Equal(int64(3), body.Count)
	suite.Nil(body.Previous)
	suite.Require().NotNil(body.Next)
	suite.Equal("http://foodgram.test/api/users/subscriptions?limit=1&page=2&recipes_limit=1", *body.Next)
	suite.Require().Len(body.Results, 1)
	suite.True(body.Results[0].IsSubscribed)
	suite.Equal(int64(4), body.Results[0].RecipesCount)
	suite.Len(body.Results[0].Recipes, 1)
}

func (suite *RouterTestSuite) TestSubscribe_Self() {
	suite.userRepo.EXPECT().GetUserByID(mock.Anything, uint(1)).Return(suite.chef, nil)

	recorder := suite.serve(suite.signedIn(httptest.NewRequest(http.MethodPost, "/api/users/1/subscribe", nil)))

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *RouterTestSuite) TestMe_RequiresUser() {
	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *RouterTestSuite) TestListRecipes_BadFlag() {
	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/api/recipes?is_favorited=maybe", nil))

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(recorder.Body.String(), "is_favorited: must be 0 or 1")
}

func (suite *RouterTestSuite) TestInternalErrorIsHidden() {
	suite.catalogRepo.EXPECT().GetTags(mock.Anything).Return(nil, errors.New("pq: password authentication failed"))

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/api/tags", nil))

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.JSONEq(`{"errors": "Internal Server Error"}`, recorder.Body.String())
	suite.Equal(1, suite.observedLogs.FilterMessage("request failed").Len())
}

func (suite *RouterTestSuite) TestServesMedia() {
	directory := filepath.Join(suite.mediaRoot, "recipes", "images")
	suite.Require().NoError(os.MkdirAll(directory, 0o755))
	suite.Require().NoError(os.WriteFile(filepath.Join(directory, "toast.png"), []byte("png bytes"), 0o600))

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/media/recipes/images/toast.png", nil))

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("png bytes", recorder.Body.String())
}

func TestStatusFor(t *testing.T) {
	tests := map[error]int{
		auth.ErrUnauthenticated:                      http.StatusUnauthorized,
		model.NewValidationError(errors.New("x")):    http.StatusBadRequest,
		model.ErrConflict:                            http.StatusBadRequest,
		model.ErrSelfFollow:                          http.StatusBadRequest,
		model.ErrEmptyCart:                           http.StatusBadRequest,
		fmt.Errorf("wrapped: %w", model.ErrNotFound): http.StatusNotFound,
		model.ErrPermissionDenied:                    http.StatusForbidden,
		errors.New("boom"):                           http.StatusInternalServerError,
	}

	for err, status := range tests {
		if got := rest.StatusFor(err); got != status {
			t.Errorf("StatusFor(%v) = %d, want %d", err, got, status)
		}
	}
}
