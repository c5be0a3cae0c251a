package rest

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/server"
)

const (
	maxUploadSize   = 10 << 20
	maxBodySize     = 16 << 20
	multipartPrefix = "multipart/form-data"

	// Keeps (page-1)*limit well inside int64.
	maxPageParam = math.MaxInt32
)

type Handler struct {
	recipes  *server.RecipeServer
	users    *server.UserServer
	catalog  *server.CatalogServer
	mediaURL string
	logger   *zap.Logger
	fail     auth.ErrorHandler
}

func NewHandler(recipes *server.RecipeServer, users *server.UserServer, catalog *server.CatalogServer, mediaURL string, logger *zap.Logger) *Handler {
	return &Handler{recipes: recipes, users: users, catalog: catalog, mediaURL: mediaURL, logger: logger, fail: ErrorWriter(logger)}
}

func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.catalog.ListTags(r.Context())
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, TagsFromModel(tags))
}

func (h *Handler) GetTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	tag, err := h.catalog.GetTag(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, TagFromModel(*tag))
}

func (h *Handler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.catalog.ListIngredients(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, IngredientsFromModel(ingredients))
}

func (h *Handler) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	ingredient, err := h.catalog.GetIngredient(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, IngredientFromModel(*ingredient))
}

func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	filter, err := recipeFilterFromQuery(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)

		return
	}

	viewer, _ := auth.UserFromContext(r.Context())

	page, err := h.recipes.ListRecipes(r.Context(), viewer, filter)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, pageOf(r, page, RecipesFromDetails(page.Results, h.mediaURL)))
}

func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	viewer, _ := auth.UserFromContext(r.Context())

	details, err := h.recipes.GetRecipe(r.Context(), viewer, id)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, RecipeFromDetails(details, h.mediaURL))
}

func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	request, err := decodeRecipe(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	user, _ := auth.UserFromContext(r.Context())

	details, err := h.recipes.CreateRecipe(r.Context(), user, request)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, RecipeFromDetails(details, h.mediaURL))
}

func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	request, err := decodeRecipe(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	user, _ := auth.UserFromContext(r.Context())

	details, err := h.recipes.UpdateRecipe(r.Context(), user, id, request)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, RecipeFromDetails(details, h.mediaURL))
}

func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	user, _ := auth.UserFromContext(r.Context())

	if err := h.recipes.DeleteRecipe(r.Context(), user, id); err != nil {
		h.fail(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.addRecipeMembership(w, r, h.recipes.AddFavorite)
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.removeRecipeMembership(w, r, h.recipes.RemoveFavorite)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	h.addRecipeMembership(w, r, h.recipes.AddToCart)
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.removeRecipeMembership(w, r, h.recipes.RemoveFromCart)
}

func (h *Handler) DownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	list, err := h.recipes.DownloadShoppingList(r.Context(), user)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", list.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, list.Content)
}

func (h *Handler) AddUser(w http.ResponseWriter, r *http.Request) {
	var request server.RegisterRequest
	if err := decodeJSON(r, &request); err != nil {
		h.fail(w, r, err)

		return
	}

	user, err := h.users.AddUser(r.Context(), request)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, UserFromModel(user, false))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	viewer, _ := auth.UserFromContext(r.Context())

	details, err := h.users.GetUser(r.Context(), viewer, id)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, UserFromModel(details.User, details.IsSubscribed))
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())
	details := h.users.Me(r.Context(), user)

	writeJSON(w, http.StatusOK, UserFromModel(details.User, details.IsSubscribed))
}

func (h *Handler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	options, err := listOptionsFromQuery(query)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	user, _ := auth.UserFromContext(r.Context())

	page, err := h.users.Subscriptions(r.Context(), user, options, recipesLimit(query))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, pageOf(r, page, FollowsFromDetails(page.Results, h.mediaURL)))
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	user, _ := auth.UserFromContext(r.Context())

	details, err := h.users.Subscribe(r.Context(), user, id, recipesLimit(r.URL.Query()))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, FollowFromDetails(details, h.mediaURL))
}

func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	user, _ := auth.UserFromContext(r.Context())

	if err := h.users.Unsubscribe(r.Context(), user, id); err != nil {
		h.fail(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type recipeAdder func(ctx context.Context, user *model.User, recipeID uint) (*model.Recipe, error)

type recipeRemover func(ctx context.Context, user *model.User, recipeID uint) error

func (h *Handler) addRecipeMembership(w http.ResponseWriter, r *http.Request, add recipeAdder) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	user, _ := auth.UserFromContext(r.Context())

	recipe, err := add(r.Context(), user, id)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, RecipeShortFromModel(recipe, h.mediaURL))
}

func (h *Handler) removeRecipeMembership(w http.ResponseWriter, r *http.Request, remove recipeRemover) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	user, _ := auth.UserFromContext(r.Context())

	if err := remove(r.Context(), user, id); err != nil {
		h.fail(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID reads the {id} route parameter. Anything that is not a positive
// integer cannot name a row, so it is reported as not found.
func pathID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q is not a valid id", model.ErrNotFound, raw)
	}

	return uint(id), nil
}

func decodeJSON(r *http.Request, target any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(target); err != nil {
		return model.NewValidationError(fmt.Errorf("body: %s", err.Error())).Err()
	}

	return nil
}

// decodeRecipe accepts a JSON body with an inline data URI image or a
// multipart form carrying the image as a file.
func decodeRecipe(r *http.Request) (server.RecipeRequest, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), multipartPrefix) {
		return decodeRecipeForm(r)
	}

	var body recipeBody
	if err := decodeJSON(r, &body); err != nil {
		return server.RecipeRequest{}, err
	}

	return body.toRequest(), nil
}

func decodeRecipeForm(r *http.Request) (server.RecipeRequest, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return server.RecipeRequest{}, model.NewValidationError(fmt.Errorf("body: %s", err.Error())).Err()
	}

	violations := model.NewValidationError()
	body := recipeBody{}

	if values, found := r.MultipartForm.Value["name"]; found && len(values) > 0 {
		body.Name = &values[0]
	}

	if values, found := r.MultipartForm.Value["text"]; found && len(values) > 0 {
		body.Text = &values[0]
	}

	if values, found := r.MultipartForm.Value["cooking_time"]; found && len(values) > 0 {
		cookingTime, err := strconv.ParseUint(values[0], 10, strconv.IntSize)
		if err != nil {
			violations.Addf("cooking_time: must be a positive integer")
		} else {
			value := uint(cookingTime)
			body.CookingTime = &value
		}
	}

	if values, found := r.MultipartForm.Value["tags"]; found {
		body.Tags = make([]uint, 0, len(values))

		for _, value := range values {
			tagID, err := strconv.ParseUint(value, 10, strconv.IntSize)
			if err != nil {
				violations.Addf("tags: %q is not a valid id", value)

				continue
			}

			body.Tags = append(body.Tags, uint(tagID))
		}
	}

	if values, found := r.MultipartForm.Value["ingredients"]; found && len(values) > 0 {
		if err := json.Unmarshal([]byte(values[0]), &body.Ingredients); err != nil {
			violations.Addf("ingredients: must be a JSON list of {id, amount}")
		}
	}

	request := body.toRequest()

	if file, _, err := r.FormFile("image"); err == nil {
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
		if err != nil {
			return server.RecipeRequest{}, fmt.Errorf("reading uploaded image: %w", err)
		}

		if len(data) > maxUploadSize {
			violations.Addf("image: exceeds %d bytes", maxUploadSize)
		} else {
			request.ImageUpload = data
		}
	} else if values, found := r.MultipartForm.Value["image"]; found && len(values) > 0 {
		request.Image = values[0]
	}

	return request, violations.Err()
}

func listOptionsFromQuery(query url.Values) (server.ListOptions, error) {
	var options server.ListOptions

	violations := model.NewValidationError()

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 || page > maxPageParam {
			violations.Addf("page: must be an integer between 1 and %d", maxPageParam)
		}

		options.Page = page
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxPageParam {
			violations.Addf("limit: must be an integer between 1 and %d", maxPageParam)
		}

		options.Limit = limit
	}

	return options, violations.Err()
}

func recipeFilterFromQuery(query url.Values) (server.RecipeFilter, error) {
	options, err := listOptionsFromQuery(query)
	if err != nil {
		return server.RecipeFilter{}, err
	}

	filter := server.RecipeFilter{TagSlugs: query["tags"], ListOptions: options}
	violations := model.NewValidationError()

	if raw := query.Get("author"); raw != "" {
		authorID, err := strconv.ParseUint(raw, 10, strconv.IntSize)
		if err != nil {
			violations.Addf("author: %q is not a valid id", raw)
		} else {
			author := uint(authorID)
			filter.AuthorID = &author
		}
	}

	filter.IsFavorited = parseFlag(query, "is_favorited", violations)
	filter.IsInShoppingCart = parseFlag(query, "is_in_shopping_cart", violations)

	return filter, violations.Err()
}

// parseFlag reads 1/0 (or true/false). An absent flag is nil.
func parseFlag(query url.Values, name string, violations *model.ValidationError) *bool {
	raw := query.Get(name)
	if raw == "" {
		return nil
	}

	switch strings.ToLower(raw) {
	case "1", "true":
		value := true

		return &value
	case "0", "false":
		value := false

		return &value
	default:
		violations.Addf("%s: must be 0 or 1", name)

		return nil
	}
}

// recipesLimit truncates follow previews only when the parameter is a
// positive integer. Zero means no limit.
func recipesLimit(query url.Values) int {
	limit, err := strconv.Atoi(query.Get("recipes_limit"))
	if err != nil || limit < 1 {
		return 0
	}

	return limit
}

func pageOf[T any, R any](r *http.Request, page *server.Page[T], results []R) Page[R] {
	converted := Page[R]{Count: page.Count, Results: results}

	if int64(page.Page)*int64(page.Limit) < page.Count {
		converted.Next = pageLink(r, page.Page+1)
	}

	if page.Page > 1 {
		converted.Previous = pageLink(r, page.Page-1)
	}

	return converted
}

func pageLink(r *http.Request, page int) *string {
	link := *r.URL
	query := link.Query()
	query.Set("page", strconv.Itoa(page))
	link.RawQuery = query.Encode()
	link.Host = r.Host
	link.Scheme = "http"

	if r.TLS != nil {
		link.Scheme = "https"
	}

	value := link.String()

	return &value
}
