package rest

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/auth"
)

// NewRouter mounts the API under /api and serves stored images from
// mediaRoot under mediaURL. Reads are open to anonymous callers; every write
// requires a user.
func NewRouter(handler *Handler, authManager *auth.Manager, mediaRoot string, mediaURL string, logger *zap.Logger) http.Handler {
	fail := ErrorWriter(logger)
	requireUser := auth.RequireUser(fail)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(AccessLog(logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Errors: http.StatusText(http.StatusNotFound)})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authManager.Authenticator(fail))

		r.Get("/tags", handler.ListTags)
		r.Get("/tags/{id}", handler.GetTag)
		r.Get("/ingredients", handler.ListIngredients)
		r.Get("/ingredients/{id}", handler.GetIngredient)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", handler.ListRecipes)
			r.With(requireUser).Get("/download_shopping_cart", handler.DownloadShoppingCart)
			r.Get("/{id}", handler.GetRecipe)

			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/", handler.CreateRecipe)
				r.Patch("/{id}", handler.UpdateRecipe)
				r.Delete("/{id}", handler.DeleteRecipe)
				r.Post("/{id}/favorite", handler.AddFavorite)
				r.Delete("/{id}/favorite", handler.RemoveFavorite)
				r.Post("/{id}/shopping_cart", handler.AddToCart)
				r.Delete("/{id}/shopping_cart", handler.RemoveFromCart)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", handler.AddUser)
			r.With(requireUser).Get("/me", handler.Me)
			r.With(requireUser).Get("/subscriptions", handler.Subscriptions)
			r.Get("/{id}", handler.GetUser)
			r.With(requireUser).Post("/{id}/subscribe", handler.Subscribe)
			r.With(requireUser).Delete("/{id}/subscribe", handler.Unsubscribe)
		})
	})

	prefix := "/" + strings.Trim(mediaURL, "/")
	r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServer(http.Dir(mediaRoot))))

	return r
}
