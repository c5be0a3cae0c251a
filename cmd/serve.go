package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/composition"
	"droscher.com/Foodgram/pkg/media"
	"droscher.com/Foodgram/pkg/membership"
	"droscher.com/Foodgram/pkg/repository"
	"droscher.com/Foodgram/pkg/server"
	"droscher.com/Foodgram/pkg/server/rest"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".Foodgram.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logger := newLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	images, err := media.NewStore(conf.Server.MediaRoot)
	if err != nil {
		logger.Error("error preparing media storage", zap.String("root", conf.Server.MediaRoot), zap.Error(err))

		return err
	}

	stores := server.Stores{Recipes: repo, Catalog: repo, Users: repo, Shopping: repo}
	memberships := membership.NewEngine(repo, logger)
	validator := composition.New(conf.Limits, repo)

	recipes := server.NewRecipeServer(stores, validator, memberships, images, conf.Server.PageSize, conf.ShoppingList.Company, logger)
	users := server.NewUserServer(repo, repo, memberships, conf.Server.PageSize, logger)
	catalog := server.NewCatalogServer(repo, logger)

	handler := rest.NewHandler(recipes, users, catalog, conf.Server.MediaURL, logger)
	router := rest.NewRouter(handler, auth.NewAuthManager(conf, repo, logger), conf.Server.MediaRoot, conf.Server.MediaURL, logger)

	address := fmt.Sprintf(":%d", conf.Server.Port)

	// Configure CORS first
	corsHandler := configureCORS(router)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("listening", zap.String("address", address))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(router http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"content-encoding",
			"content-length",
			"content-type",
			"origin",
			"referer",
			"user-agent",
			"x-request-id",
		},
		ExposedHeaders: []string{
			"content-disposition",
			"x-request-id",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false, // Handle OPTIONS requests in CORS middleware
	})

	return corsOpts.Handler(router)
}
