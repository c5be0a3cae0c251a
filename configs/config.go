package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"foodgram"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port      int    `default:"8080"`
	MediaRoot string `default:"media"`
	MediaURL  string `default:"/media/"`
	PageSize  int    `default:"6"`
}

// Limits bounds the numeric fields of a recipe. Both the cooking time and the
// per-ingredient amount checks read from here.
type Limits struct {
	MinCookingTime uint `default:"1"`
	MaxCookingTime uint `default:"32000"`
	MinAmount      uint `default:"1"`
	MaxAmount      uint `default:"32000"`
}

type ShoppingList struct {
	Company string `default:"Foodgram Inc Corporation"`
}

type Config struct {
	DB           DB
	Server       Server
	Auth         Auth
	Limits       Limits
	ShoppingList ShoppingList
}

type Auth struct {
	SecretKey string
	Audience  string
	Domain    string
}

const envPrefix = "FOODGRAM" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err := config.Limits.check(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l Limits) check() error {
	if l.MinCookingTime > l.MaxCookingTime {
		return fmt.Errorf("%w: Limits.MinCookingTime exceeds Limits.MaxCookingTime", ErrConfiguration)
	}

	if l.MinAmount > l.MaxAmount {
		return fmt.Errorf("%w: Limits.MinAmount exceeds Limits.MaxAmount", ErrConfiguration)
	}

	return nil
}
