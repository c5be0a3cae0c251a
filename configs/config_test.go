package configs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/Foodgram/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("/var/foodgram/media", config.Server.MediaRoot)
	suite.Equal("/media/", config.Server.MediaURL)
	suite.Equal(12, config.Server.PageSize)
	suite.Equal("audience", config.Auth.Audience)
	suite.Equal("domain", config.Auth.Domain)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal(uint(2), config.Limits.MinCookingTime)
	suite.Equal(uint(600), config.Limits.MaxCookingTime)
	suite.Equal(uint(1), config.Limits.MinAmount)
	suite.Equal(uint(5000), config.Limits.MaxAmount)
	suite.Equal("Test Kitchen", config.ShoppingList.Company)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("FOODGRAM_DB_HOST", "test.local")
	suite.T().Setenv("FOODGRAM_DB_PORT", "1234")
	suite.T().Setenv("FOODGRAM_DB_USER", "testuser")
	suite.T().Setenv("FOODGRAM_DB_PASSWORD", "test123")
	suite.T().Setenv("FOODGRAM_DB_DATABASE", "testdb")
	suite.T().Setenv("FOODGRAM_SERVER_PORT", "666")
	suite.T().Setenv("FOODGRAM_AUTH_SECRETKEY", "secret")
	suite.T().Setenv("FOODGRAM_LIMITS_MAXAMOUNT", "100")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(666, config.Server.Port)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal(uint(100), config.Limits.MaxAmount)
}

func (suite *ConfigTestSuite) TestGetConfig_Defaults() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("FOODGRAM_DB_HOST", "test.local")
	suite.T().Setenv("FOODGRAM_DB_PASSWORD", "test123")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal(5432, config.DB.Port)
	suite.Equal("foodgram", config.DB.Database)
	suite.Equal(8080, config.Server.Port)
	suite.Equal("media", config.Server.MediaRoot)
	suite.Equal(6, config.Server.PageSize)
	suite.Equal(uint(1), config.Limits.MinCookingTime)
	suite.Equal(uint(32000), config.Limits.MaxCookingTime)
	suite.Equal(uint(1), config.Limits.MinAmount)
	suite.Equal(uint(32000), config.Limits.MaxAmount)
	suite.Equal("Foodgram Inc Corporation", config.ShoppingList.Company)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("FOODGRAM_DB_HOST", "env.local")
	suite.T().Setenv("FOODGRAM_DB_USER", "envuser")
	suite.T().Setenv("FOODGRAM_AUTH_SECRETKEY", "envsecret")
	suite.T().Setenv("FOODGRAM_SHOPPINGLIST_COMPANY", "Env Kitchen")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("envsecret", config.Auth.SecretKey)
	suite.Equal("Env Kitchen", config.ShoppingList.Company)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileReturnsError() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Nil(config)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingValues() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.EqualError(err, "DB.Host: required validation failed, DB.Password: required validation failed")
}

func (suite *ConfigTestSuite) TestGetConfig_InvertedLimits() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/bad_limits.toml", logger)

	suite.Nil(config)
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
	suite.ErrorContains(err, "MinCookingTime")
}
