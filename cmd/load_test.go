package cmd_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/multierr"

	"droscher.com/Foodgram/cmd"
	"droscher.com/Foodgram/pkg/model"
)

type LoadTestSuite struct {
	suite.Suite
}

func TestLoadTestSuite(t *testing.T) {
	suite.Run(t, new(LoadTestSuite))
}

func (suite *LoadTestSuite) TestReadIngredients() {
	input := "абрикосовое варенье,г\nflour, g\negg,pcs\n"

	ingredients, err := cmd.ReadIngredients(strings.NewReader(input))

	suite.Require().NoError(err)
	suite.Equal([]model.Ingredient{
		{Name: "абрикосовое варенье", MeasurementUnit: "г"},
		{Name: "flour", MeasurementUnit: "g"},
		{Name: "egg", MeasurementUnit: "pcs"},
	}, ingredients)
}

func (suite *LoadTestSuite) TestReadIngredients_CollectsBadRows() {
	input := "salt,g\njust a name\n,ml\nwater,ml,extra\nsugar,g\n"

	ingredients, err := cmd.ReadIngredients(strings.NewReader(input))

	suite.Equal([]model.Ingredient{
		{Name: "salt", MeasurementUnit: "g"},
		{Name: "sugar", MeasurementUnit: "g"},
	}, ingredients)
	suite.Require().Error(err)

	rowErrs := multierr.Errors(err)
	suite.Require().Len(rowErrs, 3)
	suite.EqualError(rowErrs[0], "line 2: expected 2 fields, got 1")
	suite.EqualError(rowErrs[1], "line 3: name and measurement unit are required")
	suite.EqualError(rowErrs[2], "line 4: expected 2 fields, got 3")
}

func (suite *LoadTestSuite) TestReadIngredients_Empty() {
	ingredients, err := cmd.ReadIngredients(strings.NewReader(""))

	suite.NoError(err)
	suite.Empty(ingredients)
}
