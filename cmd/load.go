package cmd

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
	"droscher.com/Foodgram/pkg/server"
)

const csvFields = 2

type LoadIngredientsCmd struct {
	ConfigFile string `default:".Foodgram.toml"       help:"Path to config file"                      short:"c"`
	File       string `default:"data/ingredients.csv" help:"CSV file with name,measurement_unit rows" short:"f"`
}

func (l *LoadIngredientsCmd) Run(ctx *Context) error {
	logger := newLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(l.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	file, err := os.Open(l.File)
	if err != nil {
		return fmt.Errorf("opening %s: %w", l.File, err)
	}
	defer file.Close()

	ingredients, err := ReadIngredients(file)
	if err != nil {
		// Bad rows are reported but do not stop the good ones from loading.
		for _, rowErr := range multierr.Errors(err) {
			logger.Warn("skipping ingredient row", zap.Error(rowErr))
		}
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	_, err = server.NewCatalogServer(repo, logger).ImportIngredients(context.Background(), ingredients)

	return err
}

// ReadIngredients parses name,measurement_unit rows. Malformed rows are
// skipped and returned together as one multierr error alongside the rows
// that did parse.
func ReadIngredients(reader io.Reader) ([]model.Ingredient, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	var (
		ingredients []model.Ingredient
		rowErrs     error
	)

	for line := 1; ; line++ {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			rowErrs = multierr.Append(rowErrs, fmt.Errorf("line %d: %w", line, err))

			continue
		}

		if len(record) != csvFields {
			rowErrs = multierr.Append(rowErrs, fmt.Errorf("line %d: expected %d fields, got %d", line, csvFields, len(record)))

			continue
		}

		name := strings.TrimSpace(record[0])
		unit := strings.TrimSpace(record[1])

		if name == "" || unit == "" {
			rowErrs = multierr.Append(rowErrs, fmt.Errorf("line %d: name and measurement unit are required", line))

			continue
		}

		ingredients = append(ingredients, model.Ingredient{Name: name, MeasurementUnit: unit})
	}

	return ingredients, rowErrs
}
