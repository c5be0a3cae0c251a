// Package composition checks a recipe's tag set, ingredient amounts and
// scalar fields before the recipe is written.
package composition

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
)

type IngredientCatalog interface {
	ExistingIngredientIDs(ctx context.Context, ingredientIDs []uint) (map[uint]bool, error)
}

// Payload is a candidate recipe. On update, a nil TagIDs means the current
// tags are kept; Name, Text and CookingTime are expected to already carry the
// stored values for fields the caller did not send.
type Payload struct {
	Name        string `json:"name"         validate:"required,max=200"`
	Text        string `json:"text"         validate:"required,max=2048"`
	Image       string `json:"image"`
	CookingTime uint   `json:"cooking_time"`
	TagIDs      []uint `json:"tags"`
	Ingredients []model.IngredientAmount
}

type Validator struct {
	limits   configs.Limits
	catalog  IngredientCatalog
	validate *validator.Validate
}

func New(limits configs.Limits, catalog IngredientCatalog) *Validator {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return &Validator{limits: limits, catalog: catalog, validate: validate}
}

func (v *Validator) ValidateCreate(ctx context.Context, payload Payload) error {
	violations := model.NewValidationError()

	if payload.Image == "" {
		violations.Addf("image: is required")
	}

	if payload.TagIDs == nil {
		payload.TagIDs = []uint{}
	}

	return v.run(ctx, payload, violations)
}

func (v *Validator) ValidateUpdate(ctx context.Context, payload Payload) error {
	return v.run(ctx, payload, model.NewValidationError())
}

// run collects every violated rule before failing. Only a failing catalog
// lookup is returned as a plain error.
func (v *Validator) run(ctx context.Context, payload Payload, violations *model.ValidationError) error {
	v.checkFields(payload, violations)
	checkTags(payload.TagIDs, violations)

	if payload.CookingTime < v.limits.MinCookingTime || payload.CookingTime > v.limits.MaxCookingTime {
		violations.Addf("cooking_time: must be between %d and %d minutes", v.limits.MinCookingTime, v.limits.MaxCookingTime)
	}

	if err := v.checkIngredients(ctx, payload.Ingredients, violations); err != nil {
		return err
	}

	return violations.Err()
}

func (v *Validator) checkFields(payload Payload, violations *model.ValidationError) {
	err := v.validate.Struct(payload)
	if err == nil {
		return
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		violations.Add(err)

		return
	}

	for _, fieldError := range fieldErrors {
		violations.Addf("%s: %s", fieldError.Field(), friendlyMessage(fieldError))
	}
}

// checkTags treats nil as "not supplied" and an empty slice as a violation.
func checkTags(tagIDs []uint, violations *model.ValidationError) {
	if tagIDs == nil {
		return
	}

	if len(tagIDs) == 0 {
		violations.Addf("tags: must not be empty")

		return
	}

	seen := make(map[uint]bool, len(tagIDs))

	for _, tagID := range tagIDs {
		if seen[tagID] {
			violations.Addf("tags: tag %d is listed more than once", tagID)
		}

		seen[tagID] = true
	}
}

func (v *Validator) checkIngredients(ctx context.Context, ingredients []model.IngredientAmount, violations *model.ValidationError) error {
	if len(ingredients) == 0 {
		violations.Addf("ingredients: must not be empty")

		return nil
	}

	seen := make(map[uint]bool, len(ingredients))
	ids := make([]uint, 0, len(ingredients))

	for _, ingredient := range ingredients {
		if seen[ingredient.IngredientID] {
			violations.Addf("ingredients: ingredient %d is listed more than once", ingredient.IngredientID)
		} else {
			ids = append(ids, ingredient.IngredientID)
		}

		seen[ingredient.IngredientID] = true

		if ingredient.Amount < v.limits.MinAmount || ingredient.Amount > v.limits.MaxAmount {
			violations.Addf("ingredients: amount %d of ingredient %d must be between %d and %d",
				ingredient.Amount, ingredient.IngredientID, v.limits.MinAmount, v.limits.MaxAmount)
		}
	}

	existing, err := v.catalog.ExistingIngredientIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("checking ingredients: %w", err)
	}

	for _, id := range ids {
		if !existing[id] {
			violations.Addf("ingredients: ingredient %d does not exist", id)
		}
	}

	return nil
}

func friendlyMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fieldError.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldError.Param())
	default:
		return "is invalid"
	}
}
