// Package recipe contains the core domain model for recipes, ingredients,
// and recipe adaptation. Recipes are treated as immutable values: every
// transformation returns a new Recipe and leaves its input untouched.
package recipe

import (
	"strings"

	"github.com/google/uuid"
)

// Recipe represents a recipe as an immutable value within the engine.
type Recipe struct {
	ID           uuid.UUID
	Title        string
	MealType     MealType
	Cuisine      CuisineType
	Ingredients  []RecipeIngredient
	Nutrition    NutritionInfo // per serving
	Difficulty   DifficultyLevel
	Servings     int
	Instructions string
}

// Validate validates the recipe
func (r Recipe) Validate() error {
	if r.Title == "" {
		return ErrEmptyTitle
	}
	if r.Servings <= 0 {
		return ErrInvalidServings
	}
	if len(r.Ingredients) == 0 {
		return ErrNoIngredients
	}
	for _, ing := range r.Ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy so that transformations never alias the
// original ingredient slice.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = make([]RecipeIngredient, len(r.Ingredients))
	copy(out.Ingredients, r.Ingredients)
	return out
}

// IngredientNames returns the lowercased names of all ingredient lines.
func (r Recipe) IngredientNames() []string {
	names := make([]string, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		names[i] = strings.ToLower(ing.Name)
	}
	return names
}

// RecipeIngredient is one line of a recipe's ingredient list.
type RecipeIngredient struct {
	Name     string
	Category IngredientCategory
	Quantity float64
	Unit     MeasurementUnit
	Optional bool
}

// Validate validates the ingredient line
func (i RecipeIngredient) Validate() error {
	if i.Name == "" {
		return ErrEmptyIngredientName
	}
	if i.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// NutritionInfo contains per-serving nutritional information
type NutritionInfo struct {
	Calories float64
	Protein  float64 // in grams
	Carbs    float64 // in grams
	Fat      float64 // in grams
	Fiber    float64 // in grams
}

// Sub returns the field-wise difference n − other.
func (n NutritionInfo) Sub(other NutritionInfo) NutritionInfo {
	return NutritionInfo{
		Calories: n.Calories - other.Calories,
		Protein:  n.Protein - other.Protein,
		Carbs:    n.Carbs - other.Carbs,
		Fat:      n.Fat - other.Fat,
		Fiber:    n.Fiber - other.Fiber,
	}
}

// MeasurementUnit represents units of measurement
type MeasurementUnit string

const (
	MeasurementUnitTeaspoon   MeasurementUnit = "tsp"
	MeasurementUnitTablespoon MeasurementUnit = "tbsp"
	MeasurementUnitCup        MeasurementUnit = "cup"
	MeasurementUnitMilliliter MeasurementUnit = "ml"
	MeasurementUnitGram       MeasurementUnit = "g"
	MeasurementUnitKilogram   MeasurementUnit = "kg"
	MeasurementUnitPiece      MeasurementUnit = "piece"
	MeasurementUnitPinch      MeasurementUnit = "pinch"
)

// DifficultyLevel represents recipe difficulty
type DifficultyLevel string

const (
	DifficultyLevelEasy   DifficultyLevel = "easy"
	DifficultyLevelMedium DifficultyLevel = "medium"
	DifficultyLevelHard   DifficultyLevel = "hard"
)

// Complexity maps the difficulty tier onto a [0,1] scale used by the
// recommendation scorer.
func (d DifficultyLevel) Complexity() float64 {
	switch d {
	case DifficultyLevelEasy:
		return 0.3
	case DifficultyLevelMedium:
		return 0.6
	case DifficultyLevelHard:
		return 0.9
	default:
		return 0.6
	}
}

// MealType represents the meal slot a recipe is intended for
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// CuisineType represents different cuisine types
type CuisineType string

const (
	CuisineTypeItalian       CuisineType = "italian"
	CuisineTypeFrench        CuisineType = "french"
	CuisineTypeChinese       CuisineType = "chinese"
	CuisineTypeJapanese      CuisineType = "japanese"
	CuisineTypeIndian        CuisineType = "indian"
	CuisineTypeMexican       CuisineType = "mexican"
	CuisineTypeAmerican      CuisineType = "american"
	CuisineTypeMediterranean CuisineType = "mediterranean"
	CuisineTypeThai          CuisineType = "thai"
	CuisineTypeOther         CuisineType = "other"
)
