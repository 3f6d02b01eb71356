package recipe

import "errors"

// Domain errors for recipe values and adaptation

var (
	// Entity validation errors
	ErrEmptyTitle          = errors.New("recipe title is required")
	ErrInvalidServings     = errors.New("servings must be greater than 0")
	ErrNoIngredients       = errors.New("recipe must have at least one ingredient")
	ErrEmptyIngredientName = errors.New("ingredient name is required")
	ErrEmptyCategory       = errors.New("ingredient category is required")
	ErrNegativeQuantity    = errors.New("ingredient quantity cannot be negative")

	// Portion adjustment errors
	ErrZeroServings         = errors.New("cannot scale a recipe with zero servings")
	ErrInvalidTargetServing = errors.New("target servings must be greater than 0")

	// Substitution errors
	ErrZeroCalorieSubstitute = errors.New("substitute has no caloric content to preserve")
)
