package profile

import "errors"

// Domain errors for feedback and preference model handling

var (
	ErrMissingUser         = errors.New("feedback must reference a user")
	ErrMissingRecipe       = errors.New("feedback must reference a recipe")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrInvalidSatisfaction = errors.New("satisfaction must be between 1 and 10")
	ErrMissingTimestamp    = errors.New("feedback must carry a consumption timestamp")

	ErrNilModel = errors.New("preference model is required")
)
