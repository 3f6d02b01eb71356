// Package profile contains the learned per-user preference model and the
// pure transforms over it: folding meal feedback into the model, scoring
// recipe candidates against it, and deriving adaptation advice from it.
// Nothing in this package holds mutable state between calls; every update
// returns a new model value.
package profile

import (
	"time"

	"github.com/google/uuid"
)

// DifficultyImpression is the eater's perceived-difficulty delta relative
// to what the recipe promised.
type DifficultyImpression string

const (
	DifficultyEasier     DifficultyImpression = "easier"
	DifficultyAsExpected DifficultyImpression = "as_expected"
	DifficultyHarder     DifficultyImpression = "harder"
)

// PostMealFeeling captures how the eater felt after the meal.
type PostMealFeeling string

const (
	FeelingEnergized PostMealFeeling = "energized"
	FeelingSatisfied PostMealFeeling = "satisfied"
	FeelingNeutral   PostMealFeeling = "neutral"
	FeelingSluggish  PostMealFeeling = "sluggish"
)

// FeedbackEvent is one immutable meal feedback record.
type FeedbackEvent struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	RecipeID     uuid.UUID
	Rating       int // 1-5
	Satisfaction int // 1-10
	Difficulty   DifficultyImpression
	RepeatIntent bool
	TasteRating  int // 1-5
	Feeling      PostMealFeeling
	ConsumedAt   time.Time
	MealType     string
}

// Validate validates the feedback event
func (f FeedbackEvent) Validate() error {
	if f.UserID == uuid.Nil {
		return ErrMissingUser
	}
	if f.RecipeID == uuid.Nil {
		return ErrMissingRecipe
	}
	if f.Rating < 1 || f.Rating > 5 {
		return ErrInvalidRating
	}
	if f.Satisfaction < 1 || f.Satisfaction > 10 {
		return ErrInvalidSatisfaction
	}
	if f.ConsumedAt.IsZero() {
		return ErrMissingTimestamp
	}
	return nil
}
