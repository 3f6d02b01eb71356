// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the use cases the engine exposes to its callers. The engine is
// a library boundary, not a service boundary: no wire protocol is owned here.
package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutricoach/engine/internal/domain/profile"
	"github.com/nutricoach/engine/internal/domain/recipe"
)

// PersonalizationService covers the preference-learning use cases.
type PersonalizationService interface {
	// ProcessFeedback folds one feedback event into the user's stored
	// preference model and persists the successor model with an
	// optimistic version check. The model is created on first feedback.
	// Fails with a not-found error, before any update, when the
	// referenced recipe cannot be resolved.
	ProcessFeedback(ctx context.Context, feedback profile.FeedbackEvent) (profile.PreferenceModel, error)

	// GenerateRecommendations ranks catalog candidates for the user and
	// context and returns the top slice with reasoning and batch
	// confidence.
	GenerateRecommendations(ctx context.Context, userID uuid.UUID, mealCtx profile.MealContext) (*RecommendationBatch, error)

	// AnalyzeAdaptationOpportunities derives behavioral suggestions from
	// the user's preference model.
	AnalyzeAdaptationOpportunities(ctx context.Context, userID uuid.UUID) ([]profile.AdaptationRecommendation, error)
}

// RecommendationBatch is the result of one recommendation request.
type RecommendationBatch struct {
	Recipes    []profile.RecipeScore
	Reasoning  []string
	Confidence float64
}

// AdaptationService covers the recipe-rewriting use cases.
type AdaptationService interface {
	// ModifyRecipe applies allergen, diet, dislike, and goal passes in
	// fixed priority order and reports the net impact. Zero modifications
	// is a valid result; unresolved restrictions are flagged on the
	// result, never silently dropped.
	ModifyRecipe(ctx context.Context, r recipe.Recipe, model *profile.PreferenceModel, restrictions recipe.RestrictionSet, goals []recipe.OptimizationGoal) (*recipe.RecipeModification, error)

	// AdjustPortions rescales a recipe to a serving count under optional
	// calorie constraints.
	AdjustPortions(ctx context.Context, r recipe.Recipe, targetServings int, constraints recipe.PortionConstraints) (recipe.Recipe, error)

	// FindSubstitute resolves the best replacement for an ingredient
	// under the given constraints. A nil result with a nil error means no
	// candidate cleared the confidence threshold; callers must branch on
	// that degraded-but-valid outcome.
	FindSubstitute(ctx context.Context, ing recipe.Ingredient, restrictions recipe.RestrictionSet, method recipe.CookingMethod, priority recipe.NutritionPriority) (*recipe.IngredientSubstitution, error)
}
