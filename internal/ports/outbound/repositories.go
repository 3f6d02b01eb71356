// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces the engine uses to reach its external collaborators:
// the ingredient/recipe catalog and the preference profile store.
package outbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutricoach/engine/internal/domain/profile"
	"github.com/nutricoach/engine/internal/domain/recipe"
)

// IngredientCatalog answers ingredient lookups. Implementations return a
// nil ingredient, not an error, when a name is simply absent.
type IngredientCatalog interface {
	GetIngredientsByCategory(ctx context.Context, category recipe.IngredientCategory) ([]recipe.Ingredient, error)
	GetIngredientByName(ctx context.Context, name string) (*recipe.Ingredient, error)
}

// RecipeCatalog answers recipe lookups.
type RecipeCatalog interface {
	GetRecipeByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	GetCandidateRecipes(ctx context.Context, mealType recipe.MealType) ([]recipe.Recipe, error)
}

// ProfileRepository stores preference models keyed by user id. The engine
// treats models as values; concurrent feedback for one user is serialized
// through SaveWithVersion's optimistic check.
type ProfileRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*profile.PreferenceModel, error)
	Save(ctx context.Context, model profile.PreferenceModel) error

	// SaveWithVersion persists the model only if the stored version still
	// equals expectedVersion, returning a version-conflict error otherwise.
	SaveWithVersion(ctx context.Context, model profile.PreferenceModel, expectedVersion int64) error
}
