package profile

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nutricoach/engine/internal/domain/recipe"
)

// Fixed component weights of the recommendation score.
const (
	weightIngredients = 0.4
	weightTiming      = 0.2
	weightComplexity  = 0.2
	weightNovelty     = 0.2
)

// MealContext is the situational input to recommendation scoring.
type MealContext struct {
	MealType string
	At       time.Time

	// RecentRecipeIDs is the user's recent-meals window, used by the
	// novelty component.
	RecentRecipeIDs []uuid.UUID
}

// RecipeScore is the total score with its component breakdown.
type RecipeScore struct {
	Recipe          recipe.Recipe
	Total           float64
	IngredientMatch float64
	TimingMatch     float64
	ComplexityMatch float64
	NoveltyBalance  float64
}

// ScoreRecipe scores one candidate against the model and context. All
// components are in [0,1]; the total is their fixed-weight sum.
func ScoreRecipe(r recipe.Recipe, m PreferenceModel, ctx MealContext) RecipeScore {
	s := RecipeScore{
		Recipe:          r,
		IngredientMatch: ingredientMatch(r, m),
		TimingMatch:     timingMatch(m, ctx),
		ComplexityMatch: 1 - math.Abs(r.Difficulty.Complexity()-m.ComplexityComfort),
		NoveltyBalance:  noveltyBalance(r, m, ctx),
	}
	s.Total = weightIngredients*s.IngredientMatch +
		weightTiming*s.TimingMatch +
		weightComplexity*s.ComplexityMatch +
		weightNovelty*s.NoveltyBalance
	return s
}

// RankRecipes scores every candidate and returns them sorted by total
// score descending. Callers take a top-N slice of the result.
func RankRecipes(candidates []recipe.Recipe, m PreferenceModel, ctx MealContext) []RecipeScore {
	scored := make([]RecipeScore, len(candidates))
	for i, c := range candidates {
		scored[i] = ScoreRecipe(c, m, ctx)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Total > scored[j].Total
	})
	return scored
}

// BatchConfidence reports how much the model backs a recommendation batch.
func BatchConfidence(m PreferenceModel) float64 {
	return math.Min(1, m.Confidence*float64(m.Interactions)/20)
}

// ingredientMatch is the mean candidate-ingredient affinity rescaled from
// [-1,1] to [0,1], defaulting to 0.5 when nothing is scoreable.
func ingredientMatch(r recipe.Recipe, m PreferenceModel) float64 {
	if len(r.Ingredients) == 0 {
		return 0.5
	}
	var sum float64
	for _, name := range r.IngredientNames() {
		sum += m.IngredientAffinity[name]
	}
	mean := sum / float64(len(r.Ingredients))
	return (mean + 1) / 2
}

// timingMatch doubles the learned frequency weight for the context's
// (meal slot, time bucket), capped at 1.
func timingMatch(m PreferenceModel, ctx MealContext) float64 {
	weight := m.TimingWeights[TimingKey(ctx.MealType, TimeBucketOf(ctx.At))]
	return math.Min(1, weight*2)
}

// noveltyBalance rewards familiar choices for low-novelty users and fresh
// choices for high-novelty users.
func noveltyBalance(r recipe.Recipe, m PreferenceModel, ctx MealContext) float64 {
	for _, id := range ctx.RecentRecipeIDs {
		if id == r.ID {
			return 1 - m.NoveltyAppetite
		}
	}
	return m.NoveltyAppetite
}
