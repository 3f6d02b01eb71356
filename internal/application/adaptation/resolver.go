package adaptation

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nutricoach/engine/internal/domain/recipe"
	"github.com/nutricoach/engine/pkg/errors"
)

// FindSubstitute resolves the best replacement for an ingredient under the
// given constraints. Candidates come from the ingredient's own catalog
// category, minus the original and anything tripping an allergen or
// dislike. A nil result with a nil error means no candidate cleared the
// confidence threshold, which callers should treat as "keep the original".
func (s *Service) FindSubstitute(ctx context.Context, ing recipe.Ingredient, restrictions recipe.RestrictionSet, method recipe.CookingMethod, priority recipe.NutritionPriority) (*recipe.IngredientSubstitution, error) {
	sub, err := s.resolve(ctx, ing, restrictions, method, priority)
	if err != nil {
		return nil, err
	}

	if sub == nil {
		s.metrics.RecordSubstitution("no_candidate")
		s.logger.Debug("No substitute cleared the threshold",
			zap.String("ingredient", ing.Name),
			zap.String("method", string(method)),
		)
		return nil, nil
	}

	s.metrics.RecordSubstitution("resolved")
	return sub, nil
}

// resolve is the metric-free core of substitution search, shared by the
// public operation and the modification passes.
func (s *Service) resolve(ctx context.Context, ing recipe.Ingredient, restrictions recipe.RestrictionSet, method recipe.CookingMethod, priority recipe.NutritionPriority) (*recipe.IngredientSubstitution, error) {
	candidates, err := s.ingredients.GetIngredientsByCategory(ctx, ing.Category)
	if err != nil {
		return nil, errors.NewProcessingError("candidate ingredient lookup", err)
	}

	var best *recipe.IngredientSubstitution
	for _, candidate := range candidates {
		if strings.EqualFold(candidate.Name, ing.Name) {
			continue
		}
		if restrictions.BlocksCandidate(candidate.Name) {
			continue
		}

		scored := recipe.ScoreSubstitution(ing, candidate, method, s.methodTable)
		if scored.Confidence <= s.confidenceThreshold {
			continue
		}
		if best == nil || betterCandidate(scored, *best, priority) {
			copied := scored
			best = &copied
		}
	}

	return best, nil
}

// betterCandidate orders eligible candidates: higher confidence wins, and
// for a reduce-calories priority a calorie-lighter substitute breaks ties.
func betterCandidate(a, b recipe.IngredientSubstitution, priority recipe.NutritionPriority) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	if priority == recipe.NutritionPriorityReduceCalories {
		return a.Substitute.Nutrition.Calories < b.Substitute.Nutrition.Calories
	}
	return false
}
