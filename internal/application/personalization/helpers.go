package personalization

import (
	"fmt"
	"strings"

	"github.com/nutricoach/engine/internal/domain/profile"
	"github.com/nutricoach/engine/internal/domain/recipe"
)

func mealTypeOf(raw string) recipe.MealType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "breakfast":
		return recipe.MealTypeBreakfast
	case "lunch":
		return recipe.MealTypeLunch
	case "snack":
		return recipe.MealTypeSnack
	default:
		return recipe.MealTypeDinner
	}
}

// describeScore renders a one-line rationale for a ranked candidate,
// leading with its strongest component.
func describeScore(s profile.RecipeScore) string {
	component := "ingredients you tend to enjoy"
	best := s.IngredientMatch
	if s.TimingMatch > best {
		component, best = "your usual meal timing", s.TimingMatch
	}
	if s.ComplexityMatch > best {
		component, best = "your comfort with its difficulty", s.ComplexityMatch
	}
	if s.NoveltyBalance > best {
		component = "your appetite for variety"
	}
	return fmt.Sprintf("%s: matched on %s (score %.2f)", s.Recipe.Title, component, s.Total)
}
