package recipe

import "math"

// DefaultConfidenceThreshold is the minimum confidence a substitution
// candidate must exceed to be eligible.
const DefaultConfidenceThreshold = 60.0

// NutritionPriority expresses what the caller wants a substitution to do
// to the recipe's nutrition.
type NutritionPriority string

const (
	NutritionPriorityMaintain       NutritionPriority = "maintain"
	NutritionPriorityImprove        NutritionPriority = "improve"
	NutritionPriorityReduceCalories NutritionPriority = "reduce_calories"
)

// IngredientSubstitution describes one scored candidate replacement.
// It is ephemeral: produced and consumed within a single modification pass.
type IngredientSubstitution struct {
	Original            Ingredient
	Substitute          Ingredient
	Ratio               float64 // multiplier applied to the original quantity
	NutritionSimilarity float64 // [0,100]
	FlavorCompatibility float64 // [0,100]
	MethodCompatibility float64 // [0,100]
	AllergenSafe        bool
	Confidence          float64 // [0,100], mean of the three sub-scores
}

// ScoreSubstitution scores candidate as a replacement for original under
// the given cooking method. The substitution ratio preserves caloric load:
// ratio × substitute kcal/100g = original kcal/100g.
func ScoreSubstitution(original, candidate Ingredient, method CookingMethod, table *MethodCompatibilityTable) IngredientSubstitution {
	if table == nil {
		table = DefaultMethodCompatibility
	}

	nutrition := NutritionSimilarity(original.Nutrition, candidate.Nutrition)
	flavor := FlavorCompatibility(original.FlavorTags, candidate.FlavorTags)
	methodScore := table.Lookup(method, candidate.Category)

	ratio := 1.0
	if candidate.Nutrition.Calories > 0 && original.Nutrition.Calories > 0 {
		ratio = original.Nutrition.Calories / candidate.Nutrition.Calories
	}

	return IngredientSubstitution{
		Original:            original,
		Substitute:          candidate,
		Ratio:               ratio,
		NutritionSimilarity: nutrition,
		FlavorCompatibility: flavor,
		MethodCompatibility: methodScore,
		AllergenSafe:        true,
		Confidence:          (nutrition + flavor + methodScore) / 3,
	}
}

// NutritionSimilarity compares two per-100g profiles metric by metric.
// Each metric where either value is nonzero contributes
// 100 − 100×|a−b|/max(a,b); when no metric is comparable the score
// defaults to 50.
func NutritionSimilarity(a, b NutritionPer100g) float64 {
	am, bm := a.metrics(), b.metrics()

	var sum float64
	var compared int
	for i := range am {
		if am[i] == 0 && bm[i] == 0 {
			continue
		}
		max := math.Max(am[i], bm[i])
		sum += 100 - 100*math.Abs(am[i]-bm[i])/max
		compared++
	}

	if compared == 0 {
		return 50
	}
	return sum / float64(compared)
}

// FlavorCompatibility scores the overlap of flavor tags relative to the
// original's tag set, defaulting to 50 when either side lacks flavor data.
func FlavorCompatibility(original, candidate []string) float64 {
	if len(original) == 0 || len(candidate) == 0 {
		return 50
	}

	candidateTags := make(map[string]struct{}, len(candidate))
	for _, tag := range candidate {
		candidateTags[tag] = struct{}{}
	}

	var shared int
	for _, tag := range original {
		if _, ok := candidateTags[tag]; ok {
			shared++
		}
	}

	return 100 * float64(shared) / float64(len(original))
}
