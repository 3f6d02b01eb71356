package recipe

// PortionConstraints bounds a portion adjustment. A zero MaxCalories means
// no calorie ceiling.
type PortionConstraints struct {
	MaxCalories float64 // per serving
}

// AdjustPortions scales every ingredient quantity by
// targetServings/originalServings and returns a new Recipe value. When a
// max-calorie constraint is supplied and the per-serving calories exceed
// it, quantities are scaled down further by maxCalories/currentCalories
// and the reported calories are clamped to the constraint.
//
// Per-serving nutrition is unchanged by pure serving scaling: doubling the
// servings doubles the quantities, not the plate.
func AdjustPortions(r Recipe, targetServings int, constraints PortionConstraints) (Recipe, error) {
	if r.Servings == 0 {
		return Recipe{}, ErrZeroServings
	}
	if targetServings <= 0 {
		return Recipe{}, ErrInvalidTargetServing
	}

	out := r.Clone()
	factor := float64(targetServings) / float64(r.Servings)
	for i := range out.Ingredients {
		out.Ingredients[i].Quantity *= factor
	}
	out.Servings = targetServings

	if constraints.MaxCalories > 0 && out.Nutrition.Calories > constraints.MaxCalories {
		trim := constraints.MaxCalories / out.Nutrition.Calories
		for i := range out.Ingredients {
			out.Ingredients[i].Quantity *= trim
		}
		out.Nutrition.Calories = constraints.MaxCalories
	}

	return out, nil
}
