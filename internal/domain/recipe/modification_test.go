package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeImpact(t *testing.T) {
	base := Recipe{
		Title:      "Base",
		Nutrition:  NutritionInfo{Calories: 500, Protein: 20},
		Difficulty: DifficultyLevelMedium,
		Servings:   2,
		Ingredients: []RecipeIngredient{
			{Name: "kale", Category: CategoryVegetable, Quantity: 100, Unit: MeasurementUnitGram},
		},
	}

	t.Run("no records means no deltas and high probability", func(t *testing.T) {
		m := RecipeModification{Original: base, Modified: base.Clone()}

		m.ComputeImpact()

		assert.Zero(t, m.DifficultyDelta)
		assert.Zero(t, m.TimeDeltaMinutes)
		assert.Zero(t, m.CostDelta)
		assert.InDelta(t, 90, m.SuccessProbability, 1e-9)
		assert.False(t, m.RequiresReview)
	})

	t.Run("impact weights and time deltas accumulate per record", func(t *testing.T) {
		m := RecipeModification{Original: base, Modified: base.Clone()}
		m.Records = []ModificationRecord{
			{Type: ModificationSubstitution, Impact: ImpactMinor},
			{Type: ModificationSubstitution, Impact: ImpactModerate},
			{Type: ModificationMethod, Impact: ImpactMajor},
		}

		m.ComputeImpact()

		assert.InDelta(t, 0.1+0.3+0.5, m.DifficultyDelta, 1e-9)
		assert.Equal(t, 2+2+5, m.TimeDeltaMinutes)
		assert.InDelta(t, 0.3, m.CostDelta, 1e-9)
	})

	t.Run("each major change costs ten points of success probability", func(t *testing.T) {
		m := RecipeModification{Original: base, Modified: base.Clone()}
		m.Records = []ModificationRecord{
			{Type: ModificationSubstitution, Impact: ImpactMajor},
			{Type: ModificationSubstitution, Impact: ImpactMajor},
		}

		m.ComputeImpact()

		assert.InDelta(t, 70, m.SuccessProbability, 1e-9)
	})

	t.Run("hard recipes take an extra penalty and the floor is 50", func(t *testing.T) {
		hard := base
		hard.Difficulty = DifficultyLevelHard
		m := RecipeModification{Original: hard, Modified: hard.Clone()}
		for i := 0; i < 6; i++ {
			m.Records = append(m.Records, ModificationRecord{Type: ModificationSubstitution, Impact: ImpactMajor})
		}

		m.ComputeImpact()

		assert.InDelta(t, 50, m.SuccessProbability, 1e-9)
	})

	t.Run("nutrition impact is modified minus original", func(t *testing.T) {
		modified := base.Clone()
		modified.Nutrition.Calories = 420
		m := RecipeModification{Original: base, Modified: modified}

		m.ComputeImpact()

		assert.InDelta(t, -80, m.NutritionImpact.Calories, 1e-9)
		assert.Zero(t, m.NutritionImpact.Protein)
	})

	t.Run("unresolved restrictions flag the result for review", func(t *testing.T) {
		m := RecipeModification{
			Original:               base,
			Modified:               base.Clone(),
			UnresolvedRestrictions: []string{"peanut"},
		}

		m.ComputeImpact()

		assert.True(t, m.RequiresReview)
	})
}

func TestRestrictionSet(t *testing.T) {
	set := RestrictionSet{
		Allergens: []string{"peanut", "shellfish"},
		Dislikes:  []string{"cilantro"},
	}

	t.Run("allergen matches name substring case-insensitively", func(t *testing.T) {
		assert.True(t, set.MatchesAllergen("Peanut Butter", CategoryFat))
		assert.False(t, set.MatchesAllergen("almond", CategoryNut))
	})

	t.Run("allergen matches category text", func(t *testing.T) {
		shellfishFree := RestrictionSet{Allergens: []string{"dairy"}}

		assert.True(t, shellfishFree.MatchesAllergen("gouda", CategoryDairy))
	})

	t.Run("dislike matches name substring", func(t *testing.T) {
		assert.True(t, set.MatchesDislike("fresh cilantro"))
		assert.False(t, set.MatchesDislike("parsley"))
	})

	t.Run("candidate blocked by either list", func(t *testing.T) {
		assert.True(t, set.BlocksCandidate("peanut oil"))
		assert.True(t, set.BlocksCandidate("cilantro"))
		assert.False(t, set.BlocksCandidate("sunflower seed"))
	})

	t.Run("empty set imposes nothing", func(t *testing.T) {
		assert.True(t, RestrictionSet{}.IsEmpty())
		assert.False(t, set.IsEmpty())
	})
}

func TestDietRules(t *testing.T) {
	t.Run("vegan rules exclude animal products", func(t *testing.T) {
		var matched *DietRule
		for i, rule := range DietRules[DietaryRestrictionVegan] {
			if rule.MatchesExclusion("whole milk") {
				matched = &DietRules[DietaryRestrictionVegan][i]
				break
			}
		}

		assert.NotNil(t, matched)
		assert.Equal(t, "oat milk", matched.Substitute)
	})

	t.Run("gluten free rule catches flour variants", func(t *testing.T) {
		var found bool
		for _, rule := range DietRules[DietaryRestrictionGlutenFree] {
			if rule.MatchesExclusion("Wheat Flour") {
				found = true
				assert.Equal(t, "rice flour", rule.Substitute)
			}
		}
		assert.True(t, found)
	})

	t.Run("non-excluded ingredient passes", func(t *testing.T) {
		for _, rules := range DietRules {
			for _, rule := range rules {
				assert.False(t, rule.MatchesExclusion("kale"))
			}
		}
	})

	t.Run("substitutes recognize themselves", func(t *testing.T) {
		for _, rules := range DietRules {
			for _, rule := range rules {
				assert.True(t, rule.IsSubstitute(rule.Substitute), rule.Substitute)
			}
		}
	})

	t.Run("oat milk matches the milk exclusion but is its own substitute", func(t *testing.T) {
		for _, rule := range DietRules[DietaryRestrictionDairyFree] {
			if !rule.MatchesExclusion("oat milk") {
				continue
			}
			assert.True(t, rule.IsSubstitute("oat milk"))
			assert.False(t, rule.IsSubstitute("whole milk"))
		}
	})
}
