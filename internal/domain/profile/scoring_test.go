package profile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nutricoach/engine/internal/domain/recipe"
)

func scoringRecipe(title string, names ...string) recipe.Recipe {
	r := recipe.Recipe{
		ID:         uuid.New(),
		Title:      title,
		MealType:   recipe.MealTypeDinner,
		Difficulty: recipe.DifficultyLevelMedium,
		Servings:   2,
	}
	for _, n := range names {
		r.Ingredients = append(r.Ingredients, recipe.RecipeIngredient{
			Name: n, Category: recipe.CategoryVegetable, Quantity: 100, Unit: recipe.MeasurementUnitGram,
		})
	}
	return r
}

func dinnerContext() MealContext {
	return MealContext{
		MealType: "dinner",
		At:       time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC),
	}
}

func TestScoreRecipe(t *testing.T) {
	t.Run("neutral model scores components at midpoints", func(t *testing.T) {
		m := NewPreferenceModel(uuid.New())
		r := scoringRecipe("Stir Fry", "broccoli", "tofu")

		s := ScoreRecipe(r, m, dinnerContext())

		assert.InDelta(t, 0.5, s.IngredientMatch, 1e-9)
		assert.InDelta(t, 0, s.TimingMatch, 1e-9)
		// medium complexity 0.6 against comfort 0.5
		assert.InDelta(t, 0.9, s.ComplexityMatch, 1e-9)
		assert.InDelta(t, 0.5, s.NoveltyBalance, 1e-9)
		assert.InDelta(t, 0.4*0.5+0.2*0+0.2*0.9+0.2*0.5, s.Total, 1e-9)
	})

	t.Run("liked ingredients raise the score", func(t *testing.T) {
		m := NewPreferenceModel(uuid.New())
		m.IngredientAffinity["kale"] = 0.8
		liked := scoringRecipe("Kale Bowl", "kale")
		neutral := scoringRecipe("Plain Bowl", "parsnip")

		ctx := dinnerContext()
		assert.Greater(t, ScoreRecipe(liked, m, ctx).Total, ScoreRecipe(neutral, m, ctx).Total)
	})

	t.Run("timing weight feeds the timing component capped at one", func(t *testing.T) {
		m := NewPreferenceModel(uuid.New())
		m.TimingWeights[TimingKey("dinner", BucketEvening)] = 0.3

		s := ScoreRecipe(scoringRecipe("Any", "kale"), m, dinnerContext())
		assert.InDelta(t, 0.6, s.TimingMatch, 1e-9)

		m.TimingWeights[TimingKey("dinner", BucketEvening)] = 0.9
		s = ScoreRecipe(scoringRecipe("Any", "kale"), m, dinnerContext())
		assert.InDelta(t, 1.0, s.TimingMatch, 1e-9)
	})

	t.Run("recent recipes invert the novelty component", func(t *testing.T) {
		m := NewPreferenceModel(uuid.New())
		m.NoveltyAppetite = 0.8
		r := scoringRecipe("Repeat Meal", "kale")

		ctx := dinnerContext()
		fresh := ScoreRecipe(r, m, ctx)
		ctx.RecentRecipeIDs = []uuid.UUID{r.ID}
		repeated := ScoreRecipe(r, m, ctx)

		assert.InDelta(t, 0.8, fresh.NoveltyBalance, 1e-9)
		assert.InDelta(t, 0.2, repeated.NoveltyBalance, 1e-9)
	})
}

func TestRankRecipes(t *testing.T) {
	m := NewPreferenceModel(uuid.New())
	m.IngredientAffinity["kale"] = 0.9
	m.IngredientAffinity["liver"] = -0.9

	ranked := RankRecipes([]recipe.Recipe{
		scoringRecipe("Liver and Onions", "liver"),
		scoringRecipe("Kale Salad", "kale"),
		scoringRecipe("Plain Rice", "rice"),
	}, m, dinnerContext())

	assert.Len(t, ranked, 3)
	assert.Equal(t, "Kale Salad", ranked[0].Recipe.Title)
	assert.Equal(t, "Liver and Onions", ranked[2].Recipe.Title)
	assert.GreaterOrEqual(t, ranked[0].Total, ranked[1].Total)
	assert.GreaterOrEqual(t, ranked[1].Total, ranked[2].Total)
}

func TestBatchConfidence(t *testing.T) {
	m := NewPreferenceModel(uuid.New())
	assert.Zero(t, BatchConfidence(m))

	m.Confidence = 0.5
	m.Interactions = 10
	assert.InDelta(t, 0.25, BatchConfidence(m), 1e-9)

	m.Confidence = 1
	m.Interactions = 100
	assert.InDelta(t, 1.0, BatchConfidence(m), 1e-9)
}

func BenchmarkRankRecipes(b *testing.B) {
	m := NewPreferenceModel(uuid.New())
	candidates := make([]recipe.Recipe, 100)
	for i := range candidates {
		candidates[i] = scoringRecipe("Candidate", "kale", "quinoa", "broccoli")
	}
	ctx := dinnerContext()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RankRecipes(candidates, m, ctx)
	}
}
